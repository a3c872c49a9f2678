package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// TetrisMode represents the selected game mode.
type TetrisMode int

const (
	TetrisModeMarathon TetrisMode = iota
	TetrisModeFixed
)

// maxStartLevel is the highest level the player can begin at.
const maxStartLevel = 9

// TetrisSelection holds the user's selection from the mode menu.
type TetrisSelection struct {
	Mode  TetrisMode
	Level int // Starting level, 0-9
}

// TetrisModeModel lets users choose game mode and starting level.
type TetrisModeModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     TetrisSelection
	choosing      bool
	quitting      bool
	back          bool
}

// NewTetrisModeModel creates a new mode selection model.
func NewTetrisModeModel(width, height int) TetrisModeModel {
	return TetrisModeModel{
		cursor:    0,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m TetrisModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m TetrisModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m TetrisModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m TetrisModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 2 { // 3 options: Marathon, Fixed Gravity, Start Level
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // Marathon
			m.choosing = false
			m.selection = TetrisSelection{Mode: TetrisModeMarathon, Level: 0}
			return m, tea.Quit
		case 1: // Fixed gravity
			m.choosing = false
			m.selection = TetrisSelection{Mode: TetrisModeFixed, Level: 0}
			return m, tea.Quit
		case 2: // Start level
			m.inLevelSelect = true
			m.levelCursor = 0
		}
	case MenuActionBack:
		m.back = true
		return m, nil
	}

	return m, nil
}

func (m TetrisModeModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < maxStartLevel {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = TetrisSelection{
			Mode:  TetrisModeMarathon,
			Level: m.levelCursor,
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the mode/level selection.
func (m TetrisModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m TetrisModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T E T R I S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		"Marathon (speeds up with levels)",
		"Fixed Gravity",
		"Start at Level...",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m TetrisModeModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT STARTING LEVEL", m.width))
	b.WriteString("\n\n")

	for level := 0; level <= maxStartLevel; level++ {
		cursor := "  "
		if level == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%sLevel %d", cursor, level)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m TetrisModeModel) Selected() *TetrisSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m TetrisModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m TetrisModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m TetrisModeModel) WantsBack() bool {
	return m.back
}

// RunTetrisModeSelector runs the mode selection and returns the selection.
func RunTetrisModeSelector(cfg core.RuntimeConfig) (*TetrisSelection, core.RuntimeConfig, error) {
	model := NewTetrisModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(TetrisModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
