package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeMarathon levels up every few cleared rows and speeds gravity up.
	ModeMarathon Mode = "marathon"
	// ModeFixed keeps gravity at the starting level forever.
	ModeFixed Mode = "fixed"
)

// Game implements the falling-block puzzle.
type Game struct {
	mode  Mode
	rules Rules
	rng   *rand.Rand
	tick  uint64

	board        *Board
	supplier     KindSupplier
	keepSupplier bool
	active       Piece
	next         Kind
	emitGameOver bool

	score      int
	level      int
	startLevel int
	lines      int

	gravityTicker int

	gameOver bool
	paused   bool
	tooSmall bool

	screenW int
	screenH int
}

// Package-level variables applied by the platform before Reset.
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
)

// SetConfigPath sets the config file path to load on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name. Unknown names
// leave the loaded config untouched.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the level new games begin at (0-9).
func SetStartLevel(level int) {
	selectedStartLevel = core.Clamp(level, 0, 9)
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// BoardWidth and BoardHeight are the classic playfield dimensions.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Minimum screen size needed to draw the board, HUD, and side panel.
const (
	minScreenW = 38
	minScreenH = 24
)

// New creates a new marathon mode game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewFixed creates a new fixed-gravity game.
func NewFixed() *Game {
	return &Game{mode: ModeFixed}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_fixed", func() registry.Game {
		return NewFixed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeFixed {
		return "tetris_fixed"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeFixed {
		return "Tetris (Fixed Gravity)"
	}
	return "Tetris"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0

	tc, err := config.LoadTetris(configPath)
	if err != nil {
		tc = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&tc, difficultyPreset)
	}
	g.rules = RulesFromConfig(tc)
	if g.mode == ModeFixed {
		g.rules.LinesPerLevel = 0
	}

	g.board = NewBoard(tc.Board.Width, tc.Board.Height)
	if g.supplier == nil || !g.keepSupplier {
		g.supplier = NewBag(cfg.Seed)
	}

	g.score = 0
	g.lines = 0
	g.startLevel = selectedStartLevel
	g.level = g.startLevel
	g.gravityTicker = 0
	g.gameOver = false
	g.paused = false

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH

	g.next = g.supplier.Next()
	g.spawnNext()
}

// SetSupplier replaces the piece source. Pass nil to return to the seeded
// seven-bag on the next Reset. Used by tests to script exact piece orders.
func (g *Game) SetSupplier(s KindSupplier) {
	g.supplier = s
	g.keepSupplier = s != nil
}

// spawnNext promotes the preview piece to active and deals a new preview.
// A blocked spawn ends the game with the piece left visible where it
// overlaps.
func (g *Game) spawnNext() {
	p, ok := TrySpawn(g.board, g.next)
	g.active = p
	g.next = g.supplier.Next()
	if !ok {
		g.gameOver = true
		g.emitGameOver = true
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	if g.emitGameOver {
		g.emitGameOver = false
		events = append(events, core.Event{Type: core.EventGameOver})
	}

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State(), Events: events}
	}

	// Terminal state: everything except restart is ignored
	if g.gameOver {
		return core.StepResult{State: g.State(), Events: events}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	// While paused or the window is too small, the piece does not move
	// and gravity does not accumulate
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State(), Events: events}
	}

	events = append(events, g.processInput(input)...)
	if g.gameOver {
		return core.StepResult{State: g.State(), Events: events}
	}

	// Gravity
	g.gravityTicker++
	if g.gravityTicker >= g.rules.IntervalForLevel(g.level) {
		g.gravityTicker = 0
		if moved, ok := TryDescend(g.board, g.active); ok {
			g.active = moved
		} else {
			events = append(events, g.lockAndSpawn()...)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// processInput applies the player's actions for this tick.
func (g *Game) processInput(input core.InputFrame) []core.Event {
	if input.Has(core.ActionLeft) {
		g.active, _ = TryMove(g.board, g.active, DirLeft)
	}
	if input.Has(core.ActionRight) {
		g.active, _ = TryMove(g.board, g.active, DirRight)
	}
	if input.Has(core.ActionRotateCW) {
		g.active, _ = TryRotate(g.board, g.active, SpinCW)
	}
	if input.Has(core.ActionRotateCCW) {
		g.active, _ = TryRotate(g.board, g.active, SpinCCW)
	}

	if input.Has(core.ActionHardDrop) {
		dropped := g.active
		dropped.Row = DropRow(g.board, g.active)
		g.active = dropped
		return g.lockAndSpawn()
	}

	if input.Has(core.ActionSoftDrop) {
		if moved, ok := TryDescend(g.board, g.active); ok {
			g.active = moved
			g.score += g.rules.SoftDropBonus
			g.gravityTicker = 0
		} else {
			return g.lockAndSpawn()
		}
	}

	return nil
}

// lockAndSpawn fixes the active piece onto the board, resolves line clears
// and level progression, and spawns the next piece.
func (g *Game) lockAndSpawn() []core.Event {
	events := []core.Event{{Type: core.EventPieceLocked}}

	if g.board.Lock(g.active) {
		// Part of the piece locked above the field
		g.gameOver = true
		events = append(events, core.Event{Type: core.EventGameOver})
		return events
	}

	if rows := g.board.CompletedRows(); len(rows) > 0 {
		g.board.ClearRows(rows)
		g.score += g.rules.ScoreForClear(len(rows), g.level)
		g.lines += len(rows)
		events = append(events, core.Event{Type: core.EventRowsCleared, Rows: len(rows)})

		if newLevel := g.rules.LevelForLines(g.startLevel, g.lines); newLevel > g.level {
			g.level = newLevel
			events = append(events, core.Event{Type: core.EventLevelChanged, Level: newLevel})
		}
	}

	g.gravityTicker = 0
	g.spawnNext()
	if g.gameOver {
		g.emitGameOver = false
		events = append(events, core.Event{Type: core.EventGameOver})
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Lines:    g.lines,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// NextKind returns the preview piece shown in the side panel.
func (g *Game) NextKind() Kind {
	return g.next
}

// ActivePiece returns the falling piece.
func (g *Game) ActivePiece() Piece {
	return g.active
}

// Board exposes the locked playfield for rendering and tests.
func (g *Game) Board() *Board {
	return g.board
}
