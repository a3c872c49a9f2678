package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Each board column is drawn two runes wide so cells look roughly square
// in a terminal.
const cellRunes = 2

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boxW := g.board.Width()*cellRunes + 2
	boxH := g.board.Height() + 2
	hudHeight := 2

	boxX := (g.screenW - (boxW + panelWidth + 2)) / 2
	if boxX < 0 {
		boxX = 0
	}
	boxY := hudHeight

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	g.renderStack(dst, boxX+1, boxY+1)
	g.renderGhost(dst, boxX+1, boxY+1)
	g.renderActive(dst, boxX+1, boxY+1)
	g.renderPanel(dst, boxX+boxW+2, boxY)
	g.renderOverlays(dst, boxX, boxY, boxW, boxH)
}

const panelWidth = 14

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(g.screenH/2, "Window too small")
	dst.DrawTextCentered(g.screenH/2+1, fmt.Sprintf("Need at least %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Level: %d  Lines: %d", g.Title(), g.score, g.level, g.lines)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderStack draws the locked cells. originX/originY is the screen
// position of board cell (0, 0).
func (g *Game) renderStack(dst *core.Screen, originX, originY int) {
	for r := 0; r < g.board.Height(); r++ {
		for c := 0; c < g.board.Width(); c++ {
			kind := g.board.CellAt(r, c)
			if kind == KindNone {
				continue
			}
			drawBlock(dst, originX+c*cellRunes, originY+r, kind.Color())
		}
	}
}

// renderGhost draws the landing outline of the active piece.
func (g *Game) renderGhost(dst *core.Screen, originX, originY int) {
	if g.gameOver {
		return
	}
	ghost := g.active
	ghost.Row = DropRow(g.board, g.active)
	if ghost.Row == g.active.Row {
		return
	}
	for _, cell := range ghost.Cells() {
		if cell.Row < 0 {
			continue
		}
		x := originX + cell.Col*cellRunes
		dst.SetCell(x, originY+cell.Row, '░', core.ColorGray)
		dst.SetCell(x+1, originY+cell.Row, '░', core.ColorGray)
	}
}

// renderActive draws the falling piece. Rows above the field are clipped.
func (g *Game) renderActive(dst *core.Screen, originX, originY int) {
	for _, cell := range g.active.Cells() {
		if cell.Row < 0 {
			continue
		}
		drawBlock(dst, originX+cell.Col*cellRunes, originY+cell.Row, g.active.Kind.Color())
	}
}

// renderPanel draws score, level, lines, and the next-piece preview to the
// right of the board.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, fmt.Sprintf("Score %d", g.score))
	dst.DrawText(x, y+1, fmt.Sprintf("Level %d", g.level))
	dst.DrawText(x, y+2, fmt.Sprintf("Lines %d", g.lines))

	dst.DrawText(x, y+4, "Next")
	for _, off := range ShapeOffsets(g.next, 0) {
		drawBlock(dst, x+off.Col*cellRunes, y+5+off.Row, g.next.Color())
	}
}

// renderOverlays draws pause and game over messages over the board.
func (g *Game) renderOverlays(dst *core.Screen, boxX, boxY, boxW, boxH int) {
	midY := boxY + boxH/2
	center := func(text string, y int) {
		dst.DrawText(boxX+(boxW-len(text))/2, y, text)
	}

	switch {
	case g.gameOver:
		center("GAME OVER", midY-1)
		center("R restart  Q quit", midY+1)
	case g.paused:
		center("PAUSED", midY-1)
		center("P resume", midY+1)
	}
}

func drawBlock(dst *core.Screen, x, y int, color core.Color) {
	dst.SetCell(x, y, '█', color)
	dst.SetCell(x+1, y, '█', color)
}
