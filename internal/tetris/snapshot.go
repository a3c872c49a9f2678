package tetris

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string // "marathon" or "fixed"
	Score      int
	Level      int
	Lines      int
	ActiveKind Kind
	ActiveRot  int
	ActiveRow  int
	ActiveCol  int
	NextKind   Kind
	StackCells int // Number of occupied board cells
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	stack := 0
	for r := 0; r < g.board.Height(); r++ {
		for c := 0; c < g.board.Width(); c++ {
			if g.board.CellAt(r, c) != KindNone {
				stack++
			}
		}
	}

	return Snapshot{
		Tick:       g.tick,
		Mode:       string(g.mode),
		Score:      g.score,
		Level:      g.level,
		Lines:      g.lines,
		ActiveKind: g.active.Kind,
		ActiveRot:  g.active.Rotation,
		ActiveRow:  g.active.Row,
		ActiveCol:  g.active.Col,
		NextKind:   g.next,
		StackCells: stack,
		State:      state,
	}
}
