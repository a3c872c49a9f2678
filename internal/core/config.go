package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic piece sequences
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level (drives gravity speed)
	Lines    int  // Total lines cleared
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventType identifies a notification emitted by the engine during a tick.
type EventType int

const (
	// EventPieceLocked fires when the active piece is committed to the board.
	EventPieceLocked EventType = iota

	// EventRowsCleared fires after completed rows are removed; Rows carries
	// the count (1-4).
	EventRowsCleared

	// EventLevelChanged fires when the level rises; Level carries the new level.
	EventLevelChanged

	// EventGameOver fires once when the game reaches its terminal state.
	EventGameOver
)

// Event is a discrete notification for the presentation layer, so it can
// react to state transitions without diffing snapshots every tick.
type Event struct {
	Type  EventType
	Rows  int // Rows cleared (EventRowsCleared only)
	Level int // New level (EventLevelChanged only)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred this tick.
type StepResult struct {
	State  GameState
	Events []Event
}
