package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Scoring: ScoringConfig{
			Single:        40,
			Double:        100,
			Triple:        300,
			Tetris:        1200,
			SoftDropBonus: 1,
		},
		Gravity: GravityConfig{
			BaseIntervalTicks: 60,
			SpeedFactor:       0.85,
			MinIntervalTicks:  3,
		},
		Progression: ProgressionConfig{
			LinesPerLevel: 10,
		},
	}
}
