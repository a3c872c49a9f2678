// Package config provides YAML-based game configuration loading and
// difficulty management for the tetris platform.
package config

// TetrisConfig contains all tunable parameters for the game.
type TetrisConfig struct {
	Board       BoardConfig       `yaml:"board"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Gravity     GravityConfig     `yaml:"gravity"`
	Progression ProgressionConfig `yaml:"progression"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig defines points for clears and drops, before the level
// multiplier is applied.
type ScoringConfig struct {
	Single        int `yaml:"single"`
	Double        int `yaml:"double"`
	Triple        int `yaml:"triple"`
	Tetris        int `yaml:"tetris"`
	SoftDropBonus int `yaml:"soft_drop_bonus"`
}

// GravityConfig defines how fast pieces fall, in simulation ticks.
type GravityConfig struct {
	BaseIntervalTicks int     `yaml:"base_interval_ticks"`
	SpeedFactor       float64 `yaml:"speed_factor"`
	MinIntervalTicks  int     `yaml:"min_interval_ticks"`
}

// ProgressionConfig defines how cleared rows advance the level.
// LinesPerLevel of zero disables leveling.
type ProgressionConfig struct {
	LinesPerLevel int `yaml:"lines_per_level"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseIntervalTicks = 75
		cfg.Gravity.SpeedFactor = 0.9
	case DifficultyHard:
		cfg.Gravity.BaseIntervalTicks = 45
		cfg.Gravity.SpeedFactor = 0.8
	case DifficultyFixed:
		cfg.Progression.LinesPerLevel = 0
	}
}
