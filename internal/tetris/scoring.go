package tetris

import (
	"math"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Rules are the tunable scoring and pacing parameters. The config package
// overlays presets and YAML values on top of DefaultRules before a game
// starts.
type Rules struct {
	// Points awarded for clearing 1..4 rows at once, before the level
	// multiplier is applied.
	Single int
	Double int
	Triple int
	Tetris int

	// SoftDropBonus is added per row descended under player input.
	SoftDropBonus int

	// Gravity interval in ticks: BaseIntervalTicks at level 0, multiplied
	// by SpeedFactor per level, floored at MinIntervalTicks.
	BaseIntervalTicks int
	SpeedFactor       float64
	MinIntervalTicks  int

	// LinesPerLevel is how many cleared rows advance the level by one.
	// Zero disables progression entirely (fixed-gravity play).
	LinesPerLevel int
}

// DefaultRules returns the classic marathon parameters.
func DefaultRules() Rules {
	return Rules{
		Single:            40,
		Double:            100,
		Triple:            300,
		Tetris:            1200,
		SoftDropBonus:     1,
		BaseIntervalTicks: 60,
		SpeedFactor:       0.85,
		MinIntervalTicks:  3,
		LinesPerLevel:     10,
	}
}

// RulesFromConfig maps a loaded configuration onto engine rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	return Rules{
		Single:            cfg.Scoring.Single,
		Double:            cfg.Scoring.Double,
		Triple:            cfg.Scoring.Triple,
		Tetris:            cfg.Scoring.Tetris,
		SoftDropBonus:     cfg.Scoring.SoftDropBonus,
		BaseIntervalTicks: cfg.Gravity.BaseIntervalTicks,
		SpeedFactor:       cfg.Gravity.SpeedFactor,
		MinIntervalTicks:  cfg.Gravity.MinIntervalTicks,
		LinesPerLevel:     cfg.Progression.LinesPerLevel,
	}
}

// ScoreForClear returns the points for clearing rows at the given level.
// Clearing more rows at once is always worth strictly more: the base values
// jump faster than linearly, and the level multiplier applies uniformly.
func (r Rules) ScoreForClear(rows, level int) int {
	var base int
	switch rows {
	case 1:
		base = r.Single
	case 2:
		base = r.Double
	case 3:
		base = r.Triple
	case 4:
		base = r.Tetris
	default:
		return 0
	}
	return base * (level + 1)
}

// IntervalForLevel returns the gravity interval, in ticks, for a level.
func (r Rules) IntervalForLevel(level int) int {
	if level < 0 {
		level = 0
	}
	interval := int(math.Round(float64(r.BaseIntervalTicks) * math.Pow(r.SpeedFactor, float64(level))))
	if interval < r.MinIntervalTicks {
		interval = r.MinIntervalTicks
	}
	return interval
}

// LevelForLines returns the level reached after clearing the given total
// number of rows, starting from startLevel. The level never decreases.
func (r Rules) LevelForLines(startLevel, lines int) int {
	if r.LinesPerLevel <= 0 {
		return startLevel
	}
	return startLevel + lines/r.LinesPerLevel
}
