package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

func TestRulesFromConfigMatchesDefaults(t *testing.T) {
	// The embedded default config and the hardcoded rules must agree
	if got := RulesFromConfig(config.DefaultTetrisConfig()); got != DefaultRules() {
		t.Errorf("RulesFromConfig(defaults) = %+v, want %+v", got, DefaultRules())
	}
}

func TestScoreForClear(t *testing.T) {
	r := DefaultRules()

	cases := []struct {
		rows, level, want int
	}{
		{1, 0, 40},
		{2, 0, 100},
		{3, 0, 300},
		{4, 0, 1200},
		{1, 2, 120},
		{4, 9, 12000},
		{0, 0, 0},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := r.ScoreForClear(tc.rows, tc.level); got != tc.want {
			t.Errorf("ScoreForClear(%d, %d) = %d, want %d", tc.rows, tc.level, got, tc.want)
		}
	}
}

func TestScoreCurveRewardsBiggerClears(t *testing.T) {
	r := DefaultRules()
	for level := 0; level <= 12; level++ {
		prev := 0
		for rows := 1; rows <= 4; rows++ {
			got := r.ScoreForClear(rows, level)
			if got <= prev {
				t.Errorf("level %d: %d rows worth %d, not more than %d rows at %d",
					level, rows, got, rows-1, prev)
			}
			prev = got
		}
	}
}

func TestIntervalForLevel(t *testing.T) {
	r := DefaultRules()

	if got := r.IntervalForLevel(0); got != r.BaseIntervalTicks {
		t.Errorf("level 0 interval = %d, want %d", got, r.BaseIntervalTicks)
	}
	if got := r.IntervalForLevel(1); got != 51 {
		t.Errorf("level 1 interval = %d, want 51", got)
	}
	if got := r.IntervalForLevel(-3); got != r.BaseIntervalTicks {
		t.Errorf("negative level interval = %d, want %d", got, r.BaseIntervalTicks)
	}

	// Monotonically non-increasing, floored at the minimum
	prev := r.IntervalForLevel(0)
	for level := 1; level <= 40; level++ {
		got := r.IntervalForLevel(level)
		if got > prev {
			t.Errorf("interval rose from %d to %d at level %d", prev, got, level)
		}
		if got < r.MinIntervalTicks {
			t.Errorf("interval %d below floor %d at level %d", got, r.MinIntervalTicks, level)
		}
		prev = got
	}
	if got := r.IntervalForLevel(40); got != r.MinIntervalTicks {
		t.Errorf("deep level interval = %d, want floor %d", got, r.MinIntervalTicks)
	}
}

func TestLevelForLines(t *testing.T) {
	r := DefaultRules()

	cases := []struct {
		start, lines, want int
	}{
		{0, 0, 0},
		{0, 9, 0},
		{0, 10, 1},
		{0, 25, 2},
		{3, 10, 4},
		{5, 0, 5},
	}
	for _, tc := range cases {
		if got := r.LevelForLines(tc.start, tc.lines); got != tc.want {
			t.Errorf("LevelForLines(%d, %d) = %d, want %d", tc.start, tc.lines, got, tc.want)
		}
	}

	// Progression disabled
	r.LinesPerLevel = 0
	if got := r.LevelForLines(2, 100); got != 2 {
		t.Errorf("disabled progression: level = %d, want 2", got)
	}
}
