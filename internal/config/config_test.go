package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTetrisCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tetris.yaml")
	data := []byte(`
board:
  width: 12
  height: 22
scoring:
  single: 50
  double: 150
  triple: 400
  tetris: 1500
  soft_drop_bonus: 2
gravity:
  base_interval_ticks: 30
  speed_factor: 0.9
  min_interval_ticks: 2
progression:
  lines_per_level: 5
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}
	if cfg.Board.Width != 12 || cfg.Board.Height != 22 {
		t.Errorf("board = %+v", cfg.Board)
	}
	if cfg.Scoring.Tetris != 1500 || cfg.Scoring.SoftDropBonus != 2 {
		t.Errorf("scoring = %+v", cfg.Scoring)
	}
	if cfg.Gravity.BaseIntervalTicks != 30 || cfg.Progression.LinesPerLevel != 5 {
		t.Errorf("gravity/progression = %+v %+v", cfg.Gravity, cfg.Progression)
	}
}

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	if _, err := LoadTetris(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestLoadTetrisSanitizesSparseConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tetris.yaml")
	// Only the board section; everything else must fall back to defaults
	if err := os.WriteFile(path, []byte("board:\n  width: 8\n  height: 16\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}
	def := DefaultTetrisConfig()
	if cfg.Board.Width != 8 || cfg.Board.Height != 16 {
		t.Errorf("board = %+v", cfg.Board)
	}
	if cfg.Scoring != def.Scoring {
		t.Errorf("scoring = %+v, want defaults", cfg.Scoring)
	}
	if cfg.Gravity != def.Gravity {
		t.Errorf("gravity = %+v, want defaults", cfg.Gravity)
	}
}

func TestDefaultTetrisConfig(t *testing.T) {
	cfg := DefaultTetrisConfig()
	if cfg.Board.Width != 10 || cfg.Board.Height != 20 {
		t.Errorf("default board = %+v", cfg.Board)
	}
	if cfg.Scoring.Single != 40 || cfg.Scoring.Tetris != 1200 {
		t.Errorf("default scoring = %+v", cfg.Scoring)
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	cases := []struct {
		preset DifficultyPreset
		check  func(t *testing.T, cfg TetrisConfig)
	}{
		{DifficultyEasy, func(t *testing.T, cfg TetrisConfig) {
			if cfg.Gravity.BaseIntervalTicks <= DefaultTetrisConfig().Gravity.BaseIntervalTicks {
				t.Error("easy should slow gravity down")
			}
		}},
		{DifficultyNormal, func(t *testing.T, cfg TetrisConfig) {
			if cfg != DefaultTetrisConfig() {
				t.Error("normal should not change the config")
			}
		}},
		{DifficultyHard, func(t *testing.T, cfg TetrisConfig) {
			if cfg.Gravity.BaseIntervalTicks >= DefaultTetrisConfig().Gravity.BaseIntervalTicks {
				t.Error("hard should speed gravity up")
			}
		}},
		{DifficultyFixed, func(t *testing.T, cfg TetrisConfig) {
			if cfg.Progression.LinesPerLevel != 0 {
				t.Error("fixed should disable leveling")
			}
		}},
	}

	for _, tc := range cases {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tc.preset)
			tc.check(t, cfg)
		})
	}
}

func TestIsFixedPreset(t *testing.T) {
	if !IsFixedPreset(DifficultyFixed) {
		t.Error("fixed preset not recognized")
	}
	if IsFixedPreset(DifficultyNormal) {
		t.Error("normal preset wrongly fixed")
	}
}
