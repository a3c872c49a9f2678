package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	var cfg TetrisConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return sanitize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return sanitize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tetris.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return sanitize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return sanitize(cfg), nil
}

// sanitize replaces unusable values with defaults so a sparse or broken
// user config cannot produce a degenerate game.
func sanitize(cfg TetrisConfig) TetrisConfig {
	def := DefaultTetrisConfig()
	if cfg.Board.Width < 4 {
		cfg.Board.Width = def.Board.Width
	}
	if cfg.Board.Height < 4 {
		cfg.Board.Height = def.Board.Height
	}
	if cfg.Scoring.Single <= 0 {
		cfg.Scoring = def.Scoring
	}
	if cfg.Gravity.BaseIntervalTicks <= 0 {
		cfg.Gravity.BaseIntervalTicks = def.Gravity.BaseIntervalTicks
	}
	if cfg.Gravity.SpeedFactor <= 0 || cfg.Gravity.SpeedFactor > 1 {
		cfg.Gravity.SpeedFactor = def.Gravity.SpeedFactor
	}
	if cfg.Gravity.MinIntervalTicks <= 0 {
		cfg.Gravity.MinIntervalTicks = def.Gravity.MinIntervalTicks
	}
	if cfg.Progression.LinesPerLevel < 0 {
		cfg.Progression.LinesPerLevel = def.Progression.LinesPerLevel
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}
