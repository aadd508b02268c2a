// Package config provides YAML-based game configuration loading and
// difficulty presets for the 2048 game.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for the 2048 game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Display DisplayConfig `yaml:"display"`
	Levels  []LevelConfig `yaml:"levels"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SpawnConfig defines the probability of spawning a 4 instead of a 2 in
// endless mode. Campaign levels carry their own odds.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"`
}

// DisplayConfig defines timing of visual effects, in simulation ticks.
type DisplayConfig struct {
	HighlightTicks    int `yaml:"highlight_ticks"`     // how long new/merged tiles stay highlighted
	LevelClearedTicks int `yaml:"level_cleared_ticks"` // pause before advancing to the next level
}

// LevelConfig defines a campaign level.
type LevelConfig struct {
	Name            string  `yaml:"name"`
	Target          int     `yaml:"target"`
	FourProbability float64 `yaml:"four_probability"`
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Rows < 1 || c.Board.Cols < 1 {
		errs = append(errs, fmt.Errorf("board must be at least 1x1, got %dx%d", c.Board.Rows, c.Board.Cols))
	} else if c.Board.Rows*c.Board.Cols < 2 {
		errs = append(errs, fmt.Errorf("board needs room for two starting tiles, got %dx%d", c.Board.Rows, c.Board.Cols))
	}
	if !validProbability(c.Spawn.FourProbability) {
		errs = append(errs, fmt.Errorf("spawn.four_probability out of range: %v", c.Spawn.FourProbability))
	}
	if c.Display.HighlightTicks < 0 || c.Display.LevelClearedTicks < 0 {
		errs = append(errs, errors.New("display ticks must not be negative"))
	}
	if len(c.Levels) == 0 {
		errs = append(errs, errors.New("at least one campaign level is required"))
	}
	for i, l := range c.Levels {
		if l.Target < 4 || l.Target&(l.Target-1) != 0 {
			errs = append(errs, fmt.Errorf("level %d: target %d is not a power of two >= 4", i+1, l.Target))
		}
		if !validProbability(l.FourProbability) {
			errs = append(errs, fmt.Errorf("level %d: four_probability out of range: %v", i+1, l.FourProbability))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func validProbability(p float64) bool {
	return p >= 0 && p <= 1
}
