// Package t2048 implements the classic 2048 puzzle game with campaign and endless modes.
package t2048

import (
	"sync"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Level defines a campaign level with a target tile.
type Level struct {
	ID              int
	Name            string
	Target          int     // Target tile value to reach
	FourProbability float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
}

var (
	settingsMu sync.RWMutex
	gameConfig = config.DefaultConfig()
	observer   Observer
)

// SetConfig replaces the configuration used by games created afterwards.
// The config is expected to be validated by the caller (config.Load does this).
func SetConfig(cfg config.Config) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	gameConfig = cfg
}

// CurrentConfig returns the configuration new games are created with.
func CurrentConfig() config.Config {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return gameConfig
}

// LevelsFromConfig builds the campaign from a configuration.
func LevelsFromConfig(cfg config.Config) []Level {
	levels := make([]Level, len(cfg.Levels))
	for i, l := range cfg.Levels {
		levels[i] = Level{
			ID:              i + 1,
			Name:            l.Name,
			Target:          l.Target,
			FourProbability: l.FourProbability,
		}
	}
	return levels
}

// Levels returns the campaign levels of the current configuration.
func Levels() []Level {
	return LevelsFromConfig(CurrentConfig())
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(CurrentConfig().Levels)
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	levels := Levels()
	names := make([]string, len(levels))
	for i, lvl := range levels {
		names[i] = lvl.Name
	}
	return names
}
