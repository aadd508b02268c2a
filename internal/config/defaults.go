package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded 2048 configuration.
// It mirrors defaults/t2048.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Rows: 4,
			Cols: 4,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.4,
		},
		Display: DisplayConfig{
			HighlightTicks:    12,
			LevelClearedTicks: 120,
		},
		Levels: []LevelConfig{
			{Name: "Warm-up", Target: 128, FourProbability: 0.10},
			{Name: "Getting Started", Target: 256, FourProbability: 0.10},
			{Name: "Building Momentum", Target: 512, FourProbability: 0.10},
			{Name: "The Climb", Target: 1024, FourProbability: 0.10},
			{Name: "Classic 2048", Target: 2048, FourProbability: 0.10},
			{Name: "Beyond Limits", Target: 4096, FourProbability: 0.12},
			{Name: "Master Class", Target: 8192, FourProbability: 0.15},
			{Name: "Expert Challenge", Target: 8192, FourProbability: 0.18},
			{Name: "Grandmaster", Target: 8192, FourProbability: 0.20},
			{Name: "Ultimate Champion", Target: 8192, FourProbability: 0.25},
		},
	}
}
