package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a predefined difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset converts a string to a DifficultyPreset.
// An empty string selects normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "", "normal":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Apply adjusts the spawn odds of cfg for the preset.
// Easy halves the chance of a 4; hard adds 0.15 to it. Normal leaves cfg as is.
func (p DifficultyPreset) Apply(cfg *Config) {
	adjust := func(prob float64) float64 { return prob }
	switch p {
	case DifficultyEasy:
		adjust = func(prob float64) float64 { return prob / 2 }
	case DifficultyHard:
		adjust = func(prob float64) float64 { return clampF(prob+0.15, 0, 1) }
	}

	cfg.Spawn.FourProbability = adjust(cfg.Spawn.FourProbability)
	for i := range cfg.Levels {
		cfg.Levels[i].FourProbability = adjust(cfg.Levels[i].FourProbability)
	}
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
