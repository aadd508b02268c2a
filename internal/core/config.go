package core

import "time"

// Fallbacks for a RuntimeConfig field left at zero.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is what the platform tells a game on Reset: the terminal
// size, the simulation rate and the seed of the game's random source.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Ticks per second
	Seed     int64 // Same seed, same tile sequence
}

// WithDefaults fills every zero field. A zero seed is replaced by the
// current time, so two unseeded games differ.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// GameState is the part of a game the platform acts on after each tick.
type GameState struct {
	Score    int
	GameOver bool // Lost or won; the platform records the score once
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
