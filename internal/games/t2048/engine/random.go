package engine

import "math/rand"

// Random is the source of randomness for spawning.
// *rand.Rand satisfies it; tests substitute a scripted source.
type Random interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// NewRandom returns a deterministic source seeded with seed.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}
