package engine

import "fmt"

// DefaultFourProbability is the classic chance that a spawned tile is a 4.
const DefaultFourProbability = 0.4

// DefaultSize is the side length of the standard board.
const DefaultSize = 4

// NewCell describes a tile placed by the spawner.
type NewCell struct {
	Row   int
	Col   int
	Value int
}

// Spawn places a new tile in a uniformly chosen empty cell: a 2 with
// probability 0.6, otherwise a 4.
func Spawn(g Grid, rng Random) (Grid, NewCell, error) {
	return SpawnWithOdds(g, rng, DefaultFourProbability)
}

// SpawnWithOdds is Spawn with a caller-chosen probability of spawning a 4.
//
// Exactly two draws are made: Intn over the empty cells (row-major order)
// and then Float64 for the value. A grid with no empty cell is a
// precondition violation; callers check IsTerminal or a move's Moved flag
// first.
func SpawnWithOdds(g Grid, rng Random, fourProbability float64) (Grid, NewCell, error) {
	if err := g.Validate(); err != nil {
		return nil, NewCell{}, err
	}

	empty := g.EmptyCells()
	if len(empty) == 0 {
		return nil, NewCell{}, fmt.Errorf("%w: %dx%d grid is full", ErrNoEmptyCell, g.Rows(), g.Cols())
	}

	pos := empty[rng.Intn(len(empty))]
	value := 2
	if rng.Float64() < fourProbability {
		value = 4
	}

	out := g.Clone()
	out[pos.Row][pos.Col] = Cell{Value: value, State: StateNew}

	return out, NewCell{Row: pos.Row, Col: pos.Col, Value: value}, nil
}

// Initialize returns a fresh 4x4 grid holding two 2-tiles at distinct
// random positions.
func Initialize(rng Random) (Grid, error) {
	return InitializeSize(DefaultSize, DefaultSize, rng)
}

// InitializeSize is Initialize for an arbitrary rows x cols board.
func InitializeSize(rows, cols int, rng Random) (Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	if rows*cols < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridTooSmall, rows, cols)
	}

	g := NewGrid(rows, cols)
	for range 2 {
		empty := g.EmptyCells()
		pos := empty[rng.Intn(len(empty))]
		g[pos.Row][pos.Col] = Cell{Value: 2, State: StateNew}
	}
	return g, nil
}
