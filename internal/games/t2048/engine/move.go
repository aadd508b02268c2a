package engine

import (
	"fmt"
	"strings"
)

// Direction selects which way tiles slide.
type Direction int

const (
	DirUp Direction = iota
	DirLeft
	DirRight
	DirDown
)

// Directions returns all four directions.
func Directions() []Direction {
	return []Direction{DirUp, DirLeft, DirRight, DirDown}
}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection parses "up", "left", "right" or "down" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions() {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// ForwardAngle is the counter-clockwise rotation that turns a move in this
// direction into a move to the left.
func (d Direction) ForwardAngle() int {
	switch d {
	case DirUp:
		return 90
	case DirRight:
		return 180
	case DirDown:
		return 270
	default:
		return 0
	}
}

// InverseAngle undoes ForwardAngle.
func (d Direction) InverseAngle() int {
	return normalizeAngle(360 - d.ForwardAngle())
}

func (d Direction) valid() bool {
	return d >= DirUp && d <= DirDown
}

// MoveResult is the outcome of one directional move.
type MoveResult struct {
	Grid  Grid
	Moved bool // any cell changed value
	Score int  // points earned from merges during this move
}

// Move slides every tile of g in the given direction.
//
// The grid is rotated so that the move becomes a slide to the left, each row
// is reduced independently, and the result is rotated back. For a given grid
// and direction the result is fully determined.
func Move(g Grid, dir Direction) (MoveResult, error) {
	if err := g.Validate(); err != nil {
		return MoveResult{}, err
	}
	if !dir.valid() {
		return MoveResult{}, fmt.Errorf("%w: %d", ErrUnknownDirection, int(dir))
	}

	rotated := rotate(g, dir.ForwardAngle())

	reduced := make(Grid, len(rotated))
	moved := false
	score := 0
	for r, row := range rotated {
		res := ReduceRowLeft(row)
		reduced[r] = res.Row
		moved = moved || res.Moved
		score += res.Score
	}

	return MoveResult{
		Grid:  rotate(reduced, dir.InverseAngle()),
		Moved: moved,
		Score: score,
	}, nil
}

// CanMove reports whether a move in dir would change the grid.
func CanMove(g Grid, dir Direction) bool {
	res, err := Move(g, dir)
	return err == nil && res.Moved
}
