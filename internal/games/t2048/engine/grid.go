// Package engine implements the 2048 grid transform: rotation-based direction
// handling, the left slide/merge reduction, scoring, tile spawning and
// terminal-state detection.
//
// Every operation is a pure function. Grids passed in are never modified;
// each call builds and returns a new grid.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// CellState is presentational metadata carried by a tile.
// It never influences a transform; reduction resets it to StateNormal.
type CellState uint8

const (
	StateNormal CellState = iota
	StateNew              // spawned this turn
	StateMerged           // produced by a merge this move
)

// String returns the state name.
func (s CellState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateNew:
		return "new"
	case StateMerged:
		return "merged"
	default:
		return "unknown"
	}
}

// Cell is a single grid position. A zero Value means the cell is empty.
type Cell struct {
	Value int
	State CellState
}

// Tile returns a normal tile with the given value.
func Tile(value int) Cell {
	return Cell{Value: value}
}

// IsEmpty reports whether the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return c.Value == 0
}

// Position addresses a cell by row and column.
type Position struct {
	Row int
	Col int
}

// Grid is a rectangular arrangement of cells, indexed [row][col].
type Grid [][]Cell

// NewGrid creates an empty rows x cols grid.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]Cell, cols)
	}
	return g
}

// FromValues builds a grid of normal tiles from raw values (0 = empty).
// The result is not validated; rows keep whatever lengths they were given.
func FromValues(values [][]int) Grid {
	g := make(Grid, len(values))
	for r, row := range values {
		g[r] = make([]Cell, len(row))
		for c, v := range row {
			g[r][c] = Tile(v)
		}
	}
	return g
}

// Validate checks the structural invariant: at least one row, at least one
// column, and every row as long as the first.
func (g Grid) Validate() error {
	if len(g) == 0 || len(g[0]) == 0 {
		return ErrEmptyGrid
	}
	want := len(g[0])
	for r, row := range g {
		if len(row) != want {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotRectangular, r, len(row), want)
		}
	}
	return nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns (length of the first row).
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = make([]Cell, len(row))
		copy(out[r], row)
	}
	return out
}

// Values returns the tile values, dropping cell state.
func (g Grid) Values() [][]int {
	out := make([][]int, len(g))
	for r, row := range g {
		out[r] = make([]int, len(row))
		for c, cell := range row {
			out[r][c] = cell.Value
		}
	}
	return out
}

// EqualValues reports whether two grids have the same shape and values.
// Cell state is ignored.
func (g Grid) EqualValues(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c].Value != other[r][c].Value {
				return false
			}
		}
	}
	return true
}

// EmptyCells lists the empty positions in row-major order.
func (g Grid) EmptyCells() []Position {
	var out []Position
	for r, row := range g {
		for c, cell := range row {
			if cell.IsEmpty() {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// String renders the values row by row, "." for empty cells.
func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, cell := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if cell.IsEmpty() {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(strconv.Itoa(cell.Value))
		}
	}
	return sb.String()
}
