package engine

import "fmt"

// Rotate turns the grid counter-clockwise by degrees, which must be a
// multiple of 90. Angles are taken mod 360, so 360 behaves like 0 and -90
// like 270. An R x C grid becomes C x R for quarter turns.
//
// The result never shares row storage with the input.
func Rotate(g Grid, degrees int) (Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if degrees%90 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRotation, degrees)
	}
	return rotate(g, degrees), nil
}

// rotate assumes g is valid and degrees is a multiple of 90.
func rotate(g Grid, degrees int) Grid {
	rows, cols := g.Rows(), g.Cols()

	switch normalizeAngle(degrees) {
	case 90:
		out := NewGrid(cols, rows)
		for r := range rows {
			for c := range cols {
				out[c][r] = g[r][cols-1-c]
			}
		}
		return out
	case 180:
		out := NewGrid(rows, cols)
		for r := range rows {
			for c := range cols {
				out[r][c] = g[rows-1-r][cols-1-c]
			}
		}
		return out
	case 270:
		out := NewGrid(cols, rows)
		for r := range rows {
			for c := range cols {
				out[c][r] = g[rows-1-r][c]
			}
		}
		return out
	default:
		return g.Clone()
	}
}

// normalizeAngle maps any angle into [0, 360).
func normalizeAngle(degrees int) int {
	d := degrees % 360
	if d < 0 {
		d += 360
	}
	return d
}
