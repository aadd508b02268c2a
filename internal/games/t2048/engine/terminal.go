package engine

// MaxValue returns the largest tile value, or 0 for an empty grid.
func MaxValue(g Grid) int {
	maxVal := 0
	for _, row := range g {
		for _, cell := range row {
			if cell.Value > maxVal {
				maxVal = cell.Value
			}
		}
	}
	return maxVal
}

// HasEmptyCell reports whether any cell is empty.
func HasEmptyCell(g Grid) bool {
	for _, row := range g {
		for _, cell := range row {
			if cell.IsEmpty() {
				return true
			}
		}
	}
	return false
}

// HasAdjacentPair reports whether two horizontally or vertically
// neighbouring tiles share a value.
func HasAdjacentPair(g Grid) bool {
	for r, row := range g {
		for c, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			// Check right neighbor
			if c+1 < len(row) && row[c+1].Value == cell.Value {
				return true
			}
			// Check bottom neighbor
			if r+1 < len(g) && c < len(g[r+1]) && g[r+1][c].Value == cell.Value {
				return true
			}
		}
	}
	return false
}

// IsTerminal reports whether no move is possible: the grid is full and no
// adjacent pair can merge.
//
// g must pass Validate. A grid without cells has nothing empty and nothing
// to merge, so it reports true.
func IsTerminal(g Grid) bool {
	return !HasEmptyCell(g) && !HasAdjacentPair(g)
}
