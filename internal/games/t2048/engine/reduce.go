package engine

// RowResult is the outcome of sliding one row to the left.
type RowResult struct {
	Row   []Cell
	Moved bool // some position changed value
	Score int  // sum of merged tile values
}

// ReduceRowLeft slides a row to the left and merges equal neighbours.
//
// Empty cells are skipped and do not break adjacency. A tile that was just
// produced by a merge is emitted immediately and never compared again, so
// [2 2 2 _] becomes [4 2 _ _]. Every surviving tile has its state reset to
// StateNormal, merged tiles are StateMerged.
//
// Moved compares values only: a row whose tiles merely lose their "new"
// state has not moved.
func ReduceRowLeft(row []Cell) RowResult {
	out := make([]Cell, 0, len(row))
	score := 0

	var pending Cell
	hasPending := false

	for _, cell := range row {
		if cell.IsEmpty() {
			continue
		}
		if !hasPending {
			pending = cell
			hasPending = true
			continue
		}
		if cell.Value == pending.Value {
			merged := Cell{Value: pending.Value * 2, State: StateMerged}
			out = append(out, merged)
			score += merged.Value
			hasPending = false
			continue
		}
		out = append(out, Cell{Value: pending.Value, State: StateNormal})
		pending = cell
	}
	if hasPending {
		out = append(out, Cell{Value: pending.Value, State: StateNormal})
	}

	for len(out) < len(row) {
		out = append(out, Cell{})
	}

	moved := false
	for i := range row {
		if row[i].Value != out[i].Value {
			moved = true
			break
		}
	}

	return RowResult{Row: out, Moved: moved, Score: score}
}
