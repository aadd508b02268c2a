package engine_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

func row(values ...int) []engine.Cell {
	out := make([]engine.Cell, len(values))
	for i, v := range values {
		out[i] = engine.Tile(v)
	}
	return out
}

func rowValues(cells []engine.Cell) []int {
	out := make([]int, len(cells))
	for i, c := range cells {
		out[i] = c.Value
	}
	return out
}

func TestReduceRowLeft(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		moved    bool
		score    int
	}{
		{"pair then different", []int{2, 2, 4, 0}, []int{4, 4, 0, 0}, true, 4},
		{"gap collapses before merge", []int{2, 0, 2, 2}, []int{4, 2, 0, 0}, true, 4},
		{"empty row", []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, false, 0},
		{"run of three", []int{2, 2, 2, 0}, []int{4, 2, 0, 0}, true, 4},
		{"two pairs", []int{4, 4, 4, 4}, []int{8, 8, 0, 0}, true, 16},
		{"shift without merge", []int{0, 2, 0, 4}, []int{2, 4, 0, 0}, true, 0},
		{"already packed", []int{4, 2, 0, 0}, []int{4, 2, 0, 0}, false, 0},
		{"no merge possible", []int{2, 4, 8, 16}, []int{2, 4, 8, 16}, false, 0},
		{"merged tile not re-merged", []int{4, 4, 8, 0}, []int{8, 8, 0, 0}, true, 8},
		{"single cell", []int{8}, []int{8}, false, 0},
		{"wide row", []int{2, 0, 0, 2, 0, 4, 4, 8}, []int{4, 8, 8, 0, 0, 0, 0, 0}, true, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := engine.ReduceRowLeft(row(tt.input...))
			if diff := cmp.Diff(tt.expected, rowValues(res.Row)); diff != "" {
				t.Errorf("ReduceRowLeft(%v) mismatch (-want +got):\n%s", tt.input, diff)
			}
			if res.Moved != tt.moved {
				t.Errorf("ReduceRowLeft(%v) moved = %v, want %v", tt.input, res.Moved, tt.moved)
			}
			if res.Score != tt.score {
				t.Errorf("ReduceRowLeft(%v) score = %d, want %d", tt.input, res.Score, tt.score)
			}
		})
	}
}

func TestReduceRowLeftStates(t *testing.T) {
	input := []engine.Cell{
		{Value: 2, State: engine.StateNew},
		{Value: 2, State: engine.StateNormal},
		{Value: 8, State: engine.StateMerged},
		{},
	}

	res := engine.ReduceRowLeft(input)

	want := []engine.Cell{
		{Value: 4, State: engine.StateMerged},
		{Value: 8, State: engine.StateNormal},
		{},
		{},
	}
	if diff := cmp.Diff(want, res.Row); diff != "" {
		t.Errorf("ReduceRowLeft states mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceRowLeftStateOnlyChangeIsNotAMove(t *testing.T) {
	input := []engine.Cell{
		{Value: 2, State: engine.StateNew},
		{Value: 4, State: engine.StateMerged},
		{},
	}

	res := engine.ReduceRowLeft(input)

	if res.Moved {
		t.Error("clearing new/merged state alone should not count as a move")
	}
	for i, c := range res.Row[:2] {
		if c.State != engine.StateNormal {
			t.Errorf("cell %d state = %v, want normal", i, c.State)
		}
	}
}

func TestReduceRowLeftDoesNotMutateInput(t *testing.T) {
	input := row(2, 2, 0, 4)
	before := rowValues(input)

	engine.ReduceRowLeft(input)

	if diff := cmp.Diff(before, rowValues(input)); diff != "" {
		t.Errorf("input row was modified (-before +after):\n%s", diff)
	}
}
