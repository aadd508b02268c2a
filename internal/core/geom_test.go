package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},
		{14, 14, true},
		{12, 12, true},
		{15, 10, false}, // right edge is exclusive
		{10, 15, false}, // bottom edge is exclusive
		{9, 10, false},
		{10, 9, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
	cx, cy := r.Center()
	if cx != 25 || cy != 40 {
		t.Errorf("Center() = (%d, %d), expected (25, 40)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionRight.String() != "Right" {
		t.Error("directional actions should have names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("out of range action should be Unknown")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)

	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has should report only set actions")
	}

	c := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove actions")
	}
	if !c.Has(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	zero.Set(ActionUp)
	if !zero.Has(ActionUp) {
		t.Error("Set on zero-value frame should allocate")
	}
}
