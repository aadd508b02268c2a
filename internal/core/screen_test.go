package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColor(t *testing.T) {
	s := NewScreen(10, 2)

	s.SetColor(1, 0, '#', ColorOrange)
	if got := s.GetCell(1, 0); got.Rune != '#' || got.Color != ColorOrange {
		t.Errorf("GetCell(1, 0) = %+v, expected '#' in orange", got)
	}

	// Plain Set resets the color
	s.Set(1, 0, '#')
	if got := s.GetCell(1, 0).Color; got != ColorDefault {
		t.Errorf("Set should reset color, got %d", got)
	}

	s.DrawTextColor(2, 1, "2048", ColorYellow)
	for x := 2; x < 6; x++ {
		if s.GetCell(x, 1).Color != ColorYellow {
			t.Errorf("DrawTextColor: cell %d not colored", x)
		}
	}
	if s.Row(1) != "  2048    " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), 'X')
	s.SetColor(3, 3, 'Y', ColorRed)

	s.Clear()

	for y := range 10 {
		for x := range 10 {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Errorf("After Clear, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), '#')

	for y := range 10 {
		for x := range 10 {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			want := ' '
			if inside {
				want = '#'
			}
			if s.Get(x, y) != want {
				t.Errorf("FillRect: at (%d, %d) got %q, expected %q", x, y, s.Get(x, y), want)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if s.Row(1) != "  Hello             " {
		t.Errorf("Row(1) = %q", s.Row(1))
	}

	// Clipped at right edge
	s.DrawText(17, 2, "World")
	if s.Row(2) != "                 Wor" {
		t.Errorf("Row(2) = %q", s.Row(2))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Test")

	// (20 - 4) / 2 = 8
	if !strings.HasPrefix(s.Row(2), "        Test") {
		t.Errorf("Centered text not at x=8: %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	tests := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
		{3, 1, '─'},
		{3, 4, '─'},
		{1, 2, '│'},
		{5, 3, '│'},
		{3, 2, ' '},
	}
	for _, tt := range tests {
		if got := s.Get(tt.x, tt.y); got != tt.want {
			t.Errorf("DrawBox: at (%d, %d) got %q, expected %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	want := "abc\nde "
	if s.String() != want {
		t.Errorf("String() = %q, expected %q", s.String(), want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetColor(1, 1, 'X', ColorBlue)
	s.Set(4, 4, 'Y')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize: got %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'X' || c.Color != ColorBlue {
		t.Errorf("Resize should preserve content, got %+v", c)
	}

	s.Resize(6, 6)
	if s.Get(1, 1) != 'X' {
		t.Error("Growing should preserve content")
	}
	if s.Get(5, 5) != ' ' {
		t.Error("New area should be blank")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "ab")

	if s.Row(0) != "ab  " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.Row(-1) != "    " || s.Row(5) != "    " {
		t.Error("Out of range Row should be blank")
	}
}
