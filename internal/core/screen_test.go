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

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorGreen)
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}
	if c := s.GetCell(5, 5).Color; c != ColorGreen {
		t.Errorf("GetCell(5, 5).Color = %d, expected %d", c, ColorGreen)
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

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorRed)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("After Clear(), (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := strings.TrimRight(s.Row(1), " "); got != "  Hello" {
		t.Errorf("Row(1) = %q, expected %q", got, "  Hello")
	}

	// Clipped at the right edge
	s.DrawText(17, 2, "World")
	if got := s.Row(2)[17:]; got != "Wor" {
		t.Errorf("clipped text = %q, expected %q", got, "Wor")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(NewRect(0, 0, 5, 3))

	expected := "┌───┐\n│   │\n└───┘"
	if got := s.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("Resize() gave %dx%d, expected 20x5", s.Width(), s.Height())
	}
	if s.Get(19, 4) != ' ' {
		t.Error("Resized screen should be cleared")
	}
}
