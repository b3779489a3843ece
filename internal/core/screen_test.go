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

	// Check that it's initialized with blank sky cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Bg != ColorSky {
				t.Fatalf("New screen should be blank sky, got %+v at (%d, %d)", c, x, y)
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
	s.SetCell(0, -1, Cell{Rune: 'A'})
	s.SetCell(0, 100, Cell{Rune: 'A'})

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenPaint(t *testing.T) {
	s := NewScreen(10, 10)
	s.Paint(2, 2, 5, 5, ColorSaddleBrown)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y).Bg != ColorSaddleBrown {
				t.Errorf("Paint: expected brown at (%d, %d)", x, y)
			}
		}
	}
	if s.GetCell(1, 1).Bg != ColorSky || s.GetCell(5, 5).Bg != ColorSky {
		t.Error("Paint should not affect outside area")
	}

	// Clipped ranges must not panic
	s.Paint(-5, -5, 50, 50, ColorBlack)
	if s.GetCell(9, 9).Bg != ColorBlack {
		t.Error("Paint should clip to the screen and fill it")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.Paint(0, 0, 10, 10, ColorRed)
	s.DrawText(0, 0, "hello", ColorBlack)

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Bg != ColorSky {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawTextKeepsBackground(t *testing.T) {
	s := NewScreen(20, 5)
	s.Paint(0, 1, 20, 2, ColorForestGreen)
	s.DrawText(2, 1, "Hello", ColorRed)

	for i, ch := range "Hello" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, c.Rune)
		}
		if c.Fg != ColorRed || c.Bg != ColorForestGreen {
			t.Errorf("DrawText: wrong colors at (%d, 1): %+v", 2+i, c)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorBlack)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorBlack)
	s.DrawText(0, 1, "BBBBB", ColorBlack)
	s.DrawText(0, 2, "CCCCC", ColorBlack)

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorBlack)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if len(s.Row(7)) != 15 {
		t.Errorf("New rows should span the new width, got %d", len(s.Row(7)))
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)
	if s.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}
