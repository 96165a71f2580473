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

	// Check that it's initialized with uncolored spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || !c.Bg.IsZero() {
				t.Errorf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
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
	s.SetBg(0, -1, ColorRed)
	s.SetFg(0, 100, ColorRed)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColorsSurviveRuneWrites(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetBg(1, 1, ColorCyan)
	s.Set(1, 1, '#')

	c := s.GetCell(1, 1)
	if c.Bg != ColorCyan {
		t.Errorf("Bg = %v, expected %v", c.Bg, ColorCyan)
	}
	if c.Rune != '#' {
		t.Errorf("Rune = %q, expected '#'", c.Rune)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X')
			s.SetBg(x, y, ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || !c.Bg.IsZero() {
				t.Fatalf("Clear() left %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'X')

	s.Resize(20, 10)

	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("Resize() dims = %dx%d, expected 20x10", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Resize() should preserve content")
	}

	s.Resize(2, 2)
	if s.Get(2, 2) != ' ' {
		t.Error("shrunk screen should drop content outside bounds")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "Hello")

	if got := strings.TrimRight(s.Row(1), " "); got != "  Hello" {
		t.Errorf("Row(1) = %q, expected %q", got, "  Hello")
	}

	s.DrawTextCentered(0, "abcd")
	if got := s.Row(0)[8:12]; got != "abcd" {
		t.Errorf("centered text = %q, expected %q", got, "abcd")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q, expected %q", got, "abc\ndef")
	}
}

func TestCanvasFitsSquareIntoScreen(t *testing.T) {
	s := NewScreen(100, 30)
	c := NewCanvas(s, 100, 2)

	x, y, w, h := c.Cells()
	if h != 28 || w != 56 {
		t.Errorf("canvas = %dx%d cells, expected 56x28", w, h)
	}
	if x != 22 || y != 0 {
		t.Errorf("canvas origin = (%d, %d), expected (22, 0)", x, y)
	}
}

func TestCanvasFillPolygon(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewCanvas(s, 100, 0)

	// Left half of the logical square
	c.FillPolygon(NewRect(0, 0, 50, 100).Outline(), ColorRed)

	x, y, w, h := c.Cells()
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			got := s.GetCell(x+cx, y+cy).Bg
			want := cx < w/2
			if (got == ColorRed) != want {
				t.Fatalf("cell (%d, %d) red=%v, expected %v", cx, cy, got == ColorRed, want)
			}
		}
	}
}

func TestCanvasClip(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewCanvas(s, 100, 0)

	c.SetClip(NewRect(0, 0, 100, 50))
	c.FillPolygon(NewRect(0, 0, 100, 100).Outline(), ColorGreen)
	c.ClearClip()

	x, y, w, h := c.Cells()
	if s.GetCell(x, y).Bg != ColorGreen {
		t.Error("top cell should be filled inside the clip")
	}
	if !s.GetCell(x+w-1, y+h-1).Bg.IsZero() {
		t.Error("bottom cell should be clipped")
	}

	c.FillCircle(V(50, 90), 8, ColorCyan)
	if s.GetCell(x+w/2, y+h-1).Bg != ColorCyan {
		t.Error("fill after ClearClip should reach the bottom")
	}
}

func TestCanvasSkipsZeroColor(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewCanvas(s, 100, 0)
	c.FillPolygon(NewRect(0, 0, 100, 100).Outline(), ColorNone)

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if !s.GetCell(x, y).Bg.IsZero() {
				t.Fatalf("zero color should not paint, found fill at (%d, %d)", x, y)
			}
		}
	}
}
