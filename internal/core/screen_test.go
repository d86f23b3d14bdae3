package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)
	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, want 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("GetCell(%d,%d) = %+v, want blank", x, y, c)
			}
		}
	}
}

func TestScreenSetWithColor(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetWithColor(3, 2, '┼', ColorBrightYellow)
	if c := s.GetCell(3, 2); c.Rune != '┼' || c.Color != ColorBrightYellow {
		t.Errorf("GetCell(3,2) = %+v", c)
	}
	s.Set(3, 2, 'x')
	if c := s.GetCell(3, 2); c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", c.Color)
	}

	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 5}} {
		s.Set(p[0], p[1], 'A')
		if s.Get(p[0], p[1]) != ' ' {
			t.Errorf("Get(%d,%d) out of bounds should be space", p[0], p[1])
		}
	}
}

func TestScreenDrawTextWithColor(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawTextWithColor(5, 0, "Moves", ColorCyan)
	if got := s.Row(0); got != "     Mov" {
		t.Errorf("Row(0) = %q", got)
	}
	if s.GetCell(6, 0).Color != ColorCyan {
		t.Error("text should carry its color")
	}
}

func TestScreenDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "─┼─")
	if got := s.Row(0); got != "    ─┼─    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBoxWithColor(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBoxWithColor(s.Bounds(), ColorMagenta)
	want := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("String() =\n%s", got)
	}
	if s.GetCell(0, 0).Color != ColorMagenta || s.GetCell(2, 2).Color != ColorDefault {
		t.Error("only the outline should be colored")
	}
}

func TestScreenDrawRectAndHLine(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawRect(NewRect(1, 1, 2, 2), '#')
	s.DrawHLine(0, 0, 10, '=')
	want := "====\n ## \n ## "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetWithColor(1, 1, 'a', ColorRed)
	s.Set(3, 0, 'b')
	s.Resize(2, 3)
	if s.Width() != 2 || s.Height() != 3 {
		t.Fatalf("size = %dx%d", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'a' || c.Color != ColorRed {
		t.Errorf("GetCell(1,1) = %+v, want kept", c)
	}
	if s.Row(2) != "  " {
		t.Errorf("new row should be blank, got %q", s.Row(2))
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(3, 3)
	s.Fill('X')
	s.Clear()
	if strings.Contains(s.String(), "X") {
		t.Error("Clear should blank the screen")
	}
}
