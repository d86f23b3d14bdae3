package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 2)
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectInsetAndCentered(t *testing.T) {
	r := NewRect(0, 0, 10, 6)
	if got := r.Inset(1); got != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v", got)
	}
	if got := r.Inset(5); got.W != 0 || got.H != 0 {
		t.Errorf("Inset(5) = %+v, want empty", got)
	}
	if got := r.Centered(4, 2); got != NewRect(3, 2, 4, 2) {
		t.Errorf("Centered = %+v", got)
	}
	if x, y := r.Center(); x != 5 || y != 3 {
		t.Errorf("Center() = (%d,%d)", x, y)
	}
}

func TestClampAndWrap(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"clamp low", Clamp(-3, 0, 4), 0},
		{"clamp high", Clamp(9, 0, 4), 4},
		{"clamp mid", Clamp(2, 0, 4), 2},
		{"wrap negative", Wrap(-1, 5), 4},
		{"wrap over", Wrap(7, 5), 2},
		{"wrap zero size", Wrap(3, 0), 0},
		{"min", Min(3, -2), -2},
		{"max", Max(3, -2), 3},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}
