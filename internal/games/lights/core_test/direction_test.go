package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-lights/internal/games/lights/core"
)

func TestDirectionTurn(t *testing.T) {
	tests := []struct {
		d    core.Direction
		k    int
		want core.Direction
	}{
		{core.North, 0, core.North},
		{core.North, 1, core.East},
		{core.West, 1, core.North},
		{core.North, -1, core.West},
		{core.South, 2, core.North},
		{core.East, 7, core.North},
		{core.East, -6, core.West},
	}
	for _, tt := range tests {
		if got := tt.d.Turn(tt.k); got != tt.want {
			t.Errorf("%v.Turn(%d) = %v, want %v", tt.d, tt.k, got, tt.want)
		}
	}
}

func TestDirectionOppositeAndNeighbours(t *testing.T) {
	for _, d := range core.AllDirections {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() != %v", d, d)
		}
		if d.Next().Prev() != d {
			t.Errorf("%v.Next().Prev() != %v", d, d)
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v delta (%d,%d) does not cancel opposite (%d,%d)", d, dx, dy, ox, oy)
		}
	}
}

func TestPointStep(t *testing.T) {
	p := core.Pt(3, 3)
	tests := map[core.Direction]core.Point{
		core.North: core.Pt(3, 2),
		core.East:  core.Pt(4, 3),
		core.South: core.Pt(3, 4),
		core.West:  core.Pt(2, 3),
	}
	for d, want := range tests {
		if got := p.Step(d); got != want {
			t.Errorf("Step(%v) = %v, want %v", d, got, want)
		}
	}
}

func TestPointWrap(t *testing.T) {
	if got := core.Pt(-1, 4).Wrap(5, 4); got != core.Pt(4, 0) {
		t.Errorf("Wrap = %v, want (4,0)", got)
	}
}
