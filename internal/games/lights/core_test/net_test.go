package core_test

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-lights/internal/games/lights/core"
)

// Fork bits: N=1 E=2 S=4 W=8.
var snakeLayout = [][]core.Fork{
	{2, 10, 10, 10, 12},
	{6, 12, 6, 12, 5},
	{5, 5, 5, 5, 5},
	{1, 3, 9, 3, 9},
}

func TestNewNetClampsSize(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{5, 4, 5, 4},
		{0, 1, core.MinWidth, core.MinHeight},
		{500, 101, core.MaxWidth, core.MaxHeight},
	}
	for _, tt := range tests {
		n := core.NewNet(tt.w, tt.h, core.Cell{}, &scriptedSource{})
		if w, h := n.Size(); w != tt.wantW || h != tt.wantH {
			t.Errorf("NewNet(%d,%d) size = %dx%d, want %dx%d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestNetResize(t *testing.T) {
	n := core.NewNet(5, 4, core.Cell{}, &scriptedSource{})
	if n.Resize(5, 4, core.Cell{}) {
		t.Error("Resize to same size should report no change")
	}
	if !n.Resize(1, 4, core.Cell{}) {
		t.Error("Resize(1,4) clamps to 2x4 and should report a change")
	}
	if w, _ := n.Size(); w != 2 {
		t.Errorf("width = %d, want 2", w)
	}
	fill := core.Cell{Fork: core.NewFork(core.North)}
	if !n.Resize(3, 3, fill) {
		t.Error("Resize(3,3) should report a change")
	}
	c, ok := n.CellAt(core.Pt(2, 2))
	if !ok || c != fill {
		t.Errorf("CellAt(2,2) = %v,%v, want fill cell", c, ok)
	}
}

func TestNetCellAtOutOfBounds(t *testing.T) {
	n := core.NewNet(3, 3, core.Cell{Fork: 15}, &scriptedSource{})
	for _, p := range []core.Point{core.Pt(-1, 0), core.Pt(3, 0), core.Pt(0, 3)} {
		if c, ok := n.CellAt(p); ok || c != (core.Cell{}) {
			t.Errorf("CellAt(%v) = %v,%v, want zero,false", p, c, ok)
		}
	}
}

func TestGenerateGoldenLayout(t *testing.T) {
	src := &scriptedSource{}
	n := core.NewNet(5, 4, core.Cell{}, src)
	if !n.Generate(false) {
		t.Fatal("Generate should plug every cell")
	}
	if got := forksOf(n); !reflect.DeepEqual(got, snakeLayout) {
		t.Errorf("layout = %v, want %v", got, snakeLayout)
	}

	src.reset(0, 1, 2, 3)
	turned, back := n.Disassemble()
	if turned != 20 || back != 14 {
		t.Errorf("Disassemble() = (%d,%d), want (20,14)", turned, back)
	}
}

func TestGenerateSpanningTree(t *testing.T) {
	sizes := [][2]int{{2, 2}, {5, 4}, {9, 9}, {17, 3}, {40, 25}}
	for _, wrap := range []bool{false, true} {
		for i, sz := range sizes {
			n := core.NewNet(sz[0], sz[1], core.Cell{}, rand.New(rand.NewSource(int64(i+1))))
			if !n.Generate(wrap) {
				t.Fatalf("%dx%d wrap=%v: Generate reported unconnected", sz[0], sz[1], wrap)
			}
			if got, want := edgeCount(n), n.Area()-1; got != want {
				t.Errorf("%dx%d wrap=%v: edges = %d, want %d", sz[0], sz[1], wrap, got, want)
			}
			if !n.IsFullyPlugged() {
				t.Errorf("%dx%d wrap=%v: not fully plugged", sz[0], sz[1], wrap)
			}
			// Connectivity must hold from any power position.
			if !n.Update(core.Pt(sz[0]-1, sz[1]-1), wrap) {
				t.Errorf("%dx%d wrap=%v: Update after Generate not solved", sz[0], sz[1], wrap)
			}
		}
	}
}

func TestGenerateNoWrapHasNoBorderExits(t *testing.T) {
	n := core.NewNet(6, 5, core.Cell{}, rand.New(rand.NewSource(3)))
	n.Generate(false)
	n.ForEach(func(p core.Point, c core.Cell) {
		for _, d := range c.Fork.Directions() {
			if !n.InBounds(p.Step(d)) {
				t.Errorf("cell %v opens %v off the grid", p, d)
			}
		}
	})
}

func TestUpdateOutOfBoundsPower(t *testing.T) {
	n := core.NewNet(4, 4, core.Cell{}, rand.New(rand.NewSource(1)))
	n.Generate(false)
	if n.Update(core.Pt(10, 10), false) {
		t.Error("Update from outside the grid should not be solved")
	}
	if n.PluggedCount() != 0 {
		t.Errorf("PluggedCount() = %d, want 0", n.PluggedCount())
	}
}

func TestUpdateDetectsBrokenEdge(t *testing.T) {
	n := core.NewNet(5, 4, core.Cell{}, &scriptedSource{})
	n.Generate(false)
	// (4,0) joins the top row to the right column; turning it cuts the snake.
	n.RotateCell(core.Pt(4, 0), 1)
	if n.Update(core.Pt(0, 0), false) {
		t.Error("Update should fail after breaking the path")
	}
	if got := n.PluggedCount(); got != 5 {
		t.Errorf("PluggedCount() = %d, want 5", got)
	}
	if n.IsFullyPlugged() {
		t.Error("IsFullyPlugged should be false")
	}
}

func minimalCost(from, to core.Fork) (int, bool) {
	best := -1
	for k := 0; k < 4; k++ {
		if from.Rotated(k) != to {
			continue
		}
		cost := k
		if 4-k < cost {
			cost = 4 - k
		}
		if best < 0 || cost < best {
			best = cost
		}
	}
	return best, best >= 0
}

func correct(t *testing.T, n *core.Net, solved [][]core.Fork) int {
	t.Helper()
	total := 0
	n.ForEach(func(p core.Point, c core.Cell) {
		cost, ok := minimalCost(c.Fork, solved[p.Y][p.X])
		if !ok {
			t.Fatalf("cell %v fork %v is not a rotation of %v", p, c.Fork, solved[p.Y][p.X])
		}
		total += cost
		n.SetFork(p, solved[p.Y][p.X])
	})
	return total
}

func TestDisassembleBackStepsAreMinimal(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		n := core.NewNet(9, 9, core.Cell{}, rand.New(rand.NewSource(seed)))
		n.Generate(seed%2 == 0)
		solved := forksOf(n)
		_, back := n.Disassemble()
		if got := correct(t, n, solved); got != back {
			t.Errorf("seed %d: corrective steps = %d, backSteps = %d", seed, got, back)
		}
		if !n.Update(core.Pt(4, 4), seed%2 == 0) {
			t.Errorf("seed %d: not solved after corrections", seed)
		}
	}
}

func TestDisassembleStraightHalfTurnAndThreeQuarter(t *testing.T) {
	tests := []struct {
		name     string
		k        int
		wantBack int
	}{
		// Nine straight cells cost nothing after a half turn; the other 11 cost 2 each.
		{"half turn", 2, 22},
		{"three quarter", 3, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scriptedSource{}
			n := core.NewNet(5, 4, core.Cell{}, src)
			n.Generate(false)
			src.reset(tt.k)
			turned, back := n.Disassemble()
			if turned != 20 || back != tt.wantBack {
				t.Errorf("Disassemble() = (%d,%d), want (20,%d)", turned, back, tt.wantBack)
			}
			if got := correct(t, n, snakeLayout); got != back {
				t.Errorf("corrective steps = %d, want %d", got, back)
			}
			if !n.Update(core.Pt(2, 1), false) {
				t.Error("not solved after corrections")
			}
		})
	}
}

func TestDisassembleSkipsEmptyAndFull(t *testing.T) {
	n := core.NewNet(3, 3, core.Cell{Fork: 15}, &scriptedSource{vals: []int{1}})
	n.SetFork(core.Pt(0, 0), 0)
	turned, back := n.Disassemble()
	if turned != 0 || back != 0 {
		t.Errorf("Disassemble() = (%d,%d), want (0,0)", turned, back)
	}
}

func TestSeededDeterminism(t *testing.T) {
	run := func() ([][]core.Fork, int, int) {
		n := core.NewNet(9, 9, core.Cell{}, rand.New(rand.NewSource(42)))
		n.Generate(true)
		turned, back := n.Disassemble()
		return forksOf(n), turned, back
	}
	l1, t1, b1 := run()
	l2, t2, b2 := run()
	if !reflect.DeepEqual(l1, l2) || t1 != t2 || b1 != b2 {
		t.Error("same seed produced different results")
	}
}

func TestSnapshotRestore(t *testing.T) {
	n := core.NewNet(5, 4, core.Cell{}, &scriptedSource{})
	n.Generate(false)
	snap := n.Snapshot()
	n.RotateCell(core.Pt(1, 1), 1)
	if !n.Restore(snap) {
		t.Fatal("Restore should succeed for matching size")
	}
	if got := forksOf(n); !reflect.DeepEqual(got, snakeLayout) {
		t.Errorf("restored layout = %v", got)
	}
	n.Resize(6, 6, core.Cell{})
	if n.Restore(snap) {
		t.Error("Restore should fail after resize")
	}
}
