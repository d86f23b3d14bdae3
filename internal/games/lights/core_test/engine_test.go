package core_test

import (
	"bytes"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lights/internal/games/lights/core"
)

func smallLevel() core.LevelData {
	return core.DefaultLevels()[0]
}

func newSeeded(level core.LevelData, seed int64) *core.Engine {
	return core.NewEngine(level, core.WithSource(rand.New(rand.NewSource(seed))))
}

func TestNewEngineStartsUnsolved(t *testing.T) {
	for _, level := range core.DefaultLevels() {
		e := newSeeded(level, 99)
		if e.IsSolved() {
			t.Errorf("%s: new game should be scrambled", level.ID)
		}
		if e.MovesCount() != 0 {
			t.Errorf("%s: MovesCount() = %d, want 0", level.ID, e.MovesCount())
		}
		if e.FieldWidth() != level.Width || e.FieldHeight() != level.Height {
			t.Errorf("%s: size = %dx%d", level.ID, e.FieldWidth(), e.FieldHeight())
		}
		if e.GoThrough() != level.GoThrough {
			t.Errorf("%s: GoThrough() = %v", level.ID, e.GoThrough())
		}
		if e.TurnedCells() == 0 {
			t.Errorf("%s: TurnedCells() = 0", level.ID)
		}
	}
}

func TestPowerPosIsCentre(t *testing.T) {
	tests := []struct {
		w, h int
		want core.Point
	}{
		{5, 4, core.Pt(2, 1)},
		{9, 9, core.Pt(4, 4)},
		{2, 2, core.Pt(0, 0)},
		{10, 7, core.Pt(4, 3)},
	}
	for _, tt := range tests {
		e := newSeeded(core.CustomLevel(tt.w, tt.h, false), 1)
		if got := e.PowerPos(); got != tt.want {
			t.Errorf("%dx%d: PowerPos() = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestRotateCountsMovesAndScoreWhileUnsolved(t *testing.T) {
	e := newSeeded(smallLevel(), 5)
	p := core.Pt(0, 0)
	before, _ := e.Field().CellAt(p)
	e.RotateRight(p)
	if e.IsSolved() {
		t.Skip("single rotation solved the puzzle")
	}
	e.RotateLeft(p)
	after, _ := e.Field().CellAt(p)
	if before.Fork != after.Fork {
		t.Errorf("right then left changed fork %v -> %v", before.Fork, after.Fork)
	}
	if e.MovesCount() != 2 {
		t.Errorf("MovesCount() = %d, want 2", e.MovesCount())
	}
	if e.Score() != 2 {
		t.Errorf("Score() = %d, want moves while unsolved", e.Score())
	}
}

func TestRotateOutOfBoundsIsNoop(t *testing.T) {
	e := newSeeded(smallLevel(), 5)
	before := forksOf(e.Field())
	for _, p := range []core.Point{core.Pt(-1, 0), core.Pt(5, 0), core.Pt(0, 4), core.Pt(100, 100)} {
		e.RotateRight(p)
		e.RotateLeft(p)
	}
	if e.MovesCount() != 0 {
		t.Errorf("MovesCount() = %d, want 0", e.MovesCount())
	}
	if !reflect.DeepEqual(before, forksOf(e.Field())) {
		t.Error("grid changed after out-of-bounds rotations")
	}
}

func TestRevealSolutionEndsWithoutWin(t *testing.T) {
	e := newSeeded(core.DefaultLevels()[2], 11)
	e.RotateRight(core.Pt(1, 1))
	e.RevealSolution()
	if e.IsSolved() {
		t.Fatal("a revealed solution must not count as solved")
	}
	if !e.IsRevealed() || !e.IsOver() {
		t.Fatal("RevealSolution should end the game")
	}
	if got := e.Score(); got != e.MovesCount() {
		t.Errorf("Score() = %d, want the move count %d", got, e.MovesCount())
	}

	before := forksOf(e.Field())
	e.RotateRight(core.Pt(0, 0))
	if e.MovesCount() != 1 || !reflect.DeepEqual(before, forksOf(e.Field())) {
		t.Error("rotation after reveal should be ignored")
	}

	e.NewGame()
	if e.IsOver() || e.MovesCount() != 0 {
		t.Error("NewGame should start a fresh scrambled puzzle")
	}
}

func TestRevealShowsGeneratedLayout(t *testing.T) {
	src := rand.New(rand.NewSource(5))
	n := core.NewNet(5, 4, core.Cell{}, src)
	n.Generate(false)
	want := forksOf(n)

	e := core.NewEngine(smallLevel(), core.WithSource(rand.New(rand.NewSource(5))))
	e.RevealSolution()
	if got := forksOf(e.Field()); !reflect.DeepEqual(got, want) {
		t.Errorf("revealed layout = %v, want %v", got, want)
	}
}

func TestScrambleAfterReveal(t *testing.T) {
	e := newSeeded(smallLevel(), 4)
	e.RevealSolution()
	e.Scramble()
	if e.IsRevealed() {
		t.Error("Scramble should take back the revealed solution")
	}
}

// fixRotation returns the quarter turns that bring have onto want, preferring
// single turns. The second result is false when no rotation matches.
func fixRotation(have, want core.Fork) (int, bool) {
	for _, k := range []int{0, 1, -1, 2} {
		if have.Rotated(k) == want {
			return k, true
		}
	}
	return 0, false
}

func TestSolveByRotation(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		for _, lvl := range core.DefaultLevels() {
			e := newSeeded(lvl, seed)
			shown := newSeeded(lvl, seed)
			shown.RevealSolution()
			target := forksOf(shown.Field())

			field := e.Field()
			for y := 0; y < field.Height(); y++ {
				for x := 0; x < field.Width(); x++ {
					p := core.Pt(x, y)
					c, _ := field.CellAt(p)
					k, ok := fixRotation(c.Fork, target[y][x])
					if !ok {
						t.Fatalf("%s seed %d: cell %v cannot reach %v", lvl.ID, seed, c.Fork, target[y][x])
					}
					switch k {
					case -1:
						e.RotateLeft(p)
					case 1, 2:
						for i := 0; i < k; i++ {
							e.RotateRight(p)
						}
					}
				}
			}

			if !e.IsSolved() {
				t.Fatalf("%s seed %d: puzzle not solved after restoring every cell", lvl.ID, seed)
			}
			if e.MovesCount() > e.MinMoves() {
				t.Errorf("%s seed %d: moves %d exceed MinMoves %d", lvl.ID, seed, e.MovesCount(), e.MinMoves())
			}
			factor := 1
			if lvl.GoThrough {
				factor = core.GoThroughScoreFactor
			}
			want := e.TurnedCells()*core.PointsPerCell*factor + e.MinMoves() - e.MovesCount()
			if got := e.Score(); got != want {
				t.Errorf("%s seed %d: Score() = %d, want %d", lvl.ID, seed, got, want)
			}
		}
	}
}

func TestScrambleLeavesStats(t *testing.T) {
	e := newSeeded(smallLevel(), 8)
	turned, minMoves := e.TurnedCells(), e.MinMoves()
	e.Scramble()
	if e.TurnedCells() != turned || e.MinMoves() != minMoves {
		t.Error("Scramble should not change scoring stats")
	}
}

func TestScrambleRetryCapTerminates(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	e := core.NewEngine(smallLevel(),
		core.WithSource(&scriptedSource{}),
		core.WithLogger(logger),
		core.WithMaxScrambleAttempts(3),
	)
	if !e.IsSolved() {
		t.Error("a source that never rotates should leave the puzzle solved")
	}
	if !strings.Contains(buf.String(), "stayed solved") {
		t.Errorf("expected retry cap warning, got %q", buf.String())
	}
	if e.MovesCount() != 0 {
		t.Errorf("MovesCount() = %d, want 0", e.MovesCount())
	}
}

func TestSetFieldSize(t *testing.T) {
	e := newSeeded(smallLevel(), 2)
	if e.SetFieldSize(5, 4) {
		t.Error("same size should not start a new game")
	}
	e.RotateRight(core.Pt(0, 0))
	if !e.SetFieldSize(7, 6) {
		t.Fatal("new size should start a new game")
	}
	if e.FieldWidth() != 7 || e.FieldHeight() != 6 {
		t.Errorf("size = %dx%d, want 7x6", e.FieldWidth(), e.FieldHeight())
	}
	if e.MovesCount() != 0 {
		t.Errorf("MovesCount() = %d, want 0", e.MovesCount())
	}
	if e.PowerPos() != core.Pt(3, 2) {
		t.Errorf("PowerPos() = %v, want (3,2)", e.PowerPos())
	}
	e.SetFieldSize(1000, 0)
	if e.FieldWidth() != core.MaxWidth || e.FieldHeight() != core.MinHeight {
		t.Errorf("size = %dx%d, want clamped", e.FieldWidth(), e.FieldHeight())
	}
	if lvl := e.Level(); lvl.Width != core.MaxWidth || lvl.Height != core.MinHeight {
		t.Errorf("Level() = %+v, want clamped size", lvl)
	}
}

func TestSetGoThrough(t *testing.T) {
	e := newSeeded(smallLevel(), 2)
	if e.SetGoThrough(false) {
		t.Error("unchanged flag should not start a new game")
	}
	if !e.SetGoThrough(true) || !e.GoThrough() {
		t.Error("SetGoThrough(true) should enable wrapping")
	}
}

func TestSetLevel(t *testing.T) {
	e := newSeeded(smallLevel(), 2)
	if e.SetLevel(smallLevel()) {
		t.Error("same settings should not start a new game")
	}
	wrap := core.DefaultLevels()[2]
	if !e.SetLevel(wrap) {
		t.Fatal("SetLevel should start a new game")
	}
	if e.FieldWidth() != 9 || !e.GoThrough() || e.Level().ID != "wrap" {
		t.Errorf("level not applied: %+v", e.Level())
	}
}

func TestEngineDeterministic(t *testing.T) {
	a := newSeeded(core.DefaultLevels()[1], 1234)
	b := newSeeded(core.DefaultLevels()[1], 1234)
	if !reflect.DeepEqual(forksOf(a.Field()), forksOf(b.Field())) {
		t.Error("same seed produced different puzzles")
	}
	if a.MinMoves() != b.MinMoves() || a.TurnedCells() != b.TurnedCells() {
		t.Error("same seed produced different stats")
	}
}

func TestCustomLevel(t *testing.T) {
	l := core.CustomLevel(7, 1, true)
	if l.ID != "custom-7x2-wrap" || l.Height != 2 {
		t.Errorf("CustomLevel = %+v", l)
	}
}
