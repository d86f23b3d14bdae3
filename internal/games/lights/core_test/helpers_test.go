package core_test

import "github.com/vovakirdan/tui-lights/internal/games/lights/core"

// scriptedSource returns its values in order, cycling, reduced modulo n.
type scriptedSource struct {
	vals []int
	i    int
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v % n
}

func (s *scriptedSource) reset(vals ...int) {
	s.vals = vals
	s.i = 0
}

func forksOf(f core.FieldView) [][]core.Fork {
	rows := make([][]core.Fork, f.Height())
	for y := range rows {
		rows[y] = make([]core.Fork, f.Width())
		for x := range rows[y] {
			c, _ := f.CellAt(core.Pt(x, y))
			rows[y][x] = c.Fork
		}
	}
	return rows
}

func edgeCount(f core.FieldView) int {
	total := 0
	for _, row := range forksOf(f) {
		for _, fk := range row {
			total += fk.Count()
		}
	}
	return total / 2
}
