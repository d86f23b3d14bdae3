package core

// Net size limits.
const (
	MinWidth      = 2
	MinHeight     = 2
	MaxWidth      = 100
	MaxHeight     = 100
	DefaultWidth  = 5
	DefaultHeight = 4
)

// Net is a rectangular grid of cells stored row-major.
type Net struct {
	width  int
	height int
	cells  []Cell
	src    Source
}

// NewNet creates a net with every cell set to fill.
// Dimensions are clamped to [MinWidth,MaxWidth] x [MinHeight,MaxHeight].
// A nil src uses a time-seeded math/rand source.
func NewNet(width, height int, fill Cell, src Source) *Net {
	if src == nil {
		src = defaultSource()
	}
	n := &Net{src: src}
	n.alloc(clampSize(width, MinWidth, MaxWidth), clampSize(height, MinHeight, MaxHeight), fill)
	return n
}

func clampSize(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (n *Net) alloc(width, height int, fill Cell) {
	n.width = width
	n.height = height
	n.cells = make([]Cell, width*height)
	for i := range n.cells {
		n.cells[i] = fill
	}
}

// Resize reallocates the grid when the clamped size differs from the
// current one. Prior contents are discarded. Reports whether the size changed.
func (n *Net) Resize(width, height int, fill Cell) bool {
	width = clampSize(width, MinWidth, MaxWidth)
	height = clampSize(height, MinHeight, MaxHeight)
	if width == n.width && height == n.height {
		return false
	}
	n.alloc(width, height, fill)
	return true
}

func (n *Net) Width() int  { return n.width }
func (n *Net) Height() int { return n.height }

// Size returns width and height.
func (n *Net) Size() (int, int) { return n.width, n.height }

// Area returns the number of cells.
func (n *Net) Area() int { return n.width * n.height }

// InBounds reports whether p lies inside the grid.
func (n *Net) InBounds(p Point) bool {
	return p.X >= 0 && p.X < n.width && p.Y >= 0 && p.Y < n.height
}

func (n *Net) index(p Point) int {
	return p.Y*n.width + p.X
}

// CellAt returns the cell at p. Out-of-bounds returns a zero Cell and false.
func (n *Net) CellAt(p Point) (Cell, bool) {
	if !n.InBounds(p) {
		return Cell{}, false
	}
	return n.cells[n.index(p)], true
}

// SetFork replaces the fork at p.
func (n *Net) SetFork(p Point, f Fork) bool {
	if !n.InBounds(p) {
		return false
	}
	n.cells[n.index(p)].Fork = f & forkMask
	return true
}

// RotateCell turns the fork at p by k quarter turns.
func (n *Net) RotateCell(p Point, k int) bool {
	if !n.InBounds(p) {
		return false
	}
	n.cells[n.index(p)].Fork.Rotate(k)
	return true
}

// ForEach calls fn for every cell in row-major order.
func (n *Net) ForEach(fn func(p Point, c Cell)) {
	for y := 0; y < n.height; y++ {
		for x := 0; x < n.width; x++ {
			fn(Point{X: x, Y: y}, n.cells[y*n.width+x])
		}
	}
}

// PluggedCount returns how many cells are plugged.
func (n *Net) PluggedCount() int {
	count := 0
	for _, c := range n.cells {
		if c.Plugged {
			count++
		}
	}
	return count
}

// IsFullyPlugged reports whether every non-empty cell is plugged.
func (n *Net) IsFullyPlugged() bool {
	for _, c := range n.cells {
		if !c.Fork.IsEmpty() && !c.Plugged {
			return false
		}
	}
	return true
}

// Generate carves a random spanning maze over the whole grid from a random
// start. Reports whether every cell was reached.
func (n *Net) Generate(goThrough bool) bool {
	start := Point{X: n.src.Intn(n.width), Y: n.src.Intn(n.height)}
	for i := range n.cells {
		n.cells[i] = Cell{}
	}
	return n.walk(start, goThrough, true) == n.Area()
}

// Update recomputes the plugged flags by flooding from power along
// mutually open edges. Reports whether every cell is plugged.
func (n *Net) Update(power Point, goThrough bool) bool {
	for i := range n.cells {
		n.cells[i].Plugged = false
	}
	if !n.InBounds(power) {
		return false
	}
	return n.walk(power, goThrough, false) == n.Area()
}

// Disassemble rotates every partially open cell by a random number of
// quarter turns. It returns how many cells were considered and the minimal
// number of single rotations needed to undo the scramble.
func (n *Net) Disassemble() (turned, backSteps int) {
	for i := range n.cells {
		f := &n.cells[i].Fork
		if f.IsEmpty() || f.IsFull() {
			continue
		}
		k := n.src.Intn(DirectionCount)
		f.Rotate(k)
		turned++
		backSteps += k
		if k == 3 {
			backSteps -= 2
		}
		if k == 2 && f.IsStraight() {
			backSteps -= 2
		}
	}
	return turned, backSteps
}

// neighbor returns the point one step from p, wrapping when goThrough is set.
func (n *Net) neighbor(p Point, d Direction, goThrough bool) (Point, bool) {
	np := p.Step(d)
	if n.InBounds(np) {
		return np, true
	}
	if !goThrough {
		return np, false
	}
	return np.Wrap(n.width, n.height), true
}

// walk runs an iterative depth-first traversal from start and returns the
// number of plugged cells. In carve mode every unvisited neighbour is a
// candidate and the chosen edge is opened on both ends; otherwise only
// mutually open edges are followed and the first candidate is taken.
func (n *Net) walk(start Point, goThrough, carve bool) int {
	var (
		path       []Point
		candidates [DirectionCount]Direction
		targets    [DirectionCount]Point
	)
	cur := start
	n.cells[n.index(cur)].Plugged = true
	count := 1

	for {
		found := 0
		c := n.cells[n.index(cur)]
		for _, d := range AllDirections {
			np, ok := n.neighbor(cur, d, goThrough)
			if !ok {
				continue
			}
			nc := n.cells[n.index(np)]
			if nc.Plugged {
				continue
			}
			if !carve && !(c.Contains(d) && nc.Contains(d.Opposite())) {
				continue
			}
			candidates[found] = d
			targets[found] = np
			found++
			if !carve {
				break
			}
		}

		if found == 0 {
			if len(path) == 0 {
				return count
			}
			cur = path[len(path)-1]
			path = path[:len(path)-1]
			continue
		}

		pick := 0
		if carve {
			pick = n.src.Intn(found)
		}
		d, np := candidates[pick], targets[pick]
		if carve {
			n.cells[n.index(cur)].Fork.Add(d)
			n.cells[n.index(np)].Fork.Add(d.Opposite())
		}
		n.cells[n.index(np)].Plugged = true
		count++
		path = append(path, cur)
		cur = np
	}
}

// NetSnapshot is a detached copy of a net's cells.
type NetSnapshot struct {
	Width  int
	Height int
	Cells  []Cell
}

// Snapshot returns a deep copy of the grid.
func (n *Net) Snapshot() NetSnapshot {
	cells := make([]Cell, len(n.cells))
	copy(cells, n.cells)
	return NetSnapshot{Width: n.width, Height: n.height, Cells: cells}
}

// Restore replaces the grid with s when the dimensions match.
func (n *Net) Restore(s NetSnapshot) bool {
	if s.Width != n.width || s.Height != n.height || len(s.Cells) != len(n.cells) {
		return false
	}
	copy(n.cells, s.Cells)
	return true
}
