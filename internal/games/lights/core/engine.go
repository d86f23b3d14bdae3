package core

import (
	"io"

	"github.com/charmbracelet/log"
)

// Scoring constants.
const (
	PointsPerCell        = 10
	GoThroughScoreFactor = 4
)

// DefaultMaxScrambleAttempts bounds how often NewGame re-disassembles a
// layout that is still solved.
const DefaultMaxScrambleAttempts = 64

// FieldView is the read-only view of the grid handed to renderers.
type FieldView interface {
	Width() int
	Height() int
	InBounds(p Point) bool
	CellAt(p Point) (Cell, bool)
}

// Engine is one game session on top of a Net.
type Engine struct {
	net         *Net
	src         Source
	logger      *log.Logger
	maxAttempts int

	level     LevelData
	goThrough bool
	powerPos  Point
	solved    bool
	revealed  bool // Solution shown by RevealSolution; input is locked
	moves     int

	turnedCells int
	backSteps   int
	assembled   NetSnapshot
}

// Option configures an Engine.
type Option func(*Engine)

// WithSource sets the random source used for generation and scrambling.
func WithSource(src Source) Option {
	return func(e *Engine) {
		e.src = src
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithMaxScrambleAttempts overrides DefaultMaxScrambleAttempts.
func WithMaxScrambleAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// NewEngine creates an engine for level and starts a game.
func NewEngine(level LevelData, opts ...Option) *Engine {
	e := &Engine{maxAttempts: DefaultMaxScrambleAttempts}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = defaultSource()
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	e.net = NewNet(level.Width, level.Height, Cell{}, e.src)
	e.goThrough = level.GoThrough
	e.level = level
	e.level.Width, e.level.Height = e.net.Size()
	e.NewGame()
	return e
}

func centerOf(w, h int) Point {
	return Point{X: (w - 1) / 2, Y: (h - 1) / 2}
}

// NewGame generates a fresh layout and scrambles it until it is unsolved.
func (e *Engine) NewGame() {
	e.powerPos = centerOf(e.net.Size())
	e.turnedCells, e.backSteps = 0, 0
	e.solved = e.net.Generate(e.goThrough)
	e.assembled = e.net.Snapshot()

	attempts := 0
	for e.solved {
		if attempts >= e.maxAttempts {
			e.logger.Warn("layout stayed solved after scrambling",
				"attempts", attempts, "width", e.net.Width(), "height", e.net.Height())
			break
		}
		e.turnedCells, e.backSteps = e.net.Disassemble()
		e.update()
		attempts++
	}
	e.moves = 0
	e.revealed = false
	e.logger.Debug("new game", "width", e.net.Width(), "height", e.net.Height(),
		"go_through", e.goThrough, "turned", e.turnedCells, "min_moves", e.backSteps)
}

func (e *Engine) update() {
	e.solved = e.net.Update(e.powerPos, e.goThrough)
}

func (e *Engine) rotate(p Point, k int) {
	if e.IsOver() || !e.net.InBounds(p) {
		return
	}
	e.net.RotateCell(p, k)
	e.moves++
	e.update()
}

// RotateRight turns the cell at p clockwise. Ignored when p is outside the
// grid or the puzzle is solved.
func (e *Engine) RotateRight(p Point) { e.rotate(p, 1) }

// RotateLeft turns the cell at p counter-clockwise.
func (e *Engine) RotateLeft(p Point) { e.rotate(p, -1) }

// SetFieldSize resizes the grid and starts a new game if the size changed.
func (e *Engine) SetFieldSize(width, height int) bool {
	if !e.net.Resize(width, height, Cell{}) {
		return false
	}
	e.level.Width, e.level.Height = e.net.Size()
	e.NewGame()
	return true
}

// SetGoThrough toggles wraparound and starts a new game if it changed.
func (e *Engine) SetGoThrough(v bool) bool {
	if e.goThrough == v {
		return false
	}
	e.goThrough = v
	e.level.GoThrough = v
	e.NewGame()
	return true
}

// SetLevel applies level settings, starting at most one new game.
func (e *Engine) SetLevel(level LevelData) bool {
	resized := e.net.Resize(level.Width, level.Height, Cell{})
	wrapChanged := e.goThrough != level.GoThrough
	e.goThrough = level.GoThrough
	e.level = level
	e.level.Width, e.level.Height = e.net.Size()
	if !resized && !wrapChanged {
		return false
	}
	e.NewGame()
	return true
}

// Score returns the final score once solved, or the move count before that.
func (e *Engine) Score() int {
	if !e.solved {
		return e.moves
	}
	factor := 1
	if e.goThrough {
		factor = GoThroughScoreFactor
	}
	return e.turnedCells*PointsPerCell*factor + e.backSteps - e.moves
}

// RevealSolution restores the layout as generated and ends the game without
// a win: IsSolved stays false and input is locked until NewGame. Debug aid.
func (e *Engine) RevealSolution() {
	if e.solved || !e.net.Restore(e.assembled) {
		return
	}
	e.revealed = true
}

// Scramble re-disassembles the current layout without touching the scoring
// stats. It also takes back a revealed solution. Debug aid.
func (e *Engine) Scramble() {
	e.net.Disassemble()
	e.revealed = false
	e.update()
}

// IsOver reports whether the game takes no more rotations, either because
// it was solved or because the solution was revealed.
func (e *Engine) IsOver() bool { return e.solved || e.revealed }

func (e *Engine) FieldWidth() int  { return e.net.Width() }
func (e *Engine) FieldHeight() int { return e.net.Height() }
func (e *Engine) GoThrough() bool  { return e.goThrough }
func (e *Engine) IsSolved() bool   { return e.solved }
func (e *Engine) IsRevealed() bool { return e.revealed }
func (e *Engine) MovesCount() int  { return e.moves }
func (e *Engine) TurnedCells() int { return e.turnedCells }
func (e *Engine) MinMoves() int    { return e.backSteps }
func (e *Engine) PowerPos() Point  { return e.powerPos }
func (e *Engine) Field() FieldView { return e.net }
func (e *Engine) Level() LevelData { return e.level }
