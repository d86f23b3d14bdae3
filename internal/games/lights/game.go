// Package lights adapts the net engine to the terminal platform: it maps
// input frames to engine commands and draws the net into a screen buffer.
package lights

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lights/internal/config"
	platformcore "github.com/vovakirdan/tui-lights/internal/core"
	"github.com/vovakirdan/tui-lights/internal/games/lights/core"
)

// ID is the game identifier used for storage and the CLI.
const ID = "lights"

// Package-level configuration, set once by the CLI before games are created.
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets the YAML file games load on Reset. Empty uses the search path.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to new engines.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game is the Turn on the Lights puzzle.
type Game struct {
	cfg     config.LightsConfig
	palette config.Palette
	levels  []core.LevelData

	rng    *rand.Rand
	engine *core.Engine
	tick   uint64

	level       core.LevelData
	startLevel  string
	customLevel *core.LevelData
	started     bool

	cursor     core.Point
	showCursor bool
	showHelp   bool
	welcome    bool
	announced  bool // solved puzzle has been logged

	screenW  int
	screenH  int
	layout   layout
	tooSmall bool
}

// Option configures a Game.
type Option func(*Game)

// WithStartLevel starts on the configured level with the given ID.
func WithStartLevel(id string) Option {
	return func(g *Game) {
		g.startLevel = id
	}
}

// WithCustomLevel starts on an arbitrary field size.
func WithCustomLevel(width, height int, goThrough bool) Option {
	return func(g *Game) {
		l := core.CustomLevel(width, height, goThrough)
		g.customLevel = &l
	}
}

// New creates a game. Nothing is generated until Reset.
func New(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Turn on the Lights"
}

// Reset starts a new puzzle. On the first call the level comes from the
// options or the config default; later calls keep the current level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.loadConfig()

	if !g.started {
		g.level = g.initialLevel()
		g.showCursor = g.cfg.Display.ShowCursor
		g.welcome = true
		g.started = true
	}
	g.showHelp = false

	g.engine = core.NewEngine(g.level,
		core.WithSource(g.rng),
		core.WithLogger(logger),
	)
	g.onNewGame()
}

func (g *Game) loadConfig() {
	cfg, err := config.LoadLights(configPath)
	if err != nil {
		logger.Warn("using built-in config", "path", configPath, "err", err)
		cfg = config.DefaultLightsConfig()
	}
	palette, err := cfg.Display.Palette()
	if err != nil {
		logger.Warn("invalid display colors", "err", err)
	}
	g.cfg = cfg
	g.palette = palette
	g.levels = LevelsFromConfig(cfg)
}

// LevelsFromConfig converts configured presets to engine levels.
func LevelsFromConfig(cfg config.LightsConfig) []core.LevelData {
	out := make([]core.LevelData, 0, len(cfg.Levels))
	for _, l := range cfg.Levels {
		name := l.Name
		if name == "" {
			name = l.ID
		}
		out = append(out, core.LevelData{
			ID:        l.ID,
			Name:      name,
			Width:     l.Width,
			Height:    l.Height,
			GoThrough: l.GoThrough,
		})
	}
	return out
}

func (g *Game) initialLevel() core.LevelData {
	if g.customLevel != nil {
		return g.matchLevel(g.customLevel.Width, g.customLevel.Height, g.customLevel.GoThrough)
	}
	id := g.startLevel
	if id == "" {
		id = g.cfg.StartLevel().ID
	}
	for _, l := range g.levels {
		if l.ID == id {
			return l
		}
	}
	if len(g.levels) > 0 {
		logger.Warn("unknown level, using first preset", "level", id)
		return g.levels[0]
	}
	return core.DefaultLevels()[0]
}

// matchLevel returns the preset with these settings, or a custom level.
func (g *Game) matchLevel(width, height int, goThrough bool) core.LevelData {
	for _, l := range g.levels {
		if l.Width == width && l.Height == height && l.GoThrough == goThrough {
			return l
		}
	}
	return core.CustomLevel(width, height, goThrough)
}

// onNewGame recenters the cursor and recomputes the layout after the grid changed.
func (g *Game) onNewGame() {
	g.cursor = g.engine.PowerPos()
	g.announced = false
	g.relayout()
}

// Resize updates the screen size without touching the puzzle.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.engine != nil {
		g.relayout()
	}
}

func (g *Game) relayout() {
	g.layout = computeLayout(g.screenW, g.screenH, g.engine.FieldWidth(), g.engine.FieldHeight())
	g.tooSmall = !g.layout.fits
}

// Step applies one tick of input.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	if g.engine == nil {
		return platformcore.StepResult{State: g.State()}
	}
	if !in.Empty() {
		g.welcome = false
	}

	if in.Has(platformcore.ActionHelp) {
		g.showHelp = !g.showHelp
	}
	if g.showHelp {
		if in.Has(platformcore.ActionBack) {
			g.showHelp = false
		}
		return platformcore.StepResult{State: g.State()}
	}

	g.applySettings(in)
	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if g.engine.IsOver() {
		if in.Has(platformcore.ActionRestart) {
			g.engine.NewGame()
			g.onNewGame()
		}
		return platformcore.StepResult{State: g.State()}
	}

	g.moveCursor(in)
	if in.Has(platformcore.ActionRotateRight) {
		g.engine.RotateRight(g.cursor)
	}
	if in.Has(platformcore.ActionRotateLeft) {
		g.engine.RotateLeft(g.cursor)
	}
	for _, c := range in.Clicks {
		g.applyClick(c)
	}
	if g.cfg.Debug {
		if in.Has(platformcore.ActionReveal) {
			g.engine.RevealSolution()
		}
		if in.Has(platformcore.ActionScramble) {
			g.engine.Scramble()
		}
	}

	if g.engine.IsSolved() && !g.announced {
		g.announced = true
		logger.Info("puzzle solved", "level", g.level.ID, "moves", g.engine.MovesCount(),
			"min_moves", g.engine.MinMoves(), "score", g.engine.Score())
	}
	return platformcore.StepResult{State: g.State()}
}

// applySettings handles commands that change or restart the puzzle.
// They are accepted in any state.
func (g *Game) applySettings(in platformcore.InputFrame) {
	changed := false
	switch {
	case in.Has(platformcore.ActionLevel1):
		changed = g.selectPreset(0)
	case in.Has(platformcore.ActionLevel2):
		changed = g.selectPreset(1)
	case in.Has(platformcore.ActionLevel3):
		changed = g.selectPreset(2)
	}

	w, h := g.engine.FieldWidth(), g.engine.FieldHeight()
	dw, dh := 0, 0
	if in.Has(platformcore.ActionWider) {
		dw++
	}
	if in.Has(platformcore.ActionNarrower) {
		dw--
	}
	if in.Has(platformcore.ActionTaller) {
		dh++
	}
	if in.Has(platformcore.ActionShorter) {
		dh--
	}
	if (dw != 0 || dh != 0) && g.engine.SetFieldSize(w+dw, h+dh) {
		changed = true
	}
	if in.Has(platformcore.ActionToggleWrap) {
		g.engine.SetGoThrough(!g.engine.GoThrough())
		changed = true
	}
	if in.Has(platformcore.ActionToggleCursor) {
		g.showCursor = !g.showCursor
	}
	if in.Has(platformcore.ActionNewGame) {
		g.engine.NewGame()
		changed = true
	}

	if changed {
		g.level = g.matchLevel(g.engine.FieldWidth(), g.engine.FieldHeight(), g.engine.GoThrough())
		g.onNewGame()
	}
}

func (g *Game) selectPreset(i int) bool {
	if i >= len(g.levels) {
		return false
	}
	g.engine.SetLevel(g.levels[i])
	return true
}

func (g *Game) moveCursor(in platformcore.InputFrame) {
	dx, dy := 0, 0
	switch {
	case in.Has(platformcore.ActionUp):
		dy = -1
	case in.Has(platformcore.ActionDown):
		dy = 1
	case in.Has(platformcore.ActionLeft):
		dx = -1
	case in.Has(platformcore.ActionRight):
		dx = 1
	}
	if dx == 0 && dy == 0 {
		return
	}
	w, h := g.engine.FieldWidth(), g.engine.FieldHeight()
	x, y := g.cursor.X+dx, g.cursor.Y+dy
	if g.engine.GoThrough() {
		g.cursor = core.Pt(platformcore.Wrap(x, w), platformcore.Wrap(y, h))
	} else {
		g.cursor = core.Pt(platformcore.Clamp(x, 0, w-1), platformcore.Clamp(y, 0, h-1))
	}
}

// applyClick rotates the clicked cell: left button turns left, right button turns right.
func (g *Game) applyClick(c platformcore.Click) {
	p, ok := g.layout.cellAt(c.X, c.Y)
	if !ok {
		return
	}
	g.cursor = p
	switch c.Button {
	case platformcore.MouseLeft:
		g.engine.RotateLeft(p)
	case platformcore.MouseRight:
		g.engine.RotateRight(p)
	}
}

// State returns the platform-facing state.
func (g *Game) State() platformcore.GameState {
	if g.engine == nil {
		return platformcore.GameState{}
	}
	return platformcore.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.IsSolved(),
		Paused:   g.tooSmall || g.showHelp,
	}
}

// Summary describes the current puzzle for the results store.
func (g *Game) Summary() platformcore.RunSummary {
	if g.engine == nil {
		return platformcore.RunSummary{}
	}
	return platformcore.RunSummary{
		LevelID:     g.level.ID,
		Width:       g.engine.FieldWidth(),
		Height:      g.engine.FieldHeight(),
		GoThrough:   g.engine.GoThrough(),
		Moves:       g.engine.MovesCount(),
		MinMoves:    g.engine.MinMoves(),
		TurnedCells: g.engine.TurnedCells(),
		Score:       g.engine.Score(),
	}
}

// Level returns the level being played.
func (g *Game) Level() core.LevelData {
	return g.level
}
