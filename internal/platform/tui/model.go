package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lights/internal/core"
	"github.com/vovakirdan/tui-lights/internal/storage"
)

// Game is what the platform drives. Implementations hold pure game logic
// and never import Bubble Tea; the platform maps input and owns timing.
type Game interface {
	// ID returns a stable identifier used for screenshots and logs.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset initializes the game for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. The screen is not cleared by the caller.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// Resize adapts the layout to a new terminal size without restarting.
	Resize(width, height int)

	// Summary describes the current puzzle for the results store.
	Summary() core.RunSummary
}

// ResultStore receives finished puzzles.
type ResultStore interface {
	SaveResult(r core.RunSummary) (int64, error)
}

// Model is the Bubble Tea model that runs a single game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      ResultStore
	keys       *KeyMapper
	config     core.RuntimeConfig
	tickID     int64
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	embedded   bool // Running inside a session; "b" returns to the menu
	backToMenu bool
	saved      bool // Whether the current finished puzzle has been stored
}

// NewModel creates a model for the given game. store may be nil.
func NewModel(game Game, store ResultStore, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keys:       NewKeyMapper(),
		config:     cfg,
		tickID:     nextTickID(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.tickID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if click, ok := m.keys.MapMouse(msg); ok {
			m.inputFrame.AddClick(click)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.tickID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "b":
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the puzzle and only moves it on screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case !m.gameState.GameOver:
		m.saved = false
	case !m.saved && m.gameState.Score > 0:
		m.saveResult()
		m.saved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.tickID, m.config.TickRate)
}

func (m *Model) saveResult() {
	if m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, the game continues regardless
	m.store.SaveResult(m.game.Summary())
}

// saveScreenshot writes the current frame as plain text under ~/.lights/screenshots.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".lights", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts a local Bubble Tea program for game. store may be nil.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, storeOrNil(store), cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// newSessionGameModel creates a model that runs inside a session and can
// hand control back to the menu.
func newSessionGameModel(game Game, store ResultStore, cfg core.RuntimeConfig) Model {
	m := NewModel(game, store, cfg)
	m.embedded = true
	return m
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user asked to leave the game for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// storeOrNil keeps a nil *storage.Store from becoming a non-nil ResultStore.
func storeOrNil(s *storage.Store) ResultStore {
	if s == nil {
		return nil
	}
	return s
}
