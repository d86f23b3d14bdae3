package lights

import (
	"strings"

	"github.com/vovakirdan/tui-lights/internal/games/lights/core"
)

// StateType is the coarse game state.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateSolved      StateType = "solved"
	StateRevealed    StateType = "revealed"
	StateHelp        StateType = "help"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the game for determinism tests.
type Snapshot struct {
	Tick      uint64
	Level     string
	Width     int
	Height    int
	GoThrough bool
	Moves     int
	MinMoves  int
	Score     int
	CursorX   int
	CursorY   int
	Forks     []string // One row per line, fork bits as hex digits
	Plugged   int
	State     StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{}
	}
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.showHelp:
		state = StateHelp
	case g.engine.IsSolved():
		state = StateSolved
	case g.engine.IsRevealed():
		state = StateRevealed
	}

	field := g.engine.Field()
	rows := make([]string, field.Height())
	plugged := 0
	const hex = "0123456789abcdef"
	for y := range rows {
		var sb strings.Builder
		for x := 0; x < field.Width(); x++ {
			c, _ := field.CellAt(core.Pt(x, y))
			sb.WriteByte(hex[c.Fork&0x0F])
			if c.Plugged {
				plugged++
			}
		}
		rows[y] = sb.String()
	}

	return Snapshot{
		Tick:      g.tick,
		Level:     g.level.ID,
		Width:     field.Width(),
		Height:    field.Height(),
		GoThrough: g.engine.GoThrough(),
		Moves:     g.engine.MovesCount(),
		MinMoves:  g.engine.MinMoves(),
		Score:     g.engine.Score(),
		CursorX:   g.cursor.X,
		CursorY:   g.cursor.Y,
		Forks:     rows,
		Plugged:   plugged,
		State:     state,
	}
}
