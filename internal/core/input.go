package core

// Action is a semantic command, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone Action = iota

	// Cursor movement.
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	// Puzzle commands.
	ActionRotateRight // Space, X, Enter
	ActionRotateLeft  // Z, Backspace
	ActionNewGame     // N, Tab
	ActionLevel1      // 1
	ActionLevel2      // 2
	ActionLevel3      // 3
	ActionWider       // ]
	ActionNarrower    // [
	ActionTaller      // }
	ActionShorter     // {
	ActionToggleWrap  // I, Insert
	ActionToggleCursor
	ActionHelp

	// Debug commands, honored only when enabled in config.
	ActionReveal
	ActionScramble

	// Session commands.
	ActionBack
	ActionRestart
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:         "None",
	ActionUp:           "Up",
	ActionDown:         "Down",
	ActionLeft:         "Left",
	ActionRight:        "Right",
	ActionRotateRight:  "RotateRight",
	ActionRotateLeft:   "RotateLeft",
	ActionNewGame:      "NewGame",
	ActionLevel1:       "Level1",
	ActionLevel2:       "Level2",
	ActionLevel3:       "Level3",
	ActionWider:        "Wider",
	ActionNarrower:     "Narrower",
	ActionTaller:       "Taller",
	ActionShorter:      "Shorter",
	ActionToggleWrap:   "ToggleWrap",
	ActionToggleCursor: "ToggleCursor",
	ActionHelp:         "Help",
	ActionReveal:       "Reveal",
	ActionScramble:     "Scramble",
	ActionBack:         "Back",
	ActionRestart:      "Restart",
	ActionQuit:         "Quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// MouseButton identifies the button of a pointer click.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota + 1
	MouseRight
)

// Click is a pointer press in screen coordinates.
type Click struct {
	X, Y   int
	Button MouseButton
}

// InputFrame collects the input gathered during one platform tick.
type InputFrame struct {
	Actions map[Action]bool
	Clicks  []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// AddClick records a pointer press. Presses are kept in arrival order.
func (f *InputFrame) AddClick(c Click) {
	f.Clicks = append(f.Clicks, c)
}

// Empty reports whether nothing was pressed.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return len(f.Clicks) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}

// Clone returns a copy that does not share storage with f.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Clicks) > 0 {
		clone.Clicks = append([]Click(nil), f.Clicks...)
	}
	return clone
}
