package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lights/internal/core"
)

// KeyMapper translates Bubble Tea input messages to game actions.
// Keeping the bindings in one place makes them testable.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	bind := func(m map[string]core.Action, a core.Action, keys ...string) {
		for _, k := range keys {
			m[k] = a
		}
	}
	b := make(map[string]core.Action)
	bind(b, core.ActionUp, "up", "k", "w")
	bind(b, core.ActionDown, "down", "j", "s")
	bind(b, core.ActionLeft, "left", "h", "a")
	bind(b, core.ActionRight, "right", "l", "d")
	bind(b, core.ActionRotateRight, " ", "x", "enter")
	bind(b, core.ActionRotateLeft, "z", "backspace")
	bind(b, core.ActionNewGame, "n", "tab")
	bind(b, core.ActionLevel1, "1")
	bind(b, core.ActionLevel2, "2")
	bind(b, core.ActionLevel3, "3")
	bind(b, core.ActionWider, "]")
	bind(b, core.ActionNarrower, "[")
	bind(b, core.ActionTaller, "}")
	bind(b, core.ActionShorter, "{")
	bind(b, core.ActionToggleWrap, "i", "insert")
	bind(b, core.ActionToggleCursor, "c", "delete")
	bind(b, core.ActionHelp, "?", "f1")
	bind(b, core.ActionReveal, "end", "!")
	bind(b, core.ActionScramble, "ctrl+r")
	bind(b, core.ActionBack, "esc")
	bind(b, core.ActionRestart, "r")
	return &KeyMapper{bindings: b}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}
	if a, ok := km.bindings[msg.String()]; ok {
		return a, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the action for a key message in frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapMouse converts a button press into a click. Releases, motion and wheel
// events are ignored.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.Click, bool) {
	if msg.Action != tea.MouseActionPress {
		return core.Click{}, false
	}
	var button core.MouseButton
	switch msg.Button {
	case tea.MouseButtonLeft:
		button = core.MouseLeft
	case tea.MouseButtonRight:
		button = core.MouseRight
	default:
		return core.Click{}, false
	}
	return core.Click{X: msg.X, Y: msg.Y, Button: button}, true
}

// MenuAction is a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
