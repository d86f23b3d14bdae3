package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lights/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"vim left", runeKey('h'), core.ActionLeft, false},
		{"space rotates right", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRotateRight, false},
		{"z rotates left", runeKey('z'), core.ActionRotateLeft, false},
		{"tab new game", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNewGame, false},
		{"level 3", runeKey('3'), core.ActionLevel3, false},
		{"wider", runeKey(']'), core.ActionWider, false},
		{"shorter", runeKey('{'), core.ActionShorter, false},
		{"insert toggles wrap", tea.KeyMsg{Type: tea.KeyInsert}, core.ActionToggleWrap, false},
		{"f1 help", tea.KeyMsg{Type: tea.KeyF1}, core.ActionHelp, false},
		{"end reveals", tea.KeyMsg{Type: tea.KeyEnd}, core.ActionReveal, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('y'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v,%v, want %v,%v", tt.msg.String(), got, quit, tt.want, tt.quit)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()
	click, ok := km.MapMouse(tea.MouseMsg{X: 7, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if !ok || click != (core.Click{X: 7, Y: 3, Button: core.MouseRight}) {
		t.Errorf("MapMouse(right press) = %+v,%v", click, ok)
	}
	if _, ok := km.MapMouse(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}); ok {
		t.Error("release should be ignored")
	}
	if _, ok := km.MapMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}); ok {
		t.Error("wheel should be ignored")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, want scoreboard", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}); got != MenuActionSelect {
		t.Errorf("enter = %v, want select", got)
	}
}
