// Package tui runs games in a terminal with Bubble Tea, either locally or
// over SSH. It owns the tick loop, input mapping, menus and the scoreboard.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var tickSeq atomic.Int64

// nextTickID returns a fresh tick loop identifier.
func nextTickID() int64 {
	return tickSeq.Add(1)
}

// TickMsg is sent to trigger a game step. ID names the loop that scheduled it
// so a model ignores ticks left over from a game it replaced.
type TickMsg struct {
	ID int64
	At time.Time
}

// tickCmd schedules the next tick. Non-positive rates fall back to 30 per second.
func tickCmd(id int64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, At: t}
	})
}
