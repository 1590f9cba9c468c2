// Package tui runs the game in a terminal with Bubble Tea. It owns the
// frame clock, key bindings and colours; the game package owns the rules.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall-clock time at which a frame fired.
type TickMsg time.Time

// tickCmd schedules the next frame at roughly fps frames per second. The
// model measures the real gap between ticks, so drift does not matter.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time elapsed since the previous tick. The first
// tick of a run has no predecessor and advances nothing.
func frameDelta(prev, now time.Time) time.Duration {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return now.Sub(prev)
}
