// Package tui provides the Bubble Tea integration for the debris shooter.
// It handles the terminal UI loop, input mapping, and frame pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after d.
// A non-positive delay ticks right away: the loop is behind schedule.
func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg {
			return TickMsg(time.Now())
		}
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
