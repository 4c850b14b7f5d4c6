// Package tui provides the Bubble Tea frontend for the catcher game.
// It handles the terminal UI loop, input mapping, name entry and the
// game-over to restart cycle.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// RestartMsg fires when the game-over overlay has been shown long enough.
// Run identifies the run that ended so a stale timer cannot restart a newer one.
type RestartMsg struct {
	Run int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// restartCmd schedules the reset that follows a game over.
func restartCmd(delay time.Duration, run int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return RestartMsg{Run: run}
	})
}
