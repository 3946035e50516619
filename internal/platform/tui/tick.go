// Package tui provides the Bubble Tea integration for the mines game.
// It handles the terminal UI loop, input mapping, the size prompt and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// countdownMsg is sent once per second while the game-over countdown runs.
// gen ties the message to the game it was started for, so ticks from a
// game that was restarted are dropped.
type countdownMsg struct {
	gen int
}

// countdownCmd returns a command that delivers one countdown tick after a second.
func countdownCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return countdownMsg{gen: gen}
	})
}
