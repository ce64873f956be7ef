// Package tui provides the Bubble Tea frontend for the snake game.
// It handles the terminal UI loop, input mapping, and the ID prompt.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// holdDoneMsg ends the game over hold.
type holdDoneMsg struct{}

// tickCmd returns a command that sends a tick after the given delay.
// The delay changes as the game speeds up, so every tick schedules the next.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// holdCmd waits out the game over screen.
func holdCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return holdDoneMsg{}
	})
}
