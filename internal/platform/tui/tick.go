// Package tui provides the Bubble Tea integration for the shooter. It
// owns the terminal loop, translates key events into simulation input,
// and feeds wall-clock timestamps into the game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step. It carries the wall-clock time so
// the model can hand the game a real millisecond timestamp instead of
// assuming a fixed frame length.
type TickMsg time.Time

// tickCmd returns a command that sends tick messages at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
