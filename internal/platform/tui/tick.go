// Package tui provides the Bubble Tea integration for the quiz.
// It handles the terminal UI loop, input mapping, and rendering of the
// session's render model. All game rules live in the quiz package.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status line stays on screen.
const statusTimeout = 3 * time.Second

// clearStatusMsg is sent when a status line expires. The id ties it to the
// status that scheduled it so a newer message isn't cleared early.
type clearStatusMsg struct {
	id int
}

// clearStatusCmd returns a Bubble Tea command that clears status id after d.
// Purely cosmetic: no quiz transition waits on it.
func clearStatusCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
