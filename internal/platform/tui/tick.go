// Package tui provides the Bubble Tea front end for playing a tile-merge
// session in the terminal, plus the lipgloss board renderer shared with the
// CLI.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line stays on screen.
const statusTTL = 2 * time.Second

// clearStatusMsg expires the status line set at the given sequence number.
type clearStatusMsg int

// clearStatusCmd returns a command that expires status seq after statusTTL.
func clearStatusCmd(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg(seq)
	})
}
