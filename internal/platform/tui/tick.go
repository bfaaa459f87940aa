// Package tui provides the Bubble Tea front-end for Oh Coconuts.
// It drives the fixed-rate tick loop, maps keys to game actions, records
// finished rounds and serves the same model over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/oh-coconuts/internal/core"
)

// TickMsg drives one game step.
type TickMsg time.Time

// tickInterval converts a rate in Hz into the delay between ticks.
// Non-positive rates fall back to core.DefaultTickRate.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
