// Package tui provides the Bubble Tea integration for the simulation.
// It handles the terminal UI loop, input mapping, and run orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a display tick of one run.
type TickMsg struct {
	At  time.Time
	Run uint64 // ticks of a run that has been left are dropped
}

var runSeq atomic.Uint64

// nextRunID returns a process-unique run identifier for tick routing.
func nextRunID() uint64 {
	return runSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, run uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Run: run}
	})
}
