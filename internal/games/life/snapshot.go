package life

import (
	"time"

	"github.com/vovakirdan/tui-life/internal/storage"
)

// RunStateType represents the current run state.
type RunStateType string

const (
	StateRunning RunStateType = "running"
	StatePaused  RunStateType = "paused"
	StateStable  RunStateType = "stable"
	StateExtinct RunStateType = "extinct"
)

// Snapshot captures the run for determinism testing and history records.
type Snapshot struct {
	Pattern    string
	Title      string
	Topology   string
	Rows       int
	Cols       int
	Generation uint64
	Population int
	Peak       int
	Live       string // current grid, '#' alive and '.' dead
	State      RunStateType
}

// Snapshot returns the current run snapshot.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	state := StateRunning
	switch {
	case st.Extinct:
		state = StateExtinct
	case st.Stable:
		state = StateStable
	case st.Paused:
		state = StatePaused
	}

	cfg := g.settings.Sim
	return Snapshot{
		Pattern:    g.ref,
		Title:      g.Title(),
		Topology:   cfg.Topology.String(),
		Rows:       cfg.Rows,
		Cols:       cfg.Cols,
		Generation: st.Generation,
		Population: st.Population,
		Peak:       st.Peak,
		Live:       g.sim.Current().String(),
		State:      state,
	}
}

// Record converts the run into a history entry. elapsed is the wall time
// the run was on screen.
func (g *Game) Record(elapsed time.Duration) storage.RunRecord {
	snap := g.Snapshot()
	return storage.RunRecord{
		Pattern:     snap.Pattern,
		Title:       snap.Title,
		Topology:    snap.Topology,
		Rows:        snap.Rows,
		Cols:        snap.Cols,
		Generations: snap.Generation,
		Peak:        snap.Peak,
		Population:  snap.Population,
		Duration:    int(elapsed.Seconds()),
	}
}
