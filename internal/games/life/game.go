// Package life adapts the Life engine to the platform: it owns one run
// (simulation, seed pattern, pacing, viewport) and turns input frames into
// generations and screen buffers.
package life

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	lifecore "github.com/vovakirdan/tui-life/internal/games/life/core"
	"github.com/vovakirdan/tui-life/internal/games/life/patterns"
	"github.com/vovakirdan/tui-life/internal/registry"
)

// panStep is how many cells one pan action moves the viewport.
const panStep = 4

// Game is a single simulation run.
type Game struct {
	settings config.Settings
	pattern  *patterns.Pattern
	ref      string

	sim    *lifecore.Simulation
	pacing *config.Pacing

	tickRate int
	owed     float64 // fractional generations carried between ticks
	paused   bool
	showHelp bool
	peak     int
	last     lifecore.StepResult
	view     core.Rect // visible part of the grid: X along rows, Y along columns
}

// New creates a run and seeds it. ref names the pattern for display and history.
func New(s config.Settings, p *patterns.Pattern, ref string) (*Game, error) {
	sim, err := lifecore.NewSimulation(s.Sim)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	g := &Game{
		settings: s,
		pattern:  p,
		ref:      ref,
		sim:      sim,
		pacing:   config.NewPacing(s.Pacing),
		tickRate: core.DefaultConfig().TickRate,
	}
	if err := g.seed(); err != nil {
		return nil, err
	}
	def := core.DefaultConfig()
	g.Resize(def.ScreenW, def.ScreenH)
	return g, nil
}

// Open resolves the pattern named by the settings and creates a run.
func Open(s config.Settings) (*Game, error) {
	p, err := patterns.Open(s.Pattern, s.PatternDir)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	return New(s, p, s.Pattern)
}

func (g *Game) seed() error {
	g.sim.Reset()
	if err := g.pattern.Place(g.sim.Current(), g.settings.Sim, g.settings.Origin); err != nil {
		return fmt.Errorf("life: %w", err)
	}
	g.owed = 0
	g.peak = g.sim.Current().Population()
	g.last = lifecore.StepResult{Population: g.peak, Changed: true}
	return nil
}

// ID returns the identifier used for history records.
func (g *Game) ID() string {
	return "life"
}

// Title returns the display name of the seed pattern.
func (g *Game) Title() string {
	if g.pattern != nil && g.pattern.Name != "" {
		return g.pattern.Name
	}
	return registry.Title(g.ref)
}

// Pattern returns the pattern reference the run was seeded from.
func (g *Game) Pattern() string {
	return g.ref
}

// Settings returns the resolved run settings.
func (g *Game) Settings() config.Settings {
	return g.settings
}

// Simulation exposes the engine for renderers that read the grid directly.
func (g *Game) Simulation() *lifecore.Simulation {
	return g.sim
}

// Reset reseeds the pattern and adapts the viewport to the screen.
// Pause state and speed are kept.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	if cfg.TickRate > 0 {
		g.tickRate = cfg.TickRate
	}
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	return g.seed()
}

// Resize fits the viewport to a screen of w x h characters, keeping its centre.
// The bottom line is reserved for the status bar; each character shows two columns.
func (g *Game) Resize(w, h int) {
	bounds := g.gridBounds()
	cx, cy := g.settings.Origin.Row, g.settings.Origin.Col
	if !g.view.Empty() {
		cx, cy = g.view.Center()
	}
	g.view = core.NewRect(0, 0, max(w, 0), max(h-1, 0)*2).CenterOn(cx, cy, bounds)
}

func (g *Game) gridBounds() core.Rect {
	return core.NewRect(0, 0, g.settings.Sim.Rows, g.settings.Sim.Cols)
}

// Step handles one display tick: applies input, then advances as many
// generations as the current rate owes.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	advanced := 0

	if in.Has(core.ActionRestart) {
		// Reseeding a pattern that already placed once cannot fail.
		_ = g.seed()
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.owed = 0
	}
	if in.Has(core.ActionHelp) {
		g.showHelp = !g.showHelp
	}
	if in.Has(core.ActionFaster) {
		g.pacing.Faster()
	}
	if in.Has(core.ActionSlower) {
		g.pacing.Slower()
	}
	g.pan(in)

	switch {
	case g.paused:
		if in.Has(core.ActionStep) {
			g.advance()
			advanced++
		}
	default:
		g.owed += float64(g.pacing.Rate()) / float64(g.tickRate)
		for g.owed >= 1 {
			g.owed--
			g.advance()
			advanced++
		}
	}

	return core.StepResult{State: g.State(), Advanced: advanced}
}

// Advance computes n generations regardless of pause state and pacing.
func (g *Game) Advance(n int) core.RunState {
	for i := 0; i < n; i++ {
		g.advance()
	}
	return g.State()
}

func (g *Game) advance() {
	g.last = g.sim.Step()
	g.peak = max(g.peak, g.last.Population)
}

func (g *Game) pan(in core.InputFrame) {
	dx, dy := 0, 0
	if in.Has(core.ActionLeft) {
		dx -= panStep
	}
	if in.Has(core.ActionRight) {
		dx += panStep
	}
	if in.Has(core.ActionUp) {
		dy -= panStep
	}
	if in.Has(core.ActionDown) {
		dy += panStep
	}
	if dx != 0 || dy != 0 {
		g.view = g.view.Pan(dx, dy, g.gridBounds())
	}
}

// SetTickRate sets the display rate that generations are paced against.
func (g *Game) SetTickRate(rate int) {
	if rate > 0 {
		g.tickRate = rate
		g.owed = 0
	}
}

// SetPaused pauses or resumes the run.
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
	g.owed = 0
}

// Pacing returns the generation rate controller.
func (g *Game) Pacing() *config.Pacing {
	return g.pacing
}

// State returns the current run state.
func (g *Game) State() core.RunState {
	return core.RunState{
		Generation: g.sim.Generation(),
		Population: g.last.Population,
		Peak:       g.peak,
		Paused:     g.paused,
		Extinct:    g.last.Population == 0,
		Stable:     !g.last.Changed,
		Rate:       g.pacing.Rate(),
	}
}
