package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/games/life"
	lifecore "github.com/vovakirdan/tui-life/internal/games/life/core"
	"github.com/vovakirdan/tui-life/internal/games/life/patterns"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var quiet = log.New(io.Discard)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}

func newTestGame(t *testing.T) *life.Game {
	t.Helper()
	sim, err := lifecore.NewConfig(10, 10, lifecore.Torus)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	p, err := patterns.Parse(strings.NewReader("#N Blinker\n0 0\n0 1\n0 2\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	s := config.Settings{
		Sim:    sim,
		Origin: lifecore.C(5, 4),
		Color:  config.RGB{R: 140, G: 145, B: 250},
		Pacing: config.PacingConfig{Speeds: []int{30}},
	}
	g, err := life.New(s, p, "blinker")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func testSettings(t *testing.T) config.Settings {
	t.Helper()
	s, err := config.Resolve(config.DefaultLifeConfig(), quiet)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	return s
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg{Run: m.runID})
	return m
}

func TestModelTickAdvances(t *testing.T) {
	m := NewModel(newTestGame(t), nil, quiet, testRuntime)

	m, cmd := update(t, m, TickMsg{Run: m.runID})
	if m.State().Generation != 1 {
		t.Errorf("Generation = %d, expected 1", m.State().Generation)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := NewModel(newTestGame(t), nil, quiet, testRuntime)

	m, cmd := update(t, m, TickMsg{Run: m.runID + 1000})
	if m.State().Generation != 0 {
		t.Errorf("stale tick advanced the run to %d", m.State().Generation)
	}
	if cmd != nil {
		t.Error("stale tick should not schedule another")
	}
}

func TestModelPauseAndStep(t *testing.T) {
	m := NewModel(newTestGame(t), nil, quiet, testRuntime)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(t, m)
	m = tick(t, m)
	if !m.State().Paused || m.State().Generation != 0 {
		t.Fatalf("paused=%v gen=%d after pause", m.State().Paused, m.State().Generation)
	}

	m, _ = update(t, m, runeKey('n'))
	m = tick(t, m)
	if m.State().Generation != 1 {
		t.Errorf("Generation = %d after a single step, expected 1", m.State().Generation)
	}
}

func TestModelBackSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	defer store.Close()

	m := NewModel(newTestGame(t), store, quiet, testRuntime)
	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}

	m, cmd := update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Fatal("b should leave the run")
	}
	if cmd != nil {
		t.Error("embedded model should not quit the program on back")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	if runs[0].Generations != 3 || runs[0].Pattern != "blinker" || runs[0].Topology != "torus" {
		t.Errorf("saved run = %+v", runs[0])
	}
	if m.View() != "" {
		t.Error("View should be empty after leaving")
	}
}

func TestModelQuitWithoutGenerationsSkipsHistory(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	defer store.Close()

	m := NewModel(newTestGame(t), store, quiet, testRuntime)
	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q should quit")
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("saved %d runs for an untouched run", len(runs))
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := NewModel(newTestGame(t), nil, quiet, testRuntime)
	m = tick(t, m)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if m.State().Generation != 1 {
		t.Errorf("resize reset the run to generation %d", m.State().Generation)
	}
	if m.screen.Width() != 40 || m.screen.Height() != 12 {
		t.Errorf("screen = %dx%d, expected 40x12", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(newTestGame(t), nil, quiet, testRuntime)

	view := m.View()
	if !strings.Contains(view, "gen 0") {
		t.Errorf("view missing status line:\n%s", view)
	}
	if lines := strings.Count(view, "\n"); lines != testRuntime.ScreenH-1 {
		t.Errorf("view has %d line breaks, expected %d", lines, testRuntime.ScreenH-1)
	}
}

func TestMenuNavigation(t *testing.T) {
	items := PatternItems("")
	if len(items) < 2 {
		t.Fatalf("expected bundled patterns, got %d", len(items))
	}
	m := NewMenuModel(items, lifecore.Clamped, testRuntime)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(MenuModel)
	if m.Topology() != lifecore.Torus {
		t.Errorf("Topology = %s, expected torus", m.Topology())
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(MenuModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(MenuModel)
	if m.Topology() != lifecore.Klein {
		t.Errorf("Topology = %s, expected klein", m.Topology())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() == nil || m.Selected().Ref != items[1].Ref {
		t.Errorf("Selected = %v, expected %s", m.Selected(), items[1].Ref)
	}
	if cmd == nil {
		t.Error("selecting should end the menu")
	}
}

func TestMenuHistory(t *testing.T) {
	m := NewMenuModel(PatternItems(""), lifecore.Clamped, testRuntime)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsHistory() {
		t.Error("tab should open the history board")
	}
}

func TestPatternItemsIncludesDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.lif"), []byte("#Life 1.06\n#N Mine\n0 0\n1 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	items := PatternItems(dir)
	last := items[len(items)-1]
	if last.Title != "Mine" || last.Source != filepath.Base(dir) {
		t.Errorf("last item = %+v", last)
	}
	if last.Ref != filepath.Join(dir, "mine.lif") {
		t.Errorf("Ref = %q", last.Ref)
	}
	if len(PatternItems(filepath.Join(dir, "missing"))) != len(items)-1 {
		t.Error("missing directory should only drop its own entries")
	}
}

func TestStartRunFitsTerminal(t *testing.T) {
	g, err := StartRun(testSettings(t), "blinker_106.lif", lifecore.Torus, 80, 24, true)
	if err != nil {
		t.Fatalf("StartRun failed: %v", err)
	}
	sim := g.Settings().Sim
	if sim.Rows != 80 || sim.Cols != 46 || sim.Topology != lifecore.Torus {
		t.Errorf("Sim = %v, expected torus 80x46", sim)
	}
	if g.State().Population != 3 {
		t.Errorf("Population = %d, expected 3", g.State().Population)
	}

	if _, err := StartRun(testSettings(t), "nope.lif", lifecore.Torus, 80, 24, false); err == nil {
		t.Error("unknown pattern should fail")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, quiet, testSettings(t), testRuntime)

	send := func(msg tea.Msg) tea.Cmd {
		next, cmd := s.Update(msg)
		s = next.(SessionModel)
		return cmd
	}

	send(tea.KeyMsg{Type: tea.KeyEnter})
	if s.view != viewRun || s.run == nil {
		t.Fatalf("enter should start a run, view = %d", s.view)
	}

	send(runeKey('b'))
	if s.view != viewMenu || s.run != nil {
		t.Fatalf("b should return to the menu, view = %d", s.view)
	}

	send(tea.KeyMsg{Type: tea.KeyTab})
	if s.view != viewHistory {
		t.Fatalf("tab should open history, view = %d", s.view)
	}
	send(tea.KeyMsg{Type: tea.KeyEsc})
	if s.view != viewMenu {
		t.Fatalf("esc should return to the menu, view = %d", s.view)
	}

	if cmd := send(runeKey('q')); cmd == nil || !s.quitting {
		t.Error("q should end the session")
	}
}
