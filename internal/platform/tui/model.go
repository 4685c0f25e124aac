package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/games/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// Model is the Bubble Tea model for one simulation run.
type Model struct {
	game       *life.Game
	runID      uint64
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	palette    Palette
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	state      core.RunState
	started    time.Time
	quitting   bool
	backToMenu bool
	quitOnBack bool // leaving the run ends the program
	saved      bool // whether the run has been written to history
}

// NewModel creates a new Bubble Tea model for the given run.
// store and logger may be nil.
func NewModel(game *life.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.Default()
	}
	game.SetTickRate(cfg.TickRate)
	game.Resize(cfg.ScreenW, cfg.ScreenH)

	return Model{
		game:       game,
		runID:      nextRunID(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		palette:    NewPalette(game.Settings().Color),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		state:      game.State(),
		started:    time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.runID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Run != m.runID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		m.saveRun()
		if m.quitOnBack {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize keeps the run and refits the viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes display ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) {
		// A restart begins a new history entry.
		m.saveRun()
		m.saved = false
		m.started = time.Now()
	}

	result := m.game.Step(m.inputFrame)
	m.state = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.runID)
}

// saveRun records the run in history once. Runs that never advanced are skipped.
func (m *Model) saveRun() {
	if m.saved || m.store == nil || m.game.State().Generation == 0 {
		return
	}
	m.saved = true

	id, err := m.store.SaveRun(m.game.Record(time.Since(m.started)))
	if err != nil {
		m.logger.Warn("could not save run", "pattern", m.game.Pattern(), "error", err)
		return
	}
	m.logger.Debug("run saved", "run", id, "generations", m.game.State().Generation)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".life", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_gen%d_%s.txt", m.game.ID(), m.game.State().Generation, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, the run continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.palette)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the run state as of the last tick.
func (m Model) State() core.RunState {
	return m.state
}

// Run starts the Bubble Tea program for the given run.
// Returns true if the user left the run for the menu rather than quitting.
func Run(game *life.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(game, store, logger, cfg)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
