//go:build ebiten

package gui

import (
	"errors"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/games/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// keyActions maps window keys to run actions.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionPause},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyN, core.ActionStep},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyEqual, core.ActionFaster},
	{ebiten.KeyNumpadAdd, core.ActionFaster},
	{ebiten.KeyMinus, core.ActionSlower},
	{ebiten.KeyNumpadSubtract, core.ActionSlower},
}

// Window adapts a run to the ebiten.Game interface.
type Window struct {
	game    *life.Game
	store   *storage.Store
	logger  *log.Logger
	sprite  int
	live    color.RGBA
	input   core.InputFrame
	showHUD bool
	started time.Time
}

// New constructs a Window for the run.
func New(game *life.Game, store *storage.Store, logger *log.Logger) *Window {
	s := game.Settings()
	return &Window{
		game:    game,
		store:   store,
		logger:  logger,
		sprite:  s.SpriteSize,
		live:    liveColor(s.Color),
		input:   core.NewInputFrame(),
		showHUD: true,
		started: time.Now(),
	}
}

// Update handles per-frame input and advances the run.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		w.showHUD = !w.showHUD
	}

	w.input.Clear()
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			w.input.Set(ka.action)
		}
	}
	w.game.Step(w.input)
	return nil
}

// Draw renders one sprite x sprite square per live cell.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	grid := w.game.Simulation().Current()
	size := float32(w.sprite)
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			if grid.Alive(r, c) {
				vector.DrawFilledRect(screen, float32(r)*size, float32(c)*size, size, size, w.live, false)
			}
		}
	}

	if w.showHUD {
		text.Draw(screen, statusText(w.game.Title(), w.game.State()), basicfont.Face7x13, 4, 14, color.White)
	}
}

// Layout returns the logical screen size: rows across, columns down.
func (w *Window) Layout(int, int) (int, int) {
	sim := w.game.Settings().Sim
	return sim.Rows * w.sprite, sim.Cols * w.sprite
}

// Run opens the window and blocks until it is closed. The run is recorded
// in store when it advanced at least one generation.
func Run(game *life.Game, store *storage.Store, logger *log.Logger, tps int) error {
	if logger == nil {
		logger = log.Default()
	}
	w := New(game, store, logger)
	width, height := w.Layout(0, 0)

	game.SetTickRate(tps)
	ebiten.SetWindowTitle("Game of Life - " + game.Title())
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(width, height)

	err := ebiten.RunGame(w)
	w.save()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (w *Window) save() {
	if w.store == nil || w.game.State().Generation == 0 {
		return
	}
	if _, err := w.store.SaveRun(w.game.Record(time.Since(w.started))); err != nil {
		w.logger.Warn("could not save run", "pattern", w.game.Pattern(), "error", err)
	}
}
