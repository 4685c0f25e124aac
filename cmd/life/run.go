package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/games/life"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	runFlags simFlags
	flagFit  bool
)

var runCmd = &cobra.Command{
	Use:   "run [pattern]",
	Short: "Run a pattern in the terminal",
	Long: `Run a pattern in the terminal. Each character shows two cells of a grid
row; grid rows run left to right and columns top to bottom.

The grid is width/sprite rows by height/sprite columns, as configured. With
--fit it is sized to the terminal instead.

Controls:
  Space/P     - Pause/resume
  N/.         - Single step (while paused)
  +/-         - Faster/slower
  R           - Restart from the seed pattern
  Arrows/WASD - Pan a grid larger than the terminal
  Ctrl+S      - Save a text screenshot to ~/.life/screenshots
  ?           - Show/hide the controls
  Q/Ctrl+C    - Quit

Examples:
  life run
  life run pulsar_106.lif -e torus
  life run ./my.lif -w 640 -h 480 -s 4 -o 10,20
  life run gosper_106.lif --fit -e k`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRun,
}

func init() {
	runFlags.register(runCmd)
	runCmd.Flags().BoolVar(&flagFit, "fit", false, "Size the grid to the terminal")
}

func runRun(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(cmd, &runFlags, args)
	if err != nil {
		fail("%v", err)
	}

	width, height := terminalSize()
	if flagFit {
		if settings, err = settings.Fit(width, height); err != nil {
			fail("%v", err)
		}
	}

	game, err := life.Open(settings)
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("run ready", "pattern", game.Pattern(), "grid", settings.Sim, "origin", settings.Origin)

	// Open storage (optional - continue without it if it fails)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
	if _, err := tui.Run(game, store, logger, cfg); err != nil {
		fail("%v", err)
	}
}
