package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/games/life"
	"github.com/vovakirdan/tui-life/internal/platform/gui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var windowFlags simFlags

var windowCmd = &cobra.Command{
	Use:   "window [pattern]",
	Short: "Run a pattern in a desktop window",
	Long: `Opens a width x height window and draws one sprite x sprite square per
live cell. Available in binaries built with -tags ebiten.

Controls:
  Space/P   - Pause/resume
  N         - Single step (while paused)
  +/-       - Faster/slower
  R         - Restart from the seed pattern
  H         - Toggle the status overlay
  Q/Esc     - Quit

Examples:
  life window
  life window gosper_106.lif -w 1280 -h 720 -s 4 -e torus -r 255 -g 200 -b 0`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowFlags.register(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) {
	settings, err := loadSettings(cmd, &windowFlags, args)
	if err != nil {
		fail("%v", err)
	}

	game, err := life.Open(settings)
	if err != nil {
		fail("%v", err)
	}

	// Open storage (optional - continue without it if it fails)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := gui.Run(game, store, logger, flagFPS); err != nil {
		if errors.Is(err, gui.ErrUnavailable) {
			fmt.Fprintln(os.Stderr, "Error: this binary was built without window support.")
			fmt.Fprintln(os.Stderr, "Rebuild with 'go build -tags ebiten ./cmd/life' or use 'life run'.")
			os.Exit(1)
		}
		fail("%v", err)
	}
}
