package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var flagMenuFit bool

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start interactive pattern picker",
	Long: `Opens an interactive menu to pick a seed pattern and the edge behaviour.

Bundled patterns are listed first, followed by the .lif files found in the
configured pattern directory.

Controls:
  Up/Down (W/S, K/J)     - Navigate
  Left/Right (A/D, H/L)  - Cycle edges: hedge, torus, klein
  Enter/Space            - Run the selected pattern
  Tab                    - View run history
  Q/Esc                  - Quit

While a run is on screen, B/Esc returns to the menu.`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMenuFit, "fit", true, "Size each grid to the terminal")
}

func runMenu(cmd *cobra.Command, _ []string) {
	settings, err := loadSettings(cmd, nil, nil)
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

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	items := tui.PatternItems(settings.PatternDir)
	topo := settings.Sim.Topology

	// Menu loop - allows returning to menu after a run
	for {
		menuResult, err := tui.RunMenu(items, topo, cfg)
		if err != nil {
			fail("%v", err)
		}
		cfg = menuResult.Config
		topo = menuResult.Topology

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		game, err := tui.StartRun(settings, menuResult.Ref, topo, cfg.ScreenW, cfg.ScreenH, flagMenuFit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		backToMenu, err := tui.Run(game, store, logger, cfg)
		if err != nil {
			fail("%v", err)
		}
		if !backToMenu {
			break
		}
	}
}
