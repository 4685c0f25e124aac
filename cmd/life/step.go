package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/games/life"
)

var (
	stepFlags       simFlags
	flagGenerations int
	flagStatsOnly   bool
)

var stepCmd = &cobra.Command{
	Use:   "step [pattern]",
	Short: "Advance a pattern headlessly and print the grid",
	Long: `Seeds the grid like 'life run', computes the requested number of
generations without any display and prints the result: one line per grid
row, '#' for a live cell and '.' for a dead one.

Examples:
  life step -n 4
  life step blinker_106.lif -n 1 -w 40 -h 40 -s 8
  life step rpent_106.lif -n 1103 -e torus --stats`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStep,
}

func init() {
	stepFlags.register(stepCmd)
	stepCmd.Flags().IntVarP(&flagGenerations, "generations", "n", 1, "Generations to compute")
	stepCmd.Flags().BoolVar(&flagStatsOnly, "stats", false, "Print statistics only, not the grid")
}

func runStep(cmd *cobra.Command, args []string) {
	if flagGenerations < 0 {
		fail("generations must not be negative, got %d", flagGenerations)
	}

	settings, err := loadSettings(cmd, &stepFlags, args)
	if err != nil {
		fail("%v", err)
	}

	game, err := life.Open(settings)
	if err != nil {
		fail("%v", err)
	}

	for i := 0; i < flagGenerations; i++ {
		st := game.Advance(1)
		logger.Debug("generation", "gen", st.Generation, "population", st.Population)
	}

	snap := game.Snapshot()
	if !flagStatsOnly {
		fmt.Println(snap.Live)
		fmt.Println()
	}
	fmt.Printf("%s on %dx%d %s: generation %d, population %d, peak %d (%s)\n",
		snap.Title, snap.Rows, snap.Cols, snap.Topology, snap.Generation, snap.Population, snap.Peak, snap.State)
}
