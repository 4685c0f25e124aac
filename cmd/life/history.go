package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
	flagHistoryID    string
)

var historyCmd = &cobra.Command{
	Use:   "history [pattern]",
	Short: "Show recorded runs",
	Long: `Displays the runs recorded when leaving an interactive run. With a
pattern, only that pattern's runs are shown, longest first.

Examples:
  life history
  life history glider_106.lif
  life history --id 3f2a...
  life history --clear
  life history pulsar_106.lif --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum runs to show")
	historyCmd.Flags().StringVar(&flagHistoryID, "id", "", "Show a single run by its ID")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the recorded runs instead of showing them")
}

func runHistory(_ *cobra.Command, args []string) {
	pattern := ""
	if len(args) > 0 {
		pattern = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("cannot open database: %v", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(pattern); err != nil {
			fail("%v", err)
		}
		fmt.Println("History cleared.")
		return
	}

	if flagHistoryID != "" {
		showRun(store, flagHistoryID)
		return
	}

	var runs []storage.RunRecord
	if pattern == "" {
		runs, err = store.RecentRuns(flagHistoryLimit)
	} else {
		runs, err = store.PatternRuns(pattern, flagHistoryLimit)
	}
	if err != nil {
		fail("cannot get runs: %v", err)
	}

	title := "All patterns"
	if pattern != "" {
		title = pattern
	}
	fmt.Printf("Run History - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Leave a 'life run' or 'life menu' run to record it.")
		return
	}

	// Print header
	fmt.Printf("  %-20s  %-6s  %-9s  %8s  %6s  %6s  %8s  %-16s  %s\n", "Pattern", "Edges", "Grid", "Gens", "Peak", "Final", "Time", "Date", "ID")
	fmt.Printf("  %-20s  %-6s  %-9s  %8s  %6s  %6s  %8s  %-16s  %s\n", "-------", "-----", "----", "----", "----", "-----", "----", "----", "--")

	for _, r := range runs {
		name := r.Title
		if name == "" {
			name = r.Pattern
		}
		if len(name) > 20 {
			name = name[:19] + "."
		}
		fmt.Printf("  %-20s  %-6s  %-9s  %8d  %6d  %6d  %8s  %-16s  %s\n",
			name, r.Topology, fmt.Sprintf("%dx%d", r.Rows, r.Cols),
			r.Generations, r.Peak, r.Population,
			(time.Duration(r.Duration) * time.Second).String(),
			r.CreatedAt.Format("2006-01-02 15:04"), r.RunID)
	}

	if pattern == "" {
		return
	}
	stats, err := store.AllPatternStats()
	if err == nil {
		if s, ok := stats[pattern]; ok {
			fmt.Println()
			fmt.Printf("Runs: %d  Longest: %d generations  Highest peak: %d\n", s.Runs, s.MaxGenerations, s.MaxPeak)
		}
	}
}

func showRun(store *storage.Store, id string) {
	r, err := store.RunByID(id)
	if err != nil {
		fail("%v", err)
	}
	if r == nil {
		fail("no run with ID %q", id)
	}

	fmt.Printf("Run:         %s\n", r.RunID)
	fmt.Printf("Pattern:     %s (%s)\n", r.Title, r.Pattern)
	fmt.Printf("Edges:       %s\n", r.Topology)
	fmt.Printf("Grid:        %dx%d\n", r.Rows, r.Cols)
	fmt.Printf("Generations: %d\n", r.Generations)
	fmt.Printf("Population:  %d (peak %d)\n", r.Population, r.Peak)
	fmt.Printf("Duration:    %s\n", time.Duration(r.Duration)*time.Second)
	fmt.Printf("Recorded:    %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"))
}
