// life runs Conway's Game of Life in the terminal, over SSH or in a window.
//
// Usage:
//
//	life run [pattern]       - Run a pattern in the terminal
//	life menu                - Pick a pattern and edges interactively
//	life list                - List bundled and on-disk patterns
//	life inspect <pattern>   - Show a pattern's cells and bounds
//	life step [pattern]      - Advance headlessly and print the grid
//	life history [pattern]   - Show recorded runs
//	life serve               - Start SSH server
//	life window [pattern]    - Run in a desktop window (ebiten builds)
//	life config              - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Config YAML (default search: ~/.life/configs, ./configs)
//	--fps <rate>     - Display frames per second (default: 30)
//	--db <path>      - Run history database (default: ~/.life/history.db)
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	// Register the bundled patterns
	_ "github.com/vovakirdan/tui-life/internal/games/life/patterns"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagDBPath  string
	flagVerbose bool
)

// logger is set up before any subcommand runs.
var logger = log.Default()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life runs Conway's Game of Life on a bounded grid whose edges are a
hedge of dead cells, a torus or a Klein bottle.

Available commands:
  run      - Run a pattern in the terminal
  menu     - Interactive pattern picker
  list     - Show bundled and on-disk patterns
  inspect  - Show a pattern's cells and bounds
  step     - Advance headlessly and print the grid
  history  - View recorded runs
  serve    - Start SSH server for remote viewing
  window   - Run in a desktop window
  config   - Print the effective configuration

Examples:
  life run
  life run pulsar_106.lif -e torus
  life menu
  life step glider_106.lif -n 4 -w 80 -h 80
  life serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger = newLogger()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Display rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.life/history.db", "Path to run history database")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

func newLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: flagVerbose,
		Prefix:          "life",
	})
	if flagVerbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// fail prints err and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
