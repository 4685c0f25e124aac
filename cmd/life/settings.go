package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
	lifecore "github.com/vovakirdan/tui-life/internal/games/life/core"
)

// simFlags are the simulation flags shared by run, step and window.
// Each one overrides the config file only when given.
type simFlags struct {
	width   int
	height  int
	sprite  int
	red     int
	green   int
	blue    int
	edge    string
	file    string
	dir     string
	origin  string
	initial int
}

// register adds the flags to cmd. -h is the board height, so help is
// only reachable as --help.
func (f *simFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Bool("help", false, "Help for "+cmd.Name())
	fs.IntVarP(&f.width, "width", "w", 0, "Board width in pixels (grid rows = width / sprite)")
	fs.IntVarP(&f.height, "height", "h", 0, "Board height in pixels (grid cols = height / sprite)")
	fs.IntVarP(&f.sprite, "sprite", "s", 0, "Cell size in pixels: 2, 4, 8 or 16")
	fs.IntVarP(&f.red, "red", "r", 0, "Live cell red component (0-255)")
	fs.IntVarP(&f.green, "green", "g", 0, "Live cell green component (0-255)")
	fs.IntVarP(&f.blue, "blue", "b", 0, "Live cell blue component (0-255)")
	fs.StringVarP(&f.edge, "edge", "e", "", "Edge behaviour: hedge, torus or klein (prefixes accepted)")
	fs.StringVarP(&f.file, "file", "f", "", "Pattern file, file name under --dir, or bundled ID")
	fs.StringVar(&f.dir, "dir", "", "Directory searched for pattern file names")
	fs.StringVarP(&f.origin, "origin", "o", "", "Placement origin as row,col")
	fs.IntVar(&f.initial, "speed", 0, "Initial generations per second")
}

// apply copies the flags that were set onto cfg.
func (f *simFlags) apply(cmd *cobra.Command, cfg *config.LifeConfig) error {
	fs := cmd.Flags()
	if fs.Changed("width") {
		cfg.Window.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Window.Height = f.height
	}
	if fs.Changed("sprite") {
		cfg.Window.SpriteSize = f.sprite
	}
	if fs.Changed("red") {
		cfg.Color.R = f.red
	}
	if fs.Changed("green") {
		cfg.Color.G = f.green
	}
	if fs.Changed("blue") {
		cfg.Color.B = f.blue
	}
	if fs.Changed("edge") {
		if t, err := lifecore.ParseTopology(f.edge); err != nil {
			logger.Warn("unknown edge, keeping current", "edge", f.edge, "current", cfg.Edge)
		} else {
			cfg.Edge = t.String()
		}
	}
	if fs.Changed("file") {
		cfg.Pattern.File = f.file
	}
	if fs.Changed("dir") {
		cfg.Pattern.Dir = f.dir
	}
	if fs.Changed("origin") {
		o, err := parseOrigin(f.origin)
		if err != nil {
			return err
		}
		cfg.Origin = &o
	}
	if fs.Changed("speed") {
		cfg.Pacing.Initial = speedIndex(cfg.Pacing.Speeds, f.initial)
	}
	return nil
}

// parseOrigin reads "row,col".
func parseOrigin(s string) (config.OriginConfig, error) {
	x, y, ok := strings.Cut(s, ",")
	if !ok {
		return config.OriginConfig{}, fmt.Errorf("origin %q: expected row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(x))
	if err != nil {
		return config.OriginConfig{}, fmt.Errorf("origin %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(y))
	if err != nil {
		return config.OriginConfig{}, fmt.Errorf("origin %q: %w", s, err)
	}
	return config.OriginConfig{X: row, Y: col}, nil
}

// speedIndex returns the index of the fastest speed not above gps.
func speedIndex(speeds []int, gps int) int {
	idx := 0
	for i, s := range speeds {
		if s <= gps {
			idx = i
		}
	}
	return idx
}

// loadSettings loads the config file, applies f and an optional pattern
// argument, and resolves the result.
func loadSettings(cmd *cobra.Command, f *simFlags, args []string) (config.Settings, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Settings{}, err
	}
	if f != nil {
		if err := f.apply(cmd, &cfg); err != nil {
			return config.Settings{}, err
		}
	}
	if len(args) > 0 {
		cfg.Pattern.File = args[0]
	}
	return config.Resolve(cfg, logger)
}
