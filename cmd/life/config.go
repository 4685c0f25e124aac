package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
)

var (
	configFlags  simFlags
	flagResolved bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration as YAML after the config file and any flags
have been applied. Save the output to ~/.life/configs/life.yaml to use it as
your defaults.

With --resolved, prints the settings a run would use instead: grid size,
edges, origin and colour after invalid values were replaced.`,
	Run: runConfig,
}

func init() {
	configFlags.register(configCmd)
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the resolved run settings")
}

func runConfig(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if err := configFlags.apply(cmd, &cfg); err != nil {
		fail("%v", err)
	}

	if !flagResolved {
		data, err := config.Marshal(cfg)
		if err != nil {
			fail("%v", err)
		}
		fmt.Print(string(data))
		return
	}

	s, err := config.Resolve(cfg, logger)
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("Grid:    %d rows x %d cols (%s)\n", s.Sim.Rows, s.Sim.Cols, s.Sim.Topology)
	fmt.Printf("Window:  %dx%d pixels, sprite %d\n", s.Width, s.Height, s.SpriteSize)
	fmt.Printf("Origin:  %v\n", s.Origin)
	fmt.Printf("Colour:  %s\n", s.Color.Hex())
	fmt.Printf("Pattern: %s (dir %s)\n", s.Pattern, s.PatternDir)
	fmt.Printf("Speeds:  %v gen/s, starting at %d\n", s.Pacing.Speeds, s.Pacing.Speeds[s.Pacing.Initial])
}
