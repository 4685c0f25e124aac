package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the default Life configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			SpriteSize: 8,
		},
		Color: ColorConfig{
			R: 140,
			G: 145,
			B: 250,
		},
		Edge: "hedge",
		Pattern: PatternConfig{
			File: "glider_106.lif",
			Dir:  "Conway_Life",
		},
		Pacing: DefaultPacingConfig(),
	}
}

// DefaultPacingConfig returns the default generation rates.
func DefaultPacingConfig() PacingConfig {
	return PacingConfig{
		Speeds:  []int{1, 2, 5, 10, 20, 30, 60},
		Initial: 5,
	}
}
