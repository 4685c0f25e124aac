// Package config provides YAML-based configuration loading and resolution
// of simulation settings for the life platform.
package config

import (
	"fmt"

	lifecore "github.com/vovakirdan/tui-life/internal/games/life/core"
)

// LifeConfig is the on-disk configuration.
type LifeConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Color   ColorConfig   `yaml:"color"`
	Edge    string        `yaml:"edge"` // hedge, torus or klein
	Pattern PatternConfig `yaml:"pattern"`
	Origin  *OriginConfig `yaml:"origin,omitempty"` // nil means grid centre
	Pacing  PacingConfig  `yaml:"pacing"`
}

// WindowConfig defines the pixel size of the board and the cell scale.
// Grid rows = width / sprite_size, cols = height / sprite_size.
type WindowConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	SpriteSize int `yaml:"sprite_size"` // 2, 4, 8 or 16
}

// ColorConfig is the RGB colour of live cells. Components are clamped to [0, 255].
type ColorConfig struct {
	R int `yaml:"r"`
	G int `yaml:"g"`
	B int `yaml:"b"`
}

// PatternConfig selects the seed pattern.
type PatternConfig struct {
	File string `yaml:"file"` // path, file name under dir, or bundled ID
	Dir  string `yaml:"dir"`
}

// OriginConfig is the placement origin: x is the row, y the column.
type OriginConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PacingConfig defines the selectable generation rates.
type PacingConfig struct {
	Speeds  []int `yaml:"speeds"`  // generations per second, ascending
	Initial int   `yaml:"initial"` // index into Speeds
}

// RGB is a resolved live-cell colour.
type RGB struct {
	R, G, B uint8
}

// Hex returns the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Settings is a LifeConfig after validation and default substitution.
type Settings struct {
	Sim        lifecore.Config
	Origin     lifecore.Coord
	Width      int
	Height     int
	SpriteSize int
	Color      RGB
	Pattern    string
	PatternDir string
	Pacing     PacingConfig
}

// ValidSpriteSizes are the accepted cell scales in pixels.
var ValidSpriteSizes = []int{2, 4, 8, 16}

func validSprite(s int) bool {
	for _, v := range ValidSpriteSizes {
		if v == s {
			return true
		}
	}
	return false
}
