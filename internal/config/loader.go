package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	lifecore "github.com/vovakirdan/tui-life/internal/games/life/core"
)

// Load loads the Life configuration.
// Search order: customPath -> ~/.life/configs/life.yaml -> ./configs/life.yaml -> embedded default
// Values missing from a file keep their defaults.
func Load(customPath string) (LifeConfig, error) {
	cfg := DefaultLifeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("life.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultLifeConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "life.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultLifeConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultLifeYAML, &cfg); err != nil {
		return DefaultLifeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".life", "configs", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg LifeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Resolve validates cfg and derives the simulation settings.
// Recoverable problems are replaced by defaults and logged as warnings on
// logger (log.Default() when nil). Only an impossible grid is an error.
func Resolve(cfg LifeConfig, logger *log.Logger) (Settings, error) {
	if logger == nil {
		logger = log.Default()
	}
	def := DefaultLifeConfig()

	width, height := cfg.Window.Width, cfg.Window.Height
	if width <= 1 {
		logger.Warn("width must be greater than 1, using default", "width", width, "default", def.Window.Width)
		width = def.Window.Width
	}
	if height <= 1 {
		logger.Warn("height must be greater than 1, using default", "height", height, "default", def.Window.Height)
		height = def.Window.Height
	}

	sprite := cfg.Window.SpriteSize
	if !validSprite(sprite) {
		logger.Warn("sprite size not valid, resetting to default", "sprite_size", sprite, "valid", ValidSpriteSizes, "default", def.Window.SpriteSize)
		sprite = def.Window.SpriteSize
	}

	topo, err := lifecore.ParseTopology(cfg.Edge)
	if err != nil {
		logger.Warn("unknown edge, using hedge", "edge", cfg.Edge)
		topo = lifecore.Clamped
	}

	sim, err := lifecore.NewConfig(width/sprite, height/sprite, topo)
	if err != nil {
		return Settings{}, fmt.Errorf("config: %dx%d pixels at sprite size %d: %w", width, height, sprite, err)
	}

	s := Settings{
		Sim:        sim,
		Width:      width,
		Height:     height,
		SpriteSize: sprite,
		Color: RGB{
			R: clampComponent(logger, "r", cfg.Color.R),
			G: clampComponent(logger, "g", cfg.Color.G),
			B: clampComponent(logger, "b", cfg.Color.B),
		},
		Pattern:    cfg.Pattern.File,
		PatternDir: cfg.Pattern.Dir,
		Pacing:     resolvePacing(logger, cfg.Pacing),
	}
	if s.Pattern == "" {
		s.Pattern = def.Pattern.File
	}
	s.Origin = resolveOrigin(logger, sim, sprite, cfg.Origin)

	return s, nil
}

// resolveOrigin defaults each axis to the grid centre. Under hedge an
// out-of-range axis is reset to the centre, and a column at the centre is
// moved to 2*sprite so small patterns start clear of the middle.
func resolveOrigin(logger *log.Logger, sim lifecore.Config, sprite int, o *OriginConfig) lifecore.Coord {
	origin := lifecore.C(sim.Rows/2, sim.Cols/2)
	if o != nil {
		origin = lifecore.C(o.X, o.Y)
	}

	if sim.Topology != lifecore.Clamped {
		return origin
	}
	if origin.Row < 0 || origin.Row >= sim.Rows {
		logger.Warn("invalid starting x coordinate for the hedge edge, resetting to default", "x", origin.Row, "rows", sim.Rows)
		origin.Row = sim.Rows / 2
	}
	if origin.Col < 0 || origin.Col >= sim.Cols {
		logger.Warn("invalid starting y coordinate for the hedge edge, resetting to default", "y", origin.Col, "cols", sim.Cols)
		origin.Col = sim.Cols / 2
	}
	if origin.Col == sim.Cols/2 && 2*sprite < sim.Cols {
		origin.Col = 2 * sprite
	}
	return origin
}

func clampComponent(logger *log.Logger, name string, v int) uint8 {
	if v < 0 || v > 255 {
		clamped := min(max(v, 0), 255)
		logger.Warn("color component out of range, clamping", "component", name, "value", v, "clamped", clamped)
		return uint8(clamped)
	}
	return uint8(v)
}

func resolvePacing(logger *log.Logger, p PacingConfig) PacingConfig {
	speeds := make([]int, 0, len(p.Speeds))
	for _, s := range p.Speeds {
		if s > 0 && (len(speeds) == 0 || s > speeds[len(speeds)-1]) {
			speeds = append(speeds, s)
		}
	}
	if len(speeds) == 0 {
		logger.Warn("no usable pacing speeds, using defaults", "speeds", p.Speeds)
		return DefaultPacingConfig()
	}
	return PacingConfig{
		Speeds:  speeds,
		Initial: min(max(p.Initial, 0), len(speeds)-1),
	}
}

// Fit returns a copy of s whose grid fills a terminal of w x h characters:
// one row per character, two columns per line, one line kept for status.
// The origin is re-derived from the new grid.
func (s Settings) Fit(w, h int) (Settings, error) {
	sim, err := lifecore.NewConfig(w, (h-1)*2, s.Sim.Topology)
	if err != nil {
		return s, fmt.Errorf("config: terminal %dx%d too small: %w", w, h, err)
	}
	s.Sim = sim
	s.Origin = resolveOrigin(log.New(io.Discard), sim, s.SpriteSize, nil)
	return s, nil
}

// WithTopology returns a copy of s using topology t on the same grid.
func (s Settings) WithTopology(t lifecore.Topology) (Settings, error) {
	sim, err := lifecore.NewConfig(s.Sim.Rows, s.Sim.Cols, t)
	if err != nil {
		return s, fmt.Errorf("config: %w", err)
	}
	s.Sim = sim
	return s, nil
}
