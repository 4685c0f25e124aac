package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	lifecore "github.com/vovakirdan/tui-life/internal/games/life/core"
)

func testLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.WarnLevel})
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	def := DefaultLifeConfig()
	if cfg.Window != def.Window {
		t.Errorf("Window = %+v, expected %+v", cfg.Window, def.Window)
	}
	if cfg.Color != def.Color {
		t.Errorf("Color = %+v, expected %+v", cfg.Color, def.Color)
	}
	if cfg.Edge != def.Edge || cfg.Pattern != def.Pattern {
		t.Errorf("unexpected edge/pattern: %q %+v", cfg.Edge, cfg.Pattern)
	}
	if cfg.Origin != nil {
		t.Errorf("default origin should be unset, got %+v", cfg.Origin)
	}
	if len(cfg.Pacing.Speeds) != len(def.Pacing.Speeds) || cfg.Pacing.Initial != def.Pacing.Initial {
		t.Errorf("Pacing = %+v, expected %+v", cfg.Pacing, def.Pacing)
	}
}

func TestLoadCustomPathKeepsMissingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	content := "edge: torus\nwindow:\n  sprite_size: 16\norigin:\n  x: 3\n  y: 4\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Edge != "torus" {
		t.Errorf("Edge = %q, expected torus", cfg.Edge)
	}
	if cfg.Window.SpriteSize != 16 {
		t.Errorf("SpriteSize = %d, expected 16", cfg.Window.SpriteSize)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("missing window fields should keep defaults, got %+v", cfg.Window)
	}
	if cfg.Origin == nil || cfg.Origin.X != 3 || cfg.Origin.Y != 4 {
		t.Errorf("Origin = %+v, expected {3 4}", cfg.Origin)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("window: [not, a, map\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".life", "configs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "life.yaml"), []byte("edge: klein\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Edge != "klein" {
		t.Errorf("Edge = %q, expected klein from user config", cfg.Edge)
	}
}

func TestResolveDefaults(t *testing.T) {
	var buf bytes.Buffer
	s, err := Resolve(DefaultLifeConfig(), testLogger(&buf))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if s.Sim.Rows != 160 || s.Sim.Cols != 90 {
		t.Errorf("grid = %dx%d, expected 160x90", s.Sim.Rows, s.Sim.Cols)
	}
	if s.Sim.Topology != lifecore.Clamped {
		t.Errorf("Topology = %v, expected hedge", s.Sim.Topology)
	}
	// Hedge moves a centred column to 2*sprite.
	if s.Origin != lifecore.C(80, 16) {
		t.Errorf("Origin = %v, expected (80,16)", s.Origin)
	}
	if s.Color != (RGB{R: 140, G: 145, B: 250}) {
		t.Errorf("Color = %+v", s.Color)
	}
	if s.Color.Hex() != "#8c91fa" {
		t.Errorf("Hex() = %q, expected #8c91fa", s.Color.Hex())
	}
	if buf.Len() != 0 {
		t.Errorf("defaults should not warn, got %q", buf.String())
	}
}

func TestResolveSubstitutesInvalidValues(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultLifeConfig()
	cfg.Window.Width = 1
	cfg.Window.Height = -5
	cfg.Window.SpriteSize = 5
	cfg.Edge = "sphere"
	cfg.Color = ColorConfig{R: 300, G: -1, B: 10}

	s, err := Resolve(cfg, testLogger(&buf))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if s.Width != 1280 || s.Height != 720 {
		t.Errorf("size = %dx%d, expected defaults", s.Width, s.Height)
	}
	if s.SpriteSize != 8 {
		t.Errorf("SpriteSize = %d, expected 8", s.SpriteSize)
	}
	if s.Sim.Topology != lifecore.Clamped {
		t.Errorf("unknown edge should fall back to hedge, got %v", s.Sim.Topology)
	}
	if s.Color != (RGB{R: 255, G: 0, B: 10}) {
		t.Errorf("Color = %+v, expected clamped {255 0 10}", s.Color)
	}

	out := buf.String()
	for _, want := range []string{"sprite size not valid", "unknown edge", "width must be", "height must be", "color component"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected warning containing %q, got %q", want, out)
		}
	}
}

func TestResolveOrigin(t *testing.T) {
	tests := []struct {
		name     string
		edge     string
		origin   *OriginConfig
		expected lifecore.Coord
	}{
		{"torus centre", "torus", nil, lifecore.C(80, 45)},
		{"torus keeps out of range", "torus", &OriginConfig{X: -3, Y: 500}, lifecore.C(-3, 500)},
		{"hedge explicit", "hedge", &OriginConfig{X: 10, Y: 20}, lifecore.C(10, 20)},
		{"hedge bad x", "hedge", &OriginConfig{X: 160, Y: 20}, lifecore.C(80, 20)},
		{"hedge bad y resets then shifts", "hedge", &OriginConfig{X: 5, Y: -1}, lifecore.C(5, 16)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := DefaultLifeConfig()
			cfg.Edge = tt.edge
			cfg.Origin = tt.origin

			s, err := Resolve(cfg, testLogger(&buf))
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if s.Origin != tt.expected {
				t.Errorf("Origin = %v, expected %v", s.Origin, tt.expected)
			}
		})
	}
}

func TestResolveImpossibleGrid(t *testing.T) {
	cfg := DefaultLifeConfig()
	cfg.Window.Width = 10
	cfg.Window.SpriteSize = 16

	if _, err := Resolve(cfg, testLogger(&bytes.Buffer{})); err == nil {
		t.Error("expected error for a grid with zero rows")
	}
}

func TestPacing(t *testing.T) {
	p := NewPacing(PacingConfig{Speeds: []int{1, 10, 50}, Initial: 1})

	if p.Rate() != 10 {
		t.Errorf("Rate() = %d, expected 10", p.Rate())
	}
	if p.Interval() != 100*time.Millisecond {
		t.Errorf("Interval() = %v, expected 100ms", p.Interval())
	}
	if got := p.Faster(); got != 50 {
		t.Errorf("Faster() = %d, expected 50", got)
	}
	if got := p.Faster(); got != 50 {
		t.Errorf("Faster() at max = %d, expected 50", got)
	}
	p.Slower()
	if got := p.Slower(); got != 1 {
		t.Errorf("Slower() = %d, expected 1", got)
	}
	if got := p.Slower(); got != 1 {
		t.Errorf("Slower() at min = %d, expected 1", got)
	}

	p.SetRate(30)
	if p.Rate() != 10 {
		t.Errorf("SetRate(30) gave %d, expected 10", p.Rate())
	}
}

func TestResolvePacingDropsInvalidSpeeds(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultLifeConfig()
	cfg.Pacing = PacingConfig{Speeds: []int{0, 5, 3, 8}, Initial: 9}

	s, err := Resolve(cfg, testLogger(&buf))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(s.Pacing.Speeds) != 2 || s.Pacing.Speeds[0] != 5 || s.Pacing.Speeds[1] != 8 {
		t.Errorf("Speeds = %v, expected [5 8]", s.Pacing.Speeds)
	}
	if s.Pacing.Initial != 1 {
		t.Errorf("Initial = %d, expected 1", s.Pacing.Initial)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultLifeConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "sprite_size: 8") {
		t.Errorf("marshalled config missing sprite_size:\n%s", data)
	}
	if strings.Contains(string(data), "origin") {
		t.Errorf("unset origin should be omitted:\n%s", data)
	}
}

func TestSettingsFit(t *testing.T) {
	var buf bytes.Buffer
	s, err := Resolve(DefaultLifeConfig(), testLogger(&buf))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	fit, err := s.Fit(80, 24)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if fit.Sim.Rows != 80 || fit.Sim.Cols != 46 {
		t.Errorf("grid = %dx%d, expected 80x46", fit.Sim.Rows, fit.Sim.Cols)
	}
	if fit.Origin != lifecore.C(40, 16) {
		t.Errorf("Origin = %v, expected (40,16)", fit.Origin)
	}
	if s.Sim.Rows != 160 {
		t.Error("Fit modified the receiver")
	}

	if _, err := s.Fit(0, 24); !errors.Is(err, lifecore.ErrAllocation) {
		t.Errorf("Fit(0, 24) error = %v, expected ErrAllocation", err)
	}
}

func TestSettingsWithTopology(t *testing.T) {
	var buf bytes.Buffer
	s, _ := Resolve(DefaultLifeConfig(), testLogger(&buf))

	torus, err := s.WithTopology(lifecore.Torus)
	if err != nil {
		t.Fatalf("WithTopology failed: %v", err)
	}
	if torus.Sim.Topology != lifecore.Torus || torus.Sim.Rows != s.Sim.Rows || torus.Sim.Cols != s.Sim.Cols {
		t.Errorf("WithTopology = %v", torus.Sim)
	}
	if _, err := s.WithTopology(lifecore.Topology(9)); !errors.Is(err, lifecore.ErrUnknownTopology) {
		t.Errorf("invalid topology error = %v", err)
	}
}
