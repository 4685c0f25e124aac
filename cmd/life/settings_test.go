package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/config"
)

func TestParseOrigin(t *testing.T) {
	tests := []struct {
		in      string
		want    config.OriginConfig
		wantErr bool
	}{
		{"10,20", config.OriginConfig{X: 10, Y: 20}, false},
		{" 3 , 4 ", config.OriginConfig{X: 3, Y: 4}, false},
		{"-1,0", config.OriginConfig{X: -1, Y: 0}, false},
		{"10", config.OriginConfig{}, true},
		{"a,1", config.OriginConfig{}, true},
		{"1,b", config.OriginConfig{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseOrigin(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseOrigin(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("parseOrigin(%q) = %+v, expected %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSpeedIndex(t *testing.T) {
	speeds := []int{1, 2, 5, 10, 20}
	tests := []struct {
		gps  int
		want int
	}{
		{0, 0},
		{1, 0},
		{7, 2},
		{10, 3},
		{100, 4},
	}
	for _, tc := range tests {
		if got := speedIndex(speeds, tc.gps); got != tc.want {
			t.Errorf("speedIndex(%d) = %d, expected %d", tc.gps, got, tc.want)
		}
	}
}

func newFlagCommand(f *simFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	return cmd
}

func TestSimFlagsApplyOnlyChanged(t *testing.T) {
	var f simFlags
	cmd := newFlagCommand(&f)
	if err := cmd.Flags().Parse([]string{"-w", "640", "-h", "480", "-e", "t", "-o", "5,6", "-r", "300"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cfg := config.DefaultLifeConfig()
	if err := f.apply(cmd, &cfg); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	def := config.DefaultLifeConfig()
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("window = %dx%d, expected 640x480", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.SpriteSize != def.Window.SpriteSize {
		t.Errorf("unset sprite changed to %d", cfg.Window.SpriteSize)
	}
	if cfg.Edge != "torus" {
		t.Errorf("Edge = %q, expected torus", cfg.Edge)
	}
	if cfg.Origin == nil || *cfg.Origin != (config.OriginConfig{X: 5, Y: 6}) {
		t.Errorf("Origin = %v, expected 5,6", cfg.Origin)
	}
	if cfg.Color.R != 300 || cfg.Color.G != def.Color.G {
		t.Errorf("Color = %+v, red should be taken as given and clamped later", cfg.Color)
	}
}

func TestSimFlagsKeepEdgeOnUnknown(t *testing.T) {
	var f simFlags
	cmd := newFlagCommand(&f)
	if err := cmd.Flags().Parse([]string{"--edge", "sphere"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	cfg := config.DefaultLifeConfig()
	cfg.Edge = "klein"
	if err := f.apply(cmd, &cfg); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if cfg.Edge != "klein" {
		t.Errorf("Edge = %q, an unknown edge should keep klein", cfg.Edge)
	}
}
