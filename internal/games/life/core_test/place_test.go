package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-life/internal/games/life/core"
)

func TestTarget(t *testing.T) {
	tests := []struct {
		name          string
		rows, cols    int
		topo          core.Topology
		first, second int
		origin        core.Coord
		expected      core.Coord
	}{
		{"clamped inside", 5, 5, core.Clamped, 1, 2, core.C(2, 2), core.C(3, 4)},
		{"torus wraps negative", 5, 5, core.Torus, -1, -1, core.C(0, 0), core.C(4, 4)},
		{"torus wraps past end", 5, 7, core.Torus, 3, 9, core.C(4, 0), core.C(2, 2)},
		{"torus wraps many times", 5, 5, core.Torus, 12, -11, core.C(0, 0), core.C(2, 4)},
		{"klein inside", 5, 5, core.Klein, 1, 1, core.C(2, 2), core.C(3, 3)},
		{"klein row wrap reflects column", 5, 5, core.Klein, -1, 1, core.C(0, 0), core.C(4, 4)},
		{"klein column wrap does not reflect", 5, 5, core.Klein, 0, -1, core.C(0, 0), core.C(0, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := core.NewConfig(tt.rows, tt.cols, tt.topo)
			if err != nil {
				t.Fatalf("NewConfig failed: %v", err)
			}
			got, err := cfg.Target(tt.first, tt.second, tt.origin)
			if err != nil {
				t.Fatalf("Target failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Target(%d, %d, %v) = %v, expected %v", tt.first, tt.second, tt.origin, got, tt.expected)
			}
		})
	}
}

func TestTargetClampedOutOfBounds(t *testing.T) {
	cfg, err := core.NewConfig(5, 5, core.Clamped)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	for _, p := range []core.Coord{core.C(5, 0), core.C(0, 5), core.C(-3, 0), core.C(3, 3)} {
		_, err := cfg.Target(p.Row, p.Col, core.C(2, 2))
		var placeErr *core.PlacementError
		if !errors.As(err, &placeErr) {
			t.Errorf("Target%v error = %v, expected *PlacementError", p, err)
			continue
		}
		if !errors.Is(err, core.ErrInvalidPlacement) {
			t.Errorf("Target%v error should wrap ErrInvalidPlacement", p)
		}
	}
}

func TestTargetKleinNonSquareEdge(t *testing.T) {
	// With more rows than columns the column wrap stops at Rows,
	// leaving columns in [Cols, Rows) unplaced.
	cfg, err := core.NewConfig(6, 4, core.Klein)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	_, err = cfg.Target(0, 3, core.C(0, 2))
	if !errors.Is(err, core.ErrInvalidPlacement) {
		t.Errorf("expected ErrInvalidPlacement, got %v", err)
	}

	got, err := cfg.Target(0, 5, core.C(0, 2))
	if err != nil {
		t.Fatalf("Target failed: %v", err)
	}
	if got != core.C(0, 3) {
		t.Errorf("Target = %v, expected (0,3)", got)
	}
}

func TestSeedIsAtomic(t *testing.T) {
	cfg, err := core.NewConfig(5, 5, core.Clamped)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	g := mustGrid(t, 5, 5)

	err = core.Seed(g, cfg, []core.Coord{core.C(0, 0), core.C(1, 1), core.C(9, 9)}, core.C(0, 0))
	if !errors.Is(err, core.ErrInvalidPlacement) {
		t.Fatalf("expected ErrInvalidPlacement, got %v", err)
	}
	if g.Population() != 0 {
		t.Errorf("failed seed must leave the grid untouched, population %d", g.Population())
	}

	if err := core.Seed(g, cfg, []core.Coord{core.C(0, 0), core.C(1, 1)}, core.C(1, 1)); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	assertLive(t, g, core.C(1, 1), core.C(2, 2))
}

func TestSeedDimensionMismatch(t *testing.T) {
	cfg, err := core.NewConfig(5, 5, core.Torus)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	g := mustGrid(t, 4, 4)

	if err := core.Seed(g, cfg, []core.Coord{core.C(0, 0)}, core.C(0, 0)); !errors.Is(err, core.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for mismatched grid, got %v", err)
	}
}
