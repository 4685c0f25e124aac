package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-life/internal/games/life/core"
)

func TestNextState(t *testing.T) {
	tests := []struct {
		state     core.Cell
		neighbors int
		expected  core.Cell
	}{
		{core.Alive, 0, core.Dead},
		{core.Alive, 1, core.Dead},
		{core.Alive, 2, core.Alive},
		{core.Alive, 3, core.Alive},
		{core.Alive, 4, core.Dead},
		{core.Alive, 8, core.Dead},
		{core.Dead, 0, core.Dead},
		{core.Dead, 1, core.Dead},
		{core.Dead, 2, core.Dead},
		{core.Dead, 3, core.Alive},
		{core.Dead, 4, core.Dead},
		{core.Dead, 8, core.Dead},
	}

	for _, tt := range tests {
		got := core.NextState(tt.state, tt.neighbors)
		if got != tt.expected {
			t.Errorf("NextState(%v, %d) = %v, expected %v", tt.state, tt.neighbors, got, tt.expected)
		}
	}
}
