//go:build !ebiten

package gui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-life/internal/games/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

// Run always reports that the GUI build tag is missing.
func Run(*life.Game, *storage.Store, *log.Logger, int) error {
	return ErrUnavailable
}
