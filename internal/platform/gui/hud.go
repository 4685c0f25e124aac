// Package gui renders a run in a desktop window, one filled square per live
// cell. The window needs the ebiten build tag; without it Run reports
// ErrUnavailable.
package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("gui: window support requires building with the 'ebiten' tag")

var background = color.RGBA{A: 255}

func liveColor(c config.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func statusText(title string, st core.RunState) string {
	s := fmt.Sprintf("%s  gen %d  pop %d  peak %d  %d gen/s", title, st.Generation, st.Population, st.Peak, st.Rate)
	switch {
	case st.Paused:
		s += "  [paused]"
	case st.Extinct:
		s += "  [extinct]"
	case st.Stable:
		s += "  [stable]"
	}
	return s
}
