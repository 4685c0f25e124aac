package life

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/core"
)

// Render draws the visible part of the grid and a status line into dst.
// Each character covers one row and two columns: the upper half is column
// c, the lower half column c+1. The screen is pre-cleared before this call.
func (g *Game) Render(dst *core.Screen) {
	grid := g.sim.Current()
	lines := dst.Height() - 1

	for y := 0; y < lines; y++ {
		col := g.view.Y + 2*y
		for x := 0; x < dst.Width(); x++ {
			row := g.view.X + x
			if !grid.InBounds(row, col) {
				dst.SetCell(x, y, '░', core.ColorDim)
				continue
			}
			top := grid.Alive(row, col)
			bottom := grid.Alive(row, col+1)
			switch {
			case top && bottom:
				dst.SetCell(x, y, '█', core.ColorLive)
			case top:
				dst.SetCell(x, y, '▀', core.ColorLive)
			case bottom:
				dst.SetCell(x, y, '▄', core.ColorLive)
			}
		}
	}

	if lines >= 0 {
		g.renderStatus(dst, lines)
	}
	if g.showHelp {
		drawHelp(dst)
	}
}

// helpLines are the controls listed by the help overlay.
var helpLines = []string{
	"space/p   pause",
	"n         step",
	"+ / -     speed",
	"r         restart",
	"arrows    pan",
	"ctrl+s    screenshot",
	"b         menu",
	"q         quit",
}

// drawHelp draws the controls in a box centred on the screen.
func drawHelp(dst *core.Screen) {
	boxW := 0
	for _, l := range helpLines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(helpLines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH).Intersect(dst.Bounds())
	if box.Empty() {
		return
	}

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, "CONTROLS")
	dst.DrawHLine(box.X+1, box.Y+2, box.W-2, '─')
	for i, l := range helpLines {
		dst.DrawText(box.X+2, box.Y+3+i, l)
	}
}

func (g *Game) renderStatus(dst *core.Screen, y int) {
	st := g.State()
	cfg := g.settings.Sim

	status := fmt.Sprintf(" %s │ %s %dx%d │ gen %d │ pop %d (peak %d) │ %d gen/s ",
		g.Title(), cfg.Topology, cfg.Rows, cfg.Cols, st.Generation, st.Population, st.Peak, st.Rate)
	dst.DrawTextColor(0, y, status, core.ColorStatus)

	notice := ""
	switch {
	case st.Paused:
		notice = "│ PAUSED "
	case st.Extinct:
		notice = "│ EXTINCT "
	case st.Stable:
		notice = "│ STABLE "
	}
	if notice != "" {
		dst.DrawTextColor(len([]rune(status)), y, notice, core.ColorWarn)
	}
}
