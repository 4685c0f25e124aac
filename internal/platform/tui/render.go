package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
)

// Palette maps core.Color roles to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the terminal palette with live cells drawn in live.
func NewPalette(live config.RGB) Palette {
	return Palette{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorLive:    lipgloss.NewStyle().Foreground(lipgloss.Color(live.Hex())),
		core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		core.ColorStatus:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237")),
		core.ColorWarn:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Background(lipgloss.Color("237")).Bold(true),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
