package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/games/life/patterns"
)

// maxPreview bounds the preview drawn by inspect along either axis.
const maxPreview = 64

var flagInspectDir string

var inspectCmd = &cobra.Command{
	Use:   "inspect <pattern>",
	Short: "Show a pattern's cells and bounds",
	Long: `Parses a pattern and prints its metadata, cell count, normalisation
offset and bounding box, followed by a preview of the normalised cells
(rows left to right, columns top to bottom).

Examples:
  life inspect glider_106.lif
  life inspect ./Conway_Life/pulsar.lif`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&flagInspectDir, "dir", patterns.DefaultDir, "Directory searched for pattern file names")
}

func runInspect(_ *cobra.Command, args []string) {
	p, err := patterns.Open(args[0], flagInspectDir)
	if err != nil {
		fail("%v", err)
	}

	lo, hi := p.Bounds()
	w, h := p.Size()

	fmt.Printf("Pattern:  %s\n", args[0])
	if p.Name != "" {
		fmt.Printf("Name:     %s\n", p.Name)
	}
	if p.Description != "" {
		fmt.Printf("About:    %s\n", p.Description)
	}
	fmt.Printf("Cells:    %d\n", len(p.Points))
	fmt.Printf("Offset:   %d\n", p.Offset())
	fmt.Printf("Bounds:   (%d,%d) .. (%d,%d)\n", lo.X, lo.Y, hi.X, hi.Y)
	fmt.Printf("Size:     %d x %d\n", w, h)
	fmt.Println()

	if w > maxPreview || h > maxPreview {
		fmt.Printf("Too large to preview (limit %dx%d).\n", maxPreview, maxPreview)
		return
	}
	fmt.Println(preview(p))
}

// preview draws the normalised cells inside the pattern's bounding box.
// X runs across, Y runs down, matching the terminal renderer.
func preview(p *patterns.Pattern) string {
	cells := p.Normalized()
	minX, minY := cells[0].Row, cells[0].Col
	maxX, maxY := minX, minY
	for _, c := range cells {
		minX, maxX = min(minX, c.Row), max(maxX, c.Row)
		minY, maxY = min(minY, c.Col), max(maxY, c.Col)
	}

	w, h := maxX-minX+1, maxY-minY+1
	lines := make([][]byte, h)
	for y := range lines {
		lines[y] = []byte(strings.Repeat(".", w))
	}
	for _, c := range cells {
		lines[c.Col-minY][c.Row-minX] = '#'
	}

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.Write(l)
	}
	return b.String()
}
