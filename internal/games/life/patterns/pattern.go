// Package patterns reads Life 1.06 coordinate lists and places them on a grid.
// This package depends on core but core does not depend on patterns.
package patterns

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-life/internal/games/life/core"
)

var (
	// ErrNotFound is returned when a pattern file or reference cannot be found.
	ErrNotFound = errors.New("pattern not found")
	// ErrMalformed is returned for lines that are not two integers.
	ErrMalformed = errors.New("malformed pattern")
	// ErrEmpty is returned for a pattern without any coordinates.
	ErrEmpty = errors.New("pattern has no cells")
)

// ParseError reports the offending line of a malformed pattern.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: line %d %q: %v", ErrMalformed, e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("%v: line %d %q", ErrMalformed, e.Line, e.Text)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformed
}

// Point is a live cell relative to the pattern's own origin.
// X maps to the grid row and Y to the grid column.
type Point struct {
	X, Y int
}

// Pattern is a parsed coordinate list.
type Pattern struct {
	Name        string   // from a "#N" line
	Description string   // "#D" lines joined with spaces
	Comments    []string // every comment line without the leading '#'
	Points      []Point  // in file order
}

// Parse reads a Life 1.06 pattern. Lines starting with '#' are comments,
// blank lines are skipped, every other line holds two integers.
func Parse(r io.Reader) (*Pattern, error) {
	p := &Pattern{}
	var desc []string

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '#' {
			comment := line[1:]
			p.Comments = append(p.Comments, comment)
			switch {
			case strings.HasPrefix(comment, "N "):
				p.Name = strings.TrimSpace(comment[2:])
			case strings.HasPrefix(comment, "D "):
				desc = append(desc, strings.TrimSpace(comment[2:]))
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, &ParseError{Line: lineNo, Text: line}
		}
		x, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		y, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
		p.Points = append(p.Points, Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading pattern: %w", err)
	}
	if len(p.Points) == 0 {
		return nil, ErrEmpty
	}

	p.Description = strings.Join(desc, " ")
	return p, nil
}

// Offset returns the minimum coordinate over both axes of all points.
func (p *Pattern) Offset() int {
	if len(p.Points) == 0 {
		return 0
	}
	m := p.Points[0].X
	for _, pt := range p.Points {
		if pt.X < m {
			m = pt.X
		}
		if pt.Y < m {
			m = pt.Y
		}
	}
	return m
}

// Normalized returns the points as grid offsets. When the offset is
// negative, |offset| is added to both coordinates of every point.
func (p *Pattern) Normalized() []core.Coord {
	shift := 0
	if m := p.Offset(); m < 0 {
		shift = -m
	}
	cells := make([]core.Coord, len(p.Points))
	for i, pt := range p.Points {
		cells[i] = core.C(pt.X+shift, pt.Y+shift)
	}
	return cells
}

// Bounds returns the smallest and largest X and Y over all points.
func (p *Pattern) Bounds() (minPt, maxPt Point) {
	if len(p.Points) == 0 {
		return Point{}, Point{}
	}
	minPt, maxPt = p.Points[0], p.Points[0]
	for _, pt := range p.Points[1:] {
		minPt.X = min(minPt.X, pt.X)
		minPt.Y = min(minPt.Y, pt.Y)
		maxPt.X = max(maxPt.X, pt.X)
		maxPt.Y = max(maxPt.Y, pt.Y)
	}
	return minPt, maxPt
}

// Size returns the extent of the pattern along X and Y.
func (p *Pattern) Size() (w, h int) {
	lo, hi := p.Bounds()
	if len(p.Points) == 0 {
		return 0, 0
	}
	return hi.X - lo.X + 1, hi.Y - lo.Y + 1
}

// Place sets the pattern's cells alive on g at origin under cfg's topology.
// g is left untouched on error.
func (p *Pattern) Place(g *core.Grid, cfg core.Config, origin core.Coord) error {
	if err := core.Seed(g, cfg, p.Normalized(), origin); err != nil {
		return fmt.Errorf("placing pattern at %v: %w", origin, err)
	}
	return nil
}

// Load parses a pattern from r and places it on g.
func Load(r io.Reader, g *core.Grid, cfg core.Config, origin core.Coord) (*Pattern, error) {
	p, err := Parse(r)
	if err != nil {
		return nil, err
	}
	if err := p.Place(g, cfg, origin); err != nil {
		return nil, err
	}
	return p, nil
}
