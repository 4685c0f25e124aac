package core

import (
	"fmt"
	"strings"
)

// MaxCells is the largest rows*cols a grid may hold.
const MaxCells = 1 << 26

// Grid is a fixed-size board of cells.
// Cells are stored in a single row-major buffer: index = row*cols + col.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// NewGrid creates a grid with every cell dead.
// Fails with ErrAllocation for non-positive or oversized dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrAllocation, rows, cols)
	}
	if rows > MaxCells/cols {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrAllocation, rows, cols, MaxCells)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (r, c) lies inside the grid.
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

func (g *Grid) index(r, c int) int {
	return r*g.cols + c
}

// Get returns the cell at (r, c).
func (g *Grid) Get(r, c int) (Cell, error) {
	if !g.InBounds(r, c) {
		return Dead, &RangeError{Coord: C(r, c), Rows: g.rows, Cols: g.cols}
	}
	return g.cells[g.index(r, c)], nil
}

// Set stores v at (r, c). The grid is untouched on error.
func (g *Grid) Set(r, c int, v Cell) error {
	if !g.InBounds(r, c) {
		return &RangeError{Coord: C(r, c), Rows: g.rows, Cols: g.cols}
	}
	g.cells[g.index(r, c)] = v
	return nil
}

// Alive reports whether (r, c) holds a live cell. Out-of-range is dead.
func (g *Grid) Alive(r, c int) bool {
	if !g.InBounds(r, c) {
		return false
	}
	return g.cells[g.index(r, c)] == Alive
}

// Clear sets every cell dead in place.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Cells returns the underlying row-major buffer.
// Callers must treat it as read-only.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.cells {
		if v == Alive {
			n++
		}
	}
	return n
}

// LiveCoords returns the coordinates of all live cells, row by row.
func (g *Grid) LiveCoords() []Coord {
	coords := make([]Coord, 0)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[g.index(r, c)] == Alive {
				coords = append(coords, C(r, c))
			}
		}
	}
	return coords
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, v := range g.cells {
		if v != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid as text, one line per row: '#' alive, '.' dead.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if g.cells[g.index(r, c)] == Alive {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
