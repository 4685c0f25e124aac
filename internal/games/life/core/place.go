package core

// Target maps a pattern-relative cell (first, second) placed at origin onto
// the grid, following the topology's placement rule:
//
//   - Clamped: the target must already be inside the grid.
//   - Torus: both axes wrap by true modulo.
//   - Klein: see targetKlein.
//
// Targets that cannot be placed return a *PlacementError.
func (c Config) Target(first, second int, origin Coord) (Coord, error) {
	switch c.Topology {
	case Clamped:
		r, col := origin.Row+first, origin.Col+second
		if !c.Contains(r, col) {
			return Coord{}, c.placementError(r, col)
		}
		return C(r, col), nil
	case Torus:
		return C(wrap(origin.Row+first, c.Rows), wrap(origin.Col+second, c.Cols)), nil
	case Klein:
		return c.targetKlein(first, second, origin)
	default:
		return Coord{}, c.placementError(origin.Row+first, origin.Col+second)
	}
}

// targetKlein wraps the row like Torus, reflecting the pattern column about
// Cols on every row crossing, then wraps the column against the row count.
// This does not match the reflection used for neighbor counting, and when
// Rows != Cols targets near the column edges can land outside the grid.
// Those are rejected with a *PlacementError.
func (c Config) targetKlein(first, second int, origin Coord) (Coord, error) {
	row, col := first, second
	for row+origin.Row < 0 {
		row += c.Rows
		col = c.Cols - col
	}
	for row+origin.Row >= c.Rows {
		row -= c.Rows
		col = c.Cols - col
	}
	for col+origin.Col < 0 {
		col += c.Cols
	}
	for col+origin.Col >= c.Rows {
		col -= c.Cols
	}

	r, cc := row+origin.Row, col+origin.Col
	if !c.Contains(r, cc) {
		return Coord{}, c.placementError(r, cc)
	}
	return C(r, cc), nil
}

func (c Config) placementError(r, col int) error {
	return &PlacementError{Topology: c.Topology, Target: C(r, col), Rows: c.Rows, Cols: c.Cols}
}

// Seed sets the given pattern-relative cells alive on g, placed at origin.
// Every target is resolved before anything is written, so a failed seed
// leaves g untouched.
func Seed(g *Grid, cfg Config, cells []Coord, origin Coord) error {
	if g.rows != cfg.Rows || g.cols != cfg.Cols {
		return &RangeError{Coord: C(cfg.Rows, cfg.Cols), Rows: g.rows, Cols: g.cols}
	}
	targets := make([]Coord, 0, len(cells))
	for _, p := range cells {
		t, err := cfg.Target(p.Row, p.Col, origin)
		if err != nil {
			return err
		}
		targets = append(targets, t)
	}
	for _, t := range targets {
		g.cells[g.index(t.Row, t.Col)] = Alive
	}
	return nil
}
