package core

// NextState applies Conway's rule to a cell with k live neighbors.
// A cell is alive next iff it is alive with 2 or 3 neighbors, or dead with exactly 3.
func NextState(s Cell, k int) Cell {
	switch {
	case k > 3:
		return Dead
	case k == 3:
		return Alive
	case k == 2 && s == Alive:
		return Alive
	default:
		return Dead
	}
}
