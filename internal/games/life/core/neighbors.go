package core

// offsets are the eight neighbor directions, row-major.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the folded neighbor coordinates of (r, c) on a
// rows x cols grid under t. Offsets that fold back onto (r, c) are skipped;
// offsets that fold onto the same cell are listed once per offset.
func Neighbors(r, c, rows, cols int, t Topology) []Coord {
	coords := make([]Coord, 0, len(offsets))
	for _, d := range offsets {
		nr, nc, ok := t.fold(r, c, d[0], d[1], rows, cols)
		if !ok || (nr == r && nc == c) {
			continue
		}
		coords = append(coords, C(nr, nc))
	}
	return coords
}

// CountNeighbors returns the number of live neighbors of (r, c) under t.
// The cell itself is never counted.
func CountNeighbors(g *Grid, r, c int, t Topology) int {
	count := 0
	for _, d := range offsets {
		nr, nc, ok := t.fold(r, c, d[0], d[1], g.rows, g.cols)
		if !ok || (nr == r && nc == c) {
			continue
		}
		if g.cells[g.index(nr, nc)] == Alive {
			count++
		}
	}
	return count
}
