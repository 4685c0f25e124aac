package core

// StepResult contains information about one generation.
type StepResult struct {
	Generation uint64 // generation now current
	Population int    // live cells in the new current grid
	Changed    bool   // false when the new grid equals the previous one
}

// Simulation owns two grids and alternates between them.
// Exactly one grid is current; the other is scratch for the next generation.
type Simulation struct {
	cfg        Config
	grids      [2]*Grid
	cur        int
	generation uint64
}

// NewSimulation allocates both grids, all dead, with grid A current.
func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a, err := NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	b, err := NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	return &Simulation{
		cfg:   cfg,
		grids: [2]*Grid{a, b},
	}, nil
}

// Config returns the run configuration.
func (s *Simulation) Config() Config {
	return s.cfg
}

// Current returns the grid holding the current generation.
// It stays valid until the next call to Step.
func (s *Simulation) Current() *Grid {
	return s.grids[s.cur]
}

// Generation returns how many steps have been taken since the last reset.
func (s *Simulation) Generation() uint64 {
	return s.generation
}

// Step computes the next generation into the scratch grid and makes it current.
// Every cell of the scratch grid is overwritten; nothing is allocated.
func (s *Simulation) Step() StepResult {
	src := s.grids[s.cur]
	dst := s.grids[1-s.cur]
	t := s.cfg.Topology

	population := 0
	changed := false
	for r := 0; r < src.rows; r++ {
		for c := 0; c < src.cols; c++ {
			i := src.index(r, c)
			next := NextState(src.cells[i], CountNeighbors(src, r, c, t))
			dst.cells[i] = next
			if next == Alive {
				population++
			}
			if next != src.cells[i] {
				changed = true
			}
		}
	}

	s.cur = 1 - s.cur
	s.generation++

	return StepResult{
		Generation: s.generation,
		Population: population,
		Changed:    changed,
	}
}

// Reset clears both grids, makes grid A current and zeroes the generation.
func (s *Simulation) Reset() {
	s.grids[0].Clear()
	s.grids[1].Clear()
	s.cur = 0
	s.generation = 0
}
