package core

import "fmt"

// Config holds the immutable parameters of a simulation run.
// Build it with NewConfig and pass it by value.
type Config struct {
	Rows     int
	Cols     int
	Topology Topology
}

// NewConfig validates and returns a Config.
func NewConfig(rows, cols int, t Topology) (Config, error) {
	cfg := Config{Rows: rows, Cols: cols, Topology: t}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the dimensions and topology tag.
func (c Config) Validate() error {
	if !c.Topology.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTopology, uint8(c.Topology))
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrAllocation, c.Rows, c.Cols)
	}
	if c.Rows > MaxCells/c.Cols {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrAllocation, c.Rows, c.Cols, MaxCells)
	}
	return nil
}

// Contains reports whether (r, c) is inside the configured grid.
func (c Config) Contains(r, col int) bool {
	return r >= 0 && r < c.Rows && col >= 0 && col < c.Cols
}

func (c Config) String() string {
	return fmt.Sprintf("%dx%d %s", c.Rows, c.Cols, c.Topology)
}
