package core

import (
	"fmt"
	"strings"
)

// Topology selects how the grid edges behave. Fixed for the lifetime of a run.
type Topology uint8

const (
	Clamped Topology = iota // no wraparound, a.k.a. hedge
	Torus                   // both axes wrap
	Klein                   // rows wrap with a column reflection
)

// Topologies lists every topology in declaration order.
var Topologies = []Topology{Clamped, Torus, Klein}

// String returns the configuration name of the topology.
func (t Topology) String() string {
	switch t {
	case Clamped:
		return "hedge"
	case Torus:
		return "torus"
	case Klein:
		return "klein"
	default:
		return fmt.Sprintf("Topology(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the declared topologies.
func (t Topology) Valid() bool {
	switch t {
	case Clamped, Torus, Klein:
		return true
	default:
		return false
	}
}

// Next returns the following topology, cycling back to Clamped.
func (t Topology) Next() Topology {
	switch t {
	case Clamped:
		return Torus
	case Torus:
		return Klein
	default:
		return Clamped
	}
}

// Prev returns the preceding topology, cycling back to Klein.
func (t Topology) Prev() Topology {
	switch t {
	case Klein:
		return Torus
	case Torus:
		return Clamped
	default:
		return Klein
	}
}

var topologyNames = []struct {
	name string
	t    Topology
}{
	{"hedge", Clamped},
	{"clamped", Clamped},
	{"torus", Torus},
	{"klein", Klein},
}

// ParseTopology resolves a topology name. Any non-empty prefix of
// "hedge", "clamped", "torus" or "klein" is accepted, case-insensitively.
func ParseTopology(s string) (Topology, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Clamped, fmt.Errorf("%w: empty name", ErrUnknownTopology)
	}
	for _, tn := range topologyNames {
		if strings.HasPrefix(tn.name, s) {
			return tn.t, nil
		}
	}
	return Clamped, fmt.Errorf("%w: %q", ErrUnknownTopology, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTopology, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(text []byte) error {
	v, err := ParseTopology(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// wrap folds v into [0, n) by true modulo.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// fold maps the neighbor of (r, c) at offset (dr, dc) onto a rows x cols grid.
// ok is false when the neighbor does not exist.
func (t Topology) fold(r, c, dr, dc, rows, cols int) (nr, nc int, ok bool) {
	nr, nc = r+dr, c+dc
	switch t {
	case Clamped:
		return nr, nc, nr >= 0 && nr < rows && nc >= 0 && nc < cols
	case Torus:
		return wrap(nr, rows), wrap(nc, cols), true
	case Klein:
		fr, fc := wrap(nr, rows), wrap(nc, cols)
		if fr != nr {
			// crossing the row edge flips the column axis
			fc = cols - 1 - fc
		}
		return fr, fc, true
	default:
		return 0, 0, false
	}
}
