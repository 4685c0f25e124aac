// Package core provides the cellular-automaton engine for Life.
// This package is UI-agnostic and deterministic.
package core

import (
	"errors"
	"fmt"
)

// Cell is the state of a single grid cell. One byte per cell.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// String returns the string representation of a cell state.
func (c Cell) String() string {
	switch c {
	case Dead:
		return "Dead"
	case Alive:
		return "Alive"
	default:
		return "Unknown"
	}
}

// Coord is a grid coordinate. Row and Col are zero-based.
type Coord struct {
	Row int
	Col int
}

// C is shorthand for constructing a Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

var (
	// ErrAllocation is returned when a grid cannot be created with the requested size.
	ErrAllocation = errors.New("grid allocation failed")
	// ErrOutOfRange is returned by bounds-checked grid access.
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidPlacement is returned when a pattern cell cannot be placed on the grid.
	ErrInvalidPlacement = errors.New("invalid pattern placement")
	// ErrUnknownTopology is returned for unrecognized topology names or tags.
	ErrUnknownTopology = errors.New("unknown topology")
)

// RangeError reports a grid access outside [0,rows)x[0,cols).
type RangeError struct {
	Coord Coord
	Rows  int
	Cols  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %v not within %dx%d", ErrOutOfRange, e.Coord, e.Rows, e.Cols)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// PlacementError reports a pattern cell whose target lies outside the grid.
type PlacementError struct {
	Topology Topology
	Target   Coord
	Rows     int
	Cols     int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%v: %s target %v outside %dx%d grid", ErrInvalidPlacement, e.Topology, e.Target, e.Rows, e.Cols)
}

func (e *PlacementError) Unwrap() error {
	return ErrInvalidPlacement
}
