// Package core provides fundamental types and utilities for the life platform.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation front ends pure and testable.
package core

// Rect represents an axis-aligned area, used for viewports and layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the overlap of two rectangles.
// The result is empty (zero size) when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Pan moves the rectangle by (dx, dy), keeping it inside bounds where it fits.
// An axis larger than bounds is pinned to the bounds' origin.
func (r Rect) Pan(dx, dy int, bounds Rect) Rect {
	r.X = Clamp(r.X+dx, bounds.X, max(bounds.X, bounds.Right()-r.W))
	r.Y = Clamp(r.Y+dy, bounds.Y, max(bounds.Y, bounds.Bottom()-r.H))
	return r
}

// CenterOn positions the rectangle so that (x, y) is its centre, then keeps
// it inside bounds as Pan does.
func (r Rect) CenterOn(x, y int, bounds Rect) Rect {
	r.X = x - r.W/2
	r.Y = y - r.H/2
	return r.Pan(0, 0, bounds)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

