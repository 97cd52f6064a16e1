// Package core provides fundamental types shared by the simulation and the
// terminal front end. It has no external dependencies (especially no Bubble
// Tea) so game logic stays pure and testable.
package core

// Rect represents an axis-aligned bounding box used for collision detection.
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

// Intersects returns true if this rectangle overlaps with another.
// Touching edges have zero-area overlap and do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Intersects reports whether a and b overlap in area.
func Intersects(a, b Rect) bool {
	return a.Intersects(b)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Scale maps r from a space of size (fromW, fromH) onto a space of size
// (toW, toH). Edges are scaled independently so adjacent rects stay adjacent;
// a non-empty rect never scales below 1x1.
func (r Rect) Scale(fromW, fromH, toW, toH int) Rect {
	if fromW <= 0 || fromH <= 0 {
		return Rect{}
	}
	x0 := floorDiv(r.X*toW, fromW)
	y0 := floorDiv(r.Y*toH, fromH)
	x1 := floorDiv(r.Right()*toW, fromW)
	y1 := floorDiv(r.Bottom()*toH, fromH)

	w := Max(x1-x0, 1)
	h := Max(y1-y0, 1)
	return NewRect(x0, y0, w, h)
}

// floorDiv divides rounding toward negative infinity, so off-field
// coordinates keep mapping off-screen.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
