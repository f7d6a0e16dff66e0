// Package core holds the types shared by the simulation and every frontend:
// playfield rectangles, the cell buffer, colors, sprites and input frames.
// It imports neither Bubble Tea nor Ebitengine.
package core

// Rect is an axis-aligned box in playfield pixels (or cells, for a Screen).
// X grows to the right and Y grows downward.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first x past the box.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first y past the box.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports strict overlap. Boxes that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Intersect returns the overlapping part of r and other, or the zero Rect.
func (r Rect) Intersect(other Rect) Rect {
	x0, y0 := max(r.X, other.X), max(r.Y, other.Y)
	x1, y1 := min(r.Right(), other.Right()), min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// ClampInto moves r the least distance needed to lie inside bounds.
// The size is kept; a box larger than bounds is pinned to its top-left corner.
func (r Rect) ClampInto(bounds Rect) Rect {
	r.X = Clamp(r.X, bounds.X, max(bounds.X, bounds.Right()-r.W))
	r.Y = Clamp(r.Y, bounds.Y, max(bounds.Y, bounds.Bottom()-r.H))
	return r
}

// Center returns the middle point, rounded toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
