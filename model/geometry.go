package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents a rectangle by its edges. The origin is the top-left page
// corner with Y increasing downward, so Y0 is the top edge and Y1 the bottom.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect creates a rectangle from edge coordinates, normalizing so that
// X0 <= X1 and Y0 <= Y1.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X0: math.Min(x0, x1),
		Y0: math.Min(y0, y1),
		X1: math.Max(x0, x1),
		Y1: math.Max(y0, y1),
	}
}

// Width returns the horizontal extent, clamped at zero.
func (r Rect) Width() float64 {
	return math.Max(0, r.X1-r.X0)
}

// Height returns the vertical extent, clamped at zero.
func (r Rect) Height() float64 {
	return math.Max(0, r.Y1-r.Y0)
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{
		X: (r.X0 + r.X1) / 2,
		Y: (r.Y0 + r.Y1) / 2,
	}
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Intersects checks if two rectangles intersect.
func (r Rect) Intersects(other Rect) bool {
	return !(r.X1 < other.X0 || r.X0 > other.X1 ||
		r.Y1 < other.Y0 || r.Y0 > other.Y1)
}

// Intersect returns the intersection of two rectangles. The result is the
// zero Rect when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}
	return Rect{
		X0: math.Max(r.X0, other.X0),
		Y0: math.Max(r.Y0, other.Y0),
		X1: math.Min(r.X1, other.X1),
		Y1: math.Min(r.Y1, other.Y1),
	}
}

// Union returns the smallest rectangle covering both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Pad expands the rectangle by a margin on all sides.
func (r Rect) Pad(margin float64) Rect {
	return Rect{
		X0: r.X0 - margin,
		Y0: r.Y0 - margin,
		X1: r.X1 + margin,
		Y1: r.Y1 + margin,
	}
}

// Clip restricts the rectangle to the given bounds.
func (r Rect) Clip(bounds Rect) Rect {
	return Rect{
		X0: math.Max(r.X0, bounds.X0),
		Y0: math.Max(r.Y0, bounds.Y0),
		X1: math.Min(r.X1, bounds.X1),
		Y1: math.Min(r.Y1, bounds.Y1),
	}
}

// HorizontalOverlap returns the length of the horizontal interval shared with
// another rectangle, regardless of vertical position.
func (r Rect) HorizontalOverlap(other Rect) float64 {
	return math.Max(0, math.Min(r.X1, other.X1)-math.Max(r.X0, other.X0))
}

// IsEmpty returns true if the rectangle has zero area.
func (r Rect) IsEmpty() bool {
	return r.X1-r.X0 <= 0 || r.Y1-r.Y0 <= 0
}

// IsValid returns true if the rectangle has positive dimensions.
func (r Rect) IsValid() bool {
	return r.X1-r.X0 > 0 && r.Y1-r.Y0 > 0
}

// Rule represents a drawn line on the page. Table detection uses rules to
// decide whether a grid boundary has a visible ruling line.
type Rule struct {
	Start Point
	End   Point
	Width float64
}

// IsHorizontal reports whether the rule runs (near) horizontally within the
// given tolerance.
func (l Rule) IsHorizontal(tolerance float64) bool {
	return math.Abs(l.Start.Y-l.End.Y) <= tolerance
}

// IsVertical reports whether the rule runs (near) vertically within the
// given tolerance.
func (l Rule) IsVertical(tolerance float64) bool {
	return math.Abs(l.Start.X-l.End.X) <= tolerance
}
