// Package geometry provides the axis-aligned shapes and overlap predicates
// used by the movement and tile systems. All predicates are pure and treat
// exact edge/tangent contact as a non-collision, so two bodies can rest
// flush against each other without being considered overlapping.
package geometry

// Rect is an axis-aligned rectangle. X/Y is the top-left corner in the
// y-down screen convention.
type Rect struct {
	X, Y, W, H float64
}

// Circle is defined by its center and radius.
type Circle struct {
	X, Y, R float64
}

// Right returns the x coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Bounds returns the smallest rectangle enclosing the circle.
func (c Circle) Bounds() Rect {
	return Rect{X: c.X - c.R, Y: c.Y - c.R, W: 2 * c.R, H: 2 * c.R}
}

// Intersects reports whether two rectangles overlap. Rectangles that only
// share an edge do not intersect.
func Intersects(a, b Rect) bool {
	if a.Bottom() <= b.Y {
		return false
	}
	if a.Y >= b.Bottom() {
		return false
	}
	if a.Right() <= b.X {
		return false
	}
	if a.X >= b.Right() {
		return false
	}
	return true
}

// CirclesOverlap reports whether two circles overlap. Comparing squared
// distances avoids the square root; exact tangency does not count.
func CirclesOverlap(a, b Circle) bool {
	total := a.R + b.R
	return DistanceSquared(a.X, a.Y, b.X, b.Y) < total*total
}

// CircleRectOverlap reports whether a circle overlaps a rectangle. The
// center is clamped to the rectangle to find the nearest point; the circle
// overlaps iff that point lies strictly inside its radius.
func CircleRectOverlap(c Circle, r Rect) bool {
	nx := clamp(c.X, r.X, r.Right())
	ny := clamp(c.Y, r.Y, r.Bottom())
	return DistanceSquared(c.X, c.Y, nx, ny) < c.R*c.R
}

// DistanceSquared returns the squared euclidean distance between two points.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
