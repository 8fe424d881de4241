package components

import (
	"github.com/yohamta/donburi"

	"github.com/pixeldrift/tilerunner/geometry"
)

// ColliderKind selects which shape an entity collides with.
type ColliderKind int

const (
	ColliderBox ColliderKind = iota
	ColliderCircle
	ColliderZones
)

// ColliderData is an entity's collision shape, positioned in world space.
// It must be shifted to the owning body's position after every move; the
// movement system never tests a collider that hasn't been repositioned.
type ColliderData struct {
	Kind   ColliderKind
	Box    geometry.Rect
	Circle geometry.Circle
	Zones  *geometry.ZoneSet
}

// NewBoxCollider returns a collider matching a w*h frame.
func NewBoxCollider(w, h float64) ColliderData {
	return ColliderData{Kind: ColliderBox, Box: geometry.Rect{W: w, H: h}}
}

// NewCircleCollider returns a collider with radius r, centered in the frame.
func NewCircleCollider(r float64) ColliderData {
	return ColliderData{Kind: ColliderCircle, Circle: geometry.Circle{R: r}}
}

// NewZoneCollider wraps a zone set.
func NewZoneCollider(zones *geometry.ZoneSet) ColliderData {
	return ColliderData{Kind: ColliderZones, Zones: zones}
}

// ShiftTo repositions the collider for a frame whose top-left corner is at
// (x, y) with the given size. Circles are centered in the frame.
func (c *ColliderData) ShiftTo(x, y, w, h float64) {
	switch c.Kind {
	case ColliderBox:
		c.Box.X = x
		c.Box.Y = y
	case ColliderCircle:
		c.Circle.X = x + w/2
		c.Circle.Y = y + h/2
	case ColliderZones:
		c.Zones.ShiftTo(x, y)
	}
}

// Overlaps reports whether two colliders overlap, dispatching to the
// predicate matching the shape pair. Zone-vs-circle approximates the circle
// against each zone rectangle.
func (c *ColliderData) Overlaps(other *ColliderData) bool {
	switch c.Kind {
	case ColliderBox:
		switch other.Kind {
		case ColliderBox:
			return geometry.Intersects(c.Box, other.Box)
		case ColliderCircle:
			return geometry.CircleRectOverlap(other.Circle, c.Box)
		case ColliderZones:
			return geometry.ZonesOverlap([]geometry.Rect{c.Box}, other.Zones.Zones())
		}
	case ColliderCircle:
		switch other.Kind {
		case ColliderBox:
			return geometry.CircleRectOverlap(c.Circle, other.Box)
		case ColliderCircle:
			return geometry.CirclesOverlap(c.Circle, other.Circle)
		case ColliderZones:
			return circleZonesOverlap(c.Circle, other.Zones.Zones())
		}
	case ColliderZones:
		switch other.Kind {
		case ColliderBox:
			return geometry.ZonesOverlap(c.Zones.Zones(), []geometry.Rect{other.Box})
		case ColliderCircle:
			return circleZonesOverlap(other.Circle, c.Zones.Zones())
		case ColliderZones:
			return geometry.ZonesOverlap(c.Zones.Zones(), other.Zones.Zones())
		}
	}
	return false
}

// WallBox returns the rectangle used to test this collider against wall
// tiles. Tile queries are rectangle-based; the circle uses its bounding
// box, which slightly over-approximates near tile corners.
func (c *ColliderData) WallBox() geometry.Rect {
	switch c.Kind {
	case ColliderCircle:
		return c.Circle.Bounds()
	case ColliderZones:
		zones := c.Zones.Zones()
		if len(zones) == 0 {
			return geometry.Rect{}
		}
		box := zones[0]
		for _, z := range zones[1:] {
			if z.X < box.X {
				box.W += box.X - z.X
				box.X = z.X
			}
			if right := z.Right(); right > box.Right() {
				box.W = right - box.X
			}
			if bottom := z.Bottom(); bottom > box.Bottom() {
				box.H = bottom - box.Y
			}
		}
		return box
	default:
		return c.Box
	}
}

func circleZonesOverlap(c geometry.Circle, zones []geometry.Rect) bool {
	for _, z := range zones {
		if geometry.CircleRectOverlap(c, z) {
			return true
		}
	}
	return false
}

var Collider = donburi.NewComponentType[ColliderData]()
