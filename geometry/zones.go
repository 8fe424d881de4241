package geometry

// ZoneSize is the width and height of one row in a zoned collider.
type ZoneSize struct {
	W, H float64
}

// ZoneSet approximates an irregular sprite silhouette with a stack of small
// rectangles. Rows are centered horizontally within the frame width and
// stacked top to bottom. The set must be shifted to the owner's position
// after every move; zone positions are always recomputed, never cached
// against a stale origin.
type ZoneSet struct {
	frameW float64
	zones  []Rect
}

// NewZoneSet builds a zone set for a sprite frame of the given width.
func NewZoneSet(frameW float64, rows []ZoneSize) *ZoneSet {
	zs := &ZoneSet{
		frameW: frameW,
		zones:  make([]Rect, len(rows)),
	}
	for i, row := range rows {
		zs.zones[i].W = row.W
		zs.zones[i].H = row.H
	}
	zs.ShiftTo(0, 0)
	return zs
}

// dotZoneRows is the silhouette of the standard 20x20 dot sprite.
var dotZoneRows = []ZoneSize{
	{6, 1}, {10, 1}, {14, 1}, {16, 2}, {18, 2},
	{20, 6},
	{18, 2}, {16, 2}, {14, 1}, {10, 1}, {6, 1},
}

// NewDotZones returns the zone set matching the round 20x20 dot sprite.
func NewDotZones() *ZoneSet {
	return NewZoneSet(20, dotZoneRows)
}

// ShiftTo repositions every zone so the set's frame origin is at (x, y).
// Each row is centered within the frame width and rows stack downward.
func (zs *ZoneSet) ShiftTo(x, y float64) {
	offset := 0.0
	for i := range zs.zones {
		zs.zones[i].X = x + (zs.frameW-zs.zones[i].W)/2
		zs.zones[i].Y = y + offset
		offset += zs.zones[i].H
	}
}

// Zones returns the positioned zone rectangles. The returned slice is owned
// by the set and is invalidated by the next ShiftTo.
func (zs *ZoneSet) Zones() []Rect {
	return zs.zones
}

// Height returns the total stacked height of the set.
func (zs *ZoneSet) Height() float64 {
	h := 0.0
	for _, z := range zs.zones {
		h += z.H
	}
	return h
}

// ZonesOverlap reports whether any zone of a overlaps any zone of b.
// The scan is O(len(a)*len(b)) and short-circuits on the first hit; fine
// for the ~10-15 zones a silhouette uses.
func ZonesOverlap(a, b []Rect) bool {
	for _, za := range a {
		for _, zb := range b {
			if Intersects(za, zb) {
				return true
			}
		}
	}
	return false
}
