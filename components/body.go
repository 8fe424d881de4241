package components

import (
	"github.com/yohamta/donburi"

	"github.com/pixeldrift/tilerunner/geometry"
)

// BodyData is an entity's logical position (top-left), size, and velocity
// in pixels per tick.
type BodyData struct {
	X, Y float64
	W, H float64

	VelX, VelY float64
}

// Bounds returns the body's frame rectangle.
func (b *BodyData) Bounds() geometry.Rect {
	return geometry.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// CenterX returns the x coordinate of the body's center.
func (b *BodyData) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the y coordinate of the body's center.
func (b *BodyData) CenterY() float64 { return b.Y + b.H/2 }

var Body = donburi.NewComponentType[BodyData]()
