package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/tilerunner/archetypes"
	"github.com/pixeldrift/tilerunner/components"
	cfg "github.com/pixeldrift/tilerunner/config"
	"github.com/pixeldrift/tilerunner/geometry"
)

// CreateDot spawns the player dot at (x, y) with the given collider shape.
// The collider is shifted to the spawn position immediately so no test ever
// sees it unpositioned.
func CreateDot(e *ecs.ECS, x, y float64, collider components.ColliderData) *donburi.Entry {
	dot := archetypes.Dot.Spawn(e)

	components.Body.SetValue(dot, components.BodyData{
		X: x, Y: y,
		W: cfg.Dot.Width, H: cfg.Dot.Height,
	})
	collider.ShiftTo(x, y, cfg.Dot.Width, cfg.Dot.Height)
	components.Collider.SetValue(dot, collider)
	components.Appearance.SetValue(dot, components.AppearanceData{Color: cfg.Dot.Color})

	return dot
}

// CreateBoxDot spawns the dot with a box collider matching its frame.
func CreateBoxDot(e *ecs.ECS, x, y float64) *donburi.Entry {
	return CreateDot(e, x, y, components.NewBoxCollider(cfg.Dot.Width, cfg.Dot.Height))
}

// CreateCircleDot spawns the dot with a circle collider inscribed in its frame.
func CreateCircleDot(e *ecs.ECS, x, y float64) *donburi.Entry {
	return CreateDot(e, x, y, components.NewCircleCollider(cfg.Dot.Width/2))
}

// CreateZonedDot spawns the dot with the zoned silhouette collider.
func CreateZonedDot(e *ecs.ECS, x, y float64) *donburi.Entry {
	return CreateDot(e, x, y, components.NewZoneCollider(geometry.NewDotZones()))
}
