package factory

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/tilerunner/archetypes"
	"github.com/pixeldrift/tilerunner/components"
	cfg "github.com/pixeldrift/tilerunner/config"
	"github.com/pixeldrift/tilerunner/geometry"
)

// CreateBoxObstacle spawns a static rectangular obstacle.
func CreateBoxObstacle(e *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(e)

	components.Body.SetValue(obstacle, components.BodyData{X: x, Y: y, W: w, H: h})
	collider := components.NewBoxCollider(w, h)
	collider.ShiftTo(x, y, w, h)
	components.Collider.SetValue(obstacle, collider)
	components.Appearance.SetValue(obstacle, components.AppearanceData{Color: cfg.Obstacle.BoxColor})

	return obstacle
}

// CreateCircleObstacle spawns a static circular obstacle with radius r.
func CreateCircleObstacle(e *ecs.ECS, x, y, r float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(e)

	components.Body.SetValue(obstacle, components.BodyData{X: x, Y: y, W: 2 * r, H: 2 * r})
	collider := components.NewCircleCollider(r)
	collider.ShiftTo(x, y, 2*r, 2*r)
	components.Collider.SetValue(obstacle, collider)
	components.Appearance.SetValue(obstacle, components.AppearanceData{Color: cfg.Obstacle.CircleColor})

	return obstacle
}

// CreateZonedObstacle spawns a static obstacle using the dot silhouette
// zones, for zoned-vs-zoned collision.
func CreateZonedObstacle(e *ecs.ECS, x, y float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(e)

	components.Body.SetValue(obstacle, components.BodyData{X: x, Y: y, W: cfg.Dot.Width, H: cfg.Dot.Height})
	collider := components.NewZoneCollider(geometry.NewDotZones())
	collider.ShiftTo(x, y, cfg.Dot.Width, cfg.Dot.Height)
	components.Collider.SetValue(obstacle, collider)
	components.Appearance.SetValue(obstacle, components.AppearanceData{Color: cfg.Obstacle.ZonedColor})

	return obstacle
}

// CreateMovingObstacle spawns a box obstacle that patrols vertically using
// a tween sequence, moving up by the configured patrol distance and back.
func CreateMovingObstacle(e *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	obstacle := archetypes.MovingObstacle.Spawn(e)

	components.Body.SetValue(obstacle, components.BodyData{X: x, Y: y, W: w, H: h})
	collider := components.NewBoxCollider(w, h)
	collider.ShiftTo(x, y, w, h)
	components.Collider.SetValue(obstacle, collider)
	components.Appearance.SetValue(obstacle, components.AppearanceData{Color: cfg.Obstacle.BoxColor})

	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(y), float32(y-cfg.Obstacle.PatrolDistance), cfg.Obstacle.PatrolSeconds, ease.Linear),
		gween.New(float32(y-cfg.Obstacle.PatrolDistance), float32(y), cfg.Obstacle.PatrolSeconds, ease.Linear),
	)
	components.Tween.Set(obstacle, tw)

	return obstacle
}
