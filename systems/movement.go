package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/tilerunner/components"
	"github.com/pixeldrift/tilerunner/leveldata"
	"github.com/pixeldrift/tilerunner/tags"
)

// UpdateMovement resolves the dot's movement one axis at a time: apply the
// velocity, reposition the collider, and undo the move if the new position
// leaves the level or overlaps a wall tile or an obstacle. X is fully
// resolved before Y; the axes are never resolved jointly, so a fast enough
// dot can clip past a corner. That matches the frame-stepped movement model
// this resolution strategy comes from and holds as long as speeds stay well
// below the tile size.
func UpdateMovement(e *ecs.ECS) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	world := components.Level.Get(levelEntry).World
	if world == nil {
		return
	}

	tags.Dot.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		collider := components.Collider.Get(entry)
		obstacles := collectObstacleColliders(e, entry)

		// X axis: propose, test, revert on hit.
		body.X += body.VelX
		collider.ShiftTo(body.X, body.Y, body.W, body.H)
		if blocked(body, collider, world, obstacles) {
			body.X -= body.VelX
			collider.ShiftTo(body.X, body.Y, body.W, body.H)
		}

		// Then the Y axis, independently.
		body.Y += body.VelY
		collider.ShiftTo(body.X, body.Y, body.W, body.H)
		if blocked(body, collider, world, obstacles) {
			body.Y -= body.VelY
			collider.ShiftTo(body.X, body.Y, body.W, body.H)
		}
	})
}

// blocked reports whether the body's current (proposed) position is
// rejected: outside the level, overlapping a wall tile, or overlapping any
// obstacle collider. The collider must already be shifted to the body.
func blocked(body *components.BodyData, collider *components.ColliderData, world *leveldata.TileWorld, obstacles []*components.ColliderData) bool {
	frame := body.Bounds()
	if frame.X < 0 || frame.Y < 0 || frame.Right() > world.Width || frame.Bottom() > world.Height {
		return true
	}
	if world.TouchesWall(collider.WallBox()) {
		return true
	}
	for _, obstacle := range obstacles {
		if collider.Overlaps(obstacle) {
			return true
		}
	}
	return false
}

func collectObstacleColliders(e *ecs.ECS, self *donburi.Entry) []*components.ColliderData {
	var colliders []*components.ColliderData
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		if entry.Entity() == self.Entity() {
			return
		}
		colliders = append(colliders, components.Collider.Get(entry))
	})
	return colliders
}
