package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/tilerunner/components"
	"github.com/pixeldrift/tilerunner/tags"
)

const tweenStep = 1.0 / 60.0

// UpdateTweens drives moving obstacles along their tween sequence and keeps
// their colliders in sync with the new position. Finished sequences restart
// so the patrol loops forever.
func UpdateTweens(e *ecs.ECS) {
	tags.MovingObstacle.Each(e.World, func(entry *donburi.Entry) {
		seq := components.Tween.Get(entry)
		body := components.Body.Get(entry)
		collider := components.Collider.Get(entry)

		y, _, seqDone := seq.Update(tweenStep)
		body.Y = float64(y)
		collider.ShiftTo(body.X, body.Y, body.W, body.H)

		if seqDone {
			seq.Reset()
		}
	})
}
