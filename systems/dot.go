package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/tilerunner/components"
	cfg "github.com/pixeldrift/tilerunner/config"
	"github.com/pixeldrift/tilerunner/tags"
)

// UpdateDot turns held movement actions into the dot's velocity for this
// tick. Opposite directions cancel.
func UpdateDot(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if input.JustPressed(cfg.ActionToggleColliders) {
		settings.ShowColliders = !settings.ShowColliders
	}

	tags.Dot.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)

		body.VelX = 0
		body.VelY = 0
		if input.Pressed(cfg.ActionMoveLeft) {
			body.VelX -= cfg.Dot.Velocity
		}
		if input.Pressed(cfg.ActionMoveRight) {
			body.VelX += cfg.Dot.Velocity
		}
		if input.Pressed(cfg.ActionMoveUp) {
			body.VelY -= cfg.Dot.Velocity
		}
		if input.Pressed(cfg.ActionMoveDown) {
			body.VelY += cfg.Dot.Velocity
		}
	})
}
