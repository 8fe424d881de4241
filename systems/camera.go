package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/tilerunner/components"
	"github.com/pixeldrift/tilerunner/config"
	"github.com/pixeldrift/tilerunner/tags"
)

// UpdateCamera follows the dot's center, clamped so the view never leaves
// the level, with smoothing toward the target.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	dotEntry, ok := tags.Dot.First(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(dotEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.World == nil {
		return
	}

	targetX := body.CenterX()
	targetY := body.CenterY()

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)

	// Keep the view inside the level.
	minCameraX := screenWidth / 2
	maxCameraX := levelData.World.Width - screenWidth/2
	minCameraY := screenHeight / 2
	maxCameraY := levelData.World.Height - screenHeight/2

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera centers the camera immediately, used when a scene starts so
// the view doesn't pan in from the origin.
func SnapCamera(e *ecs.ECS, x, y float64) {
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		camera.Position.X = x
		camera.Position.Y = y
	}
}
