package factory

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/tilerunner/archetypes"
	"github.com/pixeldrift/tilerunner/components"
)

func CreateCamera(e *ecs.ECS) {
	camera := archetypes.Camera.Spawn(e)
	components.Camera.Set(camera, &components.CameraData{})
}
