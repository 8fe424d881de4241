package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/tilerunner/components"
	cfg "github.com/pixeldrift/tilerunner/config"
	"github.com/pixeldrift/tilerunner/tags"
)

var (
	Dot = newArchetype(
		tags.Dot,
		components.Body,
		components.Collider,
		components.Appearance,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Body,
		components.Collider,
		components.Appearance,
	)
	MovingObstacle = newArchetype(
		tags.Obstacle,
		tags.MovingObstacle,
		components.Body,
		components.Collider,
		components.Appearance,
		components.Tween,
	)
	Particle = newArchetype(
		components.Body,
		components.Particle,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
