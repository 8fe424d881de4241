package factory

import (
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/tilerunner/archetypes"
	"github.com/pixeldrift/tilerunner/components"
	cfg "github.com/pixeldrift/tilerunner/config"
)

// SpawnParticle creates one trail particle centered at (x, y) with a random
// palette color.
func SpawnParticle(e *ecs.ECS, x, y float64) *donburi.Entry {
	particle := archetypes.Particle.Spawn(e)

	size := cfg.Particle.Size
	components.Body.SetValue(particle, components.BodyData{
		X: x - size/2, Y: y - size/2,
		W: size, H: size,
	})
	components.Particle.SetValue(particle, components.ParticleData{
		Life:    cfg.Particle.Lifetime,
		MaxLife: cfg.Particle.Lifetime,
		Size:    size,
		Color:   cfg.Particle.Colors[rand.Intn(len(cfg.Particle.Colors))],
	})

	return particle
}
