package systems

import (
	"math/rand"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/tilerunner/components"
	cfg "github.com/pixeldrift/tilerunner/config"
	"github.com/pixeldrift/tilerunner/systems/factory"
	"github.com/pixeldrift/tilerunner/tags"
)

// UpdateParticles spawns trail particles behind the moving dot and ages out
// the live ones.
func UpdateParticles(e *ecs.ECS) {
	tags.Dot.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if body.VelX == 0 && body.VelY == 0 {
			return
		}
		for i := 0; i < cfg.Particle.PerTick; i++ {
			x := body.CenterX() + (rand.Float64()*2-1)*cfg.Particle.Jitter
			y := body.CenterY() + (rand.Float64()*2-1)*cfg.Particle.Jitter
			factory.SpawnParticle(e, x, y)
		}
	})

	var dead []*donburi.Entry
	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		particle := components.Particle.Get(entry)
		particle.Life--
		if particle.Life <= 0 {
			dead = append(dead, entry)
		}
	})
	for _, entry := range dead {
		e.World.Remove(entry.Entity())
	}
}
