package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/tilerunner/components"
	cfg "github.com/pixeldrift/tilerunner/config"
	"github.com/pixeldrift/tilerunner/geometry"
	"github.com/pixeldrift/tilerunner/leveldata"
	"github.com/pixeldrift/tilerunner/tags"
)

// cameraOffset returns the translation from world to screen coordinates.
func cameraOffset(e *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

// DrawLevel renders the tiles intersecting the camera view, each as a
// solid-colored cell from the tile palette.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	world := components.Level.Get(levelEntry).World
	if world == nil {
		return
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := geometry.Rect{X: -camX, Y: -camY, W: float64(width), H: float64(height)}

	for _, tile := range world.TilesIn(view) {
		clr := color.RGBA{255, 0, 255, 255} // loud fallback for bad types
		if tile.Type >= 0 && tile.Type < len(cfg.TilePalette) {
			clr = cfg.TilePalette[tile.Type]
		}
		vector.FillRect(screen,
			float32(tile.Box.X+camX), float32(tile.Box.Y+camY),
			float32(tile.Box.W), float32(tile.Box.H),
			clr, false)
	}
}

// DrawEntities renders the dot and obstacles from their collider shapes.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	components.Appearance.Each(e.World, func(entry *donburi.Entry) {
		appearance := components.Appearance.Get(entry)
		collider := components.Collider.Get(entry)
		drawCollider(screen, collider, camX, camY, appearance.Color)
	})
}

func drawCollider(screen *ebiten.Image, collider *components.ColliderData, camX, camY float64, clr color.RGBA) {
	switch collider.Kind {
	case components.ColliderBox:
		box := collider.Box
		vector.FillRect(screen, float32(box.X+camX), float32(box.Y+camY), float32(box.W), float32(box.H), clr, false)
	case components.ColliderCircle:
		circle := collider.Circle
		vector.DrawFilledCircle(screen, float32(circle.X+camX), float32(circle.Y+camY), float32(circle.R), clr, true)
	case components.ColliderZones:
		for _, zone := range collider.Zones.Zones() {
			vector.FillRect(screen, float32(zone.X+camX), float32(zone.Y+camY), float32(zone.W), float32(zone.H), clr, false)
		}
	}
}

// DrawParticles renders the trail, fading each particle out over its life.
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	components.Particle.Each(e.World, func(entry *donburi.Entry) {
		particle := components.Particle.Get(entry)
		body := components.Body.Get(entry)

		ratio := float64(particle.Life) / float64(particle.MaxLife)
		faded := color.RGBA{
			R: uint8(float64(particle.Color.R) * ratio),
			G: uint8(float64(particle.Color.G) * ratio),
			B: uint8(float64(particle.Color.B) * ratio),
			A: uint8(float64(particle.Color.A) * ratio),
		}
		vector.FillRect(screen,
			float32(body.X+camX), float32(body.Y+camY),
			float32(body.W), float32(body.H),
			faded, false)
	})
}

// DrawColliders outlines every collider and marks wall tiles, toggled from
// settings. The dot's zone rows become individually visible here.
func DrawColliders(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.ShowColliders {
		return
	}

	camX, camY, ok := cameraOffset(e, screen)
	if !ok {
		return
	}

	outline := color.RGBA{0, 255, 255, 255}
	wallOutline := color.RGBA{255, 80, 80, 255}

	if levelEntry, ok := components.Level.First(e.World); ok {
		if world := components.Level.Get(levelEntry).World; world != nil {
			for _, tile := range world.Tiles {
				if !leveldata.IsWall(tile.Type) {
					continue
				}
				strokeRect(screen, tile.Box, camX, camY, wallOutline)
			}
		}
	}

	drawOne := func(entry *donburi.Entry) {
		collider := components.Collider.Get(entry)
		switch collider.Kind {
		case components.ColliderBox:
			strokeRect(screen, collider.Box, camX, camY, outline)
		case components.ColliderCircle:
			circle := collider.Circle
			vector.StrokeCircle(screen, float32(circle.X+camX), float32(circle.Y+camY), float32(circle.R), 1, outline, true)
		case components.ColliderZones:
			for _, zone := range collider.Zones.Zones() {
				strokeRect(screen, zone, camX, camY, outline)
			}
		}
	}
	tags.Dot.Each(e.World, drawOne)
	tags.Obstacle.Each(e.World, drawOne)
}

func strokeRect(screen *ebiten.Image, box geometry.Rect, camX, camY float64, clr color.RGBA) {
	vector.StrokeRect(screen, float32(box.X+camX), float32(box.Y+camY), float32(box.W), float32(box.H), 1, clr, false)
}
