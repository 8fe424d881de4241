package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/tilerunner/assets"
	"github.com/pixeldrift/tilerunner/components"
	cfg "github.com/pixeldrift/tilerunner/config"
	"github.com/pixeldrift/tilerunner/systems"
	"github.com/pixeldrift/tilerunner/systems/factory"
)

// WorldConfig holds the selections passed from the menu to the world scene
type WorldConfig struct {
	LevelIndex    int
	Shape         cfg.DotShape
	ShowColliders bool
}

// WorldScene runs the tile level: the dot, the obstacles and the camera.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	worldConfig  *WorldConfig
	once         sync.Once
}

// NewWorldScene creates a world scene with default configuration
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc, worldConfig: &WorldConfig{}}
}

// NewWorldSceneWithConfig creates a world scene with menu configuration
func NewWorldSceneWithConfig(sc SceneChanger, config *WorldConfig) *WorldScene {
	return &WorldScene{sceneChanger: sc, worldConfig: config}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if ws.backRequested() {
		ws.leave()
	}
}

func (ws *WorldScene) backRequested() bool {
	entry, ok := components.Input.First(ws.ecs.World)
	if !ok {
		return false
	}
	return components.Input.Get(entry).JustPressed(cfg.ActionBack)
}

// leave saves progress and settings, then returns to the menu.
func (ws *WorldScene) leave() {
	_ = systems.SaveProgress(ws.worldConfig.LevelIndex)
	systems.SaveCurrentSettings(ws.ecs)
	ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDot)
	e.AddSystem(systems.UpdateTweens)
	e.AddSystem(systems.UpdateMovement)
	e.AddSystem(systems.UpdateParticles)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawEntities)
	e.AddRenderer(cfg.Default, systems.DrawParticles)
	e.AddRenderer(cfg.Default, systems.DrawColliders)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = e

	if _, err := factory.CreateLevel(e, assets.Maps(), ws.worldConfig.LevelIndex); err != nil {
		panic("load level: " + err.Error())
	}

	settings := systems.GetOrCreateSettings(e)
	settings.ShowColliders = ws.worldConfig.ShowColliders

	factory.CreateCamera(e)

	// The spawn and obstacle row sit in the open strip every bundled level
	// keeps along its second tile row.
	spawnX := cfg.Level.TileWidth * 1.5
	spawnY := cfg.Level.TileHeight * 1.5

	dot := ws.spawnDot(spawnX, spawnY)

	factory.CreateBoxObstacle(e, spawnX+280, spawnY, 40, 40)
	factory.CreateCircleObstacle(e, spawnX+360, spawnY, 20)
	factory.CreateZonedObstacle(e, spawnX+440, spawnY)
	factory.CreateMovingObstacle(e, spawnX+520, spawnY+10, 40, 30)

	body := components.Body.Get(dot)
	systems.SnapCamera(e, body.CenterX(), body.CenterY())
}

func (ws *WorldScene) spawnDot(x, y float64) *donburi.Entry {
	switch ws.worldConfig.Shape {
	case cfg.ShapeCircle:
		return factory.CreateCircleDot(ws.ecs, x, y)
	case cfg.ShapeZoned:
		return factory.CreateZonedDot(ws.ecs, x, y)
	default:
		return factory.CreateBoxDot(ws.ecs, x, y)
	}
}
