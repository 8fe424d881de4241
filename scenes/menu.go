package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pixeldrift/tilerunner/assets"
	cfg "github.com/pixeldrift/tilerunner/config"
	"github.com/pixeldrift/tilerunner/leveldata"
	"github.com/pixeldrift/tilerunner/systems"
	"github.com/pixeldrift/tilerunner/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	shouldStart  bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.menuUI.Update()

	if ms.shouldStart {
		ms.startWorld()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	names, err := leveldata.ListLevels(assets.Maps(), cfg.Level.MapsDir)
	if err != nil {
		panic("list embedded levels: " + err.Error())
	}

	levelIndex := 0
	if progress, err := systems.LoadProgress(); err == nil && progress != nil {
		levelIndex = ((progress.LevelIndex % len(names)) + len(names)) % len(names)
	}

	showColliders := false
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		showColliders = saved.ShowColliders
	}

	ms.menuUI = ui.NewMenuUI(names, levelIndex, showColliders,
		func() { ms.shouldStart = true },
	)
}

func (ms *MenuScene) startWorld() {
	ms.sceneChanger.ChangeScene(NewWorldSceneWithConfig(ms.sceneChanger, &WorldConfig{
		LevelIndex:    ms.menuUI.LevelIndex,
		Shape:         ms.menuUI.Shape,
		ShowColliders: ms.menuUI.ShowColliders,
	}))
}
