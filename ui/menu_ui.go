package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/pixeldrift/tilerunner/config"
)

// MenuUI holds the ebitenui interface for the main menu. The level, dot
// shape and collider overlay selections live here until Start hands them to
// the world scene.
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart func()

	// Selections
	LevelNames    []string
	LevelIndex    int
	Shape         cfg.DotShape
	ShowColliders bool

	// Widget references for updates
	levelButton     *widget.Button
	shapeButton     *widget.Button
	collidersButton *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

// NewMenuUI creates the main menu. levelNames must be non-empty.
func NewMenuUI(levelNames []string, levelIndex int, showColliders bool, onStart func()) *MenuUI {
	mui := &MenuUI{
		OnStart:       onStart,
		LevelNames:    levelNames,
		LevelIndex:    levelIndex,
		ShowColliders: showColliders,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   13,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("TILERUNNER", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	mui.levelButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 28)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(mui.levelText(), &mui.normalFace, mui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			mui.LevelIndex = (mui.LevelIndex + 1) % len(mui.LevelNames)
			if textWidget := mui.levelButton.Text(); textWidget != nil {
				textWidget.Label = mui.levelText()
			}
		}),
	)
	contentContainer.AddChild(mui.levelButton)

	mui.shapeButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 28)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(mui.shapeText(), &mui.normalFace, mui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			mui.Shape = (mui.Shape + 1) % 3
			if textWidget := mui.shapeButton.Text(); textWidget != nil {
				textWidget.Label = mui.shapeText()
			}
		}),
	)
	contentContainer.AddChild(mui.shapeButton)

	mui.collidersButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 28)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(mui.collidersText(), &mui.normalFace, mui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			mui.ShowColliders = !mui.ShowColliders
			if textWidget := mui.collidersButton.Text(); textWidget != nil {
				textWidget.Label = mui.collidersText()
			}
		}),
	)
	contentContainer.AddChild(mui.collidersButton)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 32)),
		widget.ButtonOpts.Image(mui.startButtonImage()),
		widget.ButtonOpts.Text("START", &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnStart != nil {
				mui.OnStart()
			}
		}),
	)
	contentContainer.AddChild(startButton)

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("arrows/WASD move  F1 colliders  Esc menu", &mui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{150, 150, 170, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Update runs the ebitenui event loop for one tick.
func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func (mui *MenuUI) levelText() string {
	return fmt.Sprintf("Level: %s", mui.LevelNames[mui.LevelIndex])
}

func (mui *MenuUI) shapeText() string {
	return fmt.Sprintf("Dot collider: %s", mui.Shape)
}

func (mui *MenuUI) collidersText() string {
	if mui.ShowColliders {
		return "Collider overlay: on"
	}
	return "Collider overlay: off"
}

func (mui *MenuUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    color.RGBA{255, 255, 255, 255},
		Hover:   color.RGBA{220, 220, 255, 255},
		Pressed: color.RGBA{180, 180, 220, 255},
	}
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (mui *MenuUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{50, 90, 50, 255})
	hover := image.NewNineSliceColor(color.RGBA{70, 110, 70, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 70, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: idle,
	}
}
