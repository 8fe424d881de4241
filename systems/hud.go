package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/tilerunner/components"
	cfg "github.com/pixeldrift/tilerunner/config"
	"github.com/pixeldrift/tilerunner/fonts"
	"github.com/pixeldrift/tilerunner/tags"
)

// DrawHUD renders frame stats, the level name and the dot's position in the
// top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	fontFace := fonts.Small.Get()

	lines := []string{
		fmt.Sprintf("FPS %0.1f  TPS %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS()),
	}

	if levelEntry, ok := components.Level.First(e.World); ok {
		level := components.Level.Get(levelEntry)
		lines = append(lines, fmt.Sprintf("level %s (%d/%d)", level.Name, level.Index+1, len(level.Names)))
	}

	if dotEntry, ok := tags.Dot.First(e.World); ok {
		body := components.Body.Get(dotEntry)
		lines = append(lines, fmt.Sprintf("dot %0.0f, %0.0f", body.X, body.Y))
	}

	x := cfg.HUD.Margin
	y := cfg.HUD.Margin + cfg.HUD.LineGap
	for _, line := range lines {
		text.Draw(screen, line, fontFace, x, y, cfg.HUD.TextColor)
		y += cfg.HUD.LineGap
	}
}
