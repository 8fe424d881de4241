package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// AppearanceData is the fill color an entity is drawn with. Entities are
// rendered from their collider shape; there is no sprite sheet.
type AppearanceData struct {
	Color color.RGBA
}

var Appearance = donburi.NewComponentType[AppearanceData]()
