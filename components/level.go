package components

import (
	"github.com/yohamta/donburi"

	"github.com/pixeldrift/tilerunner/leveldata"
)

type LevelData struct {
	World *leveldata.TileWorld
	Name  string   // file name of the loaded level
	Names []string // all available level file names
	Index int
}

var Level = donburi.NewComponentType[LevelData]()
