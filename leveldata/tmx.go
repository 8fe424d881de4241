package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"

	"github.com/pixeldrift/tilerunner/geometry"
)

// LoadTMX parses a Tiled TMX level. The layer named "walls" produces wall
// tiles and the layer named "floor" produces passable tiles; other layers
// are ignored. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, path string) (*TileWorld, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	world := &TileWorld{
		Width:      float64(levelMap.Width) * tileW,
		Height:     float64(levelMap.Height) * tileH,
		TileWidth:  tileW,
		TileHeight: tileH,
	}

	wallSpan := WallTypeLast - WallTypeFirst + 1

	for _, layer := range levelMap.Layers {
		var wall bool
		switch layer.Name {
		case "walls":
			wall = true
		case "floor":
			wall = false
		default:
			continue
		}

		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				tileType := int(tile.ID) % WallTypeFirst // red/green/blue floors
				if wall {
					tileType = WallTypeFirst + int(tile.ID)%wallSpan
				}

				world.Tiles = append(world.Tiles, Tile{
					Box: geometry.Rect{
						X: float64(x) * tileW,
						Y: float64(y) * tileH,
						W: tileW,
						H: tileH,
					},
					Type: tileType,
				})
			}
		}
	}

	if len(world.Tiles) == 0 {
		return nil, fmt.Errorf("TMX %s: no tiles in walls/floor layers", path)
	}

	return world, nil
}
