package leveldata

import (
	"bufio"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pixeldrift/tilerunner/geometry"
)

// MapParams describes the grid of a text map file. The file itself carries
// only tile types, so the caller supplies the geometry.
type MapParams struct {
	Columns    int
	Rows       int
	TileWidth  float64
	TileHeight float64
}

// Default grid for the bundled levels: 16x12 tiles of 80x80 pixels.
var DefaultMapParams = MapParams{
	Columns:    16,
	Rows:       12,
	TileWidth:  80,
	TileHeight: 80,
}

// Load reads a level by extension: ".map" is the whitespace-delimited text
// format, ".tmx" a Tiled map.
func Load(fsys fs.FS, path string, params MapParams) (*TileWorld, error) {
	switch filepath.Ext(path) {
	case ".map":
		return LoadTileMap(fsys, path, params)
	case ".tmx":
		return LoadTMX(fsys, path)
	default:
		return nil, fmt.Errorf("unsupported level format %q", path)
	}
}

// LoadTileMap parses the text map format: whitespace-separated decimal tile
// types, row-major, exactly Columns*Rows values, each in
// [0, TotalTileSprites). Any malformed or missing value fails the whole
// load; partial levels are never returned.
func LoadTileMap(fsys fs.FS, path string, params MapParams) (*TileWorld, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map %s: %w", path, err)
	}
	defer f.Close()

	world := &TileWorld{
		Width:      float64(params.Columns) * params.TileWidth,
		Height:     float64(params.Rows) * params.TileHeight,
		TileWidth:  params.TileWidth,
		TileHeight: params.TileHeight,
	}

	total := params.Columns * params.Rows
	world.Tiles = make([]Tile, 0, total)

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)

	x, y := 0.0, 0.0
	for i := 0; i < total; i++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("read map %s: %w", path, err)
			}
			return nil, fmt.Errorf("map %s: truncated, expected %d tiles, got %d", path, total, i)
		}

		tileType, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("map %s tile %d: %w", path, i, err)
		}
		if tileType < 0 || tileType >= TotalTileSprites {
			return nil, fmt.Errorf("map %s tile %d: type %d out of range [0, %d)", path, i, tileType, TotalTileSprites)
		}

		world.Tiles = append(world.Tiles, Tile{
			Box:  geometry.Rect{X: x, Y: y, W: params.TileWidth, H: params.TileHeight},
			Type: tileType,
		})

		x += params.TileWidth
		if x >= world.Width {
			x = 0
			y += params.TileHeight
		}
	}

	return world, nil
}

// ListLevels returns the file names of all levels under dir, sorted.
func ListLevels(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read levels dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".map" && ext != ".tmx" {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}
	sort.Strings(names)
	return names, nil
}
