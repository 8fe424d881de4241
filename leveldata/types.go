// Package leveldata provides tile level parsing and the wall query used by
// movement resolution. It has no dependencies on ebitengine or donburi,
// pure data only.
package leveldata

import "github.com/pixeldrift/tilerunner/geometry"

// Tile sprite types. The wall types are numbered contiguously so the wall
// query can test a closed range instead of a lookup table.
const (
	TileRed         = 0
	TileGreen       = 1
	TileBlue        = 2
	TileCenter      = 3
	TileTop         = 4
	TileTopRight    = 5
	TileRight       = 6
	TileBottomRight = 7
	TileBottom      = 8
	TileBottomLeft  = 9
	TileLeft        = 10
	TileTopLeft     = 11

	TotalTileSprites = 12

	WallTypeFirst = TileCenter
	WallTypeLast  = TileTopLeft
)

// Tile is one grid cell. Box doubles as its position and collision bounds.
// Tiles are created at load time and immutable afterwards.
type Tile struct {
	Box  geometry.Rect
	Type int
}

// TileWorld holds a loaded level: the tile set plus the pixel dimensions of
// the playfield.
type TileWorld struct {
	Tiles      []Tile
	Width      float64 // level width in pixels
	Height     float64 // level height in pixels
	TileWidth  float64
	TileHeight float64
}

// Bounds returns the playfield rectangle.
func (w *TileWorld) Bounds() geometry.Rect {
	return geometry.Rect{X: 0, Y: 0, W: w.Width, H: w.Height}
}

// IsWall reports whether a tile type is impassable.
func IsWall(tileType int) bool {
	return tileType >= WallTypeFirst && tileType <= WallTypeLast
}

// TouchesWall reports whether box overlaps any wall tile. Linear scan,
// true on the first hit.
func (w *TileWorld) TouchesWall(box geometry.Rect) bool {
	for i := range w.Tiles {
		if !IsWall(w.Tiles[i].Type) {
			continue
		}
		if geometry.Intersects(box, w.Tiles[i].Box) {
			return true
		}
	}
	return false
}

// TilesIn returns the tiles overlapping view, in load order. Used by the
// renderer to cull tiles outside the camera.
func (w *TileWorld) TilesIn(view geometry.Rect) []Tile {
	var visible []Tile
	for i := range w.Tiles {
		if geometry.Intersects(view, w.Tiles[i].Box) {
			visible = append(visible, w.Tiles[i])
		}
	}
	return visible
}
