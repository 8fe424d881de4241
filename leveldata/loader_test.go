package leveldata_test

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeldrift/tilerunner/geometry"
	"github.com/pixeldrift/tilerunner/leveldata"
)

var testParams = leveldata.MapParams{
	Columns:    4,
	Rows:       3,
	TileWidth:  10,
	TileHeight: 10,
}

func mapFS(content string) fstest.MapFS {
	return fstest.MapFS{
		"maps/test.map": &fstest.MapFile{Data: []byte(content)},
	}
}

func TestLoadTileMap(t *testing.T) {
	// 4x3 grid, wall ring (type 3 = center wall) around two floor tiles.
	world, err := leveldata.LoadTileMap(mapFS(`
		3 3 3 3
		3 0 1 3
		3 3 3 3
	`), "maps/test.map", testParams)
	require.NoError(t, err)

	assert.Equal(t, 40.0, world.Width)
	assert.Equal(t, 30.0, world.Height)
	require.Len(t, world.Tiles, 12)

	// Row-major placement.
	assert.Equal(t, geometry.Rect{X: 0, Y: 0, W: 10, H: 10}, world.Tiles[0].Box)
	assert.Equal(t, geometry.Rect{X: 10, Y: 10, W: 10, H: 10}, world.Tiles[5].Box)
	assert.Equal(t, geometry.Rect{X: 30, Y: 20, W: 10, H: 10}, world.Tiles[11].Box)

	assert.Equal(t, leveldata.TileRed, world.Tiles[5].Type)
	assert.Equal(t, leveldata.TileGreen, world.Tiles[6].Type)
	assert.Equal(t, leveldata.TileCenter, world.Tiles[0].Type)
}

func TestLoadTileMapErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := leveldata.LoadTileMap(fstest.MapFS{}, "maps/nope.map", testParams)
		assert.Error(t, err)
	})

	t.Run("tile type out of range", func(t *testing.T) {
		_, err := leveldata.LoadTileMap(mapFS(`
			0 0 0 0
			0 12 0 0
			0 0 0 0
		`), "maps/test.map", testParams)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})

	t.Run("negative tile type", func(t *testing.T) {
		_, err := leveldata.LoadTileMap(mapFS(`
			0 0 0 0
			0 -1 0 0
			0 0 0 0
		`), "maps/test.map", testParams)
		assert.Error(t, err)
	})

	t.Run("truncated file", func(t *testing.T) {
		_, err := leveldata.LoadTileMap(mapFS("0 1 2"), "maps/test.map", testParams)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "truncated")
	})

	t.Run("non-integer value", func(t *testing.T) {
		_, err := leveldata.LoadTileMap(mapFS(`
			0 0 0 0
			0 x 0 0
			0 0 0 0
		`), "maps/test.map", testParams)
		assert.Error(t, err)
	})
}

func TestTouchesWall(t *testing.T) {
	world, err := leveldata.LoadTileMap(mapFS(`
		3 3 3 3
		3 0 1 3
		3 3 3 3
	`), "maps/test.map", testParams)
	require.NoError(t, err)

	t.Run("fully inside a floor tile", func(t *testing.T) {
		assert.False(t, world.TouchesWall(geometry.Rect{X: 12, Y: 12, W: 6, H: 6}))
	})

	t.Run("overlapping a wall tile", func(t *testing.T) {
		assert.True(t, world.TouchesWall(geometry.Rect{X: 8, Y: 12, W: 6, H: 6}))
	})

	t.Run("flush against a wall tile is not a hit", func(t *testing.T) {
		assert.False(t, world.TouchesWall(geometry.Rect{X: 10, Y: 12, W: 6, H: 6}))
	})
}

func TestTilesIn(t *testing.T) {
	world, err := leveldata.LoadTileMap(mapFS(`
		3 3 3 3
		3 0 1 3
		3 3 3 3
	`), "maps/test.map", testParams)
	require.NoError(t, err)

	visible := world.TilesIn(geometry.Rect{X: 0, Y: 0, W: 15, H: 15})
	assert.Len(t, visible, 4) // the 2x2 block of tiles under the view

	all := world.TilesIn(world.Bounds())
	assert.Len(t, all, 12)
}

func TestLoadTMX(t *testing.T) {
	world, err := leveldata.LoadTMX(os.DirFS("testdata"), "ring.tmx")
	require.NoError(t, err)

	assert.Equal(t, 64.0, world.Width)
	assert.Equal(t, 48.0, world.Height)

	// Floor layer has two tiles, walls layer a ring of ten.
	walls := 0
	for _, tile := range world.Tiles {
		if leveldata.IsWall(tile.Type) {
			walls++
		}
	}
	assert.Equal(t, 10, walls)
	assert.Len(t, world.Tiles, 12)

	// The interior is passable, the ring is not.
	assert.False(t, world.TouchesWall(geometry.Rect{X: 20, Y: 20, W: 8, H: 8}))
	assert.True(t, world.TouchesWall(geometry.Rect{X: 2, Y: 2, W: 8, H: 8}))
}

func TestLoadDispatch(t *testing.T) {
	_, err := leveldata.Load(mapFS("whatever"), "maps/test.json", testParams)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported level format")
}

func TestListLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/b.map":     &fstest.MapFile{Data: []byte("0")},
		"maps/a.map":     &fstest.MapFile{Data: []byte("0")},
		"maps/c.tmx":     &fstest.MapFile{Data: []byte("<map/>")},
		"maps/README.md": &fstest.MapFile{Data: []byte("docs")},
	}
	names, err := leveldata.ListLevels(fsys, "maps")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.map", "b.map", "c.tmx"}, names)

	_, err = leveldata.ListLevels(fstest.MapFS{"maps/x.txt": &fstest.MapFile{}}, "maps")
	assert.Error(t, err)
}
