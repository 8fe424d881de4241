package factory

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixeldrift/tilerunner/archetypes"
	"github.com/pixeldrift/tilerunner/components"
	cfg "github.com/pixeldrift/tilerunner/config"
	"github.com/pixeldrift/tilerunner/leveldata"
)

// CreateLevel loads the level at index from the maps directory of fsys and
// spawns the level entity holding it. The index wraps around the available
// levels.
func CreateLevel(e *ecs.ECS, fsys fs.FS, index int) (*donburi.Entry, error) {
	names, err := leveldata.ListLevels(fsys, cfg.Level.MapsDir)
	if err != nil {
		return nil, err
	}

	index = ((index % len(names)) + len(names)) % len(names)
	name := names[index]

	world, err := leveldata.Load(fsys, path.Join(cfg.Level.MapsDir, name), leveldata.MapParams{
		Columns:    cfg.Level.Columns,
		Rows:       cfg.Level.Rows,
		TileWidth:  cfg.Level.TileWidth,
		TileHeight: cfg.Level.TileHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}

	level := archetypes.Level.Spawn(e)
	components.Level.SetValue(level, components.LevelData{
		World: world,
		Name:  name,
		Names: names,
		Index: index,
	})
	return level, nil
}
