package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all systems and renderers are registered on.
const Default ecs.LayerID = 0

// DotShape selects which collider the player dot is spawned with.
type DotShape int

const (
	ShapeBox DotShape = iota
	ShapeCircle
	ShapeZoned
)

func (s DotShape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeZoned:
		return "zoned"
	default:
		return "box"
	}
}

type Config struct {
	Width  int
	Height int
	Title  string
}

// DotConfig contains the player dot's movement and collider values
type DotConfig struct {
	Width    float64
	Height   float64
	Velocity float64 // pixels per tick along each axis

	Color color.RGBA
}

// CameraConfig contains camera follow behaviour
type CameraConfig struct {
	FollowSmoothing float64 // 0..1, fraction of the gap closed per tick
}

// LevelConfig contains level loading configuration
type LevelConfig struct {
	MapsDir    string
	TileWidth  float64
	TileHeight float64
	Columns    int
	Rows       int
}

// ObstacleConfig contains the demo obstacle placement for open levels
type ObstacleConfig struct {
	BoxColor    color.RGBA
	CircleColor color.RGBA
	ZonedColor  color.RGBA

	PatrolDistance float64 // vertical travel of the moving obstacle
	PatrolSeconds  float32 // one-way tween duration
}

// ParticleConfig contains the dot's trail effect values
type ParticleConfig struct {
	PerTick  int // particles spawned per tick while moving
	Lifetime int // frames before a particle is removed
	Size     float64
	Jitter   float64 // random offset around the dot center
	Colors   []color.RGBA
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin    int
	LineGap   int
	TextColor color.RGBA
}

// MenuConfig contains main menu colors
type MenuConfig struct {
	BackgroundColor color.RGBA
}

// Global configuration instances
var C *Config
var Dot DotConfig
var Camera CameraConfig
var Level LevelConfig
var Obstacle ObstacleConfig
var Particle ParticleConfig
var HUD HUDConfig
var Menu MenuConfig

// TilePalette maps tile types to their fill colors, indexed by type.
var TilePalette []color.RGBA

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
		Title:  "tilerunner",
	}

	Dot = DotConfig{
		Width:    20,
		Height:   20,
		Velocity: 5,
		Color:    color.RGBA{230, 230, 230, 255},
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Level = LevelConfig{
		MapsDir:    "maps",
		TileWidth:  80,
		TileHeight: 80,
		Columns:    16,
		Rows:       12,
	}

	Obstacle = ObstacleConfig{
		BoxColor:       color.RGBA{160, 60, 60, 255},
		CircleColor:    color.RGBA{60, 160, 60, 255},
		ZonedColor:     color.RGBA{160, 160, 60, 255},
		PatrolDistance: 128,
		PatrolSeconds:  2,
	}

	Particle = ParticleConfig{
		PerTick:  1,
		Lifetime: 30,
		Size:     4,
		Jitter:   10,
		Colors: []color.RGBA{
			{255, 120, 120, 255},
			{120, 255, 120, 255},
			{120, 120, 255, 255},
		},
	}

	HUD = HUDConfig{
		Margin:    10,
		LineGap:   16,
		TextColor: color.RGBA{255, 255, 255, 255},
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{20, 20, 30, 255},
	}

	// Red/green/blue floors, then the nine wall pieces in shades of grey.
	TilePalette = []color.RGBA{
		{180, 60, 60, 255},
		{60, 180, 60, 255},
		{60, 60, 180, 255},
		{100, 100, 100, 255}, // center
		{130, 130, 130, 255}, // top
		{140, 140, 140, 255}, // top right
		{130, 130, 130, 255}, // right
		{120, 120, 120, 255}, // bottom right
		{110, 110, 110, 255}, // bottom
		{120, 120, 120, 255}, // bottom left
		{130, 130, 130, 255}, // left
		{140, 140, 140, 255}, // top left
	}
}
