package config

import (
	"image/color"
	"time"
)

// GridConfig describes the tile grid.
type GridConfig struct {
	CellSize float64 // World units per tile
	Size     int     // Tiles per side
}

// AgentConfig contains movement tuning shared by the player and the enemy.
type AgentConfig struct {
	Name string
	// Seconds spent per world unit travelled; a segment lasts
	// SecondsPerUnit * distance.
	SecondsPerUnit float64
	// Side of the square probe used to find the tile under the agent.
	ProbeSize float64
	Color     color.RGBA
	Radius    float32
}

// SimConfig contains simulation loop configuration
type SimConfig struct {
	TickRate int // Ticks per second
}

// Delta is the simulated time of one tick in seconds.
func (s SimConfig) Delta() float64 {
	return 1 / float64(s.TickRate)
}

// Interval is the wall clock time of one tick.
func (s SimConfig) Interval() time.Duration {
	return time.Second / time.Duration(s.TickRate)
}

// LevelConfig points at the authored level files inside the asset FS.
type LevelConfig struct {
	Path         string // TMX tile layout
	ObstaclePath string // YAML obstacle grid
	// Layer and object group names inside the TMX file.
	WaypointLayer string
	ObstacleLayer string
	SpawnGroup    string
}

// RenderConfig contains client drawing configuration
type RenderConfig struct {
	Width, Height int
	Scale         float64 // Screen pixels per world unit
	Margin        float64 // Screen pixels around the grid
	TileInset     float32 // Gap between drawn tiles in pixels

	TileColor      color.RGBA
	HoverColor     color.RGBA
	ClickedColor   color.RGBA
	ObstacleColor  color.RGBA
	PathColor      color.RGBA
	LabelColor     color.RGBA
	BackgroundFill color.RGBA
	LabelFontSize  float64
}

// PersistenceConfig names the gdata application directory.
type PersistenceConfig struct {
	AppName       string
	ObstaclesItem string
}

// DebugConfig contains debug toggles
type DebugConfig struct {
	Verbose   bool // Debug-level logging
	ShowPaths bool // Draw the remaining path of walking agents
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Grid GridConfig
var Player AgentConfig
var Enemy AgentConfig
var Sim SimConfig
var Level LevelConfig
var Render RenderConfig
var Persistence PersistenceConfig
var Debug DebugConfig

func init() {
	Grid = GridConfig{
		CellSize: 10,
		Size:     10,
	}

	Render = RenderConfig{
		Width:     640,
		Height:    640,
		Scale:     6,
		Margin:    20,
		TileInset: 2,

		TileColor:      color.RGBA{70, 90, 70, 255},
		HoverColor:     color.RGBA{120, 160, 120, 255},
		ClickedColor:   color.RGBA{220, 200, 80, 255},
		ObstacleColor:  color.RGBA{110, 60, 50, 255},
		PathColor:      color.RGBA{255, 255, 255, 90},
		LabelColor:     color.RGBA{255, 255, 255, 255},
		BackgroundFill: color.RGBA{20, 20, 24, 255},
		LabelFontSize:  14,
	}

	C = &Config{
		Width:  Render.Width,
		Height: Render.Height,
	}

	Player = AgentConfig{
		Name:           "player",
		SecondsPerUnit: 0.05, // half a second per tile
		ProbeSize:      1,
		Color:          color.RGBA{80, 140, 255, 255},
		Radius:         18,
	}

	Enemy = AgentConfig{
		Name:           "enemy",
		SecondsPerUnit: 0.1, // a full second per tile
		ProbeSize:      1,
		Color:          color.RGBA{230, 70, 70, 255},
		Radius:         18,
	}

	Sim = SimConfig{
		TickRate: 60,
	}

	Level = LevelConfig{
		Path:          "levels/arena.tmx",
		ObstaclePath:  "levels/obstacles.yaml",
		WaypointLayer: "waypoints",
		ObstacleLayer: "obstacles",
		SpawnGroup:    "spawns",
	}

	Persistence = PersistenceConfig{
		AppName:       "tilechase",
		ObstaclesItem: "obstacles",
	}

	Debug = DebugConfig{
		Verbose:   false,
		ShowPaths: true,
	}
}
