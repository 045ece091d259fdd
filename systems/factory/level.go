package factory

import (
	"fmt"
	"io/fs"

	"github.com/automoto/tilechase/archetypes"
	"github.com/automoto/tilechase/components"
	cfg "github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/shared/leveldata"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// LoadLevel reads the tile layout and its obstacle data from fsys. The
// layout is required. Obstacle data is not: when the obstacle file is missing
// or malformed the error is logged and the level falls back to the TMX
// obstacle layer, which is usually empty.
func LoadLevel(fsys fs.FS, level cfg.LevelConfig, log *zap.Logger) (*leveldata.Layout, *navgrid.ObstacleMap, error) {
	layout, err := leveldata.LoadLayout(fsys, level.Path, leveldata.LayerNames{
		Waypoints: level.WaypointLayer,
		Obstacles: level.ObstacleLayer,
		Spawns:    level.SpawnGroup,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("load level: %w", err)
	}

	obstacles, err := leveldata.LoadObstacles(fsys, level.ObstaclePath)
	if err != nil {
		log.Error("obstacle data unavailable, using the level's obstacle layer",
			zap.String("path", level.ObstaclePath),
			zap.Error(err),
		)
		obstacles = layout.ObstacleMap()
	}
	return layout, obstacles, nil
}

func CreateLevel(w donburi.World, name string, layout *leveldata.Layout) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Name:   name,
		Layout: layout,
	})
	return level
}
