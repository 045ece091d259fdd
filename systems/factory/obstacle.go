package factory

import (
	"github.com/automoto/tilechase/archetypes"
	"github.com/automoto/tilechase/components"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/yohamta/donburi"
)

func CreateObstacle(w donburi.World, cell navgrid.Coord) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(w)
	components.Obstacle.SetValue(obstacle, components.ObstacleData{Cell: cell})
	return obstacle
}
