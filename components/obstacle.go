package components

import (
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/yohamta/donburi"
)

type ObstacleData struct {
	Cell navgrid.Coord
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
