package components

import (
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Target  *navgrid.Waypoint // Cell next to the player being approached
	Replans int               // Walks abandoned because the player moved
}

var Enemy = donburi.NewComponentType[EnemyData]()
