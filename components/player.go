package components

import (
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Command is the clicked destination waiting to be planned. Commands
	// arriving while the player walks are dropped.
	Command *navgrid.Waypoint
	// Arrivals counts finished walks.
	Arrivals int
}

var Player = donburi.NewComponentType[PlayerData]()
