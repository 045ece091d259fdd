package components

import (
	"github.com/automoto/tilechase/shared/movement"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/yohamta/donburi"
)

// MoverData is the movement state of a path-driven agent.
type MoverData struct {
	Walker         *movement.Walker
	SecondsPerUnit float64
	ProbeSize      float64

	// Current is the waypoint the agent last stood on, nil until located.
	Current *navgrid.Waypoint
}

var Mover = donburi.NewComponentType[MoverData]()
