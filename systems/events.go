package systems

import (
	"github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DestinationReachedEvent is published once when the player finishes a walk.
type DestinationReachedEvent struct {
	Entity   donburi.Entity
	Waypoint *navgrid.Waypoint
}

// AgentStateChangedEvent is published whenever an agent changes state.
type AgentStateChangedEvent struct {
	Entity donburi.Entity
	From   config.StateID
	To     config.StateID
}

var (
	DestinationReached = events.NewEventType[DestinationReachedEvent]()
	AgentStateChanged  = events.NewEventType[AgentStateChangedEvent]()
)

// ProcessEvents delivers every queued event to its subscribers.
func ProcessEvents(w donburi.World) {
	events.ProcessAllEvents(w)
}
