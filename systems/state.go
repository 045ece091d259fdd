package systems

import (
	"github.com/automoto/tilechase/components"
	"github.com/automoto/tilechase/config"
	"github.com/yohamta/donburi"
)

// UpdateStates advances the state timers of every agent.
func UpdateStates(w donburi.World) {
	components.State.Each(w, func(e *donburi.Entry) {
		components.State.Get(e).StateTimer++
	})
}

// setState moves e into state to and publishes the transition. Setting the
// current state again is a no-op.
func setState(w donburi.World, e *donburi.Entry, to config.StateID) {
	state := components.State.Get(e)
	if state.CurrentState == to {
		return
	}

	from := state.CurrentState
	state.PreviousState = from
	state.CurrentState = to
	state.StateTimer = 0

	AgentStateChanged.Publish(w, AgentStateChangedEvent{
		Entity: e.Entity(),
		From:   from,
		To:     to,
	})
}
