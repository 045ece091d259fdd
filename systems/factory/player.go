package factory

import (
	"github.com/automoto/tilechase/archetypes"
	"github.com/automoto/tilechase/components"
	cfg "github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/shared/movement"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreatePlayer(w donburi.World, pos dmath.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Player.SetValue(player, components.PlayerData{})
	components.Mover.SetValue(player, newMover(pos, cfg.Player))
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})

	return player
}

func newMover(pos dmath.Vec2, agent cfg.AgentConfig) components.MoverData {
	return components.MoverData{
		Walker:         movement.NewWalker(pos),
		SecondsPerUnit: agent.SecondsPerUnit,
		ProbeSize:      agent.ProbeSize,
	}
}
