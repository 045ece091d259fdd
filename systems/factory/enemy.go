package factory

import (
	"github.com/automoto/tilechase/archetypes"
	"github.com/automoto/tilechase/components"
	cfg "github.com/automoto/tilechase/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateEnemy(w donburi.World, pos dmath.Vec2) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(w)

	components.Enemy.SetValue(enemy, components.EnemyData{})
	components.Mover.SetValue(enemy, newMover(pos, cfg.Enemy))
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
		StateTimer:    0,
	})

	return enemy
}
