package systems

import (
	"github.com/automoto/tilechase/components"
	"github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// EnemyAgent chases the player and stops on a tile next to it.
type EnemyAgent struct {
	log *zap.Logger
}

func NewEnemyAgent(log *zap.Logger) *EnemyAgent {
	return &EnemyAgent{log: log}
}

// Think plans a chase whenever the enemy is not next to the player. While the
// player is walking every step interrupts the enemy's walk: it is dropped on
// the spot and planned again from where the enemy stands, or left idle when
// the player is already next to it.
func (a *EnemyAgent) Think(w donburi.World, e *donburi.Entry, nav *Navigation) (Goal, bool) {
	enemy := components.Enemy.Get(e)
	mover := components.Mover.Get(e)

	playerCell, playerWalking, ok := PlayerCell(w, nav)
	if !ok {
		return Goal{}, false
	}

	interrupted := false
	if mover.Walker.Walking() {
		if !playerWalking {
			return Goal{}, false
		}
		mover.Walker.Cancel()
		enemy.Target = nil
		enemy.Replans++
		interrupted = true
	}

	goal, ok := chase(nav, mover, playerCell)
	if !ok {
		if interrupted {
			setState(w, e, config.Idle)
		}
		return Goal{}, false
	}
	if interrupted {
		a.log.Debug("player moved, replanning",
			zap.Stringer("from", goal.Start),
			zap.Stringer("target", goal.Target),
		)
	}

	enemy.Target = goal.Target
	return goal, true
}

// chase picks the tile next to the player to walk to, unless the enemy is
// already next to the player.
func chase(nav *Navigation, mover *components.MoverData, playerCell *navgrid.Waypoint) (Goal, bool) {
	current, ok := nav.Locate(mover.Walker.Position())
	if !ok {
		current = mover.Current
	}
	if current == nil {
		return Goal{}, false
	}
	if navgrid.Adjacent(current.GridPosition(), playerCell.GridPosition()) {
		return Goal{}, false
	}

	target := ApproachCell(nav, playerCell)
	if target == nil {
		return Goal{}, false
	}
	return Goal{Start: current, Target: target, Avoid: playerCell}, true
}

// Arrived turns the enemy towards the player and starts an attack.
func (a *EnemyAgent) Arrived(w donburi.World, e *donburi.Entry, nav *Navigation) config.StateID {
	enemy := components.Enemy.Get(e)
	mover := components.Mover.Get(e)
	enemy.Target = nil

	if entry, ok := components.Player.First(w); ok {
		mover.Walker.Face(components.Mover.Get(entry).Walker.Position())
	}
	return config.Attacking
}

// ApproachCell returns the first walkable tile next to cell, trying +y, +x,
// -y and -x in that order.
func ApproachCell(nav *Navigation, cell *navgrid.Waypoint) *navgrid.Waypoint {
	for _, d := range navgrid.ApproachDirections {
		if wp, ok := nav.Walkable(cell.GridPosition().Add(d)); ok {
			return wp
		}
	}
	return nil
}
