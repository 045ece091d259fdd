package systems

import (
	"github.com/automoto/tilechase/components"
	"github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// PlayerAgent walks the player to clicked tiles.
type PlayerAgent struct {
	log *zap.Logger
}

func NewPlayerAgent(log *zap.Logger) *PlayerAgent {
	return &PlayerAgent{log: log}
}

// Think consumes the pending move command. Commands that arrive while the
// player is already walking are dropped, not queued.
func (p *PlayerAgent) Think(w donburi.World, e *donburi.Entry, nav *Navigation) (Goal, bool) {
	player := components.Player.Get(e)
	mover := components.Mover.Get(e)

	command := player.Command
	if command == nil {
		return Goal{}, false
	}
	player.Command = nil

	if mover.Walker.Walking() {
		p.log.Debug("dropping move command while walking", zap.Stringer("target", command))
		return Goal{}, false
	}
	if mover.Current == nil {
		p.log.Debug("player is not standing on a tile")
		return Goal{}, false
	}

	return Goal{Start: mover.Current, Target: command}, true
}

func (p *PlayerAgent) Arrived(w donburi.World, e *donburi.Entry, nav *Navigation) config.StateID {
	player := components.Player.Get(e)
	mover := components.Mover.Get(e)

	DestinationReached.Publish(w, DestinationReachedEvent{
		Entity:   e.Entity(),
		Waypoint: mover.Current,
	})
	player.Arrivals++
	return config.Idle
}

// CommandMove asks the player to walk to target on its next update. It
// returns false when there is no player.
func CommandMove(w donburi.World, target *navgrid.Waypoint) bool {
	entry, ok := components.Player.First(w)
	if !ok || target == nil {
		return false
	}
	components.Player.Get(entry).Command = target
	return true
}

// PlayerCell returns the tile the player occupies right now, following it
// mid-walk, and whether the player is walking.
func PlayerCell(w donburi.World, nav *Navigation) (*navgrid.Waypoint, bool, bool) {
	entry, ok := components.Player.First(w)
	if !ok {
		return nil, false, false
	}
	mover := components.Mover.Get(entry)
	walking := mover.Walker.Walking()
	if wp, ok := nav.Locate(mover.Walker.Position()); ok {
		return wp, walking, true
	}
	return mover.Current, walking, mover.Current != nil
}
