package systems

import (
	"testing"

	"github.com/automoto/tilechase/components"
	cfg "github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/automoto/tilechase/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// scriptedAgent asks for one goal and records arrivals.
type scriptedAgent struct {
	goal     func(nav *Navigation) Goal
	planned  bool
	arrivals int
}

func (a *scriptedAgent) Think(_ donburi.World, _ *donburi.Entry, nav *Navigation) (Goal, bool) {
	if a.planned {
		return Goal{}, false
	}
	a.planned = true
	return a.goal(nav), true
}

func (a *scriptedAgent) Arrived(donburi.World, *donburi.Entry, *Navigation) cfg.StateID {
	a.arrivals++
	return cfg.Idle
}

func lookupAt(t *testing.T, nav *Navigation, c navgrid.Coord) *navgrid.Waypoint {
	t.Helper()
	wp, ok := nav.Registry.Lookup(c)
	require.True(t, ok)
	return wp
}

func TestAgentsTruncatesAtAvoid(t *testing.T) {
	sim := newTestSim(t, isolatedEnemy(at(0, 0)))
	agent := &scriptedAgent{goal: func(nav *Navigation) Goal {
		return Goal{
			Start:  lookupAt(t, nav, at(0, 0)),
			Target: lookupAt(t, nav, at(4, 0)),
			Avoid:  lookupAt(t, nav, at(3, 0)),
		}
	}}
	agents := NewAgents(sim.Nav, zap.NewNop()).Bind(tags.Player, agent)

	agents.Update(sim.World, cfg.Sim.Delta())
	assert.Equal(t, []navgrid.Coord{at(0, 0), at(1, 0), at(2, 0)}, sim.PlayerMover().Walker.Path().Coords())

	for i := 0; i < 300 && agent.arrivals == 0; i++ {
		agents.Update(sim.World, cfg.Sim.Delta())
	}
	assert.Equal(t, 1, agent.arrivals)
	assert.Equal(t, at(2, 0), cellOf(sim.PlayerMover()))
}

func TestAgentsEmptyPathStaysIdle(t *testing.T) {
	sim := newTestSim(t, isolatedEnemy(at(0, 0)))
	agent := &scriptedAgent{goal: func(nav *Navigation) Goal {
		start := lookupAt(t, nav, at(0, 0))
		// Avoiding the start cell leaves nothing to walk.
		return Goal{Start: start, Target: lookupAt(t, nav, at(2, 0)), Avoid: start}
	}}
	agents := NewAgents(sim.Nav, zap.NewNop()).Bind(tags.Player, agent)

	agents.Update(sim.World, cfg.Sim.Delta())
	assert.False(t, sim.PlayerMover().Walker.Walking())
	assert.Equal(t, cfg.Idle, components.State.Get(sim.Player).CurrentState)
	assert.Zero(t, agent.arrivals)
}

func TestAgentsPlanReplacesWalk(t *testing.T) {
	sim := newTestSim(t, isolatedEnemy(at(0, 0)))
	agents := NewAgents(sim.Nav, zap.NewNop())
	nav := sim.Nav

	require.True(t, agents.Plan(sim.World, sim.Player, Goal{
		Start:  lookupAt(t, nav, at(0, 0)),
		Target: lookupAt(t, nav, at(5, 0)),
	}))
	require.True(t, agents.Plan(sim.World, sim.Player, Goal{
		Start:  lookupAt(t, nav, at(0, 0)),
		Target: lookupAt(t, nav, at(0, 2)),
	}))
	assert.Equal(t, at(0, 2), sim.PlayerMover().Walker.Path().Last().GridPosition())
}
