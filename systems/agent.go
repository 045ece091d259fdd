package systems

import (
	"github.com/automoto/tilechase/components"
	"github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Goal is a planning request: walk from Start towards Target, stopping short
// of Avoid when the path runs through it.
type Goal struct {
	Start  *navgrid.Waypoint
	Target *navgrid.Waypoint
	Avoid  *navgrid.Waypoint
}

// PathDrivenAgent decides when and where an agent walks. The Agents system
// owns planning and walking; controllers only answer these two questions.
type PathDrivenAgent interface {
	// Think runs every tick before the walker advances. Returning true asks
	// for a new plan now; any walk in progress is cancelled first.
	Think(w donburi.World, e *donburi.Entry, nav *Navigation) (Goal, bool)
	// Arrived runs once when the walker reaches the end of its path and
	// returns the state the agent settles in.
	Arrived(w donburi.World, e *donburi.Entry, nav *Navigation) config.StateID
}

type agentBinding struct {
	tag   *donburi.ComponentType[donburi.Tag]
	agent PathDrivenAgent
}

// Agents moves every path-driven entity: it refreshes where the agent
// stands, lets its controller think, plans, and advances the walk.
type Agents struct {
	nav      *Navigation
	bindings []agentBinding
	log      *zap.Logger
}

func NewAgents(nav *Navigation, log *zap.Logger) *Agents {
	return &Agents{nav: nav, log: log}
}

// Bind drives every entity carrying tag with agent. Bindings update in the
// order they were added.
func (a *Agents) Bind(tag *donburi.ComponentType[donburi.Tag], agent PathDrivenAgent) *Agents {
	a.bindings = append(a.bindings, agentBinding{tag: tag, agent: agent})
	return a
}

// Update advances every bound agent by dt seconds.
func (a *Agents) Update(w donburi.World, dt float64) {
	for _, b := range a.bindings {
		b.tag.Each(w, func(e *donburi.Entry) {
			a.update(w, e, b.agent, dt)
		})
	}
}

func (a *Agents) update(w donburi.World, e *donburi.Entry, agent PathDrivenAgent, dt float64) {
	mover := components.Mover.Get(e)
	walker := mover.Walker

	// Where the agent stands only changes when it is not walking.
	if !walker.Walking() || mover.Current == nil {
		if wp, ok := a.nav.Locate(walker.Position()); ok {
			mover.Current = wp
		}
	}

	if goal, ok := agent.Think(w, e, a.nav); ok {
		a.Plan(w, e, goal)
	}

	if !walker.Walking() {
		return
	}
	if walker.Tick(dt) {
		mover.Current = walker.Reached()
		setState(w, e, agent.Arrived(w, e, a.nav))
	}
}

// Plan cancels the walk in progress and starts one towards goal. An empty
// path leaves the agent idle and returns false.
func (a *Agents) Plan(w donburi.World, e *donburi.Entry, goal Goal) bool {
	mover := components.Mover.Get(e)
	mover.Walker.Cancel()

	path := a.nav.Paths.GetPath(goal.Start, goal.Target).TruncateAt(goal.Avoid)
	if !mover.Walker.Start(path, mover.SecondsPerUnit) {
		a.log.Debug("nothing to walk",
			zap.Stringer("start", goal.Start),
			zap.Stringer("target", goal.Target),
		)
		setState(w, e, config.Idle)
		return false
	}

	setState(w, e, config.Walking)
	return true
}
