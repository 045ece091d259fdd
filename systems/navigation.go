package systems

import (
	"github.com/automoto/tilechase/shared/navgrid"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// Navigation bundles the grid services shared by every system: the waypoint
// registry, the path planner, the live obstacle map and the locator that
// answers "which tile is under this position".
type Navigation struct {
	Registry  *navgrid.Registry
	Obstacles *navgrid.ObstacleHolder
	Paths     navgrid.Planner
	Locator   navgrid.Locator

	log *zap.Logger
}

// NewNavigation builds a navigation context over an empty registry. The
// locator defaults to the registry itself; scenes with a resolv space swap in
// a SpaceLocator.
func NewNavigation(cellSize float64, obstacles *navgrid.ObstacleMap, log *zap.Logger) *Navigation {
	if log == nil {
		log = zap.NewNop()
	}
	registry := navgrid.NewRegistry(cellSize, log.Named("registry"))
	holder := navgrid.NewObstacleHolder(obstacles)
	return &Navigation{
		Registry:  registry,
		Obstacles: holder,
		Paths:     navgrid.NewPathFinder(registry, holder, log.Named("pathfinder")),
		Locator:   registry,
		log:       log,
	}
}

func (n *Navigation) CellSize() float64 {
	return n.Registry.CellSize()
}

// Walkable reports whether c has a registered waypoint that is not blocked.
func (n *Navigation) Walkable(c navgrid.Coord) (*navgrid.Waypoint, bool) {
	w, ok := n.Registry.Lookup(c)
	if !ok || n.Obstacles.Obstacles().Blocked(c) {
		return nil, false
	}
	return w, true
}

// Locate returns the waypoint under pos.
func (n *Navigation) Locate(pos dmath.Vec2) (*navgrid.Waypoint, bool) {
	return n.Locator.WaypointAt(pos)
}
