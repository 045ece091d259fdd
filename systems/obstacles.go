package systems

import (
	"github.com/automoto/tilechase/components"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/automoto/tilechase/systems/factory"
	"github.com/automoto/tilechase/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// ObstacleManager keeps one obstacle entity on every registered waypoint
// whose cell is blocked. It resyncs whenever the obstacle map is swapped or
// toggled, or new waypoints register.
type ObstacleManager struct {
	nav *Navigation
	log *zap.Logger

	synced     bool
	version    uint64
	registered int
}

func NewObstacleManager(nav *Navigation, log *zap.Logger) *ObstacleManager {
	return &ObstacleManager{nav: nav, log: log}
}

func (m *ObstacleManager) Update(w donburi.World) {
	version, registered := m.nav.Obstacles.Version(), m.nav.Registry.Len()
	if m.synced && version == m.version && registered == m.registered {
		return
	}
	m.Sync(w)
	m.synced, m.version, m.registered = true, version, registered
}

// Sync rebuilds the obstacle entities from the current obstacle map and
// returns how many were spawned. Waypoints outside the obstacle grid never
// carry an obstacle.
func (m *ObstacleManager) Sync(w donburi.World) int {
	ClearObstacles(w)

	obstacles := m.nav.Obstacles.Obstacles()
	spawned := 0
	for _, wp := range m.nav.Registry.All() {
		cell := wp.GridPosition()
		if !navgrid.InBounds(cell) || !obstacles.Blocked(cell) {
			continue
		}
		factory.CreateObstacle(w, cell)
		spawned++
	}
	m.log.Debug("obstacles synced", zap.Int("count", spawned))
	return spawned
}

// ClearObstacles removes every obstacle entity.
func ClearObstacles(w donburi.World) {
	var doomed []donburi.Entity
	tags.Obstacle.Each(w, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	for _, entity := range doomed {
		w.Remove(entity)
	}
}

// ObstacleCells lists the cells of the obstacle entities currently spawned.
func ObstacleCells(w donburi.World) []navgrid.Coord {
	var cells []navgrid.Coord
	components.Obstacle.Each(w, func(e *donburi.Entry) {
		cells = append(cells, components.Obstacle.Get(e).Cell)
	})
	return cells
}

// ToggleObstacle flips the obstacle on cell and reports whether it is now
// blocked. Entities follow on the manager's next update.
func ToggleObstacle(nav *Navigation, cell navgrid.Coord) (bool, error) {
	return nav.Obstacles.Toggle(cell)
}
