package systems

import (
	"testing"

	"github.com/automoto/tilechase/components"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/automoto/tilechase/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

func TestObstacleManagerSpawnsOnBlockedWaypoints(t *testing.T) {
	sim := newTestSim(t, isolatedEnemy(at(0, 0)), at(3, 2), at(6, 6))
	assert.ElementsMatch(t, []navgrid.Coord{at(3, 2), at(6, 6)}, ObstacleCells(sim.World))
}

func TestObstacleManagerSkipsCellsWithoutWaypoint(t *testing.T) {
	layout := gridLayout(at(0, 0), at(5, 5), at(3, 2))
	sim := newTestSim(t, layout, at(3, 2), at(6, 6))
	assert.Equal(t, []navgrid.Coord{at(6, 6)}, ObstacleCells(sim.World))
}

func TestObstacleManagerIgnoresWaypointsOutsideGrid(t *testing.T) {
	w := donburi.NewWorld()
	blocked, err := navgrid.NewObstacleMap(at(0, 3))
	require.NoError(t, err)
	nav := NewNavigation(10, blocked, zap.NewNop())

	factory.CreateTile(w, nil, dmath.Vec2{X: 0, Y: 30}, 10)
	factory.CreateTile(w, nil, dmath.Vec2{X: 100, Y: 30}, 10) // (10,3)
	RegisterWaypoints(w, nav)

	m := NewObstacleManager(nav, zap.NewNop())
	assert.Equal(t, 1, m.Sync(w))
	assert.Equal(t, []navgrid.Coord{at(0, 3)}, ObstacleCells(w))
}

func TestObstacleManagerFollowsToggles(t *testing.T) {
	sim := newTestSim(t, isolatedEnemy(at(0, 0)), at(3, 2))

	blocked, err := ToggleObstacle(sim.Nav, at(4, 4))
	require.NoError(t, err)
	assert.True(t, blocked)
	sim.Step(1.0 / 60)
	assert.ElementsMatch(t, []navgrid.Coord{at(3, 2), at(4, 4)}, ObstacleCells(sim.World))

	blocked, err = ToggleObstacle(sim.Nav, at(3, 2))
	require.NoError(t, err)
	assert.False(t, blocked)
	sim.Step(1.0 / 60)
	assert.Equal(t, []navgrid.Coord{at(4, 4)}, ObstacleCells(sim.World))

	_, err = ToggleObstacle(sim.Nav, at(10, 0))
	assert.ErrorIs(t, err, navgrid.ErrOutOfBounds)
}

func TestObstacleManagerFollowsStoredMaps(t *testing.T) {
	sim := newTestSim(t, isolatedEnemy(at(0, 0)), at(3, 2))

	next, err := navgrid.NewObstacleMap(at(7, 7), at(7, 8))
	require.NoError(t, err)
	sim.Nav.Obstacles.Store(next)
	sim.Step(1.0 / 60)

	assert.ElementsMatch(t, []navgrid.Coord{at(7, 7), at(7, 8)}, ObstacleCells(sim.World))
}

func TestObstacleManagerSyncsOnlyOnChange(t *testing.T) {
	sim := newTestSim(t, isolatedEnemy(at(0, 0)), at(3, 2))
	first := obstacleEntities(sim.World)

	sim.Step(1.0 / 60)
	assert.Equal(t, first, obstacleEntities(sim.World))
}

func TestClearObstacles(t *testing.T) {
	sim := newTestSim(t, isolatedEnemy(at(0, 0)), at(3, 2), at(4, 2))
	ClearObstacles(sim.World)
	assert.Empty(t, ObstacleCells(sim.World))
}

func TestNewTileOnBlockedCellGetsObstacle(t *testing.T) {
	layout := gridLayout(at(0, 0), at(5, 5), at(3, 2))
	sim := newTestSim(t, layout, at(3, 2))
	require.Empty(t, ObstacleCells(sim.World))

	spaceEntry, ok := components.Space.First(sim.World)
	require.True(t, ok)
	factory.CreateTile(sim.World, components.Space.Get(spaceEntry), navgrid.ToWorld(at(3, 2), 10), 10)
	sim.Step(1.0 / 60)

	assert.Equal(t, []navgrid.Coord{at(3, 2)}, ObstacleCells(sim.World))
}

func obstacleEntities(w donburi.World) []donburi.Entity {
	var out []donburi.Entity
	components.Obstacle.Each(w, func(e *donburi.Entry) {
		out = append(out, e.Entity())
	})
	return out
}
