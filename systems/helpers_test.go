package systems

import (
	"testing"

	"github.com/automoto/tilechase/components"
	cfg "github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/shared/leveldata"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// gridLayout lays out a full grid minus the given holes, with the player and
// the enemy on the given cells.
func gridLayout(player, enemy navgrid.Coord, holes ...navgrid.Coord) *leveldata.Layout {
	skip := make(map[navgrid.Coord]bool, len(holes))
	for _, h := range holes {
		skip[h] = true
	}

	layout := &leveldata.Layout{Width: navgrid.GridSize, Height: navgrid.GridSize}
	for y := 0; y < navgrid.GridSize; y++ {
		for x := 0; x < navgrid.GridSize; x++ {
			c := navgrid.Coord{X: x, Y: y}
			if !skip[c] {
				layout.Waypoints = append(layout.Waypoints, c)
			}
		}
	}
	layout.Spawns = []leveldata.Spawn{
		{Name: cfg.Player.Name, Cell: player},
		{Name: cfg.Enemy.Name, Cell: enemy},
	}
	return layout
}

// isolatedEnemy parks the enemy in the corner with its neighbours removed so
// it can never reach the player.
func isolatedEnemy(player navgrid.Coord) *leveldata.Layout {
	return gridLayout(player, navgrid.Coord{X: 9, Y: 9}, navgrid.Coord{X: 8, Y: 9}, navgrid.Coord{X: 9, Y: 8})
}

func newTestSim(t *testing.T, layout *leveldata.Layout, blocked ...navgrid.Coord) *Simulation {
	t.Helper()
	obstacles, err := navgrid.NewObstacleMap(blocked...)
	require.NoError(t, err)
	sim, err := NewSimulation(layout, obstacles, zap.NewNop())
	require.NoError(t, err)
	return sim
}

// stepUntil steps sim at the configured rate until done holds, failing after
// limit ticks. It returns the number of ticks taken.
func stepUntil(t *testing.T, sim *Simulation, limit int, done func() bool) int {
	t.Helper()
	for tick := 1; tick <= limit; tick++ {
		sim.Step(cfg.Sim.Delta())
		if done() {
			return tick
		}
	}
	require.FailNow(t, "condition not reached", "after %d ticks", limit)
	return limit
}

func stepN(sim *Simulation, n int) {
	for i := 0; i < n; i++ {
		sim.Step(cfg.Sim.Delta())
	}
}

func cellOf(m *components.MoverData) navgrid.Coord {
	return navgrid.ToGrid(m.Walker.Position(), cfg.Grid.CellSize)
}

func stateOf(sim *Simulation, isPlayer bool) cfg.StateID {
	if isPlayer {
		return components.State.Get(sim.Player).CurrentState
	}
	return components.State.Get(sim.Enemy).CurrentState
}

func at(x, y int) navgrid.Coord {
	return navgrid.Coord{X: x, Y: y}
}
