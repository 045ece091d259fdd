package navgrid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testCellSize = 10.0

// fullRegistry registers every cell of a GridSize×GridSize grid.
func fullRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry(testCellSize, nil)
	for x := 0; x < GridSize; x++ {
		for y := 0; y < GridSize; y++ {
			require.NoError(t, r.Register(NewWaypoint(ToWorld(Coord{X: x, Y: y}, testCellSize), testCellSize)))
		}
	}
	return r
}

func mustLookup(t *testing.T, r *Registry, x, y int) *Waypoint {
	t.Helper()
	w, ok := r.Lookup(Coord{X: x, Y: y})
	require.Truef(t, ok, "no waypoint at %d,%d", x, y)
	return w
}

func coords(pairs ...[2]int) []Coord {
	out := make([]Coord, len(pairs))
	for i, p := range pairs {
		out[i] = Coord{X: p[0], Y: p[1]}
	}
	return out
}
