package navgrid

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPathStraightLine(t *testing.T) {
	r := fullRegistry(t)
	pf := NewPathFinder(r, &ObstacleMap{}, nil)

	path := pf.GetPath(mustLookup(t, r, 0, 0), mustLookup(t, r, 3, 0))
	assert.Equal(t, coords([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}), path.Coords())
}

func TestGetPathDetoursAroundObstacle(t *testing.T) {
	r := fullRegistry(t)
	obstacles, err := NewObstacleMap(Coord{1, 0})
	require.NoError(t, err)
	pf := NewPathFinder(r, obstacles, nil)

	path := pf.GetPath(mustLookup(t, r, 0, 0), mustLookup(t, r, 2, 0))
	assert.Equal(t,
		coords([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1}, [2]int{2, 0}),
		path.Coords())
	assert.NotContains(t, path.Coords(), Coord{1, 0})
}

func TestGetPathTieBreakIsFixed(t *testing.T) {
	r := fullRegistry(t)
	pf := NewPathFinder(r, nil, nil)

	// +x is tried before +y, so the route runs along x first.
	path := pf.GetPath(mustLookup(t, r, 0, 0), mustLookup(t, r, 2, 2))
	assert.Equal(t,
		coords([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}),
		path.Coords())
}

func TestGetPathSameCell(t *testing.T) {
	r := fullRegistry(t)
	pf := NewPathFinder(r, nil, nil)
	a := mustLookup(t, r, 4, 4)

	path := pf.GetPath(a, a)
	require.Len(t, path, 1)
	assert.Same(t, a, path[0])
}

func TestGetPathUnreachable(t *testing.T) {
	r := fullRegistry(t)
	wall := &ObstacleMap{}
	for y := 0; y < GridSize; y++ {
		require.NoError(t, wall.Set(Coord{5, y}, true))
	}
	pf := NewPathFinder(r, wall, nil)

	path, stats := pf.Search(mustLookup(t, r, 0, 0), mustLookup(t, r, 9, 9))
	assert.Empty(t, path)
	assert.NotNil(t, path)
	assert.False(t, stats.Found)
	assert.Equal(t, 50, stats.Expanded, "the whole left half is explored")
}

func TestGetPathToObstacleIsEmpty(t *testing.T) {
	r := fullRegistry(t)
	obstacles, err := NewObstacleMap(Coord{3, 3})
	require.NoError(t, err)
	pf := NewPathFinder(r, obstacles, nil)

	assert.Empty(t, pf.GetPath(mustLookup(t, r, 0, 0), mustLookup(t, r, 3, 3)))
}

func TestGetPathNilEndpoints(t *testing.T) {
	r := fullRegistry(t)
	pf := NewPathFinder(r, nil, nil)
	assert.Empty(t, pf.GetPath(nil, mustLookup(t, r, 1, 1)))
	assert.Empty(t, pf.GetPath(mustLookup(t, r, 1, 1), nil))
}

func TestGetPathSkipsUnregisteredCells(t *testing.T) {
	r := NewRegistry(testCellSize, nil)
	// an L-shaped corridor: (0,0)..(0,3) then (1,3)..(3,3)
	for _, c := range coords([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3}) {
		require.NoError(t, r.Register(NewWaypoint(ToWorld(c, testCellSize), testCellSize)))
	}
	pf := NewPathFinder(r, nil, nil)

	path := pf.GetPath(mustLookup(t, r, 0, 0), mustLookup(t, r, 3, 3))
	assert.Len(t, path, 7)
	assert.Equal(t, Coord{0, 3}, path[3].GridPosition())
}

func TestGetPathCrossesCellsOutsideObstacleGrid(t *testing.T) {
	r := NewRegistry(testCellSize, nil)
	for x := -2; x <= 2; x++ {
		require.NoError(t, r.Register(NewWaypoint(ToWorld(Coord{x, 0}, testCellSize), testCellSize)))
	}
	obstacles, err := NewObstacleMap(Coord{0, 1})
	require.NoError(t, err)
	pf := NewPathFinder(r, obstacles, nil)

	path := pf.GetPath(mustLookup(t, r, -2, 0), mustLookup(t, r, 2, 0))
	assert.Len(t, path, 5)
}

func TestGetPathLengthIsManhattanPlusOne(t *testing.T) {
	r := fullRegistry(t)
	pf := NewPathFinder(r, &ObstacleMap{}, nil)
	all := r.All()

	for _, a := range all {
		for _, b := range all {
			path := pf.GetPath(a, b)
			want := Manhattan(a.GridPosition(), b.GridPosition()) + 1
			require.Lenf(t, path, want, "%s -> %s", a, b)
			assert.Same(t, a, path[0])
			assert.Same(t, b, path.Last())
			for i := 1; i < len(path); i++ {
				require.Equal(t, 1, Manhattan(path[i-1].GridPosition(), path[i].GridPosition()))
			}
		}
	}
}

func TestGetPathIsDeterministic(t *testing.T) {
	r := fullRegistry(t)
	obstacles, err := NewObstacleMap(Coord{2, 2}, Coord{3, 2}, Coord{4, 2}, Coord{6, 7})
	require.NoError(t, err)
	pf := NewPathFinder(r, obstacles, nil)

	start, end := mustLookup(t, r, 1, 0), mustLookup(t, r, 8, 9)
	first := pf.GetPath(start, end)
	require.NotEmpty(t, first)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, pf.GetPath(start, end))
	}
}

func TestGetPathHonoursSwappedObstacles(t *testing.T) {
	r := fullRegistry(t)
	holder := NewObstacleHolder(nil)
	pf := NewPathFinder(r, holder, nil)
	start, end := mustLookup(t, r, 0, 0), mustLookup(t, r, 2, 0)

	assert.Len(t, pf.GetPath(start, end), 3)

	_, err := holder.Toggle(Coord{1, 0})
	require.NoError(t, err)
	path := pf.GetPath(start, end)
	assert.Len(t, path, 5)
	assert.NotContains(t, path.Coords(), Coord{1, 0})
}

func TestConcurrentSearchesDoNotInterfere(t *testing.T) {
	r := fullRegistry(t)
	pf := NewPathFinder(r, &ObstacleMap{}, nil)
	want := pf.GetPath(mustLookup(t, r, 0, 0), mustLookup(t, r, 9, 9))

	var wg sync.WaitGroup
	results := make([]Path, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				results[i] = pf.GetPath(mustLookup(t, r, 0, 0), mustLookup(t, r, 9, 9))
			} else {
				results[i] = pf.GetPath(mustLookup(t, r, 9, 0), mustLookup(t, r, 0, 9))
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < len(results); i += 2 {
		assert.Equal(t, want, results[i])
	}
	for i := 1; i < len(results); i += 2 {
		assert.Len(t, results[i], 19)
	}
}
