package systems

import (
	"math"

	"github.com/automoto/tilechase/shared/gamemath"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/automoto/tilechase/systems/factory"
	"github.com/automoto/tilechase/tags"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpaceLocator finds the tile under a position by probing the resolv space
// that holds one object per tile. Tiles are centred on their waypoint, so
// space coordinates are shifted by half a cell to keep the first row and
// column out of negative space.
type SpaceLocator struct {
	space     *resolv.Space
	graph     navgrid.Graph
	cellSize  float64
	probeSize float64
}

func NewSpaceLocator(space *resolv.Space, graph navgrid.Graph, cellSize, probeSize float64) *SpaceLocator {
	if probeSize <= 0 {
		probeSize = 1
	}
	return &SpaceLocator{
		space:     space,
		graph:     graph,
		cellSize:  cellSize,
		probeSize: probeSize,
	}
}

// WaypointAt returns the registered waypoint of the tile containing pos. When
// pos sits on a shared edge the tile whose centre is closest wins.
func (l *SpaceLocator) WaypointAt(pos dmath.Vec2) (*navgrid.Waypoint, bool) {
	x, y := factory.ToSpace(pos, l.cellSize)
	half := l.probeSize / 2

	probe := resolv.NewObject(x-half, y-half, l.probeSize, l.probeSize, tags.ResolvProbe)
	l.space.Add(probe)
	defer l.space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvTile)
	if check == nil {
		return nil, false
	}

	var (
		best     *navgrid.Waypoint
		bestDist = math.Inf(1)
	)
	for _, obj := range check.ObjectsByTags(tags.ResolvTile) {
		if !contains(obj, x, y) {
			continue
		}
		tile, ok := obj.Data.(*navgrid.Waypoint)
		if !ok {
			continue
		}
		if d := gamemath.Distance(tile.Position(), pos); d < bestDist {
			best, bestDist = tile, d
		}
	}
	if best == nil {
		return nil, false
	}

	// Overlapping tiles are never registered; answer with the one that was.
	return l.graph.Lookup(best.GridPosition())
}

func contains(obj *resolv.Object, x, y float64) bool {
	return x >= obj.X && x <= obj.X+obj.W && y >= obj.Y && y <= obj.Y+obj.H
}
