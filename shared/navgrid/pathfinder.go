package navgrid

import (
	"slices"

	"go.uber.org/zap"
)

// Planner computes paths between waypoints.
type Planner interface {
	GetPath(start, end *Waypoint) Path
}

// SearchStats describes a single search run.
type SearchStats struct {
	Expanded int // nodes dequeued and expanded
	Queued   int // nodes ever pushed onto the frontier
	Found    bool
}

// searchNode is per-search bookkeeping for one coordinate.
type searchNode struct {
	explored bool
	queued   bool
	from     *Waypoint
}

// PathFinder runs breadth-first searches over a Graph with unit-cost cardinal
// moves. Search state is allocated per call, so one PathFinder can serve any
// number of concurrent callers.
type PathFinder struct {
	graph     Graph
	obstacles ObstacleSource
	log       *zap.Logger
}

func NewPathFinder(graph Graph, obstacles ObstacleSource, log *zap.Logger) *PathFinder {
	if log == nil {
		log = zap.NewNop()
	}
	return &PathFinder{graph: graph, obstacles: obstacles, log: log}
}

// GetPath returns the shortest path from start to end, both inclusive, or an
// empty path when end cannot be reached.
func (p *PathFinder) GetPath(start, end *Waypoint) Path {
	path, _ := p.Search(start, end)
	return path
}

// Search is GetPath with statistics about the run.
func (p *PathFinder) Search(start, end *Waypoint) (Path, SearchStats) {
	var stats SearchStats
	if start == nil || end == nil {
		return nil, stats
	}
	if start == end {
		stats.Found = true
		return Path{start}, stats
	}

	var obstacles *ObstacleMap
	if p.obstacles != nil {
		obstacles = p.obstacles.Obstacles()
	}

	nodes := make(map[Coord]*searchNode)
	node := func(c Coord) *searchNode {
		n, ok := nodes[c]
		if !ok {
			n = &searchNode{}
			nodes[c] = n
		}
		return n
	}

	startNode := node(start.GridPosition())
	startNode.explored = true
	startNode.queued = true

	frontier := []*Waypoint{start}
	stats.Queued = 1

	for head := 0; head < len(frontier); head++ {
		center := frontier[head]
		if center == end {
			stats.Found = true
			break
		}

		cc := center.GridPosition()
		for _, dir := range SearchDirections {
			nc := cc.Add(dir)
			neighbour, ok := p.graph.Lookup(nc)
			if !ok || obstacles.Blocked(nc) {
				continue
			}
			n := node(nc)
			if n.explored || n.queued {
				continue
			}
			n.queued = true
			n.from = center
			frontier = append(frontier, neighbour)
			stats.Queued++
		}

		node(cc).explored = true
		stats.Expanded++
	}

	if !stats.Found {
		p.log.Debug("no path",
			zap.Stringer("start", start.GridPosition()),
			zap.Stringer("end", end.GridPosition()),
			zap.Int("expanded", stats.Expanded),
		)
		return Path{}, stats
	}

	return reconstruct(nodes, start, end), stats
}

// reconstruct follows predecessor links from end back to start.
func reconstruct(nodes map[Coord]*searchNode, start, end *Waypoint) Path {
	path := Path{end}
	for step := end; step != start; {
		n, ok := nodes[step.GridPosition()]
		if !ok || n.from == nil {
			return Path{}
		}
		step = n.from
		path = append(path, step)
	}
	slices.Reverse(path)
	return path
}
