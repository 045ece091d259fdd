// Package leveldata parses the authored level formats: the TMX tile layout
// and the YAML obstacle grid. It is pure data and does not touch ebitengine,
// donburi worlds or resolv.
package leveldata

import (
	"errors"

	"github.com/automoto/tilechase/shared/navgrid"
)

var (
	ErrNoWaypointLayer     = errors.New("level has no waypoint layer")
	ErrInvalidObstacleGrid = errors.New("invalid obstacle grid")
)

// Layout is the tile arrangement of a level.
type Layout struct {
	Width, Height int // in tiles

	// Waypoints lists every traversable cell in row-major order, the order in
	// which tiles register themselves.
	Waypoints []navgrid.Coord

	// Obstacles lists cells painted on the optional obstacle layer.
	Obstacles []navgrid.Coord

	Spawns []Spawn
}

// Spawn places an agent on a cell.
type Spawn struct {
	Name string // "player" or "enemy"
	Cell navgrid.Coord
}

// Spawn returns the first spawn with the given name.
func (l *Layout) Spawn(name string) (Spawn, bool) {
	for _, s := range l.Spawns {
		if s.Name == name {
			return s, true
		}
	}
	return Spawn{}, false
}

// ObstacleMap converts the obstacle layer into a map. Cells outside the
// obstacle grid are dropped.
func (l *Layout) ObstacleMap() *navgrid.ObstacleMap {
	m := &navgrid.ObstacleMap{}
	for _, c := range l.Obstacles {
		_ = m.Set(c, true)
	}
	return m
}
