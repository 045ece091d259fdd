package navgrid

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// GridSize is the side length of the obstacle map.
const GridSize = 10

var ErrOutOfBounds = errors.New("coordinate outside obstacle grid")

// InBounds reports whether c indexes the obstacle map.
func InBounds(c Coord) bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}

// ObstacleMap marks blocked cells, indexed [x][y]. The zero value blocks
// nothing.
type ObstacleMap struct {
	cells [GridSize][GridSize]bool
}

// NewObstacleMap builds a map with the given cells blocked.
func NewObstacleMap(blocked ...Coord) (*ObstacleMap, error) {
	m := &ObstacleMap{}
	for _, c := range blocked {
		if err := m.Set(c, true); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Blocked reports whether c is an obstacle. Coordinates outside the grid are
// never blocked, and a nil map blocks nothing.
func (m *ObstacleMap) Blocked(c Coord) bool {
	if m == nil || !InBounds(c) {
		return false
	}
	return m.cells[c.X][c.Y]
}

// Set marks c as blocked or free. Coordinates outside the grid return
// ErrOutOfBounds.
func (m *ObstacleMap) Set(c Coord, blocked bool) error {
	if !InBounds(c) {
		return fmt.Errorf("set obstacle %s: %w", c, ErrOutOfBounds)
	}
	m.cells[c.X][c.Y] = blocked
	return nil
}

// Toggle flips c and returns its new state.
func (m *ObstacleMap) Toggle(c Coord) (bool, error) {
	if !InBounds(c) {
		return false, fmt.Errorf("toggle obstacle %s: %w", c, ErrOutOfBounds)
	}
	m.cells[c.X][c.Y] = !m.cells[c.X][c.Y]
	return m.cells[c.X][c.Y], nil
}

// Cells returns the blocked coordinates in x-major order.
func (m *ObstacleMap) Cells() []Coord {
	if m == nil {
		return nil
	}
	var out []Coord
	for x := 0; x < GridSize; x++ {
		for y := 0; y < GridSize; y++ {
			if m.cells[x][y] {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

// Rows returns the map as a [x][y] bool matrix.
func (m *ObstacleMap) Rows() [][]bool {
	rows := make([][]bool, GridSize)
	for x := range rows {
		rows[x] = make([]bool, GridSize)
		if m != nil {
			copy(rows[x], m.cells[x][:])
		}
	}
	return rows
}

// Clone returns an independent copy; a nil map clones to an empty one.
func (m *ObstacleMap) Clone() *ObstacleMap {
	if m == nil {
		return &ObstacleMap{}
	}
	c := *m
	return &c
}

// ObstacleSource hands out the obstacle map a search should honour.
type ObstacleSource interface {
	Obstacles() *ObstacleMap
}

// Obstacles lets a plain map be used as its own source.
func (m *ObstacleMap) Obstacles() *ObstacleMap {
	return m
}

// ObstacleHolder publishes obstacle maps across goroutines. Maps handed out by
// Obstacles must be treated as read-only; writers Store a fresh copy.
type ObstacleHolder struct {
	current atomic.Pointer[ObstacleMap]
	version atomic.Uint64
}

// NewObstacleHolder returns a holder publishing m; a nil m blocks nothing.
func NewObstacleHolder(m *ObstacleMap) *ObstacleHolder {
	h := &ObstacleHolder{}
	h.Store(m)
	return h
}

func (h *ObstacleHolder) Obstacles() *ObstacleMap {
	return h.current.Load()
}

// Store publishes m and bumps the version.
func (h *ObstacleHolder) Store(m *ObstacleMap) {
	if m == nil {
		m = &ObstacleMap{}
	}
	h.current.Store(m)
	h.version.Add(1)
}

// Version increases on every Store, letting consumers notice changes without
// comparing maps.
func (h *ObstacleHolder) Version() uint64 {
	return h.version.Load()
}

// Toggle flips c on a copy of the current map and publishes the copy.
func (h *ObstacleHolder) Toggle(c Coord) (bool, error) {
	next := h.Obstacles().Clone()
	blocked, err := next.Toggle(c)
	if err != nil {
		return false, err
	}
	h.Store(next)
	return blocked, nil
}
