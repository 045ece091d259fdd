package navgrid

import (
	"errors"
	"fmt"
	"sync"

	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

var ErrDuplicateWaypoint = errors.New("waypoint already registered at coordinate")

// Waypoint is one traversable cell. Its coordinate is always derived from its
// position.
type Waypoint struct {
	position dmath.Vec2
	cellSize float64
}

func NewWaypoint(position dmath.Vec2, cellSize float64) *Waypoint {
	return &Waypoint{position: position, cellSize: cellSize}
}

func (w *Waypoint) Position() dmath.Vec2 {
	return w.position
}

func (w *Waypoint) CellSize() float64 {
	return w.cellSize
}

func (w *Waypoint) GridPosition() Coord {
	return ToGrid(w.position, w.cellSize)
}

func (w *Waypoint) String() string {
	return "waypoint(" + w.GridPosition().String() + ")"
}

// Graph is the read side of the registry used during a search.
type Graph interface {
	Lookup(c Coord) (*Waypoint, bool)
}

// Locator resolves a world position to the waypoint underneath it.
type Locator interface {
	WaypointAt(pos dmath.Vec2) (*Waypoint, bool)
}

// Registry holds every traversable waypoint keyed by coordinate. It is
// append-only: the first waypoint registered for a coordinate wins.
type Registry struct {
	mu       sync.RWMutex
	cellSize float64
	byCoord  map[Coord]*Waypoint
	order    []*Waypoint
	log      *zap.Logger
}

func NewRegistry(cellSize float64, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		cellSize: cellSize,
		byCoord:  make(map[Coord]*Waypoint),
		log:      log,
	}
}

func (r *Registry) CellSize() float64 {
	return r.cellSize
}

// Register adds w under its current coordinate. A second waypoint on an
// occupied coordinate is rejected with ErrDuplicateWaypoint and a warning;
// the registry is left unchanged.
func (r *Registry) Register(w *Waypoint) error {
	c := w.GridPosition()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byCoord[c]; exists {
		r.log.Warn("skipping overlapping waypoint", zap.Stringer("coord", c))
		return fmt.Errorf("register %s: %w", c, ErrDuplicateWaypoint)
	}
	r.byCoord[c] = w
	r.order = append(r.order, w)
	return nil
}

func (r *Registry) Lookup(c Coord) (*Waypoint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.byCoord[c]
	return w, ok
}

// All returns the registered waypoints in registration order.
func (r *Registry) All() []*Waypoint {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Waypoint, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// WaypointAt looks up the cell containing pos.
func (r *Registry) WaypointAt(pos dmath.Vec2) (*Waypoint, bool) {
	return r.Lookup(ToGrid(pos, r.cellSize))
}
