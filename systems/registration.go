package systems

import (
	"errors"

	"github.com/automoto/tilechase/components"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/automoto/tilechase/tags"
	"github.com/yohamta/donburi"
)

// RegisterWaypoints offers every new tile to the registry exactly once. An
// overlapping tile stays in the world but is never walkable; the registry
// already logged it. It returns the number of tiles registered.
func RegisterWaypoints(w donburi.World, nav *Navigation) int {
	registered := 0
	tags.Tile.Each(w, func(e *donburi.Entry) {
		tile := components.Tile.Get(e)
		if tile.Registered || tile.Waypoint == nil {
			return
		}
		tile.Registered = true

		err := nav.Registry.Register(tile.Waypoint)
		if errors.Is(err, navgrid.ErrDuplicateWaypoint) {
			return
		}
		registered++
	})
	return registered
}
