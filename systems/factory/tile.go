package factory

import (
	"github.com/automoto/tilechase/archetypes"
	"github.com/automoto/tilechase/components"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateTile spawns a tile at pos, snapped to the grid, and adds its object
// to space. The tile is not registered yet; RegisterWaypoints does that.
func CreateTile(w donburi.World, space *resolv.Space, pos dmath.Vec2, cellSize float64) *donburi.Entry {
	tile := archetypes.Tile.Spawn(w)

	waypoint := navgrid.NewWaypoint(navgrid.Snap(pos, cellSize), cellSize)
	obj := NewTileObject(waypoint.Position(), cellSize)
	obj.Data = waypoint
	if space != nil {
		space.Add(obj)
	}

	components.Tile.SetValue(tile, components.TileData{Waypoint: waypoint})
	components.Object.SetValue(tile, components.ObjectData{Object: obj})
	return tile
}

// CreateTiles spawns one tile per cell in order.
func CreateTiles(w donburi.World, space *resolv.Space, cells []navgrid.Coord, cellSize float64) []*donburi.Entry {
	tiles := make([]*donburi.Entry, 0, len(cells))
	for _, c := range cells {
		tiles = append(tiles, CreateTile(w, space, navgrid.ToWorld(c, cellSize), cellSize))
	}
	return tiles
}
