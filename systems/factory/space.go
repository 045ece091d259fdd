package factory

import (
	"github.com/automoto/tilechase/archetypes"
	"github.com/automoto/tilechase/components"
	"github.com/automoto/tilechase/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateSpace spawns the broadphase for a grid of size×size tiles. Tiles are
// centred on their waypoints, so the space is one cell wider than the grid
// and every coordinate is shifted by half a cell (see ToSpace).
func CreateSpace(w donburi.World, size int, cellSize float64) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	cell := int(cellSize)
	if cell < 1 {
		cell = 1
	}
	extent := (size + 1) * cell
	components.Space.Set(space, resolv.NewSpace(extent, extent, cell, cell))
	return space
}

// ToSpace converts a world position to resolv space coordinates.
func ToSpace(pos dmath.Vec2, cellSize float64) (x, y float64) {
	return pos.X + cellSize/2, pos.Y + cellSize/2
}

// NewTileObject creates the resolv object covering the tile centred on pos.
func NewTileObject(pos dmath.Vec2, cellSize float64) *resolv.Object {
	x, y := ToSpace(pos, cellSize)
	return resolv.NewObject(x-cellSize/2, y-cellSize/2, cellSize, cellSize, tags.ResolvTile)
}
