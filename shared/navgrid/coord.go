// Package navgrid is the tile graph used for movement: integer cell
// coordinates, the obstacle map, the registry of traversable waypoints and the
// breadth-first path finder. It has no dependencies on ebitengine, donburi
// worlds or resolv so the headless simulation and the client share it as is.
package navgrid

import (
	"fmt"
	"math"

	"github.com/automoto/tilechase/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Coord is the integer (x, y) key of a grid cell.
type Coord struct {
	X, Y int
}

func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

var (
	Right = Coord{X: 1, Y: 0}
	Left  = Coord{X: -1, Y: 0}
	Up    = Coord{X: 0, Y: 1}
	Down  = Coord{X: 0, Y: -1}
)

// SearchDirections is the neighbour order used by the path finder. It decides
// which of several equally short paths is returned, so it must not change.
var SearchDirections = [4]Coord{Right, Down, Left, Up}

// ApproachDirections is the order in which cells around a target are tried
// when an agent looks for a free cell next to it.
var ApproachDirections = [4]Coord{Up, Right, Down, Left}

// ToGrid maps a planar world position to its cell. Halves round to even, the
// same as the authoring tools, so a waypoint placed on a grid-aligned
// position always maps back to the coordinate it was authored with.
func ToGrid(pos dmath.Vec2, cellSize float64) Coord {
	return Coord{
		X: int(math.RoundToEven(pos.X / cellSize)),
		Y: int(math.RoundToEven(pos.Y / cellSize)),
	}
}

// ToWorld returns the grid-aligned world position of c.
func ToWorld(c Coord, cellSize float64) dmath.Vec2 {
	return dmath.Vec2{X: float64(c.X) * cellSize, Y: float64(c.Y) * cellSize}
}

// Snap moves pos onto the nearest grid-aligned position.
func Snap(pos dmath.Vec2, cellSize float64) dmath.Vec2 {
	return ToWorld(ToGrid(pos, cellSize), cellSize)
}

// Chebyshev is the king-move distance between a and b.
func Chebyshev(a, b Coord) int {
	return max(gamemath.AbsInt(a.X-b.X), gamemath.AbsInt(a.Y-b.Y))
}

// Manhattan is the number of cardinal steps between a and b.
func Manhattan(a, b Coord) int {
	return gamemath.AbsInt(a.X-b.X) + gamemath.AbsInt(a.Y-b.Y)
}

// Adjacent reports whether a and b are within one grid step of each other,
// diagonals included.
func Adjacent(a, b Coord) bool {
	return Chebyshev(a, b) <= 1
}
