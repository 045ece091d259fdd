package components

import (
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/yohamta/donburi"
)

type TileHighlight int

const (
	HighlightNone TileHighlight = iota
	HighlightClicked
)

type TileData struct {
	Waypoint   *navgrid.Waypoint
	Registered bool // Set once the tile has offered itself to the registry
	Highlight  TileHighlight
}

var Tile = donburi.NewComponentType[TileData]()
