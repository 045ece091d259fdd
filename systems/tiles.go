package systems

import (
	"github.com/automoto/tilechase/components"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/automoto/tilechase/tags"
	"github.com/yohamta/donburi"
)

// ClickTile highlights the tile of target and orders the player there. The
// highlight moves even when the player is busy and drops the command.
func ClickTile(w donburi.World, target *navgrid.Waypoint) bool {
	if target == nil {
		return false
	}
	HighlightTile(w, target)
	return CommandMove(w, target)
}

// HighlightTile marks the tile holding target as clicked and clears any
// previously clicked tile.
func HighlightTile(w donburi.World, target *navgrid.Waypoint) {
	tags.Tile.Each(w, func(e *donburi.Entry) {
		tile := components.Tile.Get(e)
		if tile.Waypoint == target {
			tile.Highlight = components.HighlightClicked
			return
		}
		tile.Highlight = components.HighlightNone
	})
}

// ResetHighlights clears every tile highlight.
func ResetHighlights(w donburi.World) {
	tags.Tile.Each(w, func(e *donburi.Entry) {
		components.Tile.Get(e).Highlight = components.HighlightNone
	})
}

// OnDestinationReached clears the clicked tile once the player arrives.
func OnDestinationReached(w donburi.World, _ DestinationReachedEvent) {
	ResetHighlights(w)
}
