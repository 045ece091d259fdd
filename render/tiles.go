package render

import (
	"github.com/automoto/tilechase/components"
	cfg "github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/shared/gamemath"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/automoto/tilechase/systems"
	"github.com/automoto/tilechase/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Tiles draws every tile, colouring the clicked and hovered ones.
func Tiles(sim *systems.Simulation, view gamemath.View) Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		hovered, _ := HoveredWaypoint(sim, view)

		tags.Tile.Each(e.World, func(entry *donburi.Entry) {
			tile := components.Tile.Get(entry)
			if tile.Waypoint == nil {
				return
			}

			c := cfg.Render.TileColor
			switch {
			case tile.Highlight == components.HighlightClicked:
				c = cfg.Render.ClickedColor
			case tile.Waypoint == hovered:
				c = cfg.Render.HoverColor
			}
			fillCell(screen, view, tile.Waypoint.Position(), cfg.Render.TileInset, c)
		})
	}
}

// Obstacles draws a block on every obstacle entity.
func Obstacles(view gamemath.View) Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		cellSize := view.CellSize
		components.Obstacle.Each(e.World, func(entry *donburi.Entry) {
			cell := components.Obstacle.Get(entry).Cell
			fillCell(screen, view, navgrid.ToWorld(cell, cellSize), cfg.Render.TileInset*4, cfg.Render.ObstacleColor)
		})
	}
}
