package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilechase/components"
	cfg "github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/fonts"
	"github.com/automoto/tilechase/shared/gamemath"
	"github.com/automoto/tilechase/systems"
	"github.com/automoto/tilechase/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// HoverLabel prints the grid coordinate of the tile under the cursor next to
// it.
func HoverLabel(sim *systems.Simulation, view gamemath.View) Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		wp, ok := HoveredWaypoint(sim, view)
		if !ok {
			return
		}
		x, y, side := view.CellRect(wp.Position())
		text.Draw(screen, wp.GridPosition().String(), fonts.Label.Get(), int(x)+4, int(y+side)-6, cfg.Render.LabelColor)
	}
}

// Status prints the agent states and the enemy's replan count.
func Status(sim *systems.Simulation) Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		player := components.State.Get(sim.Player)
		enemy := components.State.Get(sim.Enemy)
		replans := components.Enemy.Get(sim.Enemy).Replans
		line := fmt.Sprintf("player %s  enemy %s  replans %d", player.CurrentState, enemy.CurrentState, replans)
		text.Draw(screen, line, fonts.Small.Get(), 8, 14, cfg.Render.LabelColor)
	}
}

var (
	tileOutline  = color.RGBA{0, 255, 255, 255}
	probeOutline = color.RGBA{255, 0, 255, 255}
)

// SpaceDebug outlines every resolv object when enabled returns true.
func SpaceDebug(view gamemath.View, enabled func() bool) Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !enabled() {
			return
		}
		spaceEntry, ok := components.Space.First(e.World)
		if !ok {
			return
		}
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := tileOutline
			if obj.HasTags(tags.ResolvProbe) {
				c = probeOutline
			}
			// Space coordinates are shifted half a cell from world ones.
			x := view.Margin + obj.X*view.Scale
			y := view.Margin + (view.CellSize*float64(view.Cells)-(obj.Y+obj.H))*view.Scale
			outline(screen, float32(x), float32(y), float32(obj.W*view.Scale), float32(obj.H*view.Scale), c)
		}
	}
}
