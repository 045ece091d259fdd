// Package render draws the grid scene. Every function here returns an ECS
// renderer bound to a simulation and a view.
package render

import (
	"github.com/automoto/tilechase/shared/gamemath"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/automoto/tilechase/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const (
	LayerGrid ecs.LayerID = iota
	LayerAgents
	LayerOverlay
)

// Renderer is the signature donburi/ecs expects from AddRenderer.
type Renderer = func(e *ecs.ECS, screen *ebiten.Image)

// HoveredWaypoint returns the registered waypoint under the mouse cursor.
func HoveredWaypoint(sim *systems.Simulation, view gamemath.View) (*navgrid.Waypoint, bool) {
	x, y := ebiten.CursorPosition()
	return sim.Nav.Locate(view.ToWorld(float64(x), float64(y)))
}
