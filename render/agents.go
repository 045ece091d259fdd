package render

import (
	"image/color"
	"math"

	"github.com/automoto/tilechase/components"
	cfg "github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/shared/gamemath"
	"github.com/automoto/tilechase/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// attackFlashTicks is how long an attacking enemy is drawn highlighted.
const attackFlashTicks = 20

var attackColor = color.RGBA{255, 240, 120, 255}

// Agents draws the player and the enemy as discs with a heading tick.
func Agents(sim *systems.Simulation, view gamemath.View) Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		drawAgent(screen, view, sim.Player, cfg.Player)
		drawAgent(screen, view, sim.Enemy, cfg.Enemy)
	}
}

func drawAgent(screen *ebiten.Image, view gamemath.View, entry *donburi.Entry, agent cfg.AgentConfig) {
	if entry == nil || !entry.Valid() {
		return
	}
	mover := components.Mover.Get(entry)
	state := components.State.Get(entry)

	c := agent.Color
	if state.CurrentState == cfg.Attacking && state.StateTimer < attackFlashTicks {
		c = attackColor
	}

	x, y := view.ToScreen(mover.Walker.Position())
	vector.DrawFilledCircle(screen, float32(x), float32(y), agent.Radius, c, true)

	// Screen Y grows downwards.
	yaw := mover.Walker.Yaw()
	hx := x + math.Cos(yaw)*float64(agent.Radius)
	hy := y - math.Sin(yaw)*float64(agent.Radius)
	vector.StrokeLine(screen, float32(x), float32(y), float32(hx), float32(hy), 3, cfg.Render.LabelColor, true)
}

// Paths draws what is left of each walk in progress.
func Paths(sim *systems.Simulation, view gamemath.View) Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if !cfg.Debug.ShowPaths {
			return
		}
		for _, entry := range []*donburi.Entry{sim.Player, sim.Enemy} {
			if entry == nil || !entry.Valid() {
				continue
			}
			walker := components.Mover.Get(entry).Walker
			from := walker.Position()
			for _, wp := range walker.Remaining() {
				x0, y0 := view.ToScreen(from)
				x1, y1 := view.ToScreen(wp.Position())
				vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, cfg.Render.PathColor, true)
				from = wp.Position()
			}
		}
	}
}
