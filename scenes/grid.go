package scenes

import (
	"io/fs"
	"sync"

	cfg "github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/render"
	"github.com/automoto/tilechase/shared/gamemath"
	"github.com/automoto/tilechase/systems"
	"github.com/automoto/tilechase/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// GridScene is the playable grid: left click walks the player, right click
// toggles an obstacle, F1 outlines the collision space and R restores the
// authored obstacles.
type GridScene struct {
	ecs   *ecs.ECS
	sim   *systems.Simulation
	view  gamemath.View
	store *systems.ObstacleStore

	assets fs.FS
	debug  bool
	once   sync.Once
	err    error
	log    *zap.Logger
}

// NewGridScene loads the level from assets on first update. store may be nil,
// in which case obstacle edits are not persisted.
func NewGridScene(assets fs.FS, store *systems.ObstacleStore, log *zap.Logger) *GridScene {
	return &GridScene{
		assets: assets,
		store:  store,
		log:    log,
		view: gamemath.View{
			Scale:    cfg.Render.Scale,
			CellSize: cfg.Grid.CellSize,
			Cells:    cfg.Grid.Size,
			Margin:   cfg.Render.Margin,
		},
	}
}

// Simulation is nil until the first update.
func (gs *GridScene) Simulation() *systems.Simulation {
	return gs.sim
}

func (gs *GridScene) Update() error {
	gs.once.Do(gs.configure)
	if gs.err != nil {
		return gs.err
	}
	gs.ecs.Update()
	return nil
}

func (gs *GridScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Render.BackgroundFill)
	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GridScene) configure() {
	layout, obstacles, err := factory.LoadLevel(gs.assets, cfg.Level, gs.log)
	if err != nil {
		gs.err = err
		return
	}
	sim, err := systems.NewSimulation(layout, obstacles, gs.log)
	if err != nil {
		gs.err = err
		return
	}
	if gs.store != nil && gs.store.ApplySaved(sim.Nav) {
		gs.log.Info("applied saved obstacle layout")
	}
	gs.sim = sim

	e := ecs.NewECS(sim.World)

	e.AddSystem(gs.updateInput)
	e.AddSystem(func(_ *ecs.ECS) {
		sim.Step(cfg.Sim.Delta())
	})

	e.AddRenderer(render.LayerGrid, render.Tiles(sim, gs.view))
	e.AddRenderer(render.LayerGrid, render.Obstacles(gs.view))
	e.AddRenderer(render.LayerAgents, render.Paths(sim, gs.view))
	e.AddRenderer(render.LayerAgents, render.Agents(sim, gs.view))
	e.AddRenderer(render.LayerOverlay, render.HoverLabel(sim, gs.view))
	e.AddRenderer(render.LayerOverlay, render.Status(sim))
	e.AddRenderer(render.LayerOverlay, render.SpaceDebug(gs.view, func() bool { return gs.debug }))

	gs.ecs = e
}

func (gs *GridScene) updateInput(_ *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		gs.debug = !gs.debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		gs.restoreObstacles()
	}

	x, y := ebiten.CursorPosition()
	pos := gs.view.ToWorld(float64(x), float64(y))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		gs.sim.ClickAt(pos)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		gs.toggleObstacle(pos)
	}
}

func (gs *GridScene) toggleObstacle(pos dmath.Vec2) {
	wp, ok := gs.sim.Nav.Locate(pos)
	if !ok {
		return
	}
	blocked, err := systems.ToggleObstacle(gs.sim.Nav, wp.GridPosition())
	if err != nil {
		gs.log.Warn("cannot place obstacle", zap.Stringer("cell", wp.GridPosition()), zap.Error(err))
		return
	}
	gs.log.Debug("obstacle toggled", zap.Stringer("cell", wp.GridPosition()), zap.Bool("blocked", blocked))

	if gs.store == nil {
		return
	}
	if err := gs.store.Save(gs.sim.Nav.Obstacles.Obstacles()); err != nil {
		gs.log.Warn("could not save obstacles", zap.Error(err))
	}
}

func (gs *GridScene) restoreObstacles() {
	_, obstacles, err := factory.LoadLevel(gs.assets, cfg.Level, gs.log)
	if err != nil {
		gs.log.Warn("could not reload level", zap.Error(err))
		return
	}
	gs.sim.Nav.Obstacles.Store(obstacles)
	if gs.store == nil {
		return
	}
	if err := gs.store.Clear(); err != nil {
		gs.log.Warn("could not clear saved obstacles", zap.Error(err))
	}
}
