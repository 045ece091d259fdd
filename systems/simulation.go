package systems

import (
	"fmt"

	"github.com/automoto/tilechase/components"
	cfg "github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/shared/leveldata"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/automoto/tilechase/systems/factory"
	"github.com/automoto/tilechase/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// Simulation is one level's world with the systems that drive it. Step runs
// them in a fixed order; the client calls it from its ECS pipeline and the
// headless runner from its tick loop.
type Simulation struct {
	World     donburi.World
	Nav       *Navigation
	Agents    *Agents
	Obstacles *ObstacleManager

	Player *donburi.Entry
	Enemy  *donburi.Entry

	log *zap.Logger
}

// NewSimulation builds the world for layout: the resolv space, one tile per
// waypoint cell, the obstacle entities, the player and the enemy.
func NewSimulation(layout *leveldata.Layout, obstacles *navgrid.ObstacleMap, log *zap.Logger) (*Simulation, error) {
	if log == nil {
		log = zap.NewNop()
	}
	playerSpawn, ok := layout.Spawn(cfg.Player.Name)
	if !ok {
		return nil, fmt.Errorf("level has no %q spawn", cfg.Player.Name)
	}
	enemySpawn, ok := layout.Spawn(cfg.Enemy.Name)
	if !ok {
		return nil, fmt.Errorf("level has no %q spawn", cfg.Enemy.Name)
	}

	cellSize := cfg.Grid.CellSize
	w := donburi.NewWorld()
	nav := NewNavigation(cellSize, obstacles, log)

	spaceEntry := factory.CreateSpace(w, cfg.Grid.Size, cellSize)
	space := components.Space.Get(spaceEntry)
	factory.CreateTiles(w, space, layout.Waypoints, cellSize)
	factory.CreateLevel(w, "arena", layout)
	RegisterWaypoints(w, nav)
	nav.Locator = NewSpaceLocator(space, nav.Registry, cellSize, cfg.Player.ProbeSize)

	sim := &Simulation{
		World:     w,
		Nav:       nav,
		Agents:    NewAgents(nav, log.Named("agents")),
		Obstacles: NewObstacleManager(nav, log.Named("obstacles")),
		Player:    factory.CreatePlayer(w, navgrid.ToWorld(playerSpawn.Cell, cellSize)),
		Enemy:     factory.CreateEnemy(w, navgrid.ToWorld(enemySpawn.Cell, cellSize)),
		log:       log,
	}
	sim.Agents.
		Bind(tags.Player, NewPlayerAgent(log.Named("player"))).
		Bind(tags.Enemy, NewEnemyAgent(log.Named("enemy")))
	sim.Obstacles.Update(w)

	DestinationReached.Subscribe(w, OnDestinationReached)

	log.Info("simulation ready",
		zap.Int("waypoints", nav.Registry.Len()),
		zap.Int("obstacles", len(ObstacleCells(w))),
		zap.Stringer("player", playerSpawn.Cell),
		zap.Stringer("enemy", enemySpawn.Cell),
	)
	return sim, nil
}

// Step advances the world by dt seconds.
func (s *Simulation) Step(dt float64) {
	RegisterWaypoints(s.World, s.Nav)
	s.Obstacles.Update(s.World)
	s.Agents.Update(s.World, dt)
	UpdateStates(s.World)
	ProcessEvents(s.World)
}

// ClickAt resolves a world position to a tile and orders the player there.
func (s *Simulation) ClickAt(pos dmath.Vec2) bool {
	target, ok := s.Nav.Locate(pos)
	if !ok {
		return false
	}
	return ClickTile(s.World, target)
}

// ClickCell orders the player to the tile registered on c.
func (s *Simulation) ClickCell(c navgrid.Coord) bool {
	target, ok := s.Nav.Registry.Lookup(c)
	if !ok {
		return false
	}
	return ClickTile(s.World, target)
}

func (s *Simulation) PlayerMover() *components.MoverData {
	return components.Mover.Get(s.Player)
}

func (s *Simulation) EnemyMover() *components.MoverData {
	return components.Mover.Get(s.Enemy)
}
