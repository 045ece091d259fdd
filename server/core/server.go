package core

import (
	"context"

	"github.com/automoto/tilechase/components"
	cfg "github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/shared/navgrid"
	"github.com/automoto/tilechase/systems"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

const commandBuffer = 16

// Server runs a simulation without a window. Player moves arrive through
// Enqueue, from any goroutine, or from a script played one move per walk.
type Server struct {
	sim      *systems.Simulation
	loop     *GameLoop
	commands chan navgrid.Coord
	script   []navgrid.Coord
	arrivals int
	log      *zap.Logger
}

// NewServer wraps sim in a loop running at tickRate for at most maxTicks
// ticks (zero for no limit).
func NewServer(sim *systems.Simulation, tickRate, maxTicks int, log *zap.Logger) *Server {
	s := &Server{
		sim:      sim,
		commands: make(chan navgrid.Coord, commandBuffer),
		log:      log,
	}
	s.loop = NewGameLoop(s, tickRate, maxTicks, log.Named("loop"))

	systems.DestinationReached.Subscribe(sim.World, s.onDestinationReached)
	systems.AgentStateChanged.Subscribe(sim.World, s.onAgentStateChanged)
	return s
}

func (s *Server) Loop() *GameLoop {
	return s.loop
}

func (s *Server) Simulation() *systems.Simulation {
	return s.sim
}

// Script queues moves that are issued one at a time, each once the player is
// idle again.
func (s *Server) Script(moves []navgrid.Coord) {
	s.script = append(s.script, moves...)
}

// Enqueue hands a move to the next tick. It returns false when the buffer is
// full and the move was dropped.
func (s *Server) Enqueue(c navgrid.Coord) bool {
	select {
	case s.commands <- c:
		return true
	default:
		return false
	}
}

// Start runs the loop on the calling goroutine until ctx is done, Stop is
// called or the tick budget is spent.
func (s *Server) Start(ctx context.Context) {
	s.loop.Run(ctx)
}

func (s *Server) Stop() {
	s.loop.Stop()
}

// Arrivals is the number of walks the player has finished.
func (s *Server) Arrivals() int {
	return s.arrivals
}

// ProcessCommands forwards queued moves to the player, then the next scripted
// move if the player is idle.
func (s *Server) ProcessCommands() {
	for drained := false; !drained; {
		select {
		case c := <-s.commands:
			s.click(c)
		default:
			drained = true
		}
	}

	if len(s.script) == 0 || !s.playerIdle() {
		return
	}
	next := s.script[0]
	s.script = s.script[1:]
	s.click(next)
}

func (s *Server) click(c navgrid.Coord) {
	if !s.sim.ClickCell(c) {
		s.log.Warn("move target has no tile", zap.Stringer("cell", c))
		return
	}
	s.log.Info("player ordered", zap.Stringer("cell", c))
}

func (s *Server) playerIdle() bool {
	player := components.Player.Get(s.sim.Player)
	state := components.State.Get(s.sim.Player)
	return player.Command == nil && state.CurrentState != cfg.Walking
}

func (s *Server) onDestinationReached(_ donburi.World, e systems.DestinationReachedEvent) {
	s.arrivals++
	s.log.Info("player arrived", zap.Stringer("cell", e.Waypoint))
}

func (s *Server) onAgentStateChanged(w donburi.World, e systems.AgentStateChangedEvent) {
	name := cfg.Enemy.Name
	if w.Entry(e.Entity).HasComponent(components.Player) {
		name = cfg.Player.Name
	}
	s.log.Debug("state changed",
		zap.String("agent", name),
		zap.Stringer("from", e.From),
		zap.Stringer("to", e.To),
	)
}

func (s *Server) report(tick int) {
	player := s.sim.PlayerMover()
	enemy := s.sim.EnemyMover()
	s.log.Info("agents",
		zap.Int("tick", tick),
		zap.Stringer("player", navgrid.ToGrid(player.Walker.Position(), cfg.Grid.CellSize)),
		zap.Stringer("enemy", navgrid.ToGrid(enemy.Walker.Position(), cfg.Grid.CellSize)),
		zap.Int("replans", components.Enemy.Get(s.sim.Enemy).Replans),
	)
}
