package core

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// GameLoop steps the server at a fixed tick rate. Each tick advances the
// simulation by exactly 1/tickRate seconds regardless of wall clock jitter.
type GameLoop struct {
	server   *Server
	tickRate int
	maxTicks int
	ticks    int
	stopChan chan struct{}
	stopOnce sync.Once
	log      *zap.Logger
}

// NewGameLoop creates a loop that stops by itself after maxTicks ticks; zero
// means run until stopped.
func NewGameLoop(server *Server, tickRate, maxTicks int, log *zap.Logger) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		maxTicks: maxTicks,
		stopChan: make(chan struct{}),
		log:      log,
	}
}

// Run ticks until ctx is done, Stop is called or the tick budget is spent.
func (g *GameLoop) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.log.Info("game loop started", zap.Int("tickRate", g.tickRate), zap.Int("maxTicks", g.maxTicks))
	defer func() {
		g.log.Info("game loop stopped", zap.Int("ticks", g.ticks))
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-g.stopChan:
			return
		case <-ticker.C:
			g.tick()
			if g.done() {
				return
			}
		}
	}
}

// Advance runs n ticks back to back without waiting, or fewer if the tick
// budget runs out. It returns the number of ticks run.
func (g *GameLoop) Advance(n int) int {
	run := 0
	for ; run < n && !g.done(); run++ {
		g.tick()
	}
	return run
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) Ticks() int {
	return g.ticks
}

func (g *GameLoop) done() bool {
	return g.maxTicks > 0 && g.ticks >= g.maxTicks
}

func (g *GameLoop) tick() {
	g.server.ProcessCommands()
	g.server.sim.Step(1 / float64(g.tickRate))
	g.ticks++

	if g.ticks%g.tickRate == 0 {
		g.server.report(g.ticks)
	}
}
