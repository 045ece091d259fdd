package main

import (
	"context"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/tilechase/assets"
	"github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/server/core"
	"github.com/automoto/tilechase/shared/logging"
	"github.com/automoto/tilechase/systems"
	"github.com/automoto/tilechase/systems/factory"
	"go.uber.org/zap"
)

func main() {
	tickRate := flag.Int("tickrate", config.Sim.TickRate, "Simulation tick rate (ticks per second)")
	levelDir := flag.String("level", "", "Directory holding the level files (empty = embedded assets)")
	obstacles := flag.String("obstacles", config.Level.ObstaclePath, "Obstacle file, relative to the level directory")
	watch := flag.Bool("watch", false, "Reload the obstacle file when it changes (needs -level)")
	moves := flag.String("moves", "", `Scripted player moves, e.g. "3,0;5,5"`)
	ticks := flag.Int("ticks", 0, "Stop after this many ticks (0 = run until interrupted)")
	verbose := flag.Bool("verbose", config.Debug.Verbose, "Enable debug logging")
	flag.Parse()

	logger, err := logging.New(*verbose)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	script, err := core.ParseMoves(*moves)
	if err != nil {
		logger.Fatal("Invalid -moves", zap.Error(err))
	}

	config.Sim.TickRate = *tickRate
	config.Level.ObstaclePath = *obstacles

	var fsys fs.FS = assets.FS()
	if *levelDir != "" {
		fsys = os.DirFS(*levelDir)
	}

	layout, obstacleMap, err := factory.LoadLevel(fsys, config.Level, logger)
	if err != nil {
		logger.Fatal("Failed to load level", zap.Error(err))
	}
	sim, err := systems.NewSimulation(layout, obstacleMap, logger)
	if err != nil {
		logger.Fatal("Failed to build simulation", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *watch {
		if *levelDir == "" {
			logger.Fatal("-watch needs -level")
		}
		path := filepath.Join(*levelDir, filepath.FromSlash(config.Level.ObstaclePath))
		watcher, err := systems.WatchObstacles(path, sim.Nav.Obstacles, logger.Named("watch"))
		if err != nil {
			logger.Fatal("Failed to watch obstacles", zap.Error(err))
		}
		defer func() { _ = watcher.Close() }()
		go watcher.Run(ctx)
	}

	server := core.NewServer(sim, config.Sim.TickRate, *ticks, logger)
	server.Script(script)

	logger.Info("Starting headless simulation",
		zap.Int("tickRate", config.Sim.TickRate),
		zap.Int("moves", len(script)),
	)
	server.Start(ctx)
	logger.Info("Simulation finished", zap.Int("arrivals", server.Arrivals()))
}
