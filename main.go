package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/tilechase/assets"
	"github.com/automoto/tilechase/config"
	"github.com/automoto/tilechase/fonts"
	"github.com/automoto/tilechase/scenes"
	"github.com/automoto/tilechase/shared/logging"
	"github.com/automoto/tilechase/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	verbose := flag.Bool("verbose", config.Debug.Verbose, "Enable debug logging")
	showPaths := flag.Bool("paths", config.Debug.ShowPaths, "Draw the remaining path of walking agents")
	flag.Parse()

	config.Debug.Verbose = *verbose
	config.Debug.ShowPaths = *showPaths

	logger, err := logging.New(config.Debug.Verbose)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := fonts.LoadDefaults(config.Render.LabelFontSize); err != nil {
		logger.Fatal("Failed to load fonts", zap.Error(err))
	}

	// Obstacle edits survive restarts when a save directory is available.
	store, err := systems.OpenObstacleStore(config.Persistence.AppName, config.Persistence.ObstaclesItem, logger.Named("store"))
	if err != nil {
		logger.Warn("Obstacle edits will not be saved", zap.Error(err))
		store = nil
	}

	ebiten.SetWindowTitle("tilechase")
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	scene := scenes.NewGridScene(assets.FS(), store, logger)
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		logger.Fatal("Game exited", zap.Error(err))
	}
}
