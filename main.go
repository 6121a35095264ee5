package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/shinobi-duel/assets"
	"github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/fonts"
	"github.com/automoto/shinobi-duel/observability"
	"github.com/automoto/shinobi-duel/scenes"
	"github.com/automoto/shinobi-duel/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame(setup scenes.Setup) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewBattleScene(g, setup)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "path to a settings file (yaml, json or toml)")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(settings.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	systems.SetLogger(logger.Named("sim"))

	// Saved preferences override the file and environment.
	if err := systems.InitPersistence(config.C.Title); err == nil {
		prefs, err := systems.LoadPreferences()
		if err != nil {
			logger.Warn("ignoring saved preferences", zap.Error(err))
		}
		systems.ApplyPreferences(&settings, prefs)
	}
	settings.Apply()

	stage, err := assets.LoadStage(settings.Players.Stage)
	if err != nil {
		logger.Fatal("could not load stage", zap.Error(err))
	}

	if err := fonts.LoadDefaults(config.HUD.FontSize, config.HUD.TitleSize); err != nil {
		logger.Fatal("could not load fonts", zap.Error(err))
	}

	setup := scenes.Setup{
		PlayerOne:  settings.Players.One,
		PlayerTwo:  settings.Players.Two,
		OneIsAI:    settings.Players.OneIsAI,
		TwoIsAI:    settings.Players.TwoIsAI,
		Difficulty: config.Difficulty(settings.AI.Difficulty),
		Seed:       settings.AI.Seed,
		Stage:      stage,
		Logger:     logger,
		OnFinish: func(scenes.Setup) {
			if err := systems.SavePreferences(systems.PreferencesFrom(settings)); err != nil {
				logger.Warn("could not save preferences", zap.Error(err))
			}
		},
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.Match.TickRate)

	if err := ebiten.RunGame(NewGame(setup)); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
