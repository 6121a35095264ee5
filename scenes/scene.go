// Package scenes hosts a bout in an ebiten window.
package scenes

import (
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// Scene is one screen of the window host.
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// SceneChanger switches the active scene.
type SceneChanger interface {
	ChangeScene(scene Scene)
}

// Render layers, drawn in order.
const (
	layerStage ecs.LayerID = iota
	layerFighters
	layerHUD
)

// Setup describes the bout a BattleScene plays.
type Setup struct {
	PlayerOne  string
	PlayerTwo  string
	OneIsAI    bool
	TwoIsAI    bool
	Difficulty cfg.Difficulty
	Seed       int64
	Stage      *leveldata.StageData
	Logger     *zap.Logger
	// OnFinish is called with every finished setup, for example to save preferences.
	OnFinish func(Setup)
}
