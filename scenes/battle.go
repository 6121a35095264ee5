package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/shinobi-duel/battle"
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/input"
	"github.com/automoto/shinobi-duel/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// BattleScene plays one bout and hands over to the result screen when it ends.
type BattleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	setup        Setup
	once         sync.Once

	battle *battle.Battle
	feeder *input.Feeder
	snap   systems.Snapshot
	err    error

	// Ticks left on each fighter's hit highlight
	flashes [2]int
	// Ticks since the bout finished
	finishedFor int
}

// NewBattleScene creates a scene for the bout described by setup.
func NewBattleScene(sc SceneChanger, setup Setup) *BattleScene {
	if setup.Logger == nil {
		setup.Logger = zap.NewNop()
	}
	return &BattleScene{sceneChanger: sc, setup: setup}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)
	if bs.ecs == nil {
		return
	}
	bs.ecs.Update()
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.err != nil {
		drawCentered(screen, bs.err.Error(), cfg.Red, screen.Bounds().Dy()/2)
		return
	}
	if bs.ecs == nil {
		return
	}
	bs.snap = bs.battle.Snapshot()
	bs.ecs.Draw(screen)
}

func (bs *BattleScene) configure() {
	opts := []battle.Option{
		battle.WithLogger(bs.setup.Logger),
		battle.WithStage(bs.setup.Stage),
	}
	schemes := map[int]input.Scheme{}
	for slot, ai := range []bool{bs.setup.OneIsAI, bs.setup.TwoIsAI} {
		if ai {
			opts = append(opts, battle.WithBot(slot, bs.setup.Difficulty, bs.setup.Seed+int64(slot)))
			continue
		}
		schemes[slot] = []input.Scheme{input.PlayerOne, input.PlayerTwo}[slot]
	}

	b, err := battle.New(bs.setup.PlayerOne, bs.setup.PlayerTwo, opts...)
	if err != nil {
		bs.setup.Logger.Error("could not create battle", zap.Error(err))
		bs.err = err
		return
	}
	bs.battle = b
	bs.feeder = input.NewFeeder()
	bs.feeder.Schemes = schemes

	b.Subscribe(bs.onEvent)
	b.Start()

	bs.ecs = ecs.NewECS(b.World())

	bs.ecs.AddSystem(bs.updateInput)
	bs.ecs.AddSystem(bs.updateBattle)
	bs.ecs.AddSystem(bs.updateFinish)

	bs.ecs.AddRenderer(layerStage, bs.drawStage)
	bs.ecs.AddRenderer(layerFighters, bs.drawFighters)
	bs.ecs.AddRenderer(layerHUD, bs.drawHUD)
}

func (bs *BattleScene) onEvent(ev components.Event) {
	switch ev.Kind {
	case cfg.EventHitLanded, cfg.EventFighterKilled:
		if ev.Slot >= 0 && ev.Slot < len(bs.flashes) {
			bs.flashes[ev.Slot] = cfg.HUD.HitFlash
		}
	case cfg.EventMatchFinished:
		bs.setup.Logger.Info("bout finished", zap.Stringer("winner", bs.battle.Winner()), zap.Int64("tick", ev.Tick))
	}
}

func (bs *BattleScene) updateInput(_ *ecs.ECS) {
	bs.feeder.Feed(bs.battle)
}

func (bs *BattleScene) updateBattle(_ *ecs.ECS) {
	for i := range bs.flashes {
		if bs.flashes[i] > 0 {
			bs.flashes[i]--
		}
	}
	bs.battle.Tick()
}

func (bs *BattleScene) updateFinish(_ *ecs.ECS) {
	if !bs.battle.Finished() {
		return
	}
	bs.finishedFor++
	if bs.finishedFor < cfg.HUD.ResultHold {
		return
	}

	winner := bs.battle.Winner()
	bs.battle.Close()
	if bs.setup.OnFinish != nil {
		bs.setup.OnFinish(bs.setup)
	}
	bs.sceneChanger.ChangeScene(NewResultScene(bs.sceneChanger, bs.setup, winner))
}
