package scenes

import (
	"testing"

	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changer struct {
	scene Scene
}

func (c *changer) ChangeScene(s Scene) {
	c.scene = s
}

func TestBattleScene_PlaysToResult(t *testing.T) {
	hold := cfg.HUD.ResultHold
	t.Cleanup(func() { cfg.HUD.ResultHold = hold })
	cfg.HUD.ResultHold = 2

	var finished []Setup
	sc := &changer{}
	bs := NewBattleScene(sc, Setup{
		PlayerOne:  "kaen",
		PlayerTwo:  "kenji",
		OneIsAI:    true,
		TwoIsAI:    true,
		Difficulty: cfg.DifficultyHard,
		Seed:       3,
		OnFinish:   func(s Setup) { finished = append(finished, s) },
	})
	sc.scene = bs

	limit := cfg.Match.CountdownSteps*cfg.Match.CountdownStepTicks + cfg.Match.Duration + 10
	for i := 0; i < limit && sc.scene == Scene(bs); i++ {
		bs.Update()
	}

	result, ok := sc.scene.(*ResultScene)
	require.True(t, ok, "bout should hand over to the result screen")
	assert.NotEqual(t, components.WinnerNone, result.winner)
	assert.Equal(t, bs.battle.Winner(), result.winner)
	require.Len(t, finished, 1)
	assert.Equal(t, "kenji", finished[0].PlayerTwo)
	assert.Empty(t, bs.feeder.Schemes, "bots need no key layout")
}

func TestBattleScene_HitFlash(t *testing.T) {
	bs := NewBattleScene(&changer{}, Setup{PlayerOne: "kaen", PlayerTwo: "kenji", TwoIsAI: true})
	bs.once.Do(bs.configure)
	require.NoError(t, bs.err)
	assert.Contains(t, bs.feeder.Schemes, 0)
	assert.NotContains(t, bs.feeder.Schemes, 1)

	bs.onEvent(components.Event{Kind: cfg.EventHitLanded, Slot: 1})
	assert.Equal(t, cfg.HUD.HitFlash, bs.flashes[1])
	assert.Zero(t, bs.flashes[0])

	bs.onEvent(components.Event{Kind: cfg.EventMatchStarted, Slot: -1})
	assert.Equal(t, cfg.HUD.HitFlash, bs.flashes[1])
}

func TestBattleScene_BadSetup(t *testing.T) {
	sc := &changer{}
	bs := NewBattleScene(sc, Setup{PlayerOne: "kaen", PlayerTwo: "ghost"})
	sc.scene = bs

	assert.NotPanics(t, bs.Update)
	assert.ErrorIs(t, bs.err, cfg.ErrUnknownCharacter)
	assert.Nil(t, bs.ecs)
	assert.Same(t, bs, sc.scene)
}
