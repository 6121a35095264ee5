package battle

import (
	"testing"

	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/leveldata"
	"github.com/automoto/shinobi-duel/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newPlaying builds a scripted bout and runs the countdown out.
func newPlaying(t *testing.T, opts ...Option) *Battle {
	t.Helper()
	b, err := New("kaen", "kenji", append([]Option{WithScript(0), WithScript(1)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(b.Close)

	b.Start()
	for i := 0; i < cfg.Match.CountdownSteps*cfg.Match.CountdownStepTicks; i++ {
		b.Tick()
	}
	require.Equal(t, cfg.MatchStatePlaying, b.Snapshot().MatchState)
	return b
}

func TestNew_RejectsUnknownCharacter(t *testing.T) {
	_, err := New("kaen", "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, cfg.ErrUnknownCharacter)
	assert.Contains(t, err.Error(), "player 2")
}

func TestNew_RequiresSpawnPoints(t *testing.T) {
	stage := &leveldata.StageData{
		Name:        "half",
		Width:       800,
		Height:      480,
		FloorY:      400,
		SpawnPoints: []leveldata.SpawnPoint{{X: 100, Y: 250, Slot: 0}},
	}
	_, err := New("kaen", "kenji", WithStage(stage))
	assert.EqualError(t, err, `stage "half" has no spawn point for slot 1`)
}

func TestNew_ControlModes(t *testing.T) {
	b, err := New("kaen", "kenji", WithBot(1, cfg.DifficultyHard, 9), WithBot(5, cfg.DifficultyEasy, 1))
	require.NoError(t, err)
	defer b.Close()

	assert.True(t, b.Fighter(0).HasComponent(components.Input))
	assert.False(t, b.Fighter(0).HasComponent(components.Bot))
	assert.True(t, b.Fighter(1).HasComponent(components.Bot))
	assert.Equal(t, cfg.DifficultyHard, components.Bot.Get(b.Fighter(1)).Difficulty)
	assert.Nil(t, b.Fighter(2))

	s, err := New("kaen", "kenji", WithScript(0))
	require.NoError(t, err)
	defer s.Close()
	assert.False(t, s.Fighter(0).HasComponent(components.Input))
	assert.False(t, s.Fighter(0).HasComponent(components.Bot))
}

func TestBattle_UsesStageSpawns(t *testing.T) {
	stage := &leveldata.StageData{
		Name:   "pit",
		Width:  800,
		Height: 480,
		FloorY: 400,
		SpawnPoints: []leveldata.SpawnPoint{
			{X: 120, Y: 250, Slot: 0},
			{X: 600, Y: 250, Slot: 1},
		},
	}
	b, err := New("kaen", "kenji", WithStage(stage))
	require.NoError(t, err)
	defer b.Close()

	snap := b.Snapshot()
	assert.Equal(t, 120.0, snap.Fighters[0].Body.X)
	assert.Equal(t, 600.0, snap.Fighters[1].Body.X)
}

func TestBattle_CountdownBlocksCommands(t *testing.T) {
	b, err := New("kaen", "kenji", WithScript(0), WithScript(1))
	require.NoError(t, err)
	defer b.Close()

	assert.False(t, b.Command(0, systems.CommandMoveRight), "waiting")
	b.Start()
	b.Tick()
	assert.Equal(t, cfg.MatchStateCountdown, b.Snapshot().MatchState)
	assert.False(t, b.Command(0, systems.CommandMoveRight), "counting down")

	for i := 1; i < cfg.Match.CountdownSteps*cfg.Match.CountdownStepTicks; i++ {
		b.Tick()
	}
	assert.Equal(t, cfg.MatchStatePlaying, b.Snapshot().MatchState)
	assert.True(t, b.Command(0, systems.CommandMoveRight))
}

func TestBattle_SetInput(t *testing.T) {
	b, err := New("kaen", "kenji")
	require.NoError(t, err)
	defer b.Close()

	b.Start()
	for i := 0; i < cfg.Match.CountdownSteps*cfg.Match.CountdownStepTicks; i++ {
		b.Tick()
	}

	x := b.Snapshot().Fighters[0].Body.X
	b.SetInput(0, cfg.ActionMoveRight, true)
	b.SetInput(0, cfg.ActionCount, true)
	b.Tick()
	b.Tick()

	snap := b.Snapshot()
	assert.Equal(t, cfg.Run, snap.Fighters[0].State)
	assert.Equal(t, x+2*cfg.Fighter.RunSpeed, snap.Fighters[0].Body.X)
}

func TestBattle_EventsReachSubscribers(t *testing.T) {
	b := newPlaying(t)
	var kinds []cfg.EventKind
	b.Subscribe(func(ev components.Event) { kinds = append(kinds, ev.Kind) })
	b.Subscribe(nil)

	require.True(t, b.Command(0, systems.CommandMoveRight))
	for i := 0; i < 180; i++ {
		b.Tick()
	}
	require.True(t, b.Command(0, systems.CommandStop))
	require.True(t, b.Command(0, systems.CommandMelee))
	for i := 0; i < 30; i++ {
		b.Tick()
	}

	assert.Equal(t, []cfg.EventKind{cfg.EventAttackCommitted, cfg.EventHitLanded}, kinds)
	assert.Equal(t, 190, b.Snapshot().Fighters[1].Health)
}

func TestBattle_WinnerAfterKill(t *testing.T) {
	b := newPlaying(t)
	assert.Equal(t, components.WinnerNone, b.Winner())

	systems.Kill(b.World(), b.Fighter(1))
	assert.Equal(t, components.WinnerPlayer1, b.Winner(), "decided before the match notices")

	b.Tick()
	assert.True(t, b.Finished())
	assert.Equal(t, components.WinnerPlayer1, b.Winner())
	assert.Equal(t, components.WinnerPlayer1, b.Snapshot().Winner)
}

func TestBattle_CloseCancelsCharges(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	b := newPlaying(t, WithLogger(zap.New(core)))

	require.True(t, b.Command(0, systems.CommandStartCharge))
	assert.True(t, b.Snapshot().Fighters[0].IsCharging)

	b.Close()
	b.Close()
	snap := b.Snapshot()
	assert.False(t, snap.Fighters[0].IsCharging)

	for i := 0; i < 60; i++ {
		b.Tick()
	}
	assert.Equal(t, snap.Tick, b.Snapshot().Tick, "closed battles do not tick")
	assert.Zero(t, b.Snapshot().Fighters[0].Chakra)
	assert.False(t, b.Command(0, systems.CommandJump))

	closed := logs.FilterMessage("battle closed").All()
	require.Len(t, closed, 1)
	assert.Equal(t, int64(1), closed[0].ContextMap()["cancelled_events"])
	assert.NotEmpty(t, closed[0].ContextMap()["match_id"])
}
