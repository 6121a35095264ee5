package systems

import (
	"testing"

	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func newWaitingWorld() donburi.World {
	w := donburi.NewWorld()
	factory.CreateStage(w, factory.DefaultStage())
	factory.CreateMatch(w)
	return w
}

func TestCountdown_CountsDownThenPlays(t *testing.T) {
	w := newWaitingWorld()
	spawnPair(t, w, "kaen", "kenji", 100, 874)
	match := getMatch(w)
	require.Equal(t, cfg.MatchStateWaiting, match.State)

	StartMatch(w)
	assert.Equal(t, cfg.MatchStateCountdown, match.State)
	assert.Equal(t, cfg.Match.CountdownSteps-1, match.CountdownValue)

	seen := map[int]bool{}
	total := cfg.Match.CountdownSteps * cfg.Match.CountdownStepTicks
	for i := 0; i < total-1; i++ {
		tick(w, 1)
		seen[match.CountdownValue] = true
	}
	assert.Equal(t, cfg.MatchStateCountdown, match.State)
	assert.Len(t, seen, cfg.Match.CountdownSteps)
	assert.Equal(t, 0, match.CountdownValue)

	tick(w, 1)
	assert.Equal(t, cfg.MatchStatePlaying, match.State)
	assert.Equal(t, -1, match.CountdownValue)
	assert.Equal(t, match.Duration, match.Timer)
	assert.True(t, IsMatchPlaying(w))
}

func TestStartMatch_WithoutCountdown(t *testing.T) {
	steps := cfg.Match.CountdownSteps
	t.Cleanup(func() { cfg.Match.CountdownSteps = steps })
	cfg.Match.CountdownSteps = 0

	w := newWaitingWorld()
	StartMatch(w)
	assert.Equal(t, cfg.MatchStatePlaying, getMatch(w).State)
	assert.Equal(t, []cfg.EventKind{cfg.EventMatchStarted}, eventKinds(DrainEvents(w)))
}

func TestStartMatch_OnlyFromWaiting(t *testing.T) {
	w := newPlayingWorld(nil)
	StartMatch(w)
	assert.Equal(t, cfg.MatchStatePlaying, getMatch(w).State)
}

func TestMatch_KillFinishesNextTick(t *testing.T) {
	w := newPlayingWorld(nil)
	_, b := spawnPair(t, w, "kaen", "kenji", 100, 874)

	Kill(w, b)
	assert.False(t, IsMatchFinished(w))

	tick(w, 1)
	match := getMatch(w)
	assert.True(t, IsMatchFinished(w))
	assert.Equal(t, components.WinnerPlayer1, match.Winner)

	// The loser still plays out the death animation.
	tick(w, 40)
	assert.True(t, components.Fighter.Get(b).Dead)
}

func TestMatch_TimerExpiry(t *testing.T) {
	w := newPlayingWorld(nil)
	a, _ := spawnPair(t, w, "kaen", "kenji", 100, 874)
	match := getMatch(w)
	match.Timer = 3

	require.True(t, TakeHit(w, a, 30))
	tick(w, 2)
	assert.Equal(t, cfg.MatchStatePlaying, match.State)

	tick(w, 1)
	assert.Equal(t, cfg.MatchStateFinished, match.State)
	assert.Equal(t, components.WinnerPlayer2, match.Winner)
	assert.Zero(t, match.Timer)
}

func TestWinner(t *testing.T) {
	tests := []struct {
		name   string
		h1, h2 int
		want   components.Winner
	}{
		{"player one down", 0, 50, components.WinnerPlayer2},
		{"player two down", 50, 0, components.WinnerPlayer1},
		{"both down goes to player two", 0, 0, components.WinnerPlayer2},
		{"even", 120, 120, components.WinnerTie},
		{"player one healthier", 150, 100, components.WinnerPlayer1},
		{"player two healthier", 100, 150, components.WinnerPlayer2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newPlayingWorld(nil)
			a, b := spawnPair(t, w, "kaen", "kenji", 100, 874)
			components.Health.Get(a).Current = tt.h1
			components.Health.Get(b).Current = tt.h2
			assert.Equal(t, tt.want, Winner(w))
		})
	}
}

func TestWinner_NeedsTwoFighters(t *testing.T) {
	assert.Equal(t, components.WinnerNone, Winner(newWaitingWorld()))
}

func TestSecondsRemaining(t *testing.T) {
	m := components.MatchData{State: cfg.MatchStatePlaying, Duration: 3600, Timer: 3599}
	assert.Equal(t, 60, m.SecondsRemaining())
	m.Timer = 3540
	assert.Equal(t, 59, m.SecondsRemaining())
	m.Timer = 1
	assert.Equal(t, 1, m.SecondsRemaining())

	m.State = cfg.MatchStateCountdown
	assert.Equal(t, 60, m.SecondsRemaining())
}

func TestWithPlaying(t *testing.T) {
	w := newWaitingWorld()
	calls := 0
	system := WithPlaying(func(donburi.World) { calls++ })

	system(w)
	assert.Zero(t, calls)

	getMatch(w).State = cfg.MatchStatePlaying
	system(w)
	assert.Equal(t, 1, calls)

	// Worlds without a match always run.
	WithPlaying(func(donburi.World) { calls++ })(donburi.NewWorld())
	assert.Equal(t, 2, calls)
}
