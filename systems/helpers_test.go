package systems

import (
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/leveldata"
	"github.com/automoto/shinobi-duel/systems/factory"
	"github.com/automoto/shinobi-duel/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var tickOrder = TickSystems()

// newPlayingWorld builds a world on stage with a match already playing.
func newPlayingWorld(stage *leveldata.StageData) donburi.World {
	if stage == nil {
		stage = factory.DefaultStage()
	}
	w := donburi.NewWorld()
	factory.CreateStage(w, stage)
	match := factory.CreateMatch(w)
	components.Match.Get(match).State = cfg.MatchStatePlaying
	return w
}

// spawnPair puts two grounded fighters at x1 and x2 and pairs them.
func spawnPair(t require.TestingT, w donburi.World, c1, c2 string, x1, x2 float64) (a, b *donburi.Entry) {
	ca, err := cfg.Character(c1)
	require.NoError(t, err)
	cb, err := cfg.Character(c2)
	require.NoError(t, err)

	a = factory.CreateFighter(w, 0, ca, x1, cfg.GroundY())
	b = factory.CreateFighter(w, 1, cb, x2, cfg.GroundY())
	factory.Pair(a, b)
	return a, b
}

func tick(w donburi.World, n int) {
	for i := 0; i < n; i++ {
		for _, system := range tickOrder {
			system(w)
		}
		DrainEvents(w)
	}
}

func projectileCount(w donburi.World) int {
	return donburi.NewQuery(filter.Contains(tags.Projectile)).Count(w)
}

func health(e *donburi.Entry) int {
	return components.Health.Get(e).Current
}

func stateOf(e *donburi.Entry) cfg.StateID {
	return components.State.Get(e).CurrentState
}

// forceState puts the fighter into s without running hooks.
func forceState(e *donburi.Entry, s cfg.StateID) {
	components.State.Get(e).CurrentState = s
	components.Animation.Get(e).SetAnimation(s)
}
