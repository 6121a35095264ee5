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

type botTrace struct {
	Decisions []string
	XA, XB    []float64
	HealthA   []int
	HealthB   []int
}

func runBots(t *testing.T, seedA, seedB int64, ticks int) botTrace {
	t.Helper()
	w := newPlayingWorld(nil)
	a, b := spawnPair(t, w, "kaen", "kenji", cfg.Stage.SpawnX[0], cfg.Stage.SpawnX[1])
	factory.AttachBot(a, cfg.DifficultyHard, seedA)
	factory.AttachBot(b, cfg.DifficultyMedium, seedB)

	var trace botTrace
	for i := 0; i < ticks; i++ {
		tick(w, 1)
		trace.Decisions = append(trace.Decisions,
			components.Bot.Get(a).LastDecision+"|"+components.Bot.Get(b).LastDecision)
		trace.XA = append(trace.XA, components.Object.Get(a).X)
		trace.XB = append(trace.XB, components.Object.Get(b).X)
		trace.HealthA = append(trace.HealthA, health(a))
		trace.HealthB = append(trace.HealthB, health(b))
	}
	return trace
}

func TestBots_DeterministicForSeed(t *testing.T) {
	first := runBots(t, 7, 8, 600)
	second := runBots(t, 7, 8, 600)
	assert.Equal(t, first, second)

	acted := false
	for _, d := range first.Decisions {
		if d != "|" {
			acted = true
			break
		}
	}
	assert.True(t, acted, "bots never acted")
}

func TestBot_ClosesDistance(t *testing.T) {
	w := newPlayingWorld(nil)
	a, _ := spawnPair(t, w, "kaen", "kenji", 100, 874)
	factory.AttachBot(a, cfg.DifficultyEasy, 1)
	speed := components.Bot.Get(a).Settings.MovementSpeed

	// Easy bots decide every 90 ticks; steering runs every tick, after physics.
	tick(w, 10)
	assert.Equal(t, cfg.Run, stateOf(a))
	assert.InDelta(t, 100+9*speed, components.Object.Get(a).X, 1e-9)
	assert.False(t, components.Fighter.Get(a).FacingLeft)
}

func TestBot_RetreatsFromAttacker(t *testing.T) {
	w := newPlayingWorld(nil)
	a, b := spawnPair(t, w, "kaen", "kenji", 300, 380)
	factory.AttachBot(a, cfg.DifficultyEasy, 1)
	require.Less(t, 80.0, components.Bot.Get(a).Settings.RetreatRange)

	require.True(t, RangedAttack(w, b))
	tick(w, 1)
	assert.Less(t, components.Physics.Get(a).SpeedX, 0.0, "backs away to the left")

	tick(w, 1)
	assert.Less(t, components.Object.Get(a).X, 300.0)
}

func TestBot_HoldsDuringCountdown(t *testing.T) {
	w := newPlayingWorld(nil)
	a, _ := spawnPair(t, w, "kaen", "kenji", 100, 874)
	factory.AttachBot(a, cfg.DifficultyHard, 3)
	match := getMatch(w)
	match.State = cfg.MatchStateCountdown
	match.Timer = 1000

	tick(w, 100)
	assert.Equal(t, 100.0, components.Object.Get(a).X)
	assert.Equal(t, cfg.Idle, stateOf(a))
	assert.Empty(t, components.Bot.Get(a).LastDecision)
}

func TestBot_CooldownScalesWithDifficulty(t *testing.T) {
	easy := &components.BotData{}
	easy.SetDifficulty(cfg.DifficultyEasy)
	hard := &components.BotData{}
	hard.SetDifficulty(cfg.DifficultyHard)

	assert.Equal(t, 27, cooldown(easy, cfg.AI.RangedCooldown))
	assert.Equal(t, 7, cooldown(hard, cfg.AI.RangedCooldown))
	assert.Equal(t, 15, cooldown(hard, cfg.AI.ChakraCooldown))
}

// decisionDuel puts a bot-driven character at 100 and an idle opponent dx to
// its right. Every roll succeeds unless a row turns its chance off.
func decisionDuel(t *testing.T, character string, dx float64) (donburi.World, *donburi.Entry, *donburi.Entry, *components.BotData) {
	t.Helper()
	w := newPlayingWorld(nil)
	a, b := spawnPair(t, w, character, "kenji", 100, 100+dx)
	factory.AttachBot(a, cfg.DifficultyHard, 1)
	bot := components.Bot.Get(a)
	bot.Settings.ChakraChargeChance = 1
	bot.Settings.DodgeChance = 1
	bot.Settings.ChakraAttackChance = 1
	bot.Settings.RangedAttackChance = 1
	bot.Settings.MeleeAttackChance = 1
	bot.Settings.JumpChance = 0
	return w, a, b, bot
}

func TestDecideAction_Priority(t *testing.T) {
	tests := []struct {
		name            string
		character       string
		dx              float64
		charges         int
		noCharge        bool
		opponentAttacks bool
		want            string
		wantState       cfg.StateID
	}{
		{"charge first below full chakra", "kaen", 60, 0, false, true, "charge", cfg.Charging},
		{"dodge beats chakra attack", "kaen", 100, 3, false, true, "dodge", cfg.JumpStart},
		{"no dodge outside dodge range", "kaen", 150, 3, false, true, "chakra", cfg.Attack2},
		{"chakra attack beats ranged and melee", "kaen", 150, 3, false, false, "chakra", cfg.Attack2},
		{"ranged inside band beats melee", "kaen", 150, 0, true, false, "ranged", cfg.Attack2},
		{"ranged band excludes its lower edge", "kaen", 100, 0, true, false, "melee", cfg.Attack1},
		{"ranged band excludes its upper edge", "kaen", 300, 0, true, false, "", cfg.Idle},
		{"melee up close", "kaen", 60, 0, true, false, "melee", cfg.Attack1},
		{"no melee without a melee attack", "isabella", 60, 0, true, false, "", cfg.Idle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, a, b, bot := decisionDuel(t, tt.character, tt.dx)
			components.Chakra.Get(a).Charges = tt.charges
			if tt.noCharge {
				bot.Settings.ChakraChargeChance = 0
			}
			components.Fighter.Get(b).IsAttacking = tt.opponentAttacks

			assert.Equal(t, tt.want, decideAction(w, a, bot))
			assert.Equal(t, tt.wantState, stateOf(a))
		})
	}
}

func TestDecideAction_ChakraSpentOnlyByChakraAttack(t *testing.T) {
	w, a, b, bot := decisionDuel(t, "kaen", 100)
	components.Chakra.Get(a).Charges = 3
	components.Fighter.Get(b).IsAttacking = true

	require.Equal(t, "dodge", decideAction(w, a, bot))
	assert.Equal(t, 3, components.Chakra.Get(a).Charges)
	assert.Equal(t, int(15*bot.Settings.CooldownMultiplier), bot.ActionCooldown)
}

func TestDecide_JumpRollAfterAction(t *testing.T) {
	t.Run("same tick as an action", func(t *testing.T) {
		w, a, _, bot := decisionDuel(t, "kaen", 60)
		bot.Settings.ChakraChargeChance = 0
		bot.Settings.CooldownMultiplier = 0
		bot.Settings.JumpChance = 1

		assert.Equal(t, "melee+jump", decide(w, a, bot))
		assert.Equal(t, cfg.Attack1, stateOf(a), "the swing is not cancelled by the jump")
	})

	t.Run("on its own", func(t *testing.T) {
		w, a, _, bot := decisionDuel(t, "kaen", 300)
		bot.Settings.ChakraChargeChance = 0
		bot.Settings.JumpChance = 1

		assert.Equal(t, "jump", decide(w, a, bot))
		assert.Equal(t, cfg.JumpStart, stateOf(a))
		assert.Equal(t, int(20*bot.Settings.CooldownMultiplier), bot.ActionCooldown)
	})

	t.Run("blocked by the action cooldown", func(t *testing.T) {
		w, a, _, bot := decisionDuel(t, "kaen", 150)
		bot.Settings.ChakraChargeChance = 0
		bot.Settings.JumpChance = 1

		assert.Equal(t, "ranged", decide(w, a, bot))
	})
}
