package systems

import (
	"math"
	"strings"

	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/gamemath"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdateBots drives AI fighters while the match is playing. Each bot decides
// every DecisionInterval ticks and steers every tick, issuing the same
// commands a human would.
func UpdateBots(w donburi.World) {
	if !IsMatchPlaying(w) {
		return
	}
	components.Bot.Each(w, func(e *donburi.Entry) {
		updateBot(w, e, components.Bot.Get(e))
	})
}

func updateBot(w donburi.World, e *donburi.Entry, bot *components.BotData) {
	fighter := components.Fighter.Get(e)
	if fighter.Dead || !alive(w, fighter.Opponent) {
		return
	}

	bot.DecisionTimer++
	if bot.ActionCooldown > 0 {
		bot.ActionCooldown--
	}
	updateBotFacing(e, bot)

	if bot.DecisionTimer >= bot.Settings.DecisionInterval {
		bot.DecisionTimer = 0
		bot.LastDecision = decide(w, e, bot)
		if bot.LastDecision != "" {
			logger.Debug("bot decision", append(fighterFields(fighter.Slot, fighter.Character.Key),
				zap.String("decision", bot.LastDecision),
				zap.Int("cooldown", bot.ActionCooldown),
			)...)
		}
	}

	steerBot(w, e, bot)
}

// distanceToOpponent is the signed horizontal gap, positive when the
// opponent is to the right.
func distanceToOpponent(e *donburi.Entry) float64 {
	opponent := components.Fighter.Get(e).Opponent
	return components.Object.Get(opponent).X - components.Object.Get(e).X
}

func updateBotFacing(e *donburi.Entry, bot *components.BotData) {
	fighter := components.Fighter.Get(e)
	speedX := components.Physics.Get(e).SpeedX
	dist := distanceToOpponent(e)

	switch {
	case speedX < 0:
		bot.FacingLeft = true
	case speedX > 0:
		bot.FacingLeft = false
	case dist < 0:
		bot.FacingLeft = true
	case dist > 0:
		bot.FacingLeft = false
	}

	fighter.FacingLeft = bot.FacingLeft
	if !fighter.IsAttacking {
		fighter.Flipped = bot.FacingLeft
	}
}

// cooldown scales a base cooldown by the difficulty multiplier.
func cooldown(bot *components.BotData, base int) int {
	return int(math.Floor(float64(base) * bot.Settings.CooldownMultiplier))
}

func roll(bot *components.BotData, chance float64) bool {
	return bot.Rand.Float64() < chance
}

// decide evaluates the decision priorities: charge, dodge, chakra, ranged,
// melee. The first action taken ends the list; the jump roll is separate.
// It returns the actions taken joined with "+".
func decide(w donburi.World, e *donburi.Entry, bot *components.BotData) string {
	var taken []string
	if action := decideAction(w, e, bot); action != "" {
		taken = append(taken, action)
	}

	if OnGround(w, e) && bot.ActionCooldown == 0 && roll(bot, bot.Settings.JumpChance) {
		Jump(w, e)
		bot.ActionCooldown = cooldown(bot, cfg.AI.JumpCooldown)
		taken = append(taken, "jump")
	}
	return strings.Join(taken, "+")
}

func decideAction(w donburi.World, e *donburi.Entry, bot *components.BotData) string {
	fighter := components.Fighter.Get(e)
	chakra := components.Chakra.Get(e)
	opponent := components.Fighter.Get(fighter.Opponent)
	dist := math.Abs(distanceToOpponent(e))
	onGround := OnGround(w, e)

	if !chakra.Full() && !chakra.IsCharging && roll(bot, bot.Settings.ChakraChargeChance) {
		if StartCharge(w, e) {
			return "charge"
		}
	}

	if opponent.IsAttacking && dist < cfg.AI.DodgeRange && roll(bot, bot.Settings.DodgeChance) && onGround {
		Jump(w, e)
		bot.ActionCooldown = cooldown(bot, cfg.AI.DodgeCooldown)
		return "dodge"
	}

	ready := !fighter.IsAttacking && bot.ActionCooldown == 0 && onGround

	if chakra.Full() && dist < cfg.AI.AttackRange && ready && roll(bot, bot.Settings.ChakraAttackChance) {
		UnleashChakra(w, e)
		bot.ActionCooldown = cooldown(bot, cfg.AI.ChakraCooldown)
		return "chakra"
	}

	if dist > cfg.AI.RangedMinRange && dist < cfg.AI.RangedMaxRange && ready && roll(bot, bot.Settings.RangedAttackChance) {
		RangedAttack(w, e)
		bot.ActionCooldown = cooldown(bot, cfg.AI.RangedCooldown)
		return "ranged"
	}

	if dist < cfg.AI.AttackRange && ready && fighter.Character.HasMelee() && roll(bot, bot.Settings.MeleeAttackChance) {
		MeleeAttack(w, e)
		bot.ActionCooldown = cooldown(bot, cfg.AI.MeleeCooldown)
		return "melee"
	}

	return ""
}

// steerBot is the continuous movement rule: close in beyond the optimal
// range, back off from an attacking opponent inside the retreat range,
// otherwise hold position.
func steerBot(w donburi.World, e *donburi.Entry, bot *components.BotData) {
	fighter := components.Fighter.Get(e)
	if fighter.IsAttacking {
		return
	}
	if bot.ActionCooldown > 0 {
		Stop(w, e)
		return
	}

	signed := distanceToOpponent(e)
	dist := math.Abs(signed)
	opponent := components.Fighter.Get(fighter.Opponent)

	switch {
	case dist > bot.Settings.OptimalRange:
		Move(w, e, gamemath.Sign(signed), bot.Settings.MovementSpeed)
	case opponent.IsAttacking && dist < bot.Settings.RetreatRange:
		away := -gamemath.Sign(signed)
		if away == 0 {
			away = cfg.DirectionLeft
		}
		Move(w, e, away, bot.Settings.MovementSpeed)
	default:
		Stop(w, e)
	}
}
