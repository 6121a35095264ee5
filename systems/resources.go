package systems

import (
	"math"

	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// TakeHit applies damage to the fighter. Defending cuts the damage to a
// fifth, rounded down. A lethal hit goes straight to Death through Kill.
// It reports whether the hit was applied.
func TakeHit(w donburi.World, e *donburi.Entry, damage int) bool {
	fighter := components.Fighter.Get(e)
	if fighter.Dead || components.State.Get(e).CurrentState == cfg.Death {
		return false
	}
	if damage < 0 {
		damage = 0
	}

	defending := isDefending(e)
	if defending {
		damage = int(math.Floor(float64(damage) * cfg.Fighter.DefendDamageFactor))
	}

	health := components.Health.Get(e)
	health.Current -= damage
	if health.Current < 0 {
		health.Current = 0
	}

	publishFighter(w, e, cfg.EventHitLanded, cfg.AttackNone, damage)
	logger.Debug("hit", append(fighterFields(fighter.Slot, fighter.Character.Key),
		zap.Int("damage", damage),
		zap.Int("health", health.Current),
		zap.Bool("defending", defending),
	)...)

	if health.Current <= 0 {
		Kill(w, e)
		return true
	}

	if !defending {
		ChangeState(w, e, cfg.TakeHit)
	}
	return true
}

// Kill is the only lethal path: it zeroes health, cancels any pending
// chakra charge and enters Death from whatever state the fighter is in.
func Kill(w donburi.World, e *donburi.Entry) {
	components.Health.Get(e).Current = 0
	cancelCharge(w, e)
	ChangeState(w, e, cfg.Death)
}

func isDefending(e *donburi.Entry) bool {
	return components.Fighter.Get(e).IsDefending &&
		components.State.Get(e).CurrentState == cfg.Defend
}

// StartChargingChakra begins one charge. At most one charge is in flight per
// fighter; it completes ChargeTicks later inside the scheduler system.
func StartChargingChakra(w donburi.World, e *donburi.Entry) bool {
	chakra := components.Chakra.Get(e)
	if chakra.IsCharging || chakra.Full() || components.Fighter.Get(e).Dead {
		return false
	}
	scheduler := getScheduler(w)
	if scheduler == nil {
		return false
	}
	if !ChangeState(w, e, cfg.Charging) {
		return false
	}

	chakra.IsCharging = true
	chakra.ChargeToken = scheduler.Schedule(e, components.ScheduleChakraCharge, cfg.Fighter.ChargeTicks)
	return true
}

// completeCharge credits a finished charge. Stale tokens are ignored.
func completeCharge(w donburi.World, ev components.ScheduledEvent) {
	e := ev.Target
	if !alive(w, e) {
		return
	}
	chakra := components.Chakra.Get(e)
	if chakra.ChargeToken != ev.Token {
		return
	}

	chakra.ChargeToken = 0
	chakra.IsCharging = false
	chakra.Charges = min(chakra.Charges+1, chakra.Max)
	publishFighter(w, e, cfg.EventChakraChargeTick, cfg.AttackNone, 0)

	if components.State.Get(e).CurrentState == cfg.Charging {
		ChangeState(w, e, cfg.Idle)
	}
}

// cancelCharge drops the fighter's pending charge event, if any.
func cancelCharge(w donburi.World, e *donburi.Entry) {
	chakra := components.Chakra.Get(e)
	if chakra.ChargeToken != 0 {
		if scheduler := getScheduler(w); scheduler != nil {
			scheduler.Cancel(chakra.ChargeToken)
		}
	}
	chakra.ChargeToken = 0
	chakra.IsCharging = false
}

// ChakraAttack spends a full chakra bar on a chakra projectile. Spending and
// arming happen together or not at all.
func ChakraAttack(w donburi.World, e *donburi.Entry) bool {
	chakra := components.Chakra.Get(e)
	if !chakra.Full() {
		return false
	}
	if !commitAttack2(w, e, cfg.AttackChakra) {
		return false
	}
	chakra.Charges = 0
	return true
}

// commitAttack2 enters Attack2 and arms the spawn request for kind.
func commitAttack2(w donburi.World, e *donburi.Entry, kind cfg.AttackKind) bool {
	queue := getSpawnQueue(w)
	if queue == nil || !ChangeState(w, e, cfg.Attack2) {
		return false
	}
	components.Fighter.Get(e).AttackType = kind
	queue.Arm(e, kind)
	publishFighter(w, e, cfg.EventAttackCommitted, kind, 0)
	return true
}
