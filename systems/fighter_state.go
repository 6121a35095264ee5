package systems

import (
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// CanTransition is the transition legality table. atLastFrame reports whether
// the current animation shows its final frame.
func CanTransition(current, target cfg.StateID, health int, dead, atLastFrame bool) bool {
	if target == cfg.Death {
		if health <= 0 {
			return true
		}
		if current != cfg.TakeHit {
			return false
		}
	}

	if dead && target != cfg.Death {
		return false
	}

	if target == cfg.Defend {
		switch current {
		case cfg.Attack1, cfg.Attack2, cfg.TakeHit, cfg.Death, cfg.Charging:
			return false
		}
	}

	switch current {
	case cfg.Death, cfg.TakeHit:
		if target == cfg.Death && current == cfg.TakeHit {
			return true
		}
		return atLastFrame
	case cfg.Attack1, cfg.Attack2:
		if !atLastFrame {
			return target == cfg.TakeHit || target == cfg.Death
		}
	}

	return true
}

// CanTransitionTo reports whether the fighter may enter target now.
func CanTransitionTo(e *donburi.Entry, target cfg.StateID) bool {
	return CanTransition(
		components.State.Get(e).CurrentState,
		target,
		components.Health.Get(e).Current,
		components.Fighter.Get(e).Dead,
		components.Animation.Get(e).AtLastFrame(),
	)
}

// ChangeState moves the fighter into target, running the exit hook of the
// old state and the enter hook of the new one. Same-state and illegal
// requests are dropped and reported as false.
func ChangeState(w donburi.World, e *donburi.Entry, target cfg.StateID) bool {
	state := components.State.Get(e)
	if state.CurrentState == target || !CanTransitionTo(e, target) {
		return false
	}

	from := state.CurrentState
	exitState(w, e, from)

	state.PreviousState = from
	state.CurrentState = target
	state.StateTimer = 0
	components.Animation.Get(e).SetAnimation(target)

	enterState(w, e, target)

	fighter := components.Fighter.Get(e)
	logger.Debug("state change", append(fighterFields(fighter.Slot, fighter.Character.Key),
		zap.Stringer("from", from),
		zap.Stringer("state", target),
	)...)
	return true
}

func enterState(w donburi.World, e *donburi.Entry, s cfg.StateID) {
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	anim := components.Animation.Get(e)

	switch s {
	case cfg.Idle, cfg.TakeHit, cfg.Charging:
		physics.SpeedX = 0
	case cfg.JumpStart:
		physics.SpeedY = cfg.Fighter.JumpVelocity
	case cfg.Attack1:
		physics.SpeedX = 0
		fighter.IsAttacking = true
		fighter.AttackType = cfg.AttackMelee
		fighter.MeleeHitApplied = false
		publishFighter(w, e, cfg.EventAttackCommitted, cfg.AttackMelee, 0)
	case cfg.Attack2:
		// The committing command sets the kind and arms the spawn request.
		physics.SpeedX = 0
		fighter.IsAttacking = true
	case cfg.Death:
		physics.SpeedX = 0
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.FreezeOnComplete = true
		}
		cancelCharge(w, e)
		publishFighter(w, e, cfg.EventFighterKilled, cfg.AttackNone, 0)
	case cfg.Defend:
		physics.SpeedX = 0
		fighter.IsDefending = true
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.SetFrame(0)
			anim.CurrentAnimation.Locked = true
		}
	}
}

func exitState(w donburi.World, e *donburi.Entry, s cfg.StateID) {
	fighter := components.Fighter.Get(e)

	switch s {
	case cfg.Attack1:
		fighter.ClearAttack()
	case cfg.Attack2:
		fighter.ClearAttack()
		if q := getSpawnQueue(w); q != nil {
			q.Drop(e)
		}
	case cfg.Defend:
		fighter.IsDefending = false
		if anim := components.Animation.Get(e); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Locked = false
		}
	}
}

// UpdateFighterStates runs the per-state update hooks and the airborne
// auto-transitions. It runs after physics.
func UpdateFighterStates(w donburi.World) {
	components.Fighter.Each(w, func(e *donburi.Entry) {
		state := components.State.Get(e)
		state.StateTimer++

		updateState(w, e, state.CurrentState)
		autoTransition(w, e)
	})
}

func updateState(w donburi.World, e *donburi.Entry, s cfg.StateID) {
	fighter := components.Fighter.Get(e)
	physics := components.Physics.Get(e)
	anim := components.Animation.Get(e)

	switch s {
	case cfg.JumpStart:
		if physics.SpeedY < 0 {
			ChangeState(w, e, cfg.JumpUp)
		} else {
			ChangeState(w, e, cfg.JumpDown)
		}
	case cfg.JumpUp:
		if physics.SpeedY >= 0 {
			ChangeState(w, e, cfg.JumpDown)
		}
	case cfg.JumpDown, cfg.Fall:
		if OnGround(w, e) {
			physics.SpeedY = 0
			ChangeState(w, e, cfg.Idle)
		}
	case cfg.Attack1, cfg.Attack2:
		if anim.AtLastFrame() {
			ChangeState(w, e, cfg.Idle)
		}
	case cfg.TakeHit:
		if anim.AtLastFrame() {
			if components.Health.Get(e).Current <= 0 {
				ChangeState(w, e, cfg.Death)
			} else {
				ChangeState(w, e, cfg.Idle)
			}
		}
	case cfg.Death:
		if anim.AtLastFrame() && !fighter.Dead {
			fighter.Dead = true
			logger.Info("fighter dead", fighterFields(fighter.Slot, fighter.Character.Key)...)
		}
	case cfg.Defend:
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.SetFrame(0)
		}
	}
}

// autoTransition keeps an airborne fighter in an airborne state when it left
// the ground without a jump command.
func autoTransition(w donburi.World, e *donburi.Entry) {
	if OnGround(w, e) {
		return
	}
	switch components.State.Get(e).CurrentState {
	case cfg.JumpStart, cfg.JumpUp, cfg.JumpDown, cfg.Fall,
		cfg.Attack1, cfg.Attack2, cfg.TakeHit, cfg.Death:
		return
	}
	if components.Physics.Get(e).SpeedY > 0 {
		ChangeState(w, e, cfg.Fall)
	} else {
		ChangeState(w, e, cfg.JumpUp)
	}
}
