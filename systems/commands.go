package systems

import (
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
)

// Command is one entry of the vocabulary shared by the input layer and the AI.
type Command int

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandStop
	CommandJump
	CommandMelee
	CommandRanged
	CommandStartCharge
	CommandChakra
	CommandDefend
	CommandReleaseDefend
)

func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "moveLeft"
	case CommandMoveRight:
		return "moveRight"
	case CommandStop:
		return "stop"
	case CommandJump:
		return "jump"
	case CommandMelee:
		return "melee"
	case CommandRanged:
		return "ranged"
	case CommandStartCharge:
		return "startCharge"
	case CommandChakra:
		return "chakra"
	case CommandDefend:
		return "defend"
	case CommandReleaseDefend:
		return "releaseDefend"
	}
	return "none"
}

// Apply issues cmd for the fighter and reports whether it took effect.
// Rejected commands are dropped silently.
func Apply(w donburi.World, e *donburi.Entry, cmd Command) bool {
	switch cmd {
	case CommandMoveLeft:
		return MoveLeft(w, e)
	case CommandMoveRight:
		return MoveRight(w, e)
	case CommandStop:
		return Stop(w, e)
	case CommandJump:
		return Jump(w, e)
	case CommandMelee:
		return MeleeAttack(w, e)
	case CommandRanged:
		return RangedAttack(w, e)
	case CommandStartCharge:
		return StartCharge(w, e)
	case CommandChakra:
		return UnleashChakra(w, e)
	case CommandDefend:
		return Defend(w, e)
	case CommandReleaseDefend:
		return ReleaseDefend(w, e)
	}
	return false
}

// busy reports whether the fighter ignores movement and attack commands.
func busy(e *donburi.Entry) bool {
	if components.Fighter.Get(e).Dead {
		return true
	}
	switch components.State.Get(e).CurrentState {
	case cfg.Attack1, cfg.Attack2, cfg.TakeHit, cfg.Death, cfg.Charging:
		return true
	}
	return false
}

// grounded reports whether the fighter stands in Idle or Run.
func grounded(e *donburi.Entry) bool {
	s := components.State.Get(e).CurrentState
	return s == cfg.Idle || s == cfg.Run
}

func MoveLeft(w donburi.World, e *donburi.Entry) bool {
	return Move(w, e, cfg.DirectionLeft, components.Physics.Get(e).RunSpeed)
}

func MoveRight(w donburi.World, e *donburi.Entry) bool {
	return Move(w, e, cfg.DirectionRight, components.Physics.Get(e).RunSpeed)
}

// Move runs the fighter in direction at speed. Fighters only steer on the
// ground; in the air horizontal speed is dropped.
func Move(w donburi.World, e *donburi.Entry, direction, speed float64) bool {
	if busy(e) || components.State.Get(e).CurrentState == cfg.Defend {
		return false
	}
	physics := components.Physics.Get(e)
	if !OnGround(w, e) {
		physics.SpeedX = 0
		return false
	}
	physics.SpeedX = direction * speed
	if components.State.Get(e).CurrentState == cfg.Idle {
		ChangeState(w, e, cfg.Run)
	}
	return true
}

// Stop halts horizontal movement, settling a running fighter into Idle.
func Stop(w donburi.World, e *donburi.Entry) bool {
	if busy(e) {
		return false
	}
	components.Physics.Get(e).SpeedX = 0
	if OnGround(w, e) && components.State.Get(e).CurrentState == cfg.Run {
		ChangeState(w, e, cfg.Idle)
	}
	return true
}

func Jump(w donburi.World, e *donburi.Entry) bool {
	if busy(e) || !grounded(e) || !OnGround(w, e) {
		return false
	}
	return ChangeState(w, e, cfg.JumpStart)
}

// MeleeAttack commits Attack1 for characters that have a melee attack.
func MeleeAttack(w donburi.World, e *donburi.Entry) bool {
	if busy(e) || !grounded(e) || !components.Fighter.Get(e).Character.HasMelee() {
		return false
	}
	return ChangeState(w, e, cfg.Attack1)
}

// RangedAttack commits Attack2 with a slash armed for the spawn frame.
func RangedAttack(w donburi.World, e *donburi.Entry) bool {
	if busy(e) || !grounded(e) {
		return false
	}
	return commitAttack2(w, e, cfg.AttackRanged)
}

func StartCharge(w donburi.World, e *donburi.Entry) bool {
	if busy(e) {
		return false
	}
	return StartChargingChakra(w, e)
}

// UnleashChakra is the command form of ChakraAttack.
func UnleashChakra(w donburi.World, e *donburi.Entry) bool {
	if busy(e) || !grounded(e) {
		return false
	}
	return ChakraAttack(w, e)
}

func Defend(w donburi.World, e *donburi.Entry) bool {
	if components.State.Get(e).CurrentState == cfg.Defend || !CanTransitionTo(e, cfg.Defend) {
		return false
	}
	return ChangeState(w, e, cfg.Defend)
}

func ReleaseDefend(w donburi.World, e *donburi.Entry) bool {
	if components.State.Get(e).CurrentState != cfg.Defend {
		return false
	}
	return ChangeState(w, e, cfg.Idle)
}
