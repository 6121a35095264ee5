package systems

import (
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
)

// UpdateInput latches the host's held actions and turns them into commands
// for human-controlled fighters while the match is playing.
func UpdateInput(w donburi.World) {
	playing := IsMatchPlaying(w)
	components.Input.Each(w, func(e *donburi.Entry) {
		input := components.Input.Get(e)
		input.Latch()
		if !playing {
			return
		}
		applyInput(w, e, input)
	})
}

func applyInput(w donburi.World, e *donburi.Entry, input *components.InputData) {
	if busy(e) {
		return
	}

	components.Physics.Get(e).SpeedX = 0

	// Defending fighters stay put.
	if components.State.Get(e).CurrentState != cfg.Defend {
		switch {
		case input.Pressed(cfg.ActionMoveLeft):
			MoveLeft(w, e)
		case input.Pressed(cfg.ActionMoveRight):
			MoveRight(w, e)
		default:
			Stop(w, e)
		}
	}

	if input.JustPressed(cfg.ActionJump) {
		Jump(w, e)
	}
	if input.JustPressed(cfg.ActionMelee) {
		MeleeAttack(w, e)
	}
	if input.JustPressed(cfg.ActionRanged) {
		RangedAttack(w, e)
	}
	if input.JustPressed(cfg.ActionCharge) {
		StartCharge(w, e)
	}
	if input.JustPressed(cfg.ActionChakra) {
		UnleashChakra(w, e)
	}

	if input.Pressed(cfg.ActionDefend) {
		Defend(w, e)
	} else {
		ReleaseDefend(w, e)
	}
}
