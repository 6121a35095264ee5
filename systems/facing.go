package systems

import (
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
)

// UpdateFacing points each fighter along its movement, or at the opponent
// when idle. The attack box only mirrors outside attacks and Defend.
func UpdateFacing(w donburi.World) {
	components.Fighter.Each(w, func(e *donburi.Entry) {
		fighter := components.Fighter.Get(e)
		state := components.State.Get(e).CurrentState
		speedX := components.Physics.Get(e).SpeedX

		switch {
		case speedX < 0:
			fighter.FacingLeft = true
		case speedX > 0:
			fighter.FacingLeft = false
		case state == cfg.Idle && alive(w, fighter.Opponent):
			fighter.FacingLeft = components.Object.Get(fighter.Opponent).X < components.Object.Get(e).X
		}

		if !fighter.IsAttacking && !state.IsAttackState() && state != cfg.Defend {
			fighter.Flipped = fighter.FacingLeft
		}
	})
}
