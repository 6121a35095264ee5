package systems

import (
	"github.com/automoto/shinobi-duel/components"
	"github.com/yohamta/donburi"
)

// UpdateAnimations advances fighter frame tickers. A dead fighter holds its
// last frame. Projectiles animate in UpdateProjectiles.
func UpdateAnimations(w donburi.World) {
	components.Fighter.Each(w, func(e *donburi.Entry) {
		if components.Fighter.Get(e).Dead {
			return
		}
		if anim := components.Animation.Get(e); anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}
