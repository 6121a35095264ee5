package systems

import (
	"github.com/automoto/shinobi-duel/components"
	"github.com/automoto/shinobi-duel/shared/gamemath"
	"github.com/automoto/shinobi-duel/tags"
	"github.com/yohamta/donburi"
)

// UpdateProjectiles moves and animates projectiles, lands at most one hit
// each on the owner's opponent and removes the ones that are spent or left
// the stage.
func UpdateProjectiles(w donburi.World) {
	width := stageWidth(w)
	var spent []*donburi.Entry

	tags.Projectile.Each(w, func(e *donburi.Entry) {
		projectile := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		if projectile.Active {
			obj.X += components.Physics.Get(e).SpeedX
			obj.Update()
			if anim := components.Animation.Get(e); anim.CurrentAnimation != nil {
				anim.CurrentAnimation.Update()
			}

			if obj.X < 0 || obj.X > width {
				projectile.Active = false
			} else if hitTarget(w, projectile, obj) {
				TakeHit(w, projectile.Target, projectile.Damage)
				projectile.Active = false
			}
		}

		if !projectile.Active {
			spent = append(spent, e)
		}
	})

	for _, e := range spent {
		removeProjectile(w, e)
	}
}

func hitTarget(w donburi.World, projectile *components.ProjectileData, obj *components.ObjectData) bool {
	target := projectile.Target
	if !alive(w, target) || components.Fighter.Get(target).Dead {
		return false
	}
	return gamemath.Overlaps(obj.Rect(), components.Object.Get(target).Rect())
}

func removeProjectile(w donburi.World, e *donburi.Entry) {
	obj := components.Object.Get(e)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	w.Remove(e.Entity())
}
