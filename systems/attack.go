package systems

import (
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/gamemath"
	"github.com/automoto/shinobi-duel/systems/factory"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdateAttacks resolves melee swings on their hit frame and turns armed
// spawn requests into projectiles on the spawn frame.
func UpdateAttacks(w donburi.World) {
	components.Fighter.Each(w, func(e *donburi.Entry) {
		switch components.State.Get(e).CurrentState {
		case cfg.Attack1:
			resolveMelee(w, e)
		case cfg.Attack2:
			spawnArmedProjectile(w, e)
		}
	})
}

func resolveMelee(w donburi.World, e *donburi.Entry) {
	fighter := components.Fighter.Get(e)
	if fighter.MeleeHitApplied || components.Animation.Get(e).Frame() != fighter.Character.HitFrame {
		return
	}
	target := fighter.Opponent
	if !alive(w, target) {
		return
	}

	body := components.Object.Get(e)
	if !gamemath.Overlaps(fighter.AttackRect(body.X, body.Y), components.Object.Get(target).Rect()) {
		return
	}
	// The hit frame is held for several ticks; land once per swing.
	fighter.MeleeHitApplied = true
	TakeHit(w, target, cfg.Combat.MeleeDamage)
}

func spawnArmedProjectile(w donburi.World, e *donburi.Entry) {
	if components.Animation.Get(e).Frame() != cfg.Combat.SpawnFrame {
		return
	}
	queue := getSpawnQueue(w)
	if queue == nil {
		return
	}
	req, ok := queue.Pending(e)
	if !ok {
		return
	}
	queue.Drop(e)

	projectile := factory.CreateProjectile(w, e, req.Kind)
	publishFighter(w, e, cfg.EventProjectileSpawned, req.Kind, 0)

	fighter := components.Fighter.Get(e)
	obj := components.Object.Get(projectile)
	logger.Debug("projectile spawned", append(fighterFields(fighter.Slot, fighter.Character.Key),
		zap.Stringer("kind", req.Kind),
		zap.Float64("x", obj.X),
		zap.Float64("y", obj.Y),
	)...)
}
