package factory

import (
	"github.com/automoto/shinobi-duel/archetypes"
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/gamemath"
	"github.com/automoto/shinobi-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ProjectileRect computes where owner's projectile of kind appears: just past
// the far edge of the mirrored attack box.
func ProjectileRect(owner *donburi.Entry, kind cfg.AttackKind) gamemath.Rect {
	fighter := components.Fighter.Get(owner)
	body := components.Object.Get(owner)
	box := fighter.Character.AttackBox
	gap := cfg.Projectile.SpawnGap

	attackX := body.X + gamemath.MirrorOffsetX(box.OffsetX, box.Width, fighter.Flipped)
	attackY := body.Y + box.OffsetY

	startX := attackX + box.Width + gap
	if fighter.Flipped {
		startX = attackX + gap
	}

	if kind == cfg.AttackChakra {
		c := cfg.Projectile.Chakra
		scale := fighter.Character.Scale
		if scale <= 0 {
			scale = 1
		}
		return gamemath.Rect{
			X: startX - cfg.Projectile.ChakraOffset,
			Y: body.Y - fighter.Character.SpriteOffset.Y,
			W: c.Width,
			H: cfg.Fighter.Height*scale - c.HeightTrim,
		}
	}

	s := cfg.Projectile.Slash
	return gamemath.Rect{
		X: startX,
		Y: attackY + box.Height/2 - cfg.Projectile.SlashLift,
		W: s.Width,
		H: s.Height,
	}
}

// CreateProjectile spawns owner's projectile of kind, aimed at the owner's opponent.
func CreateProjectile(w donburi.World, owner *donburi.Entry, kind cfg.AttackKind) *donburi.Entry {
	fighter := components.Fighter.Get(owner)
	typ := cfg.Projectile.Slash
	frames := fighter.Character.SlashFrames
	if kind == cfg.AttackChakra {
		typ = cfg.Projectile.Chakra
		frames = fighter.Character.ChakraFrames
	}

	direction := cfg.DirectionRight
	if fighter.Flipped {
		direction = cfg.DirectionLeft
	}

	r := ProjectileRect(owner, kind)
	projectile := archetypes.Projectile.Spawn(w)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvProjectile)
	obj.Data = projectile
	components.Object.SetValue(projectile, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	components.Projectile.SetValue(projectile, components.ProjectileData{
		Kind:      kind,
		Owner:     owner,
		Target:    fighter.Opponent,
		Direction: direction,
		Damage:    typ.Damage,
		Active:    true,
	})
	components.Physics.SetValue(projectile, components.PhysicsData{
		SpeedX: typ.Speed * direction,
	})
	components.Animation.Set(projectile, projectileAnimation(frames, typ.FramesHold))

	return projectile
}
