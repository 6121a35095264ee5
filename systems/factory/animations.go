package factory

import (
	"github.com/automoto/shinobi-duel/assets/animations"
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
)

var fighterSheets = []cfg.SheetID{
	cfg.SheetIdle,
	cfg.SheetRun,
	cfg.SheetJump,
	cfg.SheetFall,
	cfg.SheetAttack1,
	cfg.SheetAttack2,
	cfg.SheetTakeHit,
	cfg.SheetDeath,
}

// GenerateAnimations builds the frame tickers for every sheet of a character.
// Only frame counts matter here; the host owns the images.
func GenerateAnimations(character cfg.CharacterConfig) *components.AnimationData {
	animData := &components.AnimationData{
		Animations: make(map[cfg.SheetID]*animations.Animation, len(fighterSheets)),
	}

	for _, sheet := range fighterSheets {
		hold := cfg.Combat.DefaultFramesHold
		if sheet == cfg.SheetIdle {
			hold = cfg.Combat.IdleFramesHold
		}
		frames := character.Frames[sheet]
		anim := animations.NewSheet(frames, hold)
		if sheet == cfg.SheetDeath {
			anim.FreezeOnComplete = true
		}
		animData.Animations[sheet] = anim
	}

	animData.CurrentSheet = cfg.SheetIdle
	animData.CurrentAnimation = animData.Animations[cfg.SheetIdle]
	return animData
}

// projectileAnimation loops a projectile sheet of frames frames.
func projectileAnimation(frames, hold int) *components.AnimationData {
	anim := animations.NewSheet(frames, hold)
	return &components.AnimationData{
		CurrentAnimation: anim,
		Animations:       map[cfg.SheetID]*animations.Animation{},
	}
}
