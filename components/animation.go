package components

import (
	"github.com/automoto/shinobi-duel/assets/animations"
	"github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.SheetID
	Animations       map[config.SheetID]*animations.Animation
}

// SetAnimation switches to the sheet used by state. States sharing a sheet
// keep the running animation.
func (a *AnimationData) SetAnimation(state config.StateID) {
	sheet := config.StateToSheet[state]
	anim, ok := a.Animations[sheet]
	if !ok || (a.CurrentAnimation == anim && a.CurrentSheet == sheet) {
		return
	}
	a.CurrentAnimation = anim
	a.CurrentSheet = sheet
	anim.Restart()
	anim.Locked = false
}

// Frame returns the current frame index, or 0 without an animation.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return 0
	}
	return a.CurrentAnimation.Frame()
}

// AtLastFrame reports whether the current animation shows its final frame.
func (a *AnimationData) AtLastFrame() bool {
	return a.CurrentAnimation != nil && a.CurrentAnimation.AtLastFrame()
}

var Animation = donburi.NewComponentType[AnimationData]()
