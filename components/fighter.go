package components

import (
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/gamemath"
	"github.com/yohamta/donburi"
)

// FighterData is the combat state of one combatant.
type FighterData struct {
	Slot      int // 0 = player one, 1 = player two
	Character cfg.CharacterConfig
	Opponent  *donburi.Entry

	FacingLeft bool
	Flipped    bool // mirrors the attack box

	IsAttacking bool
	AttackType  cfg.AttackKind
	// MeleeHitApplied guards the held hit frame so a melee swing lands once.
	MeleeHitApplied bool
	IsDefending     bool
	Dead            bool
}

// AttackRect returns the live attack box for a body at x, y.
func (f *FighterData) AttackRect(x, y float64) gamemath.Rect {
	box := f.Character.AttackBox
	return gamemath.Rect{
		X: x + gamemath.MirrorOffsetX(box.OffsetX, box.Width, f.Flipped),
		Y: y + box.OffsetY,
		W: box.Width,
		H: box.Height,
	}
}

// ClearAttack resets the transient attack flags.
func (f *FighterData) ClearAttack() {
	f.IsAttacking = false
	f.AttackType = cfg.AttackNone
}

var Fighter = donburi.NewComponentType[FighterData]()
