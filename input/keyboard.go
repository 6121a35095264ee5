// Package input turns keyboard and gamepad state into held fighter actions
// for the window host.
package input

import (
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// AnalogDeadzone is how far the left stick must travel before it counts as a move.
const AnalogDeadzone = 0.25

// Binding lists the keys and standard gamepad buttons for one action.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// Scheme maps every action to its bindings. Gamepad selects which connected
// gamepad (by order of connection) drives the scheme; -1 disables gamepads.
type Scheme struct {
	Bindings [cfg.ActionCount]Binding
	Gamepad  int
}

// PlayerOne is the left-hand layout.
var PlayerOne = Scheme{
	Gamepad: 0,
	Bindings: [cfg.ActionCount]Binding{
		cfg.ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyA}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
		cfg.ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyD}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
		cfg.ActionJump:      {Keys: []ebiten.Key{ebiten.KeyW}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
		cfg.ActionMelee:     {Keys: []ebiten.Key{ebiten.KeyS}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft}},
		cfg.ActionRanged:    {Keys: []ebiten.Key{ebiten.KeyQ}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop}},
		cfg.ActionCharge:    {Keys: []ebiten.Key{ebiten.KeyC}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight}},
		cfg.ActionChakra:    {Keys: []ebiten.Key{ebiten.KeyV}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight}},
		cfg.ActionDefend:    {Keys: []ebiten.Key{ebiten.KeyF}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft}},
	},
}

// PlayerTwo is the right-hand layout.
var PlayerTwo = Scheme{
	Gamepad: 1,
	Bindings: [cfg.ActionCount]Binding{
		cfg.ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyArrowLeft}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
		cfg.ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyArrowRight}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
		cfg.ActionJump:      {Keys: []ebiten.Key{ebiten.KeyArrowUp}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
		cfg.ActionMelee:     {Keys: []ebiten.Key{ebiten.KeyArrowDown}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft}},
		cfg.ActionRanged:    {Keys: []ebiten.Key{ebiten.KeySlash}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop}},
		cfg.ActionCharge:    {Keys: []ebiten.Key{ebiten.KeyPeriod}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight}},
		cfg.ActionChakra:    {Keys: []ebiten.Key{ebiten.KeyComma}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight}},
		cfg.ActionDefend:    {Keys: []ebiten.Key{ebiten.KeyShiftRight}, Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft}},
	},
}

// Source reports raw device state. Ebiten satisfies it in the window host;
// tests supply their own.
type Source interface {
	KeyPressed(key ebiten.Key) bool
	// Gamepads returns the connected gamepads with a standard layout.
	Gamepads() []ebiten.GamepadID
	ButtonPressed(id ebiten.GamepadID, btn ebiten.StandardGamepadButton) bool
	// LeftStickX returns the horizontal axis of the left stick in [-1, 1].
	LeftStickX(id ebiten.GamepadID) float64
}

// Poll reads which actions the scheme currently holds.
func (s Scheme) Poll(src Source) [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool

	for action, binding := range s.Bindings {
		for _, key := range binding.Keys {
			if src.KeyPressed(key) {
				held[action] = true
			}
		}
	}

	pads := src.Gamepads()
	if s.Gamepad < 0 || s.Gamepad >= len(pads) {
		return held
	}
	id := pads[s.Gamepad]

	for action, binding := range s.Bindings {
		for _, btn := range binding.Buttons {
			if src.ButtonPressed(id, btn) {
				held[action] = true
			}
		}
	}

	// Merge the analog stick into the move actions.
	switch x := src.LeftStickX(id); {
	case x < -AnalogDeadzone:
		held[cfg.ActionMoveLeft] = true
	case x > AnalogDeadzone:
		held[cfg.ActionMoveRight] = true
	}
	return held
}

// Target receives held actions per fighter slot. *battle.Battle satisfies it.
type Target interface {
	SetInput(slot int, action cfg.ActionID, held bool)
}

// Feeder polls one scheme per slot and hands the result to a Target.
type Feeder struct {
	Source  Source
	Schemes map[int]Scheme
}

// NewFeeder polls ebiten devices with the default layouts for both slots.
func NewFeeder() *Feeder {
	return &Feeder{
		Source:  &Ebiten{},
		Schemes: map[int]Scheme{0: PlayerOne, 1: PlayerTwo},
	}
}

// Feed writes every action's held state for each configured slot.
func (f *Feeder) Feed(t Target) {
	for slot, scheme := range f.Schemes {
		held := scheme.Poll(f.Source)
		for action := cfg.ActionNone + 1; action < cfg.ActionCount; action++ {
			t.SetInput(slot, action, held[action])
		}
	}
}

// Ebiten reads devices through ebiten's polling API.
type Ebiten struct {
	// Reusable slice for gamepad IDs to avoid allocations
	ids []ebiten.GamepadID
}

func (e *Ebiten) KeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (e *Ebiten) Gamepads() []ebiten.GamepadID {
	all := ebiten.AppendGamepadIDs(e.ids[:0])
	e.ids = all[:0]
	for _, id := range all {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			e.ids = append(e.ids, id)
		}
	}
	return e.ids
}

func (e *Ebiten) ButtonPressed(id ebiten.GamepadID, btn ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, btn)
}

func (e *Ebiten) LeftStickX(id ebiten.GamepadID) float64 {
	return ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
}
