package components

import (
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous tick's held actions for a
// human-controlled fighter. JustPressed/JustReleased are computed on demand.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	// Next is written by the host between ticks and latched at the start of a tick.
	Next [cfg.ActionCount]bool
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

func (i *InputData) JustReleased(a cfg.ActionID) bool {
	return !i.Current[a] && i.Previous[a]
}

// Latch makes Next the current tick's input.
func (i *InputData) Latch() {
	i.Previous = i.Current
	i.Current = i.Next
}

var Input = donburi.NewComponentType[InputData]()
