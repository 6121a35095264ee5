package components

import (
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  cfg.StateID
	PreviousState cfg.StateID // diagnostics only
	StateTimer    int         // ticks spent in CurrentState
}

var State = donburi.NewComponentType[StateData]()
