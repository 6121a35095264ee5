package components

import (
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
)

// Event is a discrete occurrence for sound and presentation layers.
type Event struct {
	Kind   cfg.EventKind
	Tick   int64
	Slot   int // fighter the event concerns, -1 for match events
	Attack cfg.AttackKind
	Damage int
}

// EventsData queues events raised during a tick. Singleton, drained at the end of the tick.
type EventsData struct {
	Pending []Event
}

var Events = donburi.NewComponentType[EventsData]()
