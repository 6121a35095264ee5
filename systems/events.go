package systems

import (
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// publish queues ev for the end-of-tick drain.
func publish(w donburi.World, ev components.Event) {
	entry, ok := components.Events.First(w)
	if !ok {
		return
	}
	ev.Tick = currentTick(w)
	events := components.Events.Get(entry)
	events.Pending = append(events.Pending, ev)
}

func publishFighter(w donburi.World, e *donburi.Entry, kind cfg.EventKind, attack cfg.AttackKind, damage int) {
	publish(w, components.Event{
		Kind:   kind,
		Slot:   components.Fighter.Get(e).Slot,
		Attack: attack,
		Damage: damage,
	})
}

// DrainEvents empties the tick's event queue and returns what it held, oldest first.
func DrainEvents(w donburi.World) []components.Event {
	entry, ok := components.Events.First(w)
	if !ok {
		return nil
	}
	events := components.Events.Get(entry)
	drained := events.Pending
	events.Pending = nil

	for _, ev := range drained {
		logger.Debug("event",
			zap.Stringer("kind", ev.Kind),
			zap.Int64("tick", ev.Tick),
			zap.Int("slot", ev.Slot),
			zap.Stringer("attack", ev.Attack),
			zap.Int("damage", ev.Damage),
		)
	}
	return drained
}
