package systems

import (
	"github.com/automoto/shinobi-duel/components"
	"github.com/yohamta/donburi"
)

// UpdateScheduler advances the scheduler clock and fires the events now due.
func UpdateScheduler(w donburi.World) {
	scheduler := getScheduler(w)
	if scheduler == nil {
		return
	}
	scheduler.Now++

	for _, ev := range scheduler.PopDue() {
		switch ev.Kind {
		case components.ScheduleChakraCharge:
			completeCharge(w, ev)
		}
	}
}

// CancelScheduled drops every pending event and clears the charge flags of
// the fighters they belonged to. Used when a match is torn down.
func CancelScheduled(w donburi.World) int {
	scheduler := getScheduler(w)
	if scheduler == nil {
		return 0
	}
	components.Chakra.Each(w, func(e *donburi.Entry) {
		chakra := components.Chakra.Get(e)
		chakra.IsCharging = false
		chakra.ChargeToken = 0
	})
	return scheduler.CancelAll()
}
