package factory

import (
	"github.com/automoto/shinobi-duel/archetypes"
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// CreateMatch spawns the match singleton that also carries the scheduler,
// the projectile spawn queue and the event queue.
func CreateMatch(w donburi.World) *donburi.Entry {
	entry := archetypes.Match.Spawn(w)
	components.Match.SetValue(entry, components.MatchData{
		ID:             uuid.NewString(),
		State:          cfg.MatchStateWaiting,
		Duration:       cfg.Match.Duration,
		Timer:          cfg.Match.Duration,
		CountdownValue: -1,
	})
	return entry
}
