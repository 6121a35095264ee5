package components

import (
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
)

// ProjectileData is a Slash or Chakra projectile in flight.
type ProjectileData struct {
	Kind      cfg.AttackKind // AttackRanged (slash) or AttackChakra
	Owner     *donburi.Entry
	Target    *donburi.Entry
	Direction float64 // cfg.DirectionLeft or cfg.DirectionRight
	Damage    int
	Active    bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// SpawnRequest asks for a projectile once the owner's Attack2 reaches the spawn frame.
type SpawnRequest struct {
	Owner *donburi.Entry
	Kind  cfg.AttackKind
}

// SpawnQueueData is the outbox Attack2 commits write to. Singleton.
type SpawnQueueData struct {
	Requests []SpawnRequest
}

// Pending returns the request armed for owner, if any.
func (q *SpawnQueueData) Pending(owner *donburi.Entry) (SpawnRequest, bool) {
	for _, r := range q.Requests {
		if r.Owner.Entity() == owner.Entity() {
			return r, true
		}
	}
	return SpawnRequest{}, false
}

// Arm replaces any request held for the owner.
func (q *SpawnQueueData) Arm(owner *donburi.Entry, kind cfg.AttackKind) {
	q.Drop(owner)
	q.Requests = append(q.Requests, SpawnRequest{Owner: owner, Kind: kind})
}

// Drop removes the owner's request.
func (q *SpawnQueueData) Drop(owner *donburi.Entry) {
	kept := q.Requests[:0]
	for _, r := range q.Requests {
		if r.Owner.Entity() != owner.Entity() {
			kept = append(kept, r)
		}
	}
	q.Requests = kept
}

var SpawnQueue = donburi.NewComponentType[SpawnQueueData]()
