package systems

import (
	"sort"

	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/gamemath"
	"github.com/automoto/shinobi-duel/tags"
	"github.com/yohamta/donburi"
)

// FighterSnapshot is the read-only view of a fighter handed to renderers.
type FighterSnapshot struct {
	Slot      int
	Character string
	IsBot     bool
	Body      gamemath.Rect
	AttackBox gamemath.Rect
	State     cfg.StateID
	Frame     int

	FacingLeft bool
	Flipped    bool
	// SpriteFlipped accounts for sheets authored facing left.
	SpriteFlipped bool

	Health          int
	MaxHealth       int
	DisplayedHealth float64
	Chakra          int
	MaxChakra       int

	IsAttacking bool
	IsCharging  bool
	IsDefending bool
	Dead        bool
}

// ProjectileSnapshot is the read-only view of a projectile in flight.
type ProjectileSnapshot struct {
	Kind      cfg.AttackKind
	OwnerSlot int
	Body      gamemath.Rect
	Direction float64
	Frame     int
}

// Snapshot is everything a renderer needs for one tick.
type Snapshot struct {
	MatchID          string
	Tick             int64
	MatchState       cfg.MatchStateID
	Countdown        int
	SecondsRemaining int
	Winner           components.Winner

	Fighters    []FighterSnapshot
	Projectiles []ProjectileSnapshot
}

// TakeSnapshot copies the world state. The result shares no memory with the world.
func TakeSnapshot(w donburi.World) Snapshot {
	var snap Snapshot
	if match := getMatch(w); match != nil {
		snap.MatchID = match.ID
		snap.Tick = match.Tick
		snap.MatchState = match.State
		snap.Countdown = match.CountdownValue
		snap.SecondsRemaining = match.SecondsRemaining()
		snap.Winner = match.Winner
	}

	components.Fighter.Each(w, func(e *donburi.Entry) {
		snap.Fighters = append(snap.Fighters, snapshotFighter(e))
	})
	sort.Slice(snap.Fighters, func(i, j int) bool {
		return snap.Fighters[i].Slot < snap.Fighters[j].Slot
	})

	tags.Projectile.Each(w, func(e *donburi.Entry) {
		projectile := components.Projectile.Get(e)
		if !projectile.Active {
			return
		}
		ps := ProjectileSnapshot{
			Kind:      projectile.Kind,
			OwnerSlot: -1,
			Body:      components.Object.Get(e).Rect(),
			Direction: projectile.Direction,
			Frame:     components.Animation.Get(e).Frame(),
		}
		if alive(w, projectile.Owner) {
			ps.OwnerSlot = components.Fighter.Get(projectile.Owner).Slot
		}
		snap.Projectiles = append(snap.Projectiles, ps)
	})

	return snap
}

func snapshotFighter(e *donburi.Entry) FighterSnapshot {
	fighter := components.Fighter.Get(e)
	body := components.Object.Get(e).Rect()
	health := components.Health.Get(e)
	chakra := components.Chakra.Get(e)

	return FighterSnapshot{
		Slot:            fighter.Slot,
		Character:       fighter.Character.Key,
		IsBot:           e.HasComponent(components.Bot),
		Body:            body,
		AttackBox:       fighter.AttackRect(body.X, body.Y),
		State:           components.State.Get(e).CurrentState,
		Frame:           components.Animation.Get(e).Frame(),
		FacingLeft:      fighter.FacingLeft,
		Flipped:         fighter.Flipped,
		SpriteFlipped:   fighter.Flipped != fighter.Character.InvertedFlip,
		Health:          health.Current,
		MaxHealth:       health.Max,
		DisplayedHealth: components.HealthBar.Get(e).Displayed,
		Chakra:          chakra.Charges,
		MaxChakra:       chakra.Max,
		IsAttacking:     fighter.IsAttacking,
		IsCharging:      chakra.IsCharging,
		IsDefending:     fighter.IsDefending,
		Dead:            fighter.Dead,
	}
}
