package archetypes

import (
	"github.com/automoto/shinobi-duel/components"
	"github.com/automoto/shinobi-duel/tags"
	"github.com/yohamta/donburi"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.Health,
		components.HealthBar,
		components.Chakra,
		components.Animation,
		components.Physics,
		components.State,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.Animation,
		components.Physics,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Stage = newArchetype(
		components.Stage,
	)
	Match = newArchetype(
		components.Match,
		components.Scheduler,
		components.SpawnQueue,
		components.Events,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
