package factory

import (
	"math/rand"

	"github.com/automoto/shinobi-duel/archetypes"
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateFighter spawns a fighter for slot at x, y. Player two starts facing left.
func CreateFighter(w donburi.World, slot int, character cfg.CharacterConfig, x, y float64) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.Fighter.Width, cfg.Fighter.Height, tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Fighter.Width, cfg.Fighter.Height))
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	facingLeft := slot == 1
	components.Fighter.SetValue(fighter, components.FighterData{
		Slot:       slot,
		Character:  character,
		FacingLeft: facingLeft,
		Flipped:    facingLeft,
	})
	components.State.SetValue(fighter, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(fighter, components.PhysicsData{
		Gravity:  cfg.Physics.Gravity,
		RunSpeed: cfg.Fighter.RunSpeed,
	})
	components.Health.SetValue(fighter, components.HealthData{
		Current: cfg.Fighter.MaxHealth,
		Max:     cfg.Fighter.MaxHealth,
	})
	components.HealthBar.SetValue(fighter, components.HealthBarData{
		Displayed: float64(cfg.Fighter.MaxHealth),
		Target:    cfg.Fighter.MaxHealth,
	})
	components.Chakra.SetValue(fighter, components.ChakraData{
		Max: cfg.Fighter.MaxChakra,
	})
	components.Animation.Set(fighter, GenerateAnimations(character))

	return fighter
}

// Pair links two fighters as each other's opponent.
func Pair(a, b *donburi.Entry) {
	components.Fighter.Get(a).Opponent = b
	components.Fighter.Get(b).Opponent = a
}

// AttachInput lets the host drive fighter with held actions.
func AttachInput(fighter *donburi.Entry) {
	donburi.Add(fighter, components.Input, &components.InputData{})
}

// AttachBot hands control of fighter to the AI at difficulty d, seeded with seed.
func AttachBot(fighter *donburi.Entry, d cfg.Difficulty, seed int64) {
	bot := &components.BotData{
		FacingLeft: components.Fighter.Get(fighter).FacingLeft,
		Rand:       rand.New(rand.NewSource(seed)),
	}
	bot.SetDifficulty(d)
	donburi.Add(fighter, components.Bot, bot)
}
