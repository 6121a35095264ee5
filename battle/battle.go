// Package battle runs one bout between two fighters on a headless world.
package battle

import (
	"fmt"

	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/systems"
	"github.com/automoto/shinobi-duel/systems/factory"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Battle owns the world of one bout. It is not safe for concurrent use;
// Loop serializes access when ticking in the background.
type Battle struct {
	world    donburi.World
	match    *donburi.Entry
	fighters [2]*donburi.Entry
	systems  []func(donburi.World)

	logger      *zap.Logger
	subscribers []func(components.Event)
	closed      bool
}

// New builds a bout between two roster characters.
func New(playerOne, playerTwo string, opts ...Option) (*Battle, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	var characters [2]cfg.CharacterConfig
	for slot, key := range []string{playerOne, playerTwo} {
		c, err := cfg.Character(key)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", slot+1, err)
		}
		characters[slot] = c
	}

	stage := o.stage
	if stage == nil {
		stage = factory.DefaultStage()
	}

	w := donburi.NewWorld()
	factory.CreateStage(w, stage)
	b := &Battle{
		world:   w,
		match:   factory.CreateMatch(w),
		systems: systems.TickSystems(),
	}

	for slot := range b.fighters {
		spawn, ok := stage.Spawn(slot)
		if !ok {
			return nil, fmt.Errorf("stage %q has no spawn point for slot %d", stage.Name, slot)
		}
		f := factory.CreateFighter(w, slot, characters[slot], spawn.X, spawn.Y)
		switch so := o.slots[slot]; so.control {
		case ControlBot:
			factory.AttachBot(f, so.difficulty, so.seed)
		case ControlInput:
			factory.AttachInput(f)
		}
		b.fighters[slot] = f
	}
	factory.Pair(b.fighters[0], b.fighters[1])

	b.logger = o.logger.With(zap.String("match_id", b.ID()))
	b.logger.Info("battle created",
		zap.String("player_one", playerOne),
		zap.String("player_two", playerTwo),
		zap.String("stage", stage.Name),
	)
	return b, nil
}

// ID is the match identifier.
func (b *Battle) ID() string {
	return components.Match.Get(b.match).ID
}

// World exposes the underlying world to hosts and tests.
func (b *Battle) World() donburi.World {
	return b.world
}

// Fighter returns the fighter entry in slot, or nil.
func (b *Battle) Fighter(slot int) *donburi.Entry {
	if !validSlot(slot) {
		return nil
	}
	return b.fighters[slot]
}

// Start begins the countdown.
func (b *Battle) Start() {
	systems.StartMatch(b.world)
}

// Tick advances the simulation by one fixed step and delivers the events it raised.
func (b *Battle) Tick() {
	if b.closed {
		return
	}
	for _, system := range b.systems {
		system(b.world)
	}
	for _, ev := range systems.DrainEvents(b.world) {
		for _, fn := range b.subscribers {
			fn(ev)
		}
	}
}

// Command issues cmd for the fighter in slot and reports whether it took effect.
func (b *Battle) Command(slot int, cmd systems.Command) bool {
	f := b.Fighter(slot)
	if f == nil || b.closed || !systems.IsMatchPlaying(b.world) {
		return false
	}
	return systems.Apply(b.world, f, cmd)
}

// SetInput records whether action is held for the fighter in slot. It takes
// effect on the next tick.
func (b *Battle) SetInput(slot int, action cfg.ActionID, held bool) {
	f := b.Fighter(slot)
	if f == nil || !f.HasComponent(components.Input) || action <= cfg.ActionNone || action >= cfg.ActionCount {
		return
	}
	components.Input.Get(f).Next[action] = held
}

// Snapshot returns a copy of the state renderers need.
func (b *Battle) Snapshot() systems.Snapshot {
	return systems.TakeSnapshot(b.world)
}

// Winner returns the decided result, or WinnerNone while both fighters stand
// and time remains.
func (b *Battle) Winner() components.Winner {
	if m := components.Match.Get(b.match); m.State == cfg.MatchStateFinished {
		return m.Winner
	}
	for _, f := range b.fighters {
		if components.Health.Get(f).Current <= 0 {
			return systems.Winner(b.world)
		}
	}
	return components.WinnerNone
}

// Finished reports whether the bout has ended.
func (b *Battle) Finished() bool {
	return systems.IsMatchFinished(b.world)
}

// Subscribe registers fn to receive every event, in order, at the end of each tick.
func (b *Battle) Subscribe(fn func(components.Event)) {
	if fn != nil {
		b.subscribers = append(b.subscribers, fn)
	}
}

// Close cancels pending chakra charges and stops the battle from ticking.
func (b *Battle) Close() {
	if b.closed {
		return
	}
	b.closed = true
	cancelled := systems.CancelScheduled(b.world)
	b.logger.Info("battle closed",
		zap.Stringer("winner", b.Winner()),
		zap.Int("cancelled_events", cancelled),
	)
}
