package battle

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/automoto/shinobi-duel/systems"
	"go.uber.org/zap"
)

// Loop ticks a Battle on its own goroutine. Everything that touches the
// battle goes through Do so the simulation has a single writer.
type Loop struct {
	battle   *Battle
	tickRate int
	commands chan func(*Battle)
	latest   atomic.Pointer[systems.Snapshot]
	logger   *zap.Logger
}

// NewLoop wraps b. A tickRate of zero or less runs unthrottled.
func NewLoop(b *Battle, tickRate int) *Loop {
	l := &Loop{
		battle:   b,
		tickRate: tickRate,
		commands: make(chan func(*Battle), 64),
		logger:   b.logger,
	}
	snap := b.Snapshot()
	l.latest.Store(&snap)
	return l
}

// Run starts the bout and ticks until it finishes or ctx is done. The
// battle is closed on return.
func (l *Loop) Run(ctx context.Context) error {
	defer l.battle.Close()

	var tick <-chan time.Time
	if l.tickRate > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

	l.battle.Start()
	l.logger.Info("loop started", zap.Int("tick_rate", l.tickRate))

	for {
		if tick == nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case fn := <-l.commands:
				fn(l.battle)
			default:
				if l.step() {
					return nil
				}
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.commands:
			fn(l.battle)
		case <-tick:
			if l.step() {
				return nil
			}
		}
	}
}

// step ticks once and reports whether the bout is over.
func (l *Loop) step() bool {
	l.battle.Tick()
	snap := l.battle.Snapshot()
	l.latest.Store(&snap)
	if l.battle.Finished() {
		l.logger.Info("loop finished", zap.Stringer("winner", l.battle.Winner()), zap.Int64("tick", snap.Tick))
		return true
	}
	return false
}

// Do queues fn to run on the loop goroutine between ticks.
func (l *Loop) Do(ctx context.Context, fn func(*Battle)) error {
	select {
	case l.commands <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Command queues cmd for the fighter in slot.
func (l *Loop) Command(ctx context.Context, slot int, cmd systems.Command) error {
	return l.Do(ctx, func(b *Battle) {
		b.Command(slot, cmd)
	})
}

// Latest returns the snapshot taken after the most recent tick.
func (l *Loop) Latest() systems.Snapshot {
	return *l.latest.Load()
}
