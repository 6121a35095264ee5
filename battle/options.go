package battle

import (
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/leveldata"
	"go.uber.org/zap"
)

// Control says who drives a fighter.
type Control int

const (
	// ControlInput fighters follow held actions set with SetInput.
	ControlInput Control = iota
	// ControlBot fighters are driven by the AI.
	ControlBot
	// ControlScript fighters only move on explicit Command calls.
	ControlScript
)

type slotOptions struct {
	control    Control
	difficulty cfg.Difficulty
	seed       int64
}

type options struct {
	logger *zap.Logger
	stage  *leveldata.StageData
	slots  [2]slotOptions
}

// Option configures a Battle.
type Option func(*options)

// WithLogger sets the logger for battle lifecycle messages.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStage fights on stage instead of the flat default arena.
func WithStage(stage *leveldata.StageData) Option {
	return func(o *options) {
		o.stage = stage
	}
}

// WithBot hands slot to the AI at difficulty d. The seed fixes its decisions.
func WithBot(slot int, d cfg.Difficulty, seed int64) Option {
	return func(o *options) {
		if validSlot(slot) {
			o.slots[slot] = slotOptions{control: ControlBot, difficulty: d, seed: seed}
		}
	}
}

// WithScript leaves slot to explicit Command calls only.
func WithScript(slot int) Option {
	return func(o *options) {
		if validSlot(slot) {
			o.slots[slot] = slotOptions{control: ControlScript}
		}
	}
}

func validSlot(slot int) bool {
	return slot == 0 || slot == 1
}
