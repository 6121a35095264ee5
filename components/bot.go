package components

import (
	"math/rand"

	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
)

// BotData drives a fighter with the difficulty-scaled decision policy.
type BotData struct {
	Difficulty     cfg.Difficulty
	Settings       cfg.AISettings
	DecisionTimer  int
	ActionCooldown int
	FacingLeft     bool
	Rand           *rand.Rand

	// LastDecision records the action taken on the most recent decision tick.
	LastDecision string
}

// SetDifficulty re-derives the settings bundle.
func (b *BotData) SetDifficulty(d cfg.Difficulty) {
	b.Difficulty = d.Clamp()
	b.Settings = cfg.SettingsFor(b.Difficulty)
}

var Bot = donburi.NewComponentType[BotData]()
