package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const preferencesKey = "preferences"

// SavedPreferences is what the window host remembers between sessions.
type SavedPreferences struct {
	PlayerOne  string `json:"playerOne"`
	PlayerTwo  string `json:"playerTwo"`
	TwoIsAI    bool   `json:"twoIsAI"`
	Difficulty int    `json:"difficulty"`
	Stage      string `json:"stage"`
}

// itemStore is the part of *gdata.Manager persistence needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence opens the gdata store for preferences.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
		return fmt.Errorf("opening preference store: %w", err)
	}
	store = m
	return nil
}

// LoadPreferences returns the saved preferences, or nil when persistence is
// unavailable or nothing was saved yet.
func LoadPreferences() (*SavedPreferences, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(preferencesKey)
	if err != nil {
		logger.Warn("could not load preferences", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var prefs SavedPreferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("parsing saved preferences: %w", err)
	}
	return &prefs, nil
}

// SavePreferences writes prefs to the store. It is a no-op without one.
func SavePreferences(prefs *SavedPreferences) error {
	if store == nil || prefs == nil {
		return nil
	}

	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("serializing preferences: %w", err)
	}
	if err := store.SaveItem(preferencesKey, data); err != nil {
		logger.Warn("could not save preferences", zap.Error(err))
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

// ApplyPreferences overlays saved choices onto settings loaded from file and
// environment. Unknown characters or stages in the saved data are ignored.
func ApplyPreferences(s *cfg.Settings, prefs *SavedPreferences) {
	if s == nil || prefs == nil {
		return
	}
	if _, err := cfg.Character(prefs.PlayerOne); err == nil {
		s.Players.One = prefs.PlayerOne
	}
	if _, err := cfg.Character(prefs.PlayerTwo); err == nil {
		s.Players.Two = prefs.PlayerTwo
	}
	if d := cfg.Difficulty(prefs.Difficulty); d == d.Clamp() {
		s.AI.Difficulty = prefs.Difficulty
	}
	if prefs.Stage != "" {
		s.Players.Stage = prefs.Stage
	}
	s.Players.TwoIsAI = prefs.TwoIsAI
}

// PreferencesFrom captures the choices in s for saving.
func PreferencesFrom(s cfg.Settings) *SavedPreferences {
	return &SavedPreferences{
		PlayerOne:  s.Players.One,
		PlayerTwo:  s.Players.Two,
		TwoIsAI:    s.Players.TwoIsAI,
		Difficulty: s.AI.Difficulty,
		Stage:      s.Players.Stage,
	}
}
