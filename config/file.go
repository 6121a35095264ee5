package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is "json" or "console".
	Format string `mapstructure:"format"`
}

// MatchSettings holds bout timing overrides.
type MatchSettings struct {
	DurationSeconds int  `mapstructure:"duration_seconds"`
	Countdown       bool `mapstructure:"countdown"`
}

// PlayerSettings selects the characters and who controls player two.
type PlayerSettings struct {
	One      string `mapstructure:"one"`
	Two      string `mapstructure:"two"`
	TwoIsAI  bool   `mapstructure:"two_is_ai"`
	OneIsAI  bool   `mapstructure:"one_is_ai"`
	Stage    string `mapstructure:"stage"`
	Headless int    `mapstructure:"headless_bouts"`
}

// AIFileSettings holds AI overrides.
type AIFileSettings struct {
	Difficulty int   `mapstructure:"difficulty"`
	Seed       int64 `mapstructure:"seed"`
}

// Settings is the file/environment configuration layered over the built-in defaults.
type Settings struct {
	Logging LoggingConfig  `mapstructure:"logging"`
	Match   MatchSettings  `mapstructure:"match"`
	Players PlayerSettings `mapstructure:"players"`
	AI      AIFileSettings `mapstructure:"ai"`
	Debug   bool           `mapstructure:"debug_boxes"`
}

// Validate checks every setting and reports all violations together.
//
// Postcondition: Returns nil if the settings are valid, or an error describing all violations.
func (s Settings) Validate() error {
	var errs []string

	if err := validateLogging(s.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if s.Match.DurationSeconds <= 0 {
		errs = append(errs, fmt.Sprintf("match.duration_seconds must be positive, got %d", s.Match.DurationSeconds))
	}
	if err := validatePlayers(s.Players); err != nil {
		errs = append(errs, err.Error())
	}
	if d := Difficulty(s.AI.Difficulty); d != d.Clamp() {
		errs = append(errs, fmt.Sprintf("ai.difficulty must be between 1 and 5, got %d", s.AI.Difficulty))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validatePlayers(p PlayerSettings) error {
	var errs []string
	for _, key := range []string{p.One, p.Two} {
		if _, ok := Characters[key]; !ok {
			errs = append(errs, fmt.Sprintf("unknown character %q", key))
		}
	}
	if p.Stage == "" {
		errs = append(errs, "players.stage must not be empty")
	}
	if p.Headless < 0 {
		errs = append(errs, "players.headless_bouts must not be negative")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Load reads settings from the given file path, applies environment variable
// overrides, and validates the result. An empty path uses defaults and environment only.
func Load(path string) (Settings, error) {
	v := viper.New()

	v.SetEnvPrefix("SHINOBI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds Settings from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Apply copies the tunables onto the global configuration.
func (s Settings) Apply() {
	Match.Duration = s.Match.DurationSeconds * Match.TickRate
	if !s.Match.Countdown {
		Match.CountdownSteps = 0
	}
	AI.Seed = s.AI.Seed
	Stage.DefaultStage = s.Players.Stage
	Debug.ShowBoxes = s.Debug
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("match.duration_seconds", Match.Duration/Match.TickRate)
	v.SetDefault("match.countdown", true)

	v.SetDefault("players.one", "kaen")
	v.SetDefault("players.two", "kenji")
	v.SetDefault("players.two_is_ai", true)
	v.SetDefault("players.one_is_ai", false)
	v.SetDefault("players.stage", Stage.DefaultStage)
	v.SetDefault("players.headless_bouts", 1)

	v.SetDefault("ai.difficulty", int(DifficultyMedium))
	v.SetDefault("ai.seed", AI.Seed)

	v.SetDefault("debug_boxes", true)
}
