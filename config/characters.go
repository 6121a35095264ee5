package config

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed characters.yaml
var charactersYAML []byte

// ErrUnknownCharacter is returned for keys missing from the roster.
var ErrUnknownCharacter = errors.New("unknown character")

// AttackBoxConfig is a character's attack box, authored facing right.
type AttackBoxConfig struct {
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// Offset is a sprite draw offset.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// CharacterConfig contains the static data of one roster entry
type CharacterConfig struct {
	Key          string          `yaml:"key"`
	Name         string          `yaml:"name"`
	InvertedFlip bool            `yaml:"invertedFlip"`
	NoMelee      bool            `yaml:"noMelee"`
	Frames       map[SheetID]int `yaml:"frames"`
	HitFrame     int             `yaml:"hitFrame"`
	AttackBox    AttackBoxConfig `yaml:"attackBox"`
	SpriteOffset Offset          `yaml:"spriteOffset"`
	Scale        float64         `yaml:"scale"`
	SlashFrames  int             `yaml:"slashFrames"`
	ChakraFrames int             `yaml:"chakraFrames"`
}

// HasMelee reports whether the character can perform a melee attack.
func (c CharacterConfig) HasMelee() bool {
	return !c.NoMelee
}

// FramesFor returns the frame count of the sheet the given state animates with.
func (c CharacterConfig) FramesFor(state StateID) int {
	n := c.Frames[StateToSheet[state]]
	if n < 1 {
		return 1
	}
	return n
}

type rosterFile struct {
	Characters []CharacterConfig `yaml:"characters"`
}

// Characters is the roster keyed by character key
var Characters map[string]CharacterConfig

// loadRoster runs after the combat config is populated; roster validation reads the spawn frame.
func loadRoster() {
	roster, err := ParseRoster(charactersYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded roster: %v", err))
	}
	Characters = roster
}

// ParseRoster decodes and validates a roster document.
func ParseRoster(data []byte) (map[string]CharacterConfig, error) {
	var f rosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding roster: %w", err)
	}
	if len(f.Characters) == 0 {
		return nil, fmt.Errorf("roster has no characters")
	}

	roster := make(map[string]CharacterConfig, len(f.Characters))
	for _, c := range f.Characters {
		if c.Key == "" {
			return nil, fmt.Errorf("roster entry %q has no key", c.Name)
		}
		if _, dup := roster[c.Key]; dup {
			return nil, fmt.Errorf("duplicate roster key %q", c.Key)
		}
		if n := c.Frames[SheetAttack1]; c.HitFrame < 0 || c.HitFrame >= n {
			return nil, fmt.Errorf("%s: hit frame %d outside attack1 frames (%d)", c.Key, c.HitFrame, n)
		}
		if c.Frames[SheetAttack2] <= Combat.SpawnFrame {
			return nil, fmt.Errorf("%s: attack2 has %d frames, spawn frame is %d", c.Key, c.Frames[SheetAttack2], Combat.SpawnFrame)
		}
		if c.SlashFrames < 1 {
			c.SlashFrames = 5
		}
		if c.ChakraFrames < 1 {
			c.ChakraFrames = 4
		}
		roster[c.Key] = c
	}
	return roster, nil
}

// Character looks up a roster entry.
func Character(key string) (CharacterConfig, error) {
	c, ok := Characters[key]
	if !ok {
		return CharacterConfig{}, fmt.Errorf("%w %q", ErrUnknownCharacter, key)
	}
	return c, nil
}

// CharacterKeys returns the roster keys in sorted order.
func CharacterKeys() []string {
	keys := make([]string, 0, len(Characters))
	for k := range Characters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
