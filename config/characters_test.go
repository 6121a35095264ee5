package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedRoster(t *testing.T) {
	assert.Equal(t, []string{"isabella", "kaen", "kenji", "serena", "wakasa"}, CharacterKeys())

	kaen, err := Character("kaen")
	require.NoError(t, err)
	assert.Equal(t, 4, kaen.HitFrame)
	assert.Equal(t, 6, kaen.FramesFor(Attack1))
	assert.Equal(t, 8, kaen.FramesFor(Defend), "defend reuses the idle sheet")
	assert.Equal(t, AttackBoxConfig{OffsetX: 100, OffsetY: 50, Width: 160, Height: 50}, kaen.AttackBox)
	assert.True(t, kaen.HasMelee())

	kenji, err := Character("kenji")
	require.NoError(t, err)
	assert.Equal(t, 2, kenji.HitFrame)
	assert.Equal(t, 4, kenji.FramesFor(Attack1))
	assert.Equal(t, 7, kenji.FramesFor(Death))

	isabella, err := Character("isabella")
	require.NoError(t, err)
	assert.False(t, isabella.HasMelee())
	assert.Equal(t, 1, isabella.SlashFrames)
}

func TestCharacter_Unknown(t *testing.T) {
	_, err := Character("naruto")
	assert.ErrorContains(t, err, "unknown character")
}

func TestParseRoster_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "characters: []", "no characters"},
		{"bad yaml", "characters: [", "decoding roster"},
		{"no key", "characters:\n  - name: X\n    frames: {attack1: 6, attack2: 6}\n    hitFrame: 1", "has no key"},
		{
			"duplicate",
			"characters:\n  - key: a\n    frames: {attack1: 6, attack2: 6}\n  - key: a\n    frames: {attack1: 6, attack2: 6}",
			"duplicate",
		},
		{"hit frame", "characters:\n  - key: a\n    frames: {attack1: 3, attack2: 6}\n    hitFrame: 3", "hit frame"},
		{"spawn frame", "characters:\n  - key: a\n    frames: {attack1: 6, attack2: 4}\n    hitFrame: 1", "spawn frame"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRoster([]byte(tt.doc))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestParseRoster_DefaultsProjectileFrames(t *testing.T) {
	roster, err := ParseRoster([]byte("characters:\n  - key: a\n    frames: {attack1: 6, attack2: 6}\n    hitFrame: 2"))
	require.NoError(t, err)
	assert.Equal(t, 5, roster["a"].SlashFrames)
	assert.Equal(t, 4, roster["a"].ChakraFrames)
}
