package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestOverlaps(t *testing.T) {
	body := Rect{X: 250, Y: 330, W: 50, H: 150}
	tests := []struct {
		name string
		box  Rect
		want bool
	}{
		{"inside", Rect{X: 260, Y: 380, W: 10, H: 10}, true},
		{"melee reach", Rect{X: 200, Y: 380, W: 160, H: 50}, true},
		{"touching left edge", Rect{X: 200, Y: 380, W: 50, H: 10}, true},
		{"touching bottom edge", Rect{X: 260, Y: 480, W: 10, H: 10}, true},
		{"gap left", Rect{X: 100, Y: 380, W: 149, H: 10}, false},
		{"above", Rect{X: 260, Y: 100, W: 10, H: 229}, false},
		{"right of", Rect{X: 301, Y: 380, W: 10, H: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.box, body))
		})
	}
}

func TestOverlaps_Symmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gen := func(label string) Rect {
			return Rect{
				X: float64(rapid.IntRange(-500, 500).Draw(t, label+"x")),
				Y: float64(rapid.IntRange(-500, 500).Draw(t, label+"y")),
				W: float64(rapid.IntRange(0, 300).Draw(t, label+"w")),
				H: float64(rapid.IntRange(0, 300).Draw(t, label+"h")),
			}
		}
		a, b := gen("a"), gen("b")
		if Overlaps(a, b) != Overlaps(b, a) {
			t.Fatalf("overlap not symmetric for %+v %+v", a, b)
		}
	})
}

func TestMirrorOffsetX(t *testing.T) {
	assert.Equal(t, 100.0, MirrorOffsetX(100, 160, false))
	assert.Equal(t, -260.0, MirrorOffsetX(100, 160, true))
}

func TestApplyGravity(t *testing.T) {
	y, vy := ApplyGravity(100, 0, 150, 480, 0.7)
	assert.Equal(t, 100.0, y)
	assert.InDelta(t, 0.7, vy, 1e-9)

	// Lands: the next step would cross the floor.
	y, vy = ApplyGravity(320, 10, 150, 480, 0.7)
	assert.Equal(t, 330.0, y)
	assert.Equal(t, 0.0, vy)

	// Resting on the floor stays put.
	y, vy = ApplyGravity(330, 0, 150, 480, 0.7)
	assert.Equal(t, 330.0, y)
	assert.Equal(t, 0.0, vy)
	assert.True(t, OnGround(y, 150, 480))
	assert.False(t, OnGround(329, 150, 480))
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1.0, Sign(-3))
	assert.Equal(t, 0.0, Sign(0))
	assert.Equal(t, 1.0, Sign(0.1))
}
