package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimation_HoldCadence(t *testing.T) {
	a := NewSheet(6, 5)
	for i := 0; i < 4; i++ {
		a.Update()
	}
	assert.Equal(t, 0, a.Frame())
	a.Update()
	assert.Equal(t, 1, a.Frame())

	for i := 0; i < 15; i++ {
		a.Update()
	}
	assert.Equal(t, 4, a.Frame())
	assert.False(t, a.AtLastFrame())

	for i := 0; i < 5; i++ {
		a.Update()
	}
	assert.True(t, a.AtLastFrame())
}

func TestAnimation_Loops(t *testing.T) {
	a := NewSheet(2, 1)
	a.Update()
	assert.Equal(t, 1, a.Frame())
	a.Update()
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
}

func TestAnimation_FreezeOnComplete(t *testing.T) {
	a := NewSheet(3, 1)
	a.FreezeOnComplete = true
	for i := 0; i < 10; i++ {
		a.Update()
	}
	assert.Equal(t, 2, a.Frame())
}

func TestAnimation_LockedAndRestart(t *testing.T) {
	a := NewSheet(8, 1)
	a.Update()
	a.Update()
	assert.Equal(t, 2, a.Frame())

	a.Restart()
	a.Locked = true
	for i := 0; i < 5; i++ {
		a.Update()
	}
	assert.Equal(t, 0, a.Frame())

	a.SetFrame(99)
	assert.Equal(t, 7, a.Frame())
}

func TestNewSheet_SingleFrame(t *testing.T) {
	a := NewSheet(0, 0)
	assert.True(t, a.AtLastFrame())
	a.Update()
	assert.Equal(t, 0, a.Frame())
}
