package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(16, 40))

	hud := HUD.Get().Metrics().Height
	title := Title.Get().Metrics().Height
	assert.Greater(t, title, hud)
	assert.NotNil(t, Small.Get())
}

func TestLoadFontWithSize_BadData(t *testing.T) {
	assert.Error(t, LoadFontWithSize("broken", []byte("not a font"), 12))
	assert.Panics(t, func() { FontName("broken").Get() })
}
