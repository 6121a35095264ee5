package systems

import (
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// UpdateHealthBars eases each displayed health value toward the real one.
func UpdateHealthBars(w donburi.World) {
	dt := float32(1) / float32(cfg.Match.TickRate)

	components.HealthBar.Each(w, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		current := components.Health.Get(e).Current

		if current != bar.Target {
			bar.Target = current
			bar.Tween = gween.New(float32(bar.Displayed), float32(current), cfg.HealthBar.TweenSeconds, ease.OutQuad)
		}
		if bar.Tween == nil {
			return
		}

		value, done := bar.Tween.Update(dt)
		bar.Displayed = float64(value)
		if done {
			bar.Displayed = float64(bar.Target)
			bar.Tween = nil
		}
	})
}
