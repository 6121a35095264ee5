package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int
}

// HealthBarData eases the displayed health toward the real value.
type HealthBarData struct {
	Displayed float64
	Target    int
	Tween     *gween.Tween
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
