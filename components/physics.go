package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX  float64
	SpeedY  float64
	Gravity float64
	// RunSpeed is the horizontal speed move commands apply.
	RunSpeed float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
