// Package leveldata provides TMX stage parsing. It has no dependencies on
// ebitengine, donburi or resolv.
package leveldata

// StageData holds everything the simulation needs from a stage file.
type StageData struct {
	Name        string
	Width       float64
	Height      float64
	FloorY      float64 // top of the Ground object
	Walls       []Rect
	SpawnPoints []SpawnPoint
}

// Rect is a solid stage rectangle.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint is a fighter start position.
type SpawnPoint struct {
	X, Y float64
	Slot int
}

// Spawn returns the spawn point for slot, if the stage defines one.
func (s *StageData) Spawn(slot int) (SpawnPoint, bool) {
	for _, sp := range s.SpawnPoints {
		if sp.Slot == slot {
			return sp, true
		}
	}
	return SpawnPoint{}, false
}
