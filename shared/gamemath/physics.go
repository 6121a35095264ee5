package gamemath

// ApplyGravity integrates one tick of vertical motion against a floor line.
// y is the top of a body of the given height. When the body would reach the
// floor this tick it is snapped onto it and its vertical speed is zeroed.
func ApplyGravity(y, speedY, height, floorY, gravity float64) (newY, newSpeedY float64) {
	y += speedY
	if y+height+speedY >= floorY {
		return floorY - height, 0
	}
	return y, speedY + gravity
}

// OnGround reports whether a body top at y of the given height rests on the floor line.
func OnGround(y, height, floorY float64) bool {
	return y >= floorY-height
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
