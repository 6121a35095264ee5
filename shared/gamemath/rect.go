package gamemath

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterY returns the vertical centre.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether a and b intersect. Edges are inclusive, so
// rectangles that only touch count as overlapping.
func Overlaps(a, b Rect) bool {
	return a.Right() >= b.X &&
		a.X <= b.Right() &&
		a.Bottom() >= b.Y &&
		a.Y <= b.Bottom()
}

// MirrorOffsetX returns the horizontal offset of a box authored facing right
// when the owner faces left.
func MirrorOffsetX(offsetX, width float64, flipped bool) float64 {
	if flipped {
		return -offsetX - width
	}
	return offsetX
}
