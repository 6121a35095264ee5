package systems

import (
	"math"

	"github.com/automoto/shinobi-duel/components"
	"github.com/automoto/shinobi-duel/shared/gamemath"
	"github.com/automoto/shinobi-duel/tags"
	"github.com/yohamta/donburi"
)

// UpdatePhysics moves fighters horizontally, stopping them at stage walls and
// edges, then integrates gravity against the stage floor.
func UpdatePhysics(w donburi.World) {
	floor := floorY(w)
	width := stageWidth(w)
	hasSpace := getSpace(w) != nil

	components.Fighter.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)

		dx := physics.SpeedX
		if dx != 0 && hasSpace && obj.Space != nil {
			dx = resolveWalls(obj, dx)
		}
		obj.X = math.Max(0, math.Min(obj.X+dx, width-obj.W))

		obj.Y, physics.SpeedY = gamemath.ApplyGravity(obj.Y, physics.SpeedY, obj.H, floor, physics.Gravity)
		obj.Update()
	})
}

// resolveWalls shortens dx so the body stops flush against the first solid
// it would enter. resolv finds the candidates; the clamp is exact.
func resolveWalls(obj *components.ObjectData, dx float64) float64 {
	collision := obj.Check(dx, 0, tags.ResolvSolid)
	if collision == nil {
		return dx
	}
	for _, wall := range collision.ObjectsByTags(tags.ResolvSolid) {
		if wall.Y >= obj.Y+obj.H || wall.Y+wall.H <= obj.Y {
			continue
		}
		if dx > 0 && obj.X+obj.W <= wall.X {
			dx = math.Min(dx, wall.X-(obj.X+obj.W))
		} else if dx < 0 && obj.X >= wall.X+wall.W {
			dx = math.Max(dx, wall.X+wall.W-obj.X)
		}
	}
	return dx
}
