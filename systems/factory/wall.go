package factory

import (
	"github.com/automoto/shinobi-duel/archetypes"
	"github.com/automoto/shinobi-duel/components"
	"github.com/automoto/shinobi-duel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateWall(w donburi.World, x, y, width, height float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(w, obj)

	return wall
}
