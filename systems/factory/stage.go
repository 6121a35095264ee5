package factory

import (
	"github.com/automoto/shinobi-duel/archetypes"
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateStage spawns the stage singleton, its collision space and its walls.
func CreateStage(w donburi.World, stage *leveldata.StageData) *donburi.Entry {
	entry := archetypes.Stage.Spawn(w)
	components.Stage.SetValue(entry, components.StageData{StageData: stage})

	CreateSpace(w, int(stage.Width), int(stage.Height), cfg.Stage.CellSize, cfg.Stage.CellSize)
	for _, r := range stage.Walls {
		CreateWall(w, r.X, r.Y, r.W, r.H)
	}
	return entry
}

// DefaultStage describes the flat, wall-less arena used when no stage file is loaded.
func DefaultStage() *leveldata.StageData {
	return &leveldata.StageData{
		Name:   "arena",
		Width:  cfg.Stage.Width,
		Height: cfg.Stage.Height,
		FloorY: cfg.Physics.FloorY,
		SpawnPoints: []leveldata.SpawnPoint{
			{X: cfg.Stage.SpawnX[0], Y: cfg.GroundY(), Slot: 0},
			{X: cfg.Stage.SpawnX[1], Y: cfg.GroundY(), Slot: 1},
		},
	}
}
