package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/shinobi-duel/shared/leveldata"
)

var (
	//go:embed stages/*.tmx
	stageFS embed.FS
)

// StageDir is the directory holding stage TMX files inside Stages().
const StageDir = "stages"

// Stages returns the embedded stage files.
func Stages() fs.FS {
	return stageFS
}

// LoadStage loads the embedded stage called name.
func LoadStage(name string) (*leveldata.StageData, error) {
	stages, names, err := leveldata.LoadAllStages(Stages(), StageDir)
	if err != nil {
		return nil, err
	}
	stage, ok := stages[name]
	if !ok {
		return nil, fmt.Errorf("unknown stage %q, have %v", name, names)
	}
	return stage, nil
}
