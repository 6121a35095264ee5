package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from stage files.
const (
	GroupGround = "Ground"
	GroupWalls  = "Walls"
	GroupSpawn  = "Spawn"
)

// LoadStage parses a TMX file and returns its stage data. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
func LoadStage(fsys fs.FS, tmxPath string) (*StageData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &StageData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	foundGround := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupGround:
			for _, o := range og.Objects {
				// Highest ground object wins
				if !foundGround || o.Y < data.FloorY {
					data.FloorY = o.Y
				}
				foundGround = true
			}
		case GroupWalls:
			for _, o := range og.Objects {
				data.Walls = append(data.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupSpawn:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:    o.X,
					Y:    o.Y,
					Slot: o.Properties.GetInt("slot"),
				})
			}
		}
	}

	if !foundGround {
		return nil, fmt.Errorf("stage %s has no %s object", tmxPath, GroupGround)
	}

	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].Slot < data.SpawnPoints[j].Slot
	})

	return data, nil
}

// LoadAllStages discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllStages(fsys fs.FS, dir string) (map[string]*StageData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	stages := make(map[string]*StageData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadStage(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stages[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return stages, names, nil
}
