package components

import (
	"github.com/automoto/shinobi-duel/shared/leveldata"
	"github.com/yohamta/donburi"
)

type StageData struct {
	*leveldata.StageData
}

var Stage = donburi.NewComponentType[StageData]()
