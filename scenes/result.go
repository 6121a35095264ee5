package scenes

import (
	"image/color"

	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ResultScene shows the winner until a player asks for a rematch.
type ResultScene struct {
	sceneChanger SceneChanger
	setup        Setup
	winner       components.Winner
	// Reusable slice for gamepad IDs to avoid allocations
	gamepads []ebiten.GamepadID
}

// NewResultScene creates the result screen for a finished bout.
func NewResultScene(sc SceneChanger, setup Setup, winner components.Winner) *ResultScene {
	return &ResultScene{sceneChanger: sc, setup: setup, winner: winner}
}

func (rs *ResultScene) Update() {
	if rs.rematchPressed() {
		rs.setup.Seed++
		rs.sceneChanger.ChangeScene(NewBattleScene(rs.sceneChanger, rs.setup))
	}
}

func (rs *ResultScene) rematchPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	rs.gamepads = ebiten.AppendGamepadIDs(rs.gamepads[:0])
	for _, id := range rs.gamepads {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

func (rs *ResultScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	width, height := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.BlackOverlay, false)

	drawTitle(screen, winnerText(rs.winner), cfg.Yellow)
	drawCentered(screen, "Press Enter for a rematch", cfg.White, screen.Bounds().Dy()/2)
}
