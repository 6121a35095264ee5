package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/automoto/shinobi-duel/fonts"
	"github.com/automoto/shinobi-duel/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var slotColors = [2]color.RGBA{
	{R: 220, G: 90, B: 40, A: 255},
	{R: 60, G: 120, B: 230, A: 255},
}

func (bs *BattleScene) drawStage(e *ecs.ECS, screen *ebiten.Image) {
	width, height := float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Sky, false)

	entry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(entry)
	floor := float32(stage.FloorY)
	vector.FillRect(screen, 0, floor, width, height-floor, cfg.Ground, false)
	for _, wall := range stage.Walls {
		vector.FillRect(screen, float32(wall.X), float32(wall.Y), float32(wall.W), float32(wall.H), cfg.Stone, false)
	}
}

func (bs *BattleScene) drawFighters(_ *ecs.ECS, screen *ebiten.Image) {
	for _, f := range bs.snap.Fighters {
		clr := slotColors[f.Slot%len(slotColors)]
		switch {
		case f.Dead:
			clr = cfg.DarkGray
		case bs.flashes[f.Slot%len(bs.flashes)] > 0:
			clr = cfg.White
		case f.IsCharging:
			clr = cfg.Purple
		}
		fillRect(screen, f.Body, clr)
		if f.IsDefending {
			strokeRect(screen, f.Body, 3, cfg.Yellow)
		}

		// Facing marker on the leading edge
		marker := gamemath.Rect{X: f.Body.X + f.Body.W - 6, Y: f.Body.Y + 20, W: 6, H: 20}
		if f.FacingLeft {
			marker.X = f.Body.X
		}
		fillRect(screen, marker, cfg.White)

		if cfg.Debug.ShowBoxes {
			strokeRect(screen, f.Body, 1, cfg.Debug.BodyColor)
			if f.IsAttacking {
				fillRect(screen, f.AttackBox, cfg.Debug.AttackColor)
			}
		}
	}

	for _, p := range bs.snap.Projectiles {
		clr := cfg.Yellow
		if p.Kind == cfg.AttackChakra {
			clr = cfg.Purple
		}
		fillRect(screen, p.Body, clr)
	}
}

func (bs *BattleScene) drawHUD(_ *ecs.ECS, screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	hud := cfg.HUD

	for _, f := range bs.snap.Fighters {
		x := hud.Margin
		if f.Slot == 1 {
			x = width - hud.Margin - hud.BarWidth
		}
		y := hud.Margin

		// Health bar background
		vector.FillRect(screen, x, y, hud.BarWidth, hud.BarHeight, cfg.DarkRed, false)

		// Eased health fill. Player two's bar drains toward the centre.
		ratio := float32(0)
		if f.MaxHealth > 0 {
			ratio = float32(f.DisplayedHealth) / float32(f.MaxHealth)
		}
		ratio = max(0, min(1, ratio))
		fillW := hud.BarWidth * ratio
		fillX := x
		if f.Slot == 1 {
			fillX = x + hud.BarWidth - fillW
		}
		vector.FillRect(screen, fillX, y, fillW, hud.BarHeight, cfg.Green, false)
		vector.StrokeRect(screen, x, y, hud.BarWidth, hud.BarHeight, 2, cfg.White, false)

		// Chakra pips
		pipY := y + hud.BarHeight + hud.PipGap
		for i := 0; i < f.MaxChakra; i++ {
			pipX := x + float32(i)*(hud.PipSize+hud.PipGap)
			if f.Slot == 1 {
				pipX = x + hud.BarWidth - float32(i+1)*(hud.PipSize+hud.PipGap) + hud.PipGap
			}
			clr := cfg.DarkGray
			if i < f.Chakra {
				clr = cfg.Purple
			}
			vector.FillRect(screen, pipX, pipY, hud.PipSize, hud.PipSize, clr, false)
		}

		name := f.Character
		if f.IsBot {
			name += " (AI)"
		}
		nameX := int(x)
		if f.Slot == 1 {
			nameX = int(x+hud.BarWidth) - text.BoundString(fonts.HUD.Get(), name).Dx()
		}
		text.Draw(screen, name, fonts.HUD.Get(), nameX, nameBaseline(pipY), cfg.White)
	}

	timer := fmt.Sprintf("%d", bs.snap.SecondsRemaining)
	drawCentered(screen, timer, cfg.White, int(hud.Margin+hud.BarHeight))

	switch bs.snap.MatchState {
	case cfg.MatchStateCountdown:
		label := fmt.Sprintf("%d", bs.snap.Countdown)
		if bs.snap.Countdown == 0 {
			label = "FIGHT!"
		}
		drawTitle(screen, label, cfg.Yellow)
	case cfg.MatchStateFinished:
		drawTitle(screen, winnerText(bs.snap.Winner), cfg.Yellow)
	}
}

// nameBaseline is the text baseline of a fighter's name below its chakra pips.
func nameBaseline(pipY float32) int {
	return int(pipY + cfg.HUD.PipSize + float32(cfg.HUD.FontSize) + 4)
}

func winnerText(w components.Winner) string {
	switch w {
	case components.WinnerPlayer1:
		return "Player 1 Wins"
	case components.WinnerPlayer2:
		return "Player 2 Wins"
	case components.WinnerTie:
		return "Tie"
	}
	return ""
}

func fillRect(screen *ebiten.Image, r gamemath.Rect, clr color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, width float32, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, clr, false)
}

func drawTitle(screen *ebiten.Image, s string, clr color.Color) {
	face := fonts.Title.Get()
	bounds := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := screen.Bounds().Dy() / 3
	text.Draw(screen, s, face, x, y, clr)
}

func drawCentered(screen *ebiten.Image, s string, clr color.Color, y int) {
	face := fonts.HUD.Get()
	bounds := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, clr)
}
