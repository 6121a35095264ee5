package config

import "image/color"

// FighterConfig contains per-fighter values shared by every character
type FighterConfig struct {
	// Body box
	Width  float64
	Height float64

	// Resources
	MaxHealth int
	MaxChakra int

	// Movement
	RunSpeed     float64
	JumpVelocity float64

	// Chakra charge duration in ticks (500ms at 60 TPS)
	ChargeTicks int

	// Damage multiplier applied while defending
	DefendDamageFactor float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity float64
	// FloorY is the stage line a fighter's feet rest on. Overridden by the stage's Ground object.
	FloorY float64
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	MeleeDamage int
	SpawnFrame  int // Attack2 frame at which a pending projectile is released

	// Animation cadence (ticks per frame)
	IdleFramesHold    int
	DefaultFramesHold int
}

// ProjectileTypeConfig contains configuration for a projectile variant
type ProjectileTypeConfig struct {
	Speed      float64
	Width      float64
	Height     float64 // Slash only; chakra height derives from the owner's sprite
	HeightTrim float64 // Chakra only
	Damage     int
	FramesHold int
}

// ProjectileConfig contains projectile spawn geometry and variants
type ProjectileConfig struct {
	SpawnGap     float64 // Distance between the attack box edge and the slash origin
	SlashLift    float64 // Slash is raised this much above the attack box centre
	ChakraOffset float64 // Chakra starts this far behind the slash origin
	Slash        ProjectileTypeConfig
	Chakra       ProjectileTypeConfig
}

// MatchConfig contains bout timing
type MatchConfig struct {
	TickRate           int
	CountdownSteps     int // 3, 2, 1, FIGHT
	CountdownStepTicks int
	Duration           int // frames
}

// StageConfig contains stage dimensions and the default stage
type StageConfig struct {
	Width        float64
	Height       float64
	CellSize     int
	DefaultStage string
	SpawnX       [2]float64
}

// HealthBarConfig contains displayed-health easing values
type HealthBarConfig struct {
	TweenSeconds float32
}

// DebugConfig contains debug drawing options
type DebugConfig struct {
	ShowBoxes   bool
	BodyColor   color.RGBA
	AttackColor color.RGBA
	SlashColor  color.RGBA
	ChakraColor color.RGBA
}

// HUDConfig contains health bar and text layout for the window host
type HUDConfig struct {
	BarWidth   float32
	BarHeight  float32
	Margin     float32
	PipSize    float32
	PipGap     float32
	FontSize   float64
	TitleSize  float64
	HitFlash   int // ticks a fighter stays highlighted after a hit
	ResultHold int // ticks the finished bout stays on screen before the result
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Fighter FighterConfig
var Physics PhysicsConfig
var Combat CombatConfig
var Projectile ProjectileConfig
var Match MatchConfig
var Stage StageConfig
var HealthBar HealthBarConfig
var Debug DebugConfig
var HUD HUDConfig

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1024,
		Height: 576,
		Title:  "Shinobi Duel",
	}

	Fighter = FighterConfig{
		Width:              50,
		Height:             150,
		MaxHealth:          200,
		MaxChakra:          3,
		RunSpeed:           3,
		JumpVelocity:       -20,
		ChargeTicks:        30,
		DefendDamageFactor: 0.2,
	}

	Physics = PhysicsConfig{
		Gravity: 0.7,
		FloorY:  480, // 576 canvas minus 96px of scenery
	}

	Combat = CombatConfig{
		MeleeDamage:       10,
		SpawnFrame:        4,
		IdleFramesHold:    8,
		DefaultFramesHold: 5,
	}

	Projectile = ProjectileConfig{
		SpawnGap:     20,
		SlashLift:    20,
		ChakraOffset: 20,
		Slash: ProjectileTypeConfig{
			Speed:      10,
			Width:      80,
			Height:     40,
			Damage:     10,
			FramesHold: 3,
		},
		Chakra: ProjectileTypeConfig{
			Speed:      12, // 1.2x slash
			Width:      40,
			HeightTrim: 70,
			Damage:     80,
			FramesHold: 5,
		},
	}

	Match = MatchConfig{
		TickRate:           60,
		CountdownSteps:     4,
		CountdownStepTicks: 60,
		Duration:           60 * 60,
	}

	Stage = StageConfig{
		Width:        1024,
		Height:       576,
		CellSize:     16,
		DefaultStage: "dojo",
		SpawnX:       [2]float64{100, 874},
	}

	HealthBar = HealthBarConfig{
		TweenSeconds: 0.4,
	}

	Debug = DebugConfig{
		ShowBoxes:   true,
		BodyColor:   color.RGBA{R: 0, G: 200, B: 255, A: 120},
		AttackColor: color.RGBA{R: 255, G: 60, B: 60, A: 120},
		SlashColor:  color.RGBA{R: 255, G: 255, B: 100, A: 180},
		ChakraColor: color.RGBA{R: 128, G: 0, B: 255, A: 180},
	}

	HUD = HUDConfig{
		BarWidth:   400,
		BarHeight:  24,
		Margin:     20,
		PipSize:    12,
		PipGap:     6,
		FontSize:   16,
		TitleSize:  40,
		HitFlash:   8,
		ResultHold: 120,
	}

	loadRoster()
}

// GroundY returns the y a fighter of the configured height rests at.
func GroundY() float64 {
	return Physics.FloorY - Fighter.Height
}

// Colors
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	DarkRed      = color.RGBA{R: 120, G: 20, B: 20, A: 255}
	Green        = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Sky          = color.RGBA{R: 24, G: 28, B: 48, A: 255}
	Ground       = color.RGBA{R: 70, G: 52, B: 40, A: 255}
	Stone        = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)
