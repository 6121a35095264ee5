package config

// Difficulty is the AI skill level, 1 (easiest) to 5 (hardest).
type Difficulty int

const (
	DifficultyEasy   Difficulty = 1
	DifficultyMedium Difficulty = 3
	DifficultyHard   Difficulty = 5

	minDifficulty Difficulty = 1
	maxDifficulty Difficulty = 5
)

// Clamp returns d limited to the supported range.
func (d Difficulty) Clamp() Difficulty {
	if d < minDifficulty {
		return minDifficulty
	}
	if d > maxDifficulty {
		return maxDifficulty
	}
	return d
}

// AISettings holds tuning values for the AI at a specific difficulty
type AISettings struct {
	DecisionInterval   int // ticks between decisions
	MeleeAttackChance  float64
	RangedAttackChance float64
	ChakraAttackChance float64
	MovementSpeed      float64
	CooldownMultiplier float64
	ChakraChargeChance float64
	DodgeChance        float64
	OptimalRange       float64
	JumpChance         float64
	RetreatRange       float64
}

// AIConfigData holds distance thresholds and base cooldowns shared by every difficulty
type AIConfigData struct {
	DodgeRange     float64
	AttackRange    float64 // melee and chakra
	RangedMinRange float64
	RangedMaxRange float64

	// Base cooldowns in ticks, scaled by CooldownMultiplier
	DodgeCooldown  int
	ChakraCooldown int
	RangedCooldown int
	MeleeCooldown  int
	JumpCooldown   int

	Seed int64
}

// AI holds AI configuration
var AI AIConfigData

func init() {
	AI = AIConfigData{
		DodgeRange:     120,
		AttackRange:    180,
		RangedMinRange: 100,
		RangedMaxRange: 300,
		DodgeCooldown:  15,
		ChakraCooldown: 60,
		RangedCooldown: 30,
		MeleeCooldown:  30,
		JumpCooldown:   20,
		Seed:           42,
	}
}

// SettingsFor derives the settings bundle for d. Level 5 is hand-tuned and
// does not follow the linear progression of levels 1-4.
func SettingsFor(d Difficulty) AISettings {
	d = d.Clamp()
	return AISettings{
		DecisionInterval:   decisionInterval(d),
		MeleeAttackChance:  meleeAttackChance(d),
		RangedAttackChance: rangedAttackChance(d),
		ChakraAttackChance: chakraAttackChance(d),
		MovementSpeed:      movementSpeed(d),
		CooldownMultiplier: cooldownMultiplier(d),
		ChakraChargeChance: chakraChargeChance(d),
		DodgeChance:        dodgeChance(d),
		OptimalRange:       optimalRange(d),
		JumpChance:         jumpChance(d),
		RetreatRange:       retreatRange(d),
	}
}

func steps(d Difficulty) float64 {
	return float64(d - 1)
}

func decisionInterval(d Difficulty) int {
	if d == DifficultyHard {
		return 10
	}
	return 90 - int(d-1)*20
}

func meleeAttackChance(d Difficulty) float64 {
	if d == DifficultyHard {
		return 0.98
	}
	return 0.35 + steps(d)*0.18
}

func rangedAttackChance(d Difficulty) float64 {
	if d == DifficultyHard {
		return 0.90
	}
	return 0.25 + steps(d)*0.12
}

func chakraAttackChance(d Difficulty) float64 {
	if d == DifficultyHard {
		return 0.75
	}
	return 0.15 + steps(d)*0.06
}

func movementSpeed(d Difficulty) float64 {
	if d == DifficultyHard {
		return 9
	}
	return 3.5 + steps(d)*1.2
}

func cooldownMultiplier(d Difficulty) float64 {
	if d == DifficultyHard {
		return 0.25
	}
	return 0.9 - steps(d)*0.15
}

func chakraChargeChance(d Difficulty) float64 {
	if d == DifficultyHard {
		return 0.85
	}
	return 0.20 + steps(d)*0.10
}

func dodgeChance(d Difficulty) float64 {
	if d == DifficultyHard {
		return 0.95
	}
	return 0.25 + steps(d)*0.18
}

func optimalRange(d Difficulty) float64 {
	if d == DifficultyHard {
		return 80
	}
	return 180 - steps(d)*25
}

func jumpChance(d Difficulty) float64 {
	if d == DifficultyHard {
		return 0.25
	}
	return 0.05 + steps(d)*0.05
}

func retreatRange(d Difficulty) float64 {
	if d == DifficultyHard {
		return 180
	}
	return 100 + steps(d)*20
}
