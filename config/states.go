package config

// StateID identifies a fighter state.
type StateID int

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStateWaiting   MatchStateID = iota // Created, not yet started
	MatchStateCountdown                     // Pre-fight countdown (3, 2, 1, FIGHT)
	MatchStatePlaying                       // Active fighting
	MatchStateFinished                      // Winner decided
)

const (
	StateNone StateID = -1

	Idle StateID = iota
	Run
	JumpStart
	JumpUp
	JumpDown
	Fall
	Attack1 // melee
	Attack2 // ranged or chakra
	TakeHit
	Death
	Charging
	Defend
)

// AllStates lists every fighter state in declaration order.
var AllStates = []StateID{
	Idle, Run, JumpStart, JumpUp, JumpDown, Fall,
	Attack1, Attack2, TakeHit, Death, Charging, Defend,
}

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Run:       "run",
	JumpStart: "jumpStart",
	JumpUp:    "jumpUp",
	JumpDown:  "jumpDown",
	Fall:      "fall",
	Attack1:   "attack1",
	Attack2:   "attack2",
	TakeHit:   "takeHit",
	Death:     "death",
	Charging:  "charging",
	Defend:    "defend",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsAirborneState reports whether s is one of the jump or fall states.
func (s StateID) IsAirborneState() bool {
	return s == JumpStart || s == JumpUp || s == JumpDown || s == Fall
}

// IsAttackState reports whether s is a melee or ranged attack.
func (s StateID) IsAttackState() bool {
	return s == Attack1 || s == Attack2
}

// SheetID names the sprite sheet a state animates with.
type SheetID string

const (
	SheetIdle    SheetID = "idle"
	SheetRun     SheetID = "run"
	SheetJump    SheetID = "jump"
	SheetFall    SheetID = "fall"
	SheetAttack1 SheetID = "attack1"
	SheetAttack2 SheetID = "attack2"
	SheetTakeHit SheetID = "takeHit"
	SheetDeath   SheetID = "death"
)

// StateToSheet maps a state to its sprite sheet. Charging and Defend reuse the idle sheet.
var StateToSheet = map[StateID]SheetID{
	Idle:      SheetIdle,
	Run:       SheetRun,
	JumpStart: SheetJump,
	JumpUp:    SheetJump,
	JumpDown:  SheetFall,
	Fall:      SheetFall,
	Attack1:   SheetAttack1,
	Attack2:   SheetAttack2,
	TakeHit:   SheetTakeHit,
	Death:     SheetDeath,
	Charging:  SheetIdle,
	Defend:    SheetIdle,
}

func (m MatchStateID) String() string {
	switch m {
	case MatchStateWaiting:
		return "waiting"
	case MatchStateCountdown:
		return "countdown"
	case MatchStatePlaying:
		return "playing"
	case MatchStateFinished:
		return "finished"
	}
	return "unknown"
}
