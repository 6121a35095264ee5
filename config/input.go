package config

// ActionID represents a logical fighter action. Key bindings live with the
// window host so the simulation stays headless.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionMelee
	ActionRanged
	ActionCharge
	ActionChakra
	ActionDefend
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionMoveLeft:  "moveLeft",
	ActionMoveRight: "moveRight",
	ActionJump:      "jump",
	ActionMelee:     "melee",
	ActionRanged:    "ranged",
	ActionCharge:    "charge",
	ActionChakra:    "chakra",
	ActionDefend:    "defend",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
