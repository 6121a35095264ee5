package config

// EventKind identifies a discrete simulation event published for sound and
// presentation layers.
type EventKind int

const (
	EventNone EventKind = iota
	EventAttackCommitted
	EventProjectileSpawned
	EventHitLanded
	EventChakraChargeTick
	EventFighterKilled
	EventMatchStarted
	EventMatchFinished
)

func (k EventKind) String() string {
	switch k {
	case EventAttackCommitted:
		return "attackCommitted"
	case EventProjectileSpawned:
		return "projectileSpawned"
	case EventHitLanded:
		return "hitLanded"
	case EventChakraChargeTick:
		return "chakraChargeTick"
	case EventFighterKilled:
		return "fighterKilled"
	case EventMatchStarted:
		return "matchStarted"
	case EventMatchFinished:
		return "matchFinished"
	}
	return "none"
}

// AttackKind is the attack carried by an attack or projectile event.
type AttackKind int

const (
	AttackNone AttackKind = iota
	AttackMelee
	AttackRanged
	AttackChakra
)

func (a AttackKind) String() string {
	switch a {
	case AttackMelee:
		return "melee"
	case AttackRanged:
		return "ranged"
	case AttackChakra:
		return "chakra"
	}
	return "none"
}
