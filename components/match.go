package components

import (
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
)

// Winner is the result of a bout.
type Winner int

const (
	WinnerNone Winner = iota // undecided
	WinnerPlayer1
	WinnerPlayer2
	WinnerTie
)

func (w Winner) String() string {
	switch w {
	case WinnerPlayer1:
		return "player1"
	case WinnerPlayer2:
		return "player2"
	case WinnerTie:
		return "tie"
	}
	return "none"
}

// MatchData stores the current bout state.
// This is a singleton component - only one match exists per world.
type MatchData struct {
	ID             string
	State          cfg.MatchStateID
	Timer          int // Countdown or match timer (frames remaining)
	Duration       int // Total match duration (frames)
	CountdownValue int // Current countdown number (3, 2, 1, 0 = FIGHT, -1 = none)
	Winner         Winner
	Tick           int64
}

// SecondsRemaining returns the fight timer in whole seconds, rounded up.
func (m *MatchData) SecondsRemaining() int {
	if m.State != cfg.MatchStatePlaying {
		return m.Duration / cfg.Match.TickRate
	}
	return (m.Timer + cfg.Match.TickRate - 1) / cfg.Match.TickRate
}

var Match = donburi.NewComponentType[MatchData]()
