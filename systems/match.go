package systems

import (
	"github.com/automoto/shinobi-duel/components"
	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// UpdateMatch handles match state transitions and timers. It runs first in
// the tick so the rest of the tick sees the current match state.
func UpdateMatch(w donburi.World) {
	match := getMatch(w)
	if match == nil {
		return
	}
	match.Tick++

	switch match.State {
	case cfg.MatchStateWaiting:
		// Started explicitly by StartMatch
		return

	case cfg.MatchStateCountdown:
		holdFighters(w)
		updateCountdown(w, match)

	case cfg.MatchStatePlaying:
		updatePlaying(w, match)

	case cfg.MatchStateFinished:
		return
	}
}

func updateCountdown(w donburi.World, match *components.MatchData) {
	if match.Timer > 0 {
		match.Timer--
		match.CountdownValue = min(match.Timer/cfg.Match.CountdownStepTicks, cfg.Match.CountdownSteps-1)
		if match.Timer > 0 {
			return
		}
	}
	beginPlaying(w, match)
}

func beginPlaying(w donburi.World, match *components.MatchData) {
	match.State = cfg.MatchStatePlaying
	match.Timer = match.Duration
	match.CountdownValue = -1
	publish(w, components.Event{Kind: cfg.EventMatchStarted, Slot: -1})
	logger.Info("match started", zap.String("match_id", match.ID))
}

func updatePlaying(w donburi.World, match *components.MatchData) {
	if anyoneDown(w) {
		finishMatch(w, match)
		return
	}
	if match.Timer > 0 {
		match.Timer--
		if match.Timer > 0 {
			return
		}
	}
	// Time's up
	finishMatch(w, match)
}

func finishMatch(w donburi.World, match *components.MatchData) {
	match.State = cfg.MatchStateFinished
	match.Winner = Winner(w)
	publish(w, components.Event{Kind: cfg.EventMatchFinished, Slot: -1})
	logger.Info("match finished",
		zap.String("match_id", match.ID),
		zap.Stringer("winner", match.Winner),
		zap.Int64("tick", match.Tick),
	)
}

// holdFighters keeps both fighters standing still during the countdown.
func holdFighters(w donburi.World) {
	components.Fighter.Each(w, func(e *donburi.Entry) {
		components.Physics.Get(e).SpeedX = 0
		switch components.State.Get(e).CurrentState {
		case cfg.Idle, cfg.TakeHit, cfg.Death:
		default:
			ChangeState(w, e, cfg.Idle)
		}
	})
}

func anyoneDown(w donburi.World) bool {
	down := false
	components.Fighter.Each(w, func(e *donburi.Entry) {
		if components.Health.Get(e).Current <= 0 {
			down = true
		}
	})
	return down
}

// fightersBySlot returns player one and player two, either may be nil.
func fightersBySlot(w donburi.World) (p1, p2 *donburi.Entry) {
	components.Fighter.Each(w, func(e *donburi.Entry) {
		switch components.Fighter.Get(e).Slot {
		case 0:
			p1 = e
		case 1:
			p2 = e
		}
	})
	return p1, p2
}

// Winner decides the bout from relative health: a downed player one loses
// first, then a downed player two, otherwise the healthier fighter wins.
func Winner(w donburi.World) components.Winner {
	p1, p2 := fightersBySlot(w)
	if p1 == nil || p2 == nil {
		return components.WinnerNone
	}
	h1 := components.Health.Get(p1).Current
	h2 := components.Health.Get(p2).Current
	switch {
	case h1 <= 0:
		return components.WinnerPlayer2
	case h2 <= 0:
		return components.WinnerPlayer1
	case h1 == h2:
		return components.WinnerTie
	case h1 > h2:
		return components.WinnerPlayer1
	}
	return components.WinnerPlayer2
}

// StartMatch transitions from waiting to the countdown, or straight to
// playing when the countdown is disabled.
func StartMatch(w donburi.World) {
	match := getMatch(w)
	if match == nil || match.State != cfg.MatchStateWaiting {
		return
	}

	if cfg.Match.CountdownSteps <= 0 {
		beginPlaying(w, match)
		return
	}
	match.State = cfg.MatchStateCountdown
	match.Timer = cfg.Match.CountdownSteps * cfg.Match.CountdownStepTicks
	match.CountdownValue = cfg.Match.CountdownSteps - 1
}

// IsMatchPlaying returns true if the match is in the playing state
func IsMatchPlaying(w donburi.World) bool {
	match := getMatch(w)
	if match == nil {
		return true // No match component = always playing
	}
	return match.State == cfg.MatchStatePlaying
}

// IsMatchFinished returns true if the match has ended
func IsMatchFinished(w donburi.World) bool {
	match := getMatch(w)
	return match != nil && match.State == cfg.MatchStateFinished
}

// WithPlaying wraps a system so it only runs while the match is playing.
func WithPlaying(system func(donburi.World)) func(donburi.World) {
	return func(w donburi.World) {
		if IsMatchPlaying(w) {
			system(w)
		}
	}
}
