package components

import "github.com/yohamta/donburi"

// ScheduledKind identifies what a scheduled event does when it fires.
type ScheduledKind int

const (
	ScheduleChakraCharge ScheduledKind = iota
)

// ScheduledEvent fires on tick Due unless its token was cancelled first.
type ScheduledEvent struct {
	Due    int64
	Target *donburi.Entry
	Kind   ScheduledKind
	Token  uint64
}

// SchedulerData holds deferred events processed inside the fixed tick. Singleton.
type SchedulerData struct {
	Now       int64
	Events    []ScheduledEvent
	lastToken uint64
}

// Schedule queues an event delay ticks from now and returns its cancellation token.
func (s *SchedulerData) Schedule(target *donburi.Entry, kind ScheduledKind, delay int) uint64 {
	s.lastToken++
	s.Events = append(s.Events, ScheduledEvent{
		Due:    s.Now + int64(delay),
		Target: target,
		Kind:   kind,
		Token:  s.lastToken,
	})
	return s.lastToken
}

// Cancel drops the event holding token. It reports whether one was pending.
func (s *SchedulerData) Cancel(token uint64) bool {
	for i, ev := range s.Events {
		if ev.Token == token {
			s.Events = append(s.Events[:i], s.Events[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending event and returns how many there were.
func (s *SchedulerData) CancelAll() int {
	n := len(s.Events)
	s.Events = nil
	return n
}

// PopDue removes and returns the events due at or before Now, oldest first.
func (s *SchedulerData) PopDue() []ScheduledEvent {
	var due []ScheduledEvent
	kept := s.Events[:0]
	for _, ev := range s.Events {
		if ev.Due <= s.Now {
			due = append(due, ev)
		} else {
			kept = append(kept, ev)
		}
	}
	s.Events = kept
	return due
}

var Scheduler = donburi.NewComponentType[SchedulerData]()
