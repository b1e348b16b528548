package timer

import (
	"log/slog"
	"time"

	"liftsim/src/types"
)

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// Timer is a pending expiry on the logical clock.
type Timer struct {
	Kind types.TimerKind
	Due  time.Duration
	Gen  uint64
}

type slot struct {
	timer  Timer
	active bool
}

// Timers holds at most one pending timer per kind. Starting a kind replaces
// whatever was pending for it, so a superseded expiry can never fire.
type Timers struct {
	slots [2]slot
	gens  [2]uint64
}

// Do applies a Start or Stop action. Start returns the new generation.
func (t *Timers) Do(action TimerAction, kind types.TimerKind, due time.Duration) uint64 {
	switch action {
	case Start:
		t.gens[kind]++
		t.slots[kind] = slot{
			timer:  Timer{Kind: kind, Due: due, Gen: t.gens[kind]},
			active: true,
		}
		slog.Debug("Timer started", "kind", kind, "due", due, "gen", t.gens[kind])
	case Stop:
		if t.slots[kind].active {
			slog.Debug("Timer stopped", "kind", kind, "gen", t.slots[kind].timer.Gen)
		}
		t.slots[kind] = slot{}
	}
	return t.gens[kind]
}

func (t *Timers) Start(kind types.TimerKind, due time.Duration) uint64 {
	return t.Do(Start, kind, due)
}

func (t *Timers) Stop(kind types.TimerKind) {
	t.Do(Stop, kind, 0)
}

func (t *Timers) Active(kind types.TimerKind) bool {
	return t.slots[kind].active
}

func (t *Timers) Pending(kind types.TimerKind) (Timer, bool) {
	s := t.slots[kind]
	return s.timer, s.active
}

// Fire consumes the pending timer of kind if it carries gen.
// It reports false for stale or already consumed timers.
func (t *Timers) Fire(kind types.TimerKind, gen uint64) bool {
	s := t.slots[kind]
	if !s.active || s.timer.Gen != gen {
		return false
	}
	t.slots[kind] = slot{}
	return true
}

// Next returns the earliest timer due at or before limit.
// Door timers win ties because the door gates motion.
func (t *Timers) Next(limit time.Duration) (Timer, bool) {
	var (
		next  Timer
		found bool
	)
	for _, kind := range []types.TimerKind{types.DoorTimer, types.MotionTimer} {
		s := t.slots[kind]
		if !s.active || s.timer.Due > limit {
			continue
		}
		if !found || s.timer.Due < next.Due {
			next = s.timer
			found = true
		}
	}
	return next, found
}

// NextDue reports when the next timer expires, if any is pending.
func (t *Timers) NextDue() (time.Duration, bool) {
	var (
		due   time.Duration
		found bool
	)
	for _, s := range t.slots {
		if s.active && (!found || s.timer.Due < due) {
			due = s.timer.Due
			found = true
		}
	}
	return due, found
}
