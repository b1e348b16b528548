// Package door holds the four-state door machine. It only decides transitions;
// scheduling the expiry timers is left to the caller.
package door

import (
	"time"

	"liftsim/src/types"
)

type Trigger int

const (
	CmdOpen  Trigger = iota // manual open button
	CmdClose                // manual close button
	Arrive                  // car reached the floor at the head of the queue
	Reopen                  // passenger appeared at the current floor
	Expire                  // the timer of the current state ran out
)

func (t Trigger) String() string {
	return [...]string{"open", "close", "arrive", "reopen", "expire"}[t]
}

var transitions = map[types.DoorState]map[Trigger]types.DoorState{
	types.DoorClosed: {
		CmdOpen: types.DoorOpening,
		Arrive:  types.DoorOpening,
		Reopen:  types.DoorOpening,
	},
	types.DoorOpening: {
		Expire: types.DoorOpened,
	},
	types.DoorOpened: {
		Expire:   types.DoorClosing,
		CmdClose: types.DoorClosing,
	},
	types.DoorClosing: {
		Expire:  types.DoorClosed,
		CmdOpen: types.DoorOpening,
		Reopen:  types.DoorOpening,
	},
}

type Door struct {
	State     types.DoorState
	durations map[types.DoorState]time.Duration
}

func New(open, dwell, close time.Duration) *Door {
	return &Door{
		State: types.DoorClosed,
		durations: map[types.DoorState]time.Duration{
			types.DoorOpening: open,
			types.DoorOpened:  dwell,
			types.DoorClosing: close,
		},
	}
}

// Fire moves the door along the transition table. Triggers with no entry for
// the current state are ignored and reported as false.
func (d *Door) Fire(trigger Trigger) (types.DoorState, bool) {
	next, ok := transitions[d.State][trigger]
	if !ok {
		return d.State, false
	}
	d.State = next
	return next, true
}

// Hold is how long the current state lasts before it expires. Closed never expires.
func (d *Door) Hold() (time.Duration, bool) {
	hold, ok := d.durations[d.State]
	return hold, ok
}

// OpeningOrOpen reports whether the door is already progressing toward open.
func (d *Door) OpeningOrOpen() bool {
	return d.State == types.DoorOpening || d.State == types.DoorOpened
}
