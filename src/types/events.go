package types

// Event is anything the simulation can apply. Handlers run one at a time.
type Event interface{ isEvent() }

type DoorCmd int

const (
	CmdOpen DoorCmd = iota
	CmdClose
)

type TimerKind int

const (
	DoorTimer TimerKind = iota
	MotionTimer
)

func (k TimerKind) String() string {
	if k == DoorTimer {
		return "door"
	}
	return "motion"
}

// FloorRequested is a hall call or a car call.
type FloorRequested struct {
	Floor  int
	Button ButtonType
}

func (FloorRequested) isEvent() {}

type PassengerAdded struct {
	Origin      int
	Destination int
}

func (PassengerAdded) isEvent() {}

type DoorCommand struct {
	Cmd DoorCmd
}

func (DoorCommand) isEvent() {}

// TimerFired carries the generation the timer was started under.
// A fire whose generation is no longer current is ignored.
type TimerFired struct {
	Kind TimerKind
	Gen  uint64
}

func (TimerFired) isEvent() {}

// Outcome is what Apply reports back to the caller.
type Outcome struct {
	PassengerID int
}
