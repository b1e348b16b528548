package types

import (
	"errors"
	"time"
)

// ErrInvalidRequest is returned when a trip request cannot be accepted.
var ErrInvalidRequest = errors.New("invalid request")

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Stop MotorDirection = 0
)

func (d MotorDirection) String() string {
	switch d {
	case MD_Up:
		return "Up"
	case MD_Down:
		return "Down"
	default:
		return "Idle"
	}
}

func (d MotorDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type ButtonType int

const (
	BT_Hall ButtonType = iota
	BT_Cab
)

type ButtonEvent struct {
	Floor  int
	Button ButtonType
}

type ElevBehaviour int

const (
	Idle ElevBehaviour = iota
	Moving
	DoorOpen
)

// Stores direction and behaviour chosen for the car
type DirnBehaviourPair struct {
	Dir       MotorDirection
	Behaviour ElevBehaviour
}

type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpening
	DoorOpened
	DoorClosing
)

func (s DoorState) String() string {
	switch s {
	case DoorClosed:
		return "CLOSED"
	case DoorOpening:
		return "OPENING"
	case DoorOpened:
		return "OPEN"
	case DoorClosing:
		return "CLOSING"
	}
	return "UNKNOWN"
}

func (s DoorState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type PassengerStatus int

const (
	Waiting PassengerStatus = iota
	Onboard
	Done
)

func (s PassengerStatus) String() string {
	switch s {
	case Waiting:
		return "Waiting"
	case Onboard:
		return "Onboard"
	case Done:
		return "Done"
	}
	return "Unknown"
}

func (s PassengerStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Passenger is a single trip request. Origin and Destination always differ.
type Passenger struct {
	ID          int             `json:"id"`
	Origin      int             `json:"origin"`
	Destination int             `json:"destination"`
	Status      PassengerStatus `json:"status"`
}

// Snapshot is a read-only copy of the simulation state.
type Snapshot struct {
	Time       time.Duration  `json:"time"`
	Floor      int            `json:"floor"`
	Dir        MotorDirection `json:"direction"`
	Door       DoorState      `json:"door"`
	Queue      []int          `json:"queue"`
	HallCalls  []int          `json:"hallcall"`
	CabCalls   []int          `json:"carcall"`
	Passengers []Passenger    `json:"passengers"`
	Onboard    int            `json:"person"`
}

// ActivePassengers leaves out passengers that have reached their destination.
func (s Snapshot) ActivePassengers() []Passenger {
	active := make([]Passenger, 0, len(s.Passengers))
	for _, p := range s.Passengers {
		if p.Status != Done {
			active = append(active, p)
		}
	}
	return active
}
