// Car position and the FIFO stop queue it serves.
package elev

import (
	"fmt"
	"log/slog"
	"slices"

	"liftsim/src/types"
)

// Car is the only authority on the elevator position.
type Car struct {
	Floor     int
	Queue     []int
	hallCalls map[int]bool
	cabCalls  map[int]bool
	floors    []int
}

// NewCar places the car at floor. floors is the ordered set of valid floors.
func NewCar(floor int, floors []int) *Car {
	return &Car{
		Floor:     floor,
		hallCalls: make(map[int]bool),
		cabCalls:  make(map[int]bool),
		floors:    slices.Clone(floors),
	}
}

// RequestFloor appends the floor unless it is already queued or is the current floor.
// Reports whether the queue changed.
func (car *Car) RequestFloor(btn types.ButtonEvent) bool {
	if !car.validFloor(btn.Floor) {
		slog.Warn("Ignoring request for unknown floor", "floor", btn.Floor)
		return false
	}
	if btn.Floor == car.Floor {
		slog.Debug("Ignoring request for current floor", "call", FormatBtnEvent(btn))
		return false
	}
	car.markCall(btn)
	if car.queued(btn.Floor) {
		slog.Debug("Floor already queued", "call", FormatBtnEvent(btn))
		return false
	}
	car.Queue = append(car.Queue, btn.Floor)
	slog.Debug("Floor queued", "call", FormatBtnEvent(btn), "queue", car.Queue)
	return true
}

// Head returns the floor at the front of the queue.
func (car *Car) Head() (int, bool) {
	if len(car.Queue) == 0 {
		return 0, false
	}
	return car.Queue[0], true
}

// ChooseDirection decides the next action for a car whose door is closed.
//   - Idle if there is nothing queued
//   - DoorOpen if the head of the queue is the current floor
//   - Moving toward the head otherwise
func (car *Car) ChooseDirection() types.DirnBehaviourPair {
	head, ok := car.Head()
	switch {
	case !ok:
		return types.DirnBehaviourPair{Dir: types.MD_Stop, Behaviour: types.Idle}
	case head == car.Floor:
		return types.DirnBehaviourPair{Dir: types.MD_Stop, Behaviour: types.DoorOpen}
	default:
		return types.DirnBehaviourPair{Dir: getDirection(car.Floor, head), Behaviour: types.Moving}
	}
}

// Direction is derived: only a closed door with a head elsewhere gives a direction.
func (car *Car) Direction(door types.DoorState) types.MotorDirection {
	if door != types.DoorClosed {
		return types.MD_Stop
	}
	return car.ChooseDirection().Dir
}

// Step moves the car exactly one floor. Leaving the floor set is a contract violation.
func (car *Car) Step(dir types.MotorDirection) {
	if dir == types.MD_Stop {
		return
	}
	idx, found := slices.BinarySearch(car.floors, car.Floor)
	next := idx + int(dir)
	if !found || next < 0 || next >= len(car.floors) {
		panic(fmt.Sprintf("car step %v from floor %d leaves floor set %v", dir, car.Floor, car.floors))
	}
	car.Floor = car.floors[next]
	slog.Debug("Car moved", "floor", car.Floor, "direction", dir)
}

// PopServed removes the head when it is the current floor. Called when a door cycle completes.
func (car *Car) PopServed() bool {
	head, ok := car.Head()
	if !ok || head != car.Floor {
		return false
	}
	car.Queue = car.Queue[1:]
	delete(car.hallCalls, head)
	delete(car.cabCalls, head)
	slog.Debug("Stop served", "floor", head, "queue", car.Queue)
	return true
}

func (car *Car) HallCalls() []int { return sortedFloors(car.hallCalls) }
func (car *Car) CabCalls() []int  { return sortedFloors(car.cabCalls) }

func (car *Car) validFloor(floor int) bool {
	_, found := slices.BinarySearch(car.floors, floor)
	return found
}
