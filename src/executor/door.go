package executor

import (
	"liftsim/src/door"
	"liftsim/src/types"
)

// transitionDoor fires a door trigger. Every accepted transition replaces the
// door timer and cancels any pending motion step.
func (sim *Sim) transitionDoor(trigger door.Trigger) bool {
	from := sim.door.State
	to, ok := sim.door.Fire(trigger)
	if !ok {
		sim.log.Debug("Door trigger ignored", "trigger", trigger, "door", from)
		return false
	}
	sim.timers.Stop(types.MotionTimer)
	if hold, ok := sim.door.Hold(); ok {
		sim.timers.Start(types.DoorTimer, sim.now+hold)
	} else {
		sim.timers.Stop(types.DoorTimer)
	}
	sim.log.Debug("Door transition", "from", from, "to", to, "trigger", trigger, "floor", sim.car.Floor)

	switch to {
	case types.DoorOpened:
		sim.boardingPass()
	case types.DoorClosed:
		sim.car.PopServed()
		// Someone who showed up while the door was fully open missed the pass.
		if sim.passengers.WaitingAt(sim.car.Floor) > 0 {
			sim.transitionDoor(door.Reopen)
		}
	}
	return true
}

// boardingPass runs once per transition into fully open. Destinations of
// boarded passengers become car calls in boarding order.
func (sim *Sim) boardingPass() {
	boarded, _ := sim.passengers.Board(sim.car.Floor)
	for _, p := range boarded {
		sim.car.RequestFloor(types.ButtonEvent{Floor: p.Destination, Button: types.BT_Cab})
	}
}

// chooseAction is called after every event.
//   - Does nothing unless the door is closed and no step is in flight
//   - Opens the door if the head of the queue is the current floor
//   - Starts a motion step toward the head otherwise
func (sim *Sim) chooseAction() {
	if sim.door.State != types.DoorClosed || sim.timers.Active(types.MotionTimer) {
		return
	}
	pair := sim.car.ChooseDirection()
	switch pair.Behaviour {
	case types.DoorOpen:
		sim.log.Info("Arrived", "floor", sim.car.Floor)
		sim.transitionDoor(door.Arrive)
	case types.Moving:
		sim.motionTarget, _ = sim.car.Head()
		sim.timers.Start(types.MotionTimer, sim.now+sim.cfg.FloorTravelDuration)
		sim.log.Debug("Motion step started", "from", sim.car.Floor, "direction", pair.Dir, "target", sim.motionTarget)
	}
}
