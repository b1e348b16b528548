package executor

import (
	"fmt"
	"log/slog"
	"time"

	"liftsim/src/config"
	"liftsim/src/door"
	"liftsim/src/elev"
	"liftsim/src/passenger"
	"liftsim/src/timer"
	"liftsim/src/types"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"
)

// Sim owns the car, the door and the passenger registry of one elevator.
// All mutation goes through Apply, one event at a time.
type Sim struct {
	cfg          config.Config
	now          time.Duration
	car          *elev.Car
	door         *door.Door
	passengers   *passenger.Registry
	timers       timer.Timers
	motionTarget int
	RunID        uuid.UUID
	log          *slog.Logger
}

// NewSim builds a simulation with the car parked at the initial floor and the door closed.
// The config must already be validated.
func NewSim(cfg config.Config) *Sim {
	runID := uuid.New()
	sim := &Sim{
		cfg:        cfg,
		car:        elev.NewCar(cfg.InitialFloor, cfg.Floors),
		door:       door.New(cfg.DoorOpenDuration, cfg.DoorDwellDuration, cfg.DoorCloseDuration),
		passengers: passenger.NewRegistry(),
		RunID:      runID,
		log:        slog.Default().With("run", runID.String()),
	}
	sim.log.Info("Simulation initialized", "floor", cfg.InitialFloor, "floors", cfg.Floors)
	return sim
}

// Apply processes one event to completion and re-evaluates the whole system afterwards.
func (sim *Sim) Apply(ev types.Event) (types.Outcome, error) {
	var outcome types.Outcome
	switch e := ev.(type) {
	case types.FloorRequested:
		sim.car.RequestFloor(types.ButtonEvent{Floor: e.Floor, Button: e.Button})
	case types.PassengerAdded:
		id, err := sim.addPassenger(e.Origin, e.Destination)
		if err != nil {
			sim.log.Warn("Trip request rejected", "origin", e.Origin, "destination", e.Destination, "err", err)
			return outcome, err
		}
		outcome.PassengerID = id
	case types.DoorCommand:
		sim.handleDoorCommand(e.Cmd)
	case types.TimerFired:
		sim.handleTimer(e)
	default:
		panic(fmt.Sprintf("unknown event %T", ev))
	}
	sim.chooseAction()
	return outcome, nil
}

func (sim *Sim) RequestFloor(floor int, button types.ButtonType) {
	sim.Apply(types.FloorRequested{Floor: floor, Button: button})
}

// AddPassenger returns the id of the new passenger, or an error wrapping types.ErrInvalidRequest.
func (sim *Sim) AddPassenger(origin, destination int) (int, error) {
	outcome, err := sim.Apply(types.PassengerAdded{Origin: origin, Destination: destination})
	return outcome.PassengerID, err
}

func (sim *Sim) OpenDoor() {
	sim.Apply(types.DoorCommand{Cmd: types.CmdOpen})
}

func (sim *Sim) CloseDoor() {
	sim.Apply(types.DoorCommand{Cmd: types.CmdClose})
}

// Tick advances the logical clock, delivering every timer that falls due on the
// way in due order.
func (sim *Sim) Tick(elapsed time.Duration) {
	if elapsed < 0 {
		return
	}
	target := sim.now + elapsed
	for {
		t, ok := sim.timers.Next(target)
		if !ok {
			break
		}
		sim.now = t.Due
		sim.Apply(types.TimerFired{Kind: t.Kind, Gen: t.Gen})
	}
	sim.now = target
}

// NextDue is the logical time at which the host should deliver the next tick.
func (sim *Sim) NextDue() (time.Duration, bool) {
	return sim.timers.NextDue()
}

func (sim *Sim) Now() time.Duration { return sim.now }

func (sim *Sim) Snapshot() types.Snapshot {
	snap := types.Snapshot{
		Time:       sim.now,
		Floor:      sim.car.Floor,
		Dir:        sim.car.Direction(sim.door.State),
		Door:       sim.door.State,
		Queue:      sim.car.Queue,
		HallCalls:  sim.car.HallCalls(),
		CabCalls:   sim.car.CabCalls(),
		Passengers: sim.passengers.All(),
		Onboard:    sim.passengers.Onboard(),
	}
	out := new(types.Snapshot)
	if err := deepcopy.Copy(out, &snap); err != nil {
		panic(err)
	}
	return *out
}

func (sim *Sim) addPassenger(origin, destination int) (int, error) {
	if !sim.cfg.ValidFloor(origin) || !sim.cfg.ValidFloor(destination) {
		return 0, fmt.Errorf("trip %d->%d outside floors %v: %w", origin, destination, sim.cfg.Floors, types.ErrInvalidRequest)
	}
	p, err := sim.passengers.Add(origin, destination)
	if err != nil {
		return 0, err
	}
	if origin != sim.car.Floor {
		sim.car.RequestFloor(types.ButtonEvent{Floor: origin, Button: types.BT_Hall})
	} else if !sim.door.OpeningOrOpen() {
		sim.transitionDoor(door.Reopen)
	}
	return p.ID, nil
}

func (sim *Sim) handleDoorCommand(cmd types.DoorCmd) {
	switch cmd {
	case types.CmdOpen:
		sim.transitionDoor(door.CmdOpen)
	case types.CmdClose:
		sim.transitionDoor(door.CmdClose)
	}
}

func (sim *Sim) handleTimer(e types.TimerFired) {
	if !sim.timers.Fire(e.Kind, e.Gen) {
		sim.log.Debug("Stale timer ignored", "kind", e.Kind, "gen", e.Gen)
		return
	}
	switch e.Kind {
	case types.DoorTimer:
		sim.transitionDoor(door.Expire)
	case types.MotionTimer:
		sim.completeStep()
	}
}

// completeStep moves the car one floor toward the target the step was started for.
func (sim *Sim) completeStep() {
	head, ok := sim.car.Head()
	if sim.door.State != types.DoorClosed || !ok || head != sim.motionTarget {
		sim.log.Debug("Motion step dropped", "door", sim.door.State, "target", sim.motionTarget)
		return
	}
	sim.car.Step(sim.car.ChooseDirection().Dir)
	sim.log.Info("Floor reached", "floor", sim.car.Floor, "target", head)
}
