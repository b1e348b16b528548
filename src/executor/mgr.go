package executor

import (
	"time"

	"liftsim/src/types"
)

// SimCmd is an operation run against the simulation inside the manager goroutine.
type SimCmd struct {
	Exec func(sim *Sim)
}

// Mgr owns the simulation and serializes access to it. A single event can touch
// the car, the door and the registry, so the whole step runs in one place.
type Mgr struct {
	Cmds chan SimCmd
	done chan struct{}
}

// StartMgr starts the manager goroutine.
func StartMgr(sim *Sim) *Mgr {
	mgr := &Mgr{
		Cmds: make(chan SimCmd),
		done: make(chan struct{}),
	}
	go func() {
		defer close(mgr.done)
		for cmd := range mgr.Cmds {
			cmd.Exec(sim)
		}
	}()
	return mgr
}

// exec runs fn in the manager goroutine and waits for it to finish.
func (mgr *Mgr) exec(fn func(sim *Sim)) {
	reply := make(chan struct{})
	mgr.Cmds <- SimCmd{
		Exec: func(sim *Sim) {
			fn(sim)
			close(reply)
		},
	}
	<-reply
}

func (mgr *Mgr) RequestFloor(floor int, button types.ButtonType) {
	mgr.exec(func(sim *Sim) { sim.RequestFloor(floor, button) })
}

func (mgr *Mgr) AddPassenger(origin, destination int) (id int, err error) {
	mgr.exec(func(sim *Sim) { id, err = sim.AddPassenger(origin, destination) })
	return id, err
}

func (mgr *Mgr) OpenDoor() {
	mgr.exec(func(sim *Sim) { sim.OpenDoor() })
}

func (mgr *Mgr) CloseDoor() {
	mgr.exec(func(sim *Sim) { sim.CloseDoor() })
}

func (mgr *Mgr) Tick(elapsed time.Duration) {
	mgr.exec(func(sim *Sim) { sim.Tick(elapsed) })
}

// Snapshot returns a copy taken inside the manager goroutine.
func (mgr *Mgr) Snapshot() (snap types.Snapshot) {
	mgr.exec(func(sim *Sim) { snap = sim.Snapshot() })
	return snap
}

// Close stops the manager goroutine. The manager must not be used afterwards.
func (mgr *Mgr) Close() {
	close(mgr.Cmds)
	<-mgr.done
}
