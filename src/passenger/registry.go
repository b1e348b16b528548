package passenger

import (
	"fmt"
	"log/slog"
	"slices"

	"liftsim/src/types"
)

// Registry keeps every passenger ever created, ordered by id.
type Registry struct {
	passengers []types.Passenger
	nextID     int
}

func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

// Add creates a waiting passenger. The registry is left untouched on error.
func (r *Registry) Add(origin, destination int) (types.Passenger, error) {
	if origin == destination {
		return types.Passenger{}, fmt.Errorf("trip %d->%d: %w", origin, destination, types.ErrInvalidRequest)
	}
	p := types.Passenger{
		ID:          r.nextID,
		Origin:      origin,
		Destination: destination,
		Status:      types.Waiting,
	}
	r.nextID++
	r.passengers = append(r.passengers, p)
	slog.Info("Passenger created", "id", p.ID, "origin", origin, "destination", destination)
	return p, nil
}

// Board runs the boarding pass for floor. Every passenger is judged on the
// status it had before the pass, so nobody boards and alights in one pass.
// Boarded passengers are returned in id order.
func (r *Registry) Board(floor int) (boarded, alighted []types.Passenger) {
	for i := range r.passengers {
		p := &r.passengers[i]
		switch p.Status {
		case types.Waiting:
			if p.Origin == floor {
				p.Status = types.Onboard
				boarded = append(boarded, *p)
			}
		case types.Onboard:
			if p.Destination == floor {
				p.Status = types.Done
				alighted = append(alighted, *p)
			}
		}
	}
	if len(boarded) > 0 || len(alighted) > 0 {
		slog.Info("Boarding pass", "floor", floor, "boarded", len(boarded), "alighted", len(alighted))
	}
	return boarded, alighted
}

func (r *Registry) WaitingAt(floor int) int {
	return r.count(func(p types.Passenger) bool {
		return p.Status == types.Waiting && p.Origin == floor
	})
}

func (r *Registry) Onboard() int {
	return r.count(func(p types.Passenger) bool { return p.Status == types.Onboard })
}

func (r *Registry) Len() int { return len(r.passengers) }

// All returns a copy including finished trips.
func (r *Registry) All() []types.Passenger {
	return slices.Clone(r.passengers)
}

// Active returns waiting and onboard passengers.
func (r *Registry) Active() []types.Passenger {
	var active []types.Passenger
	for _, p := range r.passengers {
		if p.Status != types.Done {
			active = append(active, p)
		}
	}
	return active
}

func (r *Registry) Get(id int) (types.Passenger, bool) {
	i, found := slices.BinarySearchFunc(r.passengers, id, func(p types.Passenger, id int) int {
		return p.ID - id
	})
	if !found {
		return types.Passenger{}, false
	}
	return r.passengers[i], true
}

func (r *Registry) count(match func(types.Passenger) bool) int {
	n := 0
	for _, p := range r.passengers {
		if match(p) {
			n++
		}
	}
	return n
}
