package hallcalls

import (
	"dispatch/types"

	"github.com/golang/glog"
)

const (
	hallUp   = 0
	hallDown = 1
)

// WakeFunc is handed the hall call that woke a parked car.
type WakeFunc func(floor int, dir types.Direction)

// WakePolicy decides who gets woken when a hall call arrives while cars
// are parked.
type WakePolicy int

const (
	// WakeSingle keeps one slot; the most recently parked car overwrites
	// any earlier one and is the only car woken.
	WakeSingle WakePolicy = 0
	// WakeBroadcast keeps one slot per car and wakes every parked car.
	WakeBroadcast WakePolicy = 1
)

func (w WakePolicy) String() string {
	if w == WakeBroadcast {
		return "broadcast"
	}
	return "single"
}

type rendezvous struct {
	car  int
	wake WakeFunc
}

// Registry tracks pending hall calls per floor and the parked-car
// rendezvous. It is owned by a single dispatcher and is not safe for
// concurrent use.
type Registry struct {
	calls    [][2]bool
	boundary types.Boundary
	policy   WakePolicy
	waiting  []rendezvous
}

func NewRegistry(numFloors int, boundary types.Boundary, policy WakePolicy) *Registry {
	return &Registry{
		calls:    make([][2]bool, numFloors),
		boundary: boundary,
		policy:   policy,
	}
}

func (r *Registry) NumFloors() int {
	return len(r.calls)
}

func index(dir types.Direction) (int, bool) {
	switch dir {
	case types.DIR_Up:
		return hallUp, true
	case types.DIR_Down:
		return hallDown, true
	}
	return 0, false
}

func (r *Registry) valid(floor int) bool {
	return floor >= 0 && floor < len(r.calls)
}

// RegisterCall marks a hall call and, if any car is parked, wakes it
// before returning.
func (r *Registry) RegisterCall(floor int, dir types.Direction) {
	btn, ok := index(dir)
	if !r.valid(floor) || !ok {
		glog.Warningf("Ignoring hall call floor=%d direction=%v", floor, dir)
		return
	}

	r.calls[floor][btn] = true
	glog.V(1).Infof("[EVENT] floor %d %v button pressed", floor, dir)
	glog.V(2).Infof("[DEBUG] floor %d buttons - up: %v, down: %v", floor, r.calls[floor][hallUp], r.calls[floor][hallDown])

	// Slots are taken before waking so a wake that parks again is kept.
	parked := r.waiting
	r.waiting = nil
	for _, p := range parked {
		glog.V(2).Infof("[DEBUG] waking elevator %d for floor %d %v", p.car, floor, dir)
		p.wake(floor, dir)
	}
}

// WaitingPassengers returns the floors with a pending passengerDir call
// that lie ahead of from along scanDir, nearest first.
func (r *Registry) WaitingPassengers(from int, passengerDir, scanDir types.Direction) []int {
	btn, ok := index(passengerDir)
	if !ok {
		return nil
	}

	floors := make([]int, 0, len(r.calls))
	for f, row := range r.calls {
		if row[btn] && r.boundary.Admits(f, from, scanDir) {
			floors = append(floors, f)
		}
	}
	types.SortByDirection(floors, scanDir)
	return floors
}

func (r *Registry) AnyWaitingPassengers() bool {
	for _, row := range r.calls {
		if row[hallUp] || row[hallDown] {
			return true
		}
	}
	return false
}

// IsPending reports whether a call in dir is outstanding at floor.
func (r *Registry) IsPending(floor int, dir types.Direction) bool {
	btn, ok := index(dir)
	return ok && r.valid(floor) && r.calls[floor][btn]
}

// ClearOnVisit clears the calls at floor matching the lamps the visiting
// car had lit when it stopped.
func (r *Registry) ClearOnVisit(floor int, served types.Indicators) {
	if !r.valid(floor) {
		glog.Warningf("Ignoring visit to unknown floor %d", floor)
		return
	}
	if served.Up {
		r.calls[floor][hallUp] = false
	}
	if served.Down {
		r.calls[floor][hallDown] = false
	}
	glog.V(2).Infof("[DEBUG] floor %d buttons - up: %v, down: %v", floor, r.calls[floor][hallUp], r.calls[floor][hallDown])
}

// RegisterWaitRendezvous parks car until the next hall call. Under
// WakeSingle this overwrites any car parked earlier.
func (r *Registry) RegisterWaitRendezvous(car int, wake WakeFunc) {
	p := rendezvous{car: car, wake: wake}

	if r.policy == WakeBroadcast {
		for i := range r.waiting {
			if r.waiting[i].car == car {
				r.waiting[i] = p
				return
			}
		}
		r.waiting = append(r.waiting, p)
		return
	}

	if len(r.waiting) > 0 && r.waiting[0].car != car {
		glog.V(2).Infof("[DEBUG] elevator %d replaces elevator %d in the wait slot", car, r.waiting[0].car)
	}
	r.waiting = []rendezvous{p}
}

// Parked returns the ids of cars currently holding a rendezvous.
func (r *Registry) Parked() []int {
	ids := make([]int, 0, len(r.waiting))
	for _, p := range r.waiting {
		ids = append(ids, p.car)
	}
	return ids
}
