package controller

import (
	"errors"
	"fmt"
	"time"

	"dispatch/hallcalls"
	"dispatch/types"

	"github.com/golang/glog"
)

const defaultFullLoadFactor = 0.55

// ErrFloorOrder is returned by Initialize when a floor's index does not
// match its position in the floor list.
var ErrFloorOrder = errors.New("floors out of order")

// Options selects between the dispatch policy variants.
type Options struct {
	Boundary        types.Boundary
	MidTransitStops bool
	Merge           MergeVariant
	Wake            hallcalls.WakePolicy
	Riders          RiderPolicy
	FullLoadFactor  float64
}

func DefaultOptions() Options {
	return Options{
		Boundary:        types.BoundaryInclusive,
		MidTransitStops: true,
		Merge:           MergeUnion,
		Wake:            hallcalls.WakeSingle,
		Riders:          RidersSticky,
		FullLoadFactor:  defaultFullLoadFactor,
	}
}

type carHandler func(c *CarState, ev types.CarEvent)

// Scheduler decides where each car goes next. Every stimulus is handled
// to completion on the caller's goroutine; it is not safe for concurrent
// use.
type Scheduler struct {
	cars     []*CarState
	calls    *hallcalls.Registry
	opts     Options
	handlers map[types.CarEventKind]carHandler
}

// Initialize validates the floor topology and subscribes the scheduler to
// every car and floor. It must be called once per set of host objects.
func Initialize(cars []types.Car, floors []types.Floor, opts Options) (*Scheduler, error) {
	for i, floor := range floors {
		if id := floor.FloorIndex(); id != i {
			return nil, fmt.Errorf("%w: floorIndex=%d position=%d", ErrFloorOrder, id, i)
		}
	}
	if opts.FullLoadFactor <= 0 {
		opts.FullLoadFactor = defaultFullLoadFactor
	}

	s := &Scheduler{
		calls: hallcalls.NewRegistry(len(floors), opts.Boundary, opts.Wake),
		opts:  opts,
	}
	s.handlers = map[types.CarEventKind]carHandler{
		types.EV_Idle:               s.onIdle,
		types.EV_FloorButtonPressed: s.onButtonPressed,
		types.EV_PassingFloor:       s.onPassingFloor,
		types.EV_StoppedAtFloor:     s.onStoppedAtFloor,
	}

	for i, floor := range floors {
		floorNum := i
		floor.OnButton(func(dir types.Direction) {
			s.calls.RegisterCall(floorNum, dir)
		})
	}

	s.cars = make([]*CarState, 0, len(cars))
	for i, host := range cars {
		car := newCarState(i, host, opts)
		s.cars = append(s.cars, car)
		host.OnEvent(func(ev types.CarEvent) {
			s.handleCarEvent(car, ev)
		})
		glog.V(1).Infof("Subscribed to elevator %d", car.ID())
	}

	glog.Infof("Dispatcher initialized: %d elevators, %d floors, boundary=%v merge=%v wake=%v riders=%v midTransitStops=%v",
		len(s.cars), s.calls.NumFloors(), opts.Boundary, opts.Merge, opts.Wake, opts.Riders, opts.MidTransitStops)

	return s, nil
}

// Tick is the periodic host hook. Dispatch is fully event driven so
// there is nothing to poll.
func (s *Scheduler) Tick(dt time.Duration, cars []types.Car, floors []types.Floor) {
}

// Car returns the state of car id, or nil if there is no such car.
func (s *Scheduler) Car(id int) *CarState {
	if id < 0 || id >= len(s.cars) {
		return nil
	}
	return s.cars[id]
}

func (s *Scheduler) Calls() *hallcalls.Registry {
	return s.calls
}

func (s *Scheduler) handleCarEvent(c *CarState, ev types.CarEvent) {
	handler, ok := s.handlers[ev.Kind]
	if !ok {
		glog.Warningf("Elevator %d: unhandled event %+v", c.id, ev)
		return
	}
	handler(c, ev)
}

func (s *Scheduler) onIdle(c *CarState, ev types.CarEvent) {
	glog.V(1).Infof("[EVENT] elevator %d is idle", c.id)
	s.updateDestination(c)
}

func (s *Scheduler) onButtonPressed(c *CarState, ev types.CarEvent) {
	glog.V(1).Infof("[EVENT] elevator %d button pressed for floor %d", c.id, ev.Floor)
	s.updateDestination(c)
}

func (s *Scheduler) onPassingFloor(c *CarState, ev types.CarEvent) {
	glog.V(1).Infof("[EVENT] elevator %d passing floor %d going %v", c.id, ev.Floor, ev.Direction)
	s.checkIfShouldStop(c, ev.Floor, ev.Direction)
}

func (s *Scheduler) onStoppedAtFloor(c *CarState, ev types.CarEvent) {
	s.calls.ClearOnVisit(ev.Floor, c.Indicators())
	glog.V(1).Infof("[EVENT] floor %d visited by elevator %d", ev.Floor, c.id)
}
