package sim

import (
	"errors"
	"fmt"

	"dispatch/trace"
	"dispatch/types"

	"github.com/golang/glog"
	"github.com/xyproto/randomstring"
)

const runIDLength = 8

var (
	ErrNoSuchCar   = errors.New("no such elevator")
	ErrNoSuchFloor = errors.New("no such floor")
)

// Floor is a simulated landing with an up and a down hall button.
type Floor struct {
	index   int
	handler func(types.Direction)
}

func (f *Floor) FloorIndex() int {
	return f.index
}

func (f *Floor) OnButton(handler func(types.Direction)) {
	f.handler = handler
}

// Building drives a set of simulated cars and floors in discrete steps.
// All stimuli must be injected from the goroutine that calls Step.
type Building struct {
	RunID  string
	cars   []*Car
	floors []*Floor
	step   int
	trace  *trace.Recorder
}

func NewRunID() string {
	return randomstring.EnglishFrequencyString(runIDLength)
}

func NewBuilding(numFloors, numCars int, runID string, rec *trace.Recorder) *Building {
	if rec == nil {
		rec = trace.Nop()
	}
	b := &Building{
		RunID: runID,
		trace: rec,
	}

	for i := 0; i < numFloors; i++ {
		b.floors = append(b.floors, &Floor{index: i})
	}
	for i := 0; i < numCars; i++ {
		b.cars = append(b.cars, &Car{
			status: CarStatus{ID: i, Pressed: []int{}},
			b:      b,
		})
	}
	return b
}

func (b *Building) Cars() []types.Car {
	cars := make([]types.Car, len(b.cars))
	for i, c := range b.cars {
		cars[i] = c
	}
	return cars
}

func (b *Building) Floors() []types.Floor {
	floors := make([]types.Floor, len(b.floors))
	for i, f := range b.floors {
		floors[i] = f
	}
	return floors
}

func (b *Building) StepCount() int {
	return b.step
}

// Start announces every car as idle, as a host does on power-up.
func (b *Building) Start() {
	glog.Infof("Run %s: %d elevators, %d floors", b.RunID, len(b.cars), len(b.floors))
	for _, c := range b.cars {
		c.emit(types.CarEvent{Kind: types.EV_Idle})
	}
}

// Step advances every car by at most one floor.
func (b *Building) Step() {
	for _, c := range b.cars {
		c.step()
	}
	b.step++
}

func (b *Building) car(id int) (*Car, error) {
	if id < 0 || id >= len(b.cars) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchCar, id)
	}
	return b.cars[id], nil
}

func (b *Building) checkFloor(floor int) error {
	if floor < 0 || floor >= len(b.floors) {
		return fmt.Errorf("%w: %d", ErrNoSuchFloor, floor)
	}
	return nil
}

// PressCab has a rider in car id request floor.
func (b *Building) PressCab(id, floor int) error {
	c, err := b.car(id)
	if err != nil {
		return err
	}
	if err := b.checkFloor(floor); err != nil {
		return err
	}

	c.press(floor)
	c.emit(types.CarEvent{Kind: types.EV_FloorButtonPressed, Floor: floor})
	return nil
}

// CallHall presses the up or down button at floor.
func (b *Building) CallHall(floor int, dir types.Direction) error {
	if err := b.checkFloor(floor); err != nil {
		return err
	}
	if dir != types.DIR_Up && dir != types.DIR_Down {
		return fmt.Errorf("hall call at floor %d needs a direction", floor)
	}

	b.trace.HallCall(b.step, floor, dir)
	if h := b.floors[floor].handler; h != nil {
		h(dir)
	}
	return nil
}

func (b *Building) SetLoad(id int, load float64) error {
	c, err := b.car(id)
	if err != nil {
		return err
	}
	if load < 0 || load > 1 {
		return fmt.Errorf("load factor %v outside [0,1]", load)
	}
	c.status.Load = load
	return nil
}

// Snapshot returns deep copies of every car's state.
func (b *Building) Snapshot() []CarStatus {
	out := make([]CarStatus, 0, len(b.cars))
	for _, c := range b.cars {
		out = append(out, c.Status())
	}
	return out
}

// Settled reports whether no car has a destination left.
func (b *Building) Settled() bool {
	for _, c := range b.cars {
		if c.status.HasDestination {
			return false
		}
	}
	return true
}
