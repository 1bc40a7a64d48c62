package sim

import (
	"sort"

	"dispatch/types"

	"github.com/golang/glog"
	"github.com/tiendc/go-deepcopy"
)

// CarStatus is the mutable state of a simulated car.
type CarStatus struct {
	ID             int
	Floor          int
	Destination    int
	HasDestination bool
	Pressed        []int
	Load           float64
	UpLamp         bool
	DownLamp       bool
}

// Car is a simulated elevator that moves at most one floor per step and
// keeps a single-slot destination queue.
type Car struct {
	status  CarStatus
	handler func(types.CarEvent)
	b       *Building
}

func (c *Car) CurrentFloor() int {
	return c.status.Floor
}

func (c *Car) PressedFloors() []int {
	return append([]int(nil), c.status.Pressed...)
}

func (c *Car) LoadFactor() float64 {
	return c.status.Load
}

func (c *Car) UpIndicator() bool {
	return c.status.UpLamp
}

func (c *Car) DownIndicator() bool {
	return c.status.DownLamp
}

func (c *Car) SetUpIndicator(on bool) {
	if c.status.UpLamp != on {
		c.status.UpLamp = on
		c.b.trace.Lamps(c.b.step, c.status.ID, c.lamps())
	}
}

func (c *Car) SetDownIndicator(on bool) {
	if c.status.DownLamp != on {
		c.status.DownLamp = on
		c.b.trace.Lamps(c.b.step, c.status.ID, c.lamps())
	}
}

func (c *Car) GoTo(floor int) {
	c.status.Destination = floor
	c.status.HasDestination = true
	c.b.trace.Command(c.b.step, c.status.ID, floor)
}

func (c *Car) OnEvent(handler func(types.CarEvent)) {
	c.handler = handler
}

// Status returns a deep copy of the car's state.
func (c *Car) Status() CarStatus {
	var out CarStatus
	if err := deepcopy.Copy(&out, &c.status); err != nil {
		glog.Errorf("Failed to copy status of elevator %d: %v", c.status.ID, err)
	}
	return out
}

func (c *Car) lamps() types.Indicators {
	return types.Indicators{Up: c.status.UpLamp, Down: c.status.DownLamp}
}

func (c *Car) emit(ev types.CarEvent) {
	c.b.trace.CarEvent(c.b.step, c.status.ID, ev)
	if c.handler != nil {
		c.handler(ev)
	}
}

func (c *Car) press(floor int) {
	i := sort.SearchInts(c.status.Pressed, floor)
	if i < len(c.status.Pressed) && c.status.Pressed[i] == floor {
		return
	}
	c.status.Pressed = append(c.status.Pressed, 0)
	copy(c.status.Pressed[i+1:], c.status.Pressed[i:])
	c.status.Pressed[i] = floor
}

// dropOff removes riders bound for floor and returns how many left.
func (c *Car) dropOff(floor int) int {
	i := sort.SearchInts(c.status.Pressed, floor)
	if i < len(c.status.Pressed) && c.status.Pressed[i] == floor {
		c.status.Pressed = append(c.status.Pressed[:i], c.status.Pressed[i+1:]...)
		return 1
	}
	return 0
}

func (c *Car) step() {
	s := &c.status
	if !s.HasDestination {
		return
	}
	if s.Floor == s.Destination {
		c.arrive()
		return
	}

	dir := types.DIR_Up
	next := s.Floor + 1
	if s.Destination < s.Floor {
		dir = types.DIR_Down
		next = s.Floor - 1
	}

	if next != s.Destination {
		c.emit(types.CarEvent{Kind: types.EV_PassingFloor, Floor: next, Direction: dir})
		// The handler may have turned the car around.
		if !s.HasDestination || !types.Before(s.Floor, s.Destination, dir) {
			return
		}
	}

	s.Floor = next
	glog.V(2).Infof("Elevator %d at floor %d", s.ID, s.Floor)
	if s.Floor == s.Destination {
		c.arrive()
	}
}

func (c *Car) arrive() {
	floor := c.status.Floor
	dropped := c.dropOff(floor)
	c.status.HasDestination = false
	c.b.trace.Arrival(c.b.step, c.status.ID, floor, dropped)

	c.emit(types.CarEvent{Kind: types.EV_StoppedAtFloor, Floor: floor})
	if !c.status.HasDestination {
		c.emit(types.CarEvent{Kind: types.EV_Idle})
	}
}
