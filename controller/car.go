package controller

import (
	"dispatch/types"

	"github.com/golang/glog"
)

// CarState is the dispatcher's view of one host car plus its sticky
// travel direction.
type CarState struct {
	id        int
	host      types.Car
	direction types.Direction
	boundary  types.Boundary
	fullLoad  float64
}

func newCarState(id int, host types.Car, opts Options) *CarState {
	return &CarState{
		id:        id,
		host:      host,
		direction: types.DIR_Up,
		boundary:  opts.Boundary,
		fullLoad:  opts.FullLoadFactor,
	}
}

func (c *CarState) ID() int {
	return c.id
}

func (c *CarState) CurrentFloor() int {
	return c.host.CurrentFloor()
}

// Direction returns the sticky direction the car last committed to.
func (c *CarState) Direction() types.Direction {
	return c.direction
}

// PassengerDestinations returns the floors requested by riders aboard
// that lie ahead in the sticky direction, nearest first.
func (c *CarState) PassengerDestinations() []int {
	return c.PassengerDestinationsToward(c.direction)
}

// PassengerDestinationsToward is PassengerDestinations for an explicit
// scan direction.
func (c *CarState) PassengerDestinationsToward(dir types.Direction) []int {
	current := c.host.CurrentFloor()

	floors := make([]int, 0)
	for _, f := range c.host.PressedFloors() {
		if c.boundary.Admits(f, current, dir) {
			floors = append(floors, f)
		}
	}
	types.SortByDirection(floors, dir)
	return floors
}

func (c *CarState) IsFull() bool {
	return c.host.LoadFactor() >= c.fullLoad
}

func (c *CarState) Indicators() types.Indicators {
	return types.Indicators{
		Up:   c.host.UpIndicator(),
		Down: c.host.DownIndicator(),
	}
}

func (c *CarState) ClearIndicators() {
	c.host.SetUpIndicator(false)
	c.host.SetDownIndicator(false)
}

// SetDestination replaces the car's destination, lights the lamp for the
// commanded direction and makes that direction sticky.
func (c *CarState) SetDestination(cmd types.DestinationCommand) {
	c.host.GoTo(cmd.Floor)

	if cmd.Direction == types.DIR_None {
		c.ClearIndicators()
		if cmd.Floor > c.host.CurrentFloor() {
			c.direction = types.DIR_Up
		} else {
			c.direction = types.DIR_Down
		}
	} else {
		c.host.SetUpIndicator(cmd.Direction == types.DIR_Up)
		c.host.SetDownIndicator(cmd.Direction == types.DIR_Down)
		c.direction = cmd.Direction
	}

	glog.V(1).Infof("[COMMAND] elevator %d sent to floor %d, indicating %v", c.id, cmd.Floor, cmd.Direction)
}
