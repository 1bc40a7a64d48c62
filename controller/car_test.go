package controller

import (
	"reflect"
	"testing"

	"dispatch/types"
)

func TestCarState_IsFullBoundary(t *testing.T) {
	cases := []struct {
		load     float64
		expected bool
	}{
		{0, false},
		{0.549, false},
		{0.5499999, false},
		{0.55, true},
		{1, true},
	}

	for _, c := range cases {
		car := newCarState(0, &fakeCar{load: c.load}, DefaultOptions())
		if got := car.IsFull(); got != c.expected {
			t.Errorf("IsFull() at load %v = %v; expected %v", c.load, got, c.expected)
		}
	}
}

func TestCarState_SingleDestinationCollapse(t *testing.T) {
	host := &fakeCar{floor: 4}
	car := newCarState(0, host, DefaultOptions())

	car.SetDestination(types.DestinationCommand{Floor: 6, Direction: types.DIR_Up})
	car.SetDestination(types.DestinationCommand{Floor: 3, Direction: types.DIR_Down})

	if host.destination() != 3 {
		t.Errorf("Effective destination should be 3, was %d", host.destination())
	}
	if host.up || !host.down {
		t.Errorf("Only the down lamp should be lit, up=%v down=%v", host.up, host.down)
	}
	if car.Direction() != types.DIR_Down {
		t.Errorf("Sticky direction should be down")
	}
}

func TestCarState_SetDestinationInfersDirection(t *testing.T) {
	cases := []struct {
		floor    int
		expected types.Direction
	}{
		{7, types.DIR_Up},
		{1, types.DIR_Down},
		{4, types.DIR_Down},
	}

	for _, c := range cases {
		host := &fakeCar{floor: 4, up: true, down: true}
		car := newCarState(0, host, DefaultOptions())

		car.SetDestination(types.DestinationCommand{Floor: c.floor})

		if car.Direction() != c.expected {
			t.Errorf("Floor %d from 4: direction %v; expected %v", c.floor, car.Direction(), c.expected)
		}
		if host.up || host.down {
			t.Errorf("Command without direction must turn both lamps off")
		}
	}
}

func TestCarState_PassengerDestinations(t *testing.T) {
	host := &fakeCar{floor: 4, pressed: []int{9, 1, 4, 6, 2}}
	car := newCarState(0, host, DefaultOptions())

	if got := car.PassengerDestinations(); !reflect.DeepEqual(got, []int{4, 6, 9}) {
		t.Errorf("Going up: %v", got)
	}

	car.SetDestination(types.DestinationCommand{Floor: 2, Direction: types.DIR_Down})
	if got := car.PassengerDestinations(); !reflect.DeepEqual(got, []int{4, 2, 1}) {
		t.Errorf("Going down: %v", got)
	}

	opts := DefaultOptions()
	opts.Boundary = types.BoundaryExclusive
	exclusive := newCarState(1, host, opts)
	if got := exclusive.PassengerDestinations(); !reflect.DeepEqual(got, []int{6, 9}) {
		t.Errorf("Exclusive going up: %v", got)
	}
}

func TestCarState_Indicators(t *testing.T) {
	host := &fakeCar{up: true}
	car := newCarState(0, host, DefaultOptions())

	if car.Indicators() != (types.Indicators{Up: true}) {
		t.Errorf("Indicators not read from host: %+v", car.Indicators())
	}
	car.ClearIndicators()
	if car.Indicators() != (types.Indicators{}) {
		t.Errorf("Indicators not cleared: %+v", car.Indicators())
	}
}
