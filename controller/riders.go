package controller

import (
	"fmt"

	"dispatch/types"
)

// RiderPolicy selects which rider destinations a destination search sees.
type RiderPolicy int

const (
	// RidersSticky only counts riders ahead in the car's sticky direction,
	// whatever direction is being searched.
	RidersSticky RiderPolicy = 0
	// RidersScan counts riders ahead in the searched direction, so a
	// rider behind the car is found once the scan reverses.
	RidersScan RiderPolicy = 1
)

func (p RiderPolicy) String() string {
	if p == RidersScan {
		return "scan"
	}
	return "sticky"
}

func ParseRiderPolicy(s string) (RiderPolicy, error) {
	switch s {
	case "", "sticky":
		return RidersSticky, nil
	case "scan":
		return RidersScan, nil
	}
	return RidersSticky, fmt.Errorf("unknown rider policy %q", s)
}

func (p RiderPolicy) destinations(c *CarState, dir types.Direction) []int {
	if p == RidersScan {
		return c.PassengerDestinationsToward(dir)
	}
	return c.PassengerDestinations()
}
