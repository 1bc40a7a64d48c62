package controller

import (
	"dispatch/types"

	"github.com/golang/glog"
)

// UpdateDestination picks the next floor for car id, reversing the scan
// if nothing lies ahead, and parks the car if there is no work at all.
func (s *Scheduler) UpdateDestination(id int) {
	c := s.Car(id)
	if c == nil {
		glog.Warningf("UpdateDestination: unknown elevator %d", id)
		return
	}
	s.updateDestination(c)
}

func (s *Scheduler) updateDestination(c *CarState) {
	dir := c.Direction()

	floor, destDir, found := s.searchForDestination(c, dir)
	if !found {
		glog.V(2).Infof("[DEBUG] no destination found, searching other direction")
		floor, destDir, found = s.searchForDestination(c, dir.Opposite())
	}

	if found {
		c.SetDestination(types.DestinationCommand{Floor: floor, Direction: destDir})
		return
	}

	// Parked until any hall call arrives.
	c.ClearIndicators()
	s.calls.RegisterWaitRendezvous(c.id, func(floor int, dir types.Direction) {
		c.SetDestination(types.DestinationCommand{Floor: floor, Direction: dir})
	})
	glog.V(2).Infof("[DEBUG] elevator %d found no destination, waiting for a button press", c.id)
}

func (s *Scheduler) searchForDestination(c *CarState, dir types.Direction) (int, types.Direction, bool) {
	current := c.CurrentFloor()
	opp := dir.Opposite()

	passengerDests := s.opts.Riders.destinations(c, dir)
	waitingSameDir := s.calls.WaitingPassengers(current, dir, dir)
	waitingOppDir := s.calls.WaitingPassengers(current, opp, dir)
	allSameDir := s.opts.Merge.merge(passengerDests, waitingSameDir, dir)

	glog.V(2).Infof("[DEBUG] elevator %d destination search going %v from %d", c.id, dir, current)
	glog.V(2).Infof("[DEBUG]   passenger destinations: %v", passengerDests)
	glog.V(2).Infof("[DEBUG]   same-direction waiting passengers: %v", waitingSameDir)
	glog.V(2).Infof("[DEBUG]     all same-direction floors: %v", allSameDir)
	glog.V(2).Infof("[DEBUG]   opposite-direction waiting passengers: %v", waitingOppDir)

	if len(allSameDir) > 0 {
		floor := allSameDir[0]
		if c.IsFull() {
			// Riders first. With no drop-off this way the scan reverses.
			if len(passengerDests) == 0 {
				return 0, types.DIR_None, false
			}
			floor = passengerDests[0]
		}

		destDir := dir
		if len(passengerDests) == 1 && len(waitingSameDir) == 0 && s.calls.AnyWaitingPassengers() {
			// Last drop-off this way: show the reversed lamp early.
			destDir = opp
		}
		return floor, destDir, true
	}

	if len(waitingOppDir) > 0 {
		return waitingOppDir[len(waitingOppDir)-1], opp, true
	}

	return 0, types.DIR_None, false
}

// CheckIfShouldStop retargets car id to floor when it is about to pass a
// floor with a pending call in its direction of travel.
func (s *Scheduler) CheckIfShouldStop(id, floor int, dir types.Direction) {
	c := s.Car(id)
	if c == nil {
		glog.Warningf("CheckIfShouldStop: unknown elevator %d", id)
		return
	}
	s.checkIfShouldStop(c, floor, dir)
}

func (s *Scheduler) checkIfShouldStop(c *CarState, floor int, dir types.Direction) {
	if !s.opts.MidTransitStops {
		return
	}
	if dir == types.DIR_None {
		dir = types.DIR_Down
		if floor > c.CurrentFloor() {
			dir = types.DIR_Up
		}
	}

	waitingSameDir := s.calls.WaitingPassengers(floor, dir, dir)
	if len(waitingSameDir) > 0 && waitingSameDir[0] == floor {
		c.SetDestination(types.DestinationCommand{Floor: floor, Direction: dir})
	}
}
