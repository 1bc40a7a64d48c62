package types

import (
	"fmt"
	"sort"
	"strings"
)

type Direction int

const (
	DIR_None Direction = 0
	DIR_Up   Direction = 1
	DIR_Down Direction = 2
)

func (d Direction) String() string {
	switch d {
	case DIR_Up:
		return "up"
	case DIR_Down:
		return "down"
	}
	return "none"
}

// Opposite returns the reverse scan direction. DIR_None has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DIR_Up:
		return DIR_Down
	case DIR_Down:
		return DIR_Up
	}
	return DIR_None
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DIR_Up, nil
	case "down":
		return DIR_Down, nil
	case "", "none":
		return DIR_None, nil
	}
	return DIR_None, fmt.Errorf("unknown direction %q", s)
}

// Boundary decides whether the floor a scan starts from counts as ahead.
type Boundary int

const (
	BoundaryInclusive Boundary = 0
	BoundaryExclusive Boundary = 1
)

func (b Boundary) String() string {
	if b == BoundaryExclusive {
		return "exclusive"
	}
	return "inclusive"
}

// Admits reports whether floor lies ahead of from when scanning in dir.
func (b Boundary) Admits(floor, from int, dir Direction) bool {
	switch dir {
	case DIR_Up:
		if b == BoundaryExclusive {
			return floor > from
		}
		return floor >= from
	case DIR_Down:
		if b == BoundaryExclusive {
			return floor < from
		}
		return floor <= from
	}
	return false
}

// SortByDirection sorts floors in place, ascending for DIR_Up and
// descending otherwise.
func SortByDirection(floors []int, dir Direction) {
	if dir == DIR_Up {
		sort.Ints(floors)
		return
	}
	sort.Sort(sort.Reverse(sort.IntSlice(floors)))
}

// Before reports whether floor a is met before floor b when scanning in dir.
func Before(a, b int, dir Direction) bool {
	if dir == DIR_Up {
		return a < b
	}
	return a > b
}
