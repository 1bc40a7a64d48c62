package controller

import (
	"fmt"

	"dispatch/types"
)

// MergeVariant selects how in-car destinations and hall calls are combined.
type MergeVariant int

const (
	// MergeUnion takes the set union and sorts it by direction.
	MergeUnion MergeVariant = 0
	// MergeSorted walks two lists that are already sorted by direction
	// and drops a floor when both heads are equal.
	MergeSorted MergeVariant = 1
)

func (m MergeVariant) String() string {
	if m == MergeSorted {
		return "sorted"
	}
	return "union"
}

func ParseMergeVariant(s string) (MergeVariant, error) {
	switch s {
	case "", "union":
		return MergeUnion, nil
	case "sorted":
		return MergeSorted, nil
	}
	return MergeUnion, fmt.Errorf("unknown merge variant %q", s)
}

func (m MergeVariant) merge(a, b []int, dir types.Direction) []int {
	if m == MergeSorted {
		return mergeSorted(a, b, dir)
	}
	return mergeUnion(a, b, dir)
}

// mergeUnion returns every floor in a or b exactly once, ordered by dir.
func mergeUnion(a, b []int, dir types.Direction) []int {
	seen := make(map[int]bool, len(a)+len(b))
	merged := make([]int, 0, len(a)+len(b))

	for _, list := range [][]int{a, b} {
		for _, f := range list {
			if !seen[f] {
				seen[f] = true
				merged = append(merged, f)
			}
		}
	}
	types.SortByDirection(merged, dir)
	return merged
}

func mergeSorted(a, b []int, dir types.Direction) []int {
	merged := make([]int, 0, len(a)+len(b))
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			merged = append(merged, a[i])
			i++
			j++
		case types.Before(a[i], b[j], dir):
			merged = append(merged, a[i])
			i++
		default:
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged
}
