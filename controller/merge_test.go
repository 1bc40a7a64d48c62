package controller

import (
	"reflect"
	"testing"

	"dispatch/types"
)

func TestMergeUnion(t *testing.T) {
	cases := []struct {
		a, b     []int
		dir      types.Direction
		expected []int
	}{
		{[]int{4, 8}, []int{4, 6}, types.DIR_Up, []int{4, 6, 8}},
		{[]int{8, 4}, []int{6, 4, 2}, types.DIR_Down, []int{8, 6, 4, 2}},
		{[]int{}, []int{3}, types.DIR_Up, []int{3}},
		{nil, nil, types.DIR_Down, []int{}},
		{[]int{5, 5}, []int{5}, types.DIR_Up, []int{5}},
		{[]int{1, 9}, []int{2, 9, 3}, types.DIR_Up, []int{1, 2, 3, 9}},
	}

	for _, c := range cases {
		got := mergeUnion(c.a, c.b, c.dir)
		if !reflect.DeepEqual(got, c.expected) {
			t.Errorf("mergeUnion(%v, %v, %v) = %v; expected %v", c.a, c.b, c.dir, got, c.expected)
		}
	}
}

// Every floor of either input appears exactly once and in scan order.
func TestMergeUnion_IsOrderedSetUnion(t *testing.T) {
	a := []int{0, 3, 3, 7, 9}
	b := []int{9, 2, 3, 5}

	for _, dir := range []types.Direction{types.DIR_Up, types.DIR_Down} {
		merged := mergeUnion(a, b, dir)

		seen := map[int]int{}
		for _, f := range merged {
			seen[f]++
		}
		for _, f := range append(append([]int{}, a...), b...) {
			if seen[f] != 1 {
				t.Errorf("%v: floor %d appears %d times in %v", dir, f, seen[f], merged)
			}
		}
		if len(seen) != len(merged) {
			t.Errorf("%v: merged has floors not in the inputs: %v", dir, merged)
		}
		for i := 1; i < len(merged); i++ {
			if !types.Before(merged[i-1], merged[i], dir) {
				t.Errorf("%v: not ordered: %v", dir, merged)
			}
		}
	}
}

func TestMergeSorted(t *testing.T) {
	cases := []struct {
		a, b     []int
		dir      types.Direction
		expected []int
	}{
		{[]int{4, 8}, []int{4, 6}, types.DIR_Up, []int{4, 6, 8}},
		{[]int{8, 4}, []int{6, 4, 2}, types.DIR_Down, []int{8, 6, 4, 2}},
		{[]int{}, []int{3, 5}, types.DIR_Up, []int{3, 5}},
		{[]int{1}, nil, types.DIR_Down, []int{1}},
	}

	for _, c := range cases {
		got := mergeSorted(c.a, c.b, c.dir)
		if !reflect.DeepEqual(got, c.expected) {
			t.Errorf("mergeSorted(%v, %v, %v) = %v; expected %v", c.a, c.b, c.dir, got, c.expected)
		}
	}
}

func TestParseMergeVariant(t *testing.T) {
	if m, err := ParseMergeVariant("sorted"); err != nil || m != MergeSorted {
		t.Errorf("Expected MergeSorted, got %v, %v", m, err)
	}
	if m, err := ParseMergeVariant(""); err != nil || m != MergeUnion {
		t.Errorf("Expected MergeUnion default, got %v, %v", m, err)
	}
	if _, err := ParseMergeVariant("zip"); err == nil {
		t.Errorf("Expected error for unknown variant")
	}
}
