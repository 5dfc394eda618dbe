package search

import "golang.org/x/exp/constraints"

// Search locates target in a slice sorted in non-decreasing order.
// It returns the index of a matching element and true, or (0, false) when
// the target is absent. With duplicate targets the returned index is the
// first midpoint probe that hits, not necessarily the leftmost match.
//
// Complexity: O(log n) time, O(1) memory.
func Search[T constraints.Ordered](sorted []T, target T) (int, bool) {
	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		// Midpoint without overflow for very large windows.
		mid := lo + (hi-lo)/2
		switch {
		case sorted[mid] == target:
			return mid, true
		case sorted[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return 0, false
}
