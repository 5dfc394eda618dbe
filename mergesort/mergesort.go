package mergesort

import "golang.org/x/exp/constraints"

// Sort returns a sorted copy of in, in non-decreasing order. The input is
// never mutated. Equal elements keep their relative order (stable).
//
// Complexity: O(n log n) time, O(n) auxiliary memory.
func Sort[T constraints.Ordered](in []T) []T {
	if len(in) <= 1 {
		// Copy even the trivial cases so callers always own the result.
		out := make([]T, len(in))
		copy(out, in)

		return out
	}
	mid := len(in) / 2
	left := Sort(in[:mid])
	right := Sort(in[mid:])

	return merge(left, right)
}

// merge interleaves two sorted slices into one. The <= comparison keeps
// left-hand elements first on ties, which is what makes the sort stable.
func merge[T constraints.Ordered](left, right []T) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}
