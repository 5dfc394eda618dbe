// Package search implements binary search over sorted slices.
//
// What:
//
//   - Search halves a non-decreasing slice until the target is found or
//     the window collapses, returning the index and a found flag.
//
// Why:
//
//   - Membership and position queries on sorted data in O(log n).
//   - The canonical warm-up for invariant-driven loop reasoning.
//
// Complexity:
//
//   - Time:   O(log n)
//   - Memory: O(1)
//
// The input must already be sorted in non-decreasing order; the function
// does not verify this precondition.
package search
