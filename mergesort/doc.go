// Package mergesort implements stable top-down merge sort.
//
// What:
//
//   - Sort splits the input in half, sorts each half recursively, and
//     merges the sorted halves, preferring left-hand elements on ties.
//
// Why:
//
//   - Guaranteed O(n log n) regardless of input order.
//   - Stability: equal elements keep their relative order, which quicksort
//     variants do not promise.
//
// Complexity:
//
//   - Time:   O(n log n)
//   - Memory: O(n) auxiliary (merge buffers)
//
// Sort never mutates its input; it returns a freshly allocated slice.
package mergesort
