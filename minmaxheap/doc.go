// Package minmaxheap implements a double-ended priority queue: a single
// array-backed heap that serves both the minimum and the maximum in
// O(log n), without maintaining two coupled heaps.
//
// What:
//
//   - Heap[T] stores ordered values in a complete binary tree laid out
//     breadth-first in a slice: parent(i) = (i-1)/2, children 2i+1, 2i+2.
//   - Even tree depths (0, 2, 4, …) are min levels: a node there is ≤ all
//     of its descendants. Odd depths are max levels: a node there is ≥ all
//     of its descendants.
//   - The root is therefore always the global minimum, and the global
//     maximum always sits at the root or among its (≤2) children.
//
// Why:
//
//   - Sliding-window order statistics: evict either extreme cheaply.
//   - Bounded buffers that drop the largest (or smallest) on overflow.
//   - Medians and quantile maintenance with paired structures.
//
// Operations & complexity:
//
//   - Insert:               O(log n) — append + bubble-up via grandparents.
//   - Min / Max:            O(1)     — root, or larger of indices 1 and 2.
//   - ExtractMin:           O(log n) — replace root, trickle-down (min rule).
//   - ExtractMax:           O(log n) — replace max child, trickle-down (max rule).
//   - Len / Empty:          O(1).
//
// The repair passes differ from an ordinary binary heap: bubble-up climbs
// two levels at a time through grandparents (same ordering rule), and
// trickle-down scans a window of up to six descendants (two children plus
// four grandchildren), fixing any child/parent inversion a grandchild swap
// leaves behind.
//
// Errors:
//
//   - ErrEmptyHeap: Min, Max, ExtractMin and ExtractMax on a heap of size 0.
//     Insert never fails; failed calls never mutate the heap.
//
// The heap is not safe for concurrent use; guard it with one external
// lock if shared between goroutines.
package minmaxheap
