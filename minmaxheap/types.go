// Package minmaxheap defines the Heap container and its sentinel errors.
package minmaxheap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmptyHeap indicates a read or extract operation on a heap of size 0.
// It is the only failure the package produces; the heap is left unchanged
// whenever it is returned.
var ErrEmptyHeap = errors.New("minmaxheap: heap is empty")

// Heap is a double-ended priority queue over any totally ordered type.
//
// The zero value is ready to use:
//
//	var h minmaxheap.Heap[int]
//	h.Insert(42)
//
// Internally data holds a complete binary tree in breadth-first order;
// depth parity decides whether a slot obeys the min rule or the max rule.
// Heap never exposes references into data, so the only way to observe or
// change its contents is through the exported methods.
type Heap[T constraints.Ordered] struct {
	data []T
}

// New returns an empty heap.
func New[T constraints.Ordered]() *Heap[T] {
	return &Heap[T]{}
}

// NewWithCapacity returns an empty heap whose backing slice is
// preallocated for n elements. Negative n is treated as 0.
func NewWithCapacity[T constraints.Ordered](n int) *Heap[T] {
	if n < 0 {
		n = 0
	}

	return &Heap[T]{data: make([]T, 0, n)}
}

// Len reports the number of stored elements. Complexity: O(1).
func (h *Heap[T]) Len() int {
	return len(h.data)
}

// Empty reports whether the heap holds zero elements. Complexity: O(1).
func (h *Heap[T]) Empty() bool {
	return len(h.data) == 0
}
