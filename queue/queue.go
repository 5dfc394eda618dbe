package queue

import "errors"

// ErrEmptyQueue indicates Dequeue or Front on a queue of size 0.
var ErrEmptyQueue = errors.New("queue: queue is empty")

// minCapacity is the smallest ring ever allocated.
const minCapacity = 8

// Queue is a FIFO container over a circular buffer. Use New to construct
// one; the zero value allocates its ring lazily on first Enqueue.
type Queue[T any] struct {
	data  []T
	head  int // index of the logical front
	tail  int // index of the next write
	count int
}

// New returns a queue with at least initialCapacity ring slots
// (minimum 8).
func New[T any](initialCapacity int) *Queue[T] {
	if initialCapacity < minCapacity {
		initialCapacity = minCapacity
	}

	return &Queue[T]{data: make([]T, initialCapacity)}
}

// Len reports the number of stored elements. Complexity: O(1).
func (q *Queue[T]) Len() int {
	return q.count
}

// Empty reports whether the queue holds zero elements. Complexity: O(1).
func (q *Queue[T]) Empty() bool {
	return q.count == 0
}

// Enqueue appends value at the back. Complexity: O(1) amortized.
func (q *Queue[T]) Enqueue(value T) {
	if q.count == len(q.data) {
		// Saturated ring (or zero-value queue): double so the amortized
		// enqueue cost stays O(1).
		q.grow()
	}
	// Write at tail, then advance it circularly.
	q.data[q.tail] = value
	q.tail = (q.tail + 1) % len(q.data)
	q.count++
}

// Dequeue removes and returns the front element.
// Returns ErrEmptyQueue on a queue of size 0. Complexity: O(1).
func (q *Queue[T]) Dequeue() (T, error) {
	if q.count == 0 {
		var zero T

		return zero, ErrEmptyQueue
	}
	value := q.data[q.head]
	var zero T
	q.data[q.head] = zero // release the slot's reference
	q.head = (q.head + 1) % len(q.data)
	q.count--

	return value, nil
}

// Front returns the front element without removing it.
// Returns ErrEmptyQueue on a queue of size 0. Complexity: O(1).
func (q *Queue[T]) Front() (T, error) {
	if q.count == 0 {
		var zero T

		return zero, ErrEmptyQueue
	}

	return q.data[q.head], nil
}

// grow doubles the ring and relinearizes the live window head..tail into
// the front of the new buffer, resetting head to 0.
func (q *Queue[T]) grow() {
	capacity := len(q.data) * 2
	if capacity == 0 {
		capacity = minCapacity
	}
	data := make([]T, capacity)
	for i := 0; i < q.count; i++ {
		data[i] = q.data[(q.head+i)%len(q.data)]
	}
	q.data = data
	q.head = 0
	q.tail = q.count
}
