package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algolab/queue"
)

// TestQueue_FIFO verifies enqueues come back in insertion order.
func TestQueue_FIFO(t *testing.T) {
	q := queue.New[int](8)
	for _, v := range []int{1, 2, 3} {
		q.Enqueue(v)
	}
	require.Equal(t, 3, q.Len())

	for _, want := range []int{1, 2, 3} {
		front, err := q.Front()
		require.NoError(t, err)
		assert.Equal(t, want, front, "Front must agree with the next Dequeue")

		got, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, q.Empty())
}

// TestQueue_EmptyOperations verifies the sentinel on empty Dequeue/Front.
func TestQueue_EmptyOperations(t *testing.T) {
	q := queue.New[string](8)

	_, err := q.Dequeue()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
	_, err = q.Front()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)

	q.Enqueue("x")
	got, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "x", got, "queue must work normally after failed calls")
}

// TestQueue_WrapAround drives the head and tail repeatedly past the ring
// boundary without triggering growth.
func TestQueue_WrapAround(t *testing.T) {
	q := queue.New[int](8)
	next, expect := 0, 0
	// Keep ≤4 elements in an 8-slot ring while cycling 100 values.
	for i := 0; i < 100; i++ {
		q.Enqueue(next)
		next++
		if q.Len() > 4 {
			got, err := q.Dequeue()
			require.NoError(t, err)
			require.Equal(t, expect, got, "ring wrap must preserve FIFO order")
			expect++
		}
	}
}

// TestQueue_GrowthRelinearizes fills the ring with a wrapped window, then
// grows it and checks the order survives.
func TestQueue_GrowthRelinearizes(t *testing.T) {
	q := queue.New[int](8)
	// Shift the head off index 0 so the live window wraps before growing.
	for i := 0; i < 6; i++ {
		q.Enqueue(i)
	}
	for i := 0; i < 4; i++ {
		_, err := q.Dequeue()
		require.NoError(t, err)
	}
	// Now fill past the ring boundary and beyond its capacity.
	for i := 6; i < 30; i++ {
		q.Enqueue(i)
	}

	for want := 4; want < 30; want++ {
		got, err := q.Dequeue()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	assert.True(t, q.Empty())
}

// TestQueue_ZeroValueReady confirms the zero value allocates lazily.
func TestQueue_ZeroValueReady(t *testing.T) {
	var q queue.Queue[int]
	q.Enqueue(5)
	got, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

// TestQueue_MinimumCapacity confirms tiny requested capacities are raised
// to the floor rather than failing.
func TestQueue_MinimumCapacity(t *testing.T) {
	q := queue.New[int](0)
	for i := 0; i < 20; i++ {
		q.Enqueue(i)
	}
	assert.Equal(t, 20, q.Len())
}
