// Package queue implements a FIFO queue backed by a growable circular
// buffer.
//
// What:
//
//   - Queue[T] writes at a tail index and reads at a head index, both
//     advancing modulo the buffer length, so no element ever shifts.
//   - When the ring saturates it doubles, relinearizing head..tail into
//     the front of the new buffer.
//
// Why:
//
//   - Amortized O(1) enqueue and true O(1) dequeue without the O(n)
//     shifting a plain slice front-removal costs.
//   - The wrap-around index arithmetic behind every bounded channel and
//     ring buffer.
//
// Complexity:
//
//   - Enqueue: O(1) amortized (O(n) on the doubling grow)
//   - Dequeue / Front / Len / Empty: O(1)
//
// Errors:
//
//   - ErrEmptyQueue: Dequeue and Front on a queue of size 0. Failed calls
//     never mutate the queue.
package queue
