// Package stack implements a growable array-backed LIFO stack.
//
// What:
//
//   - Stack[T] pushes onto and pops from the end of a slice, so the most
//     recently pushed element is always served first.
//
// Why:
//
//   - Amortized O(1) push without per-element allocation.
//   - The backing discipline behind recursion elimination, undo logs, and
//     parser state.
//
// Complexity:
//
//   - Push: O(1) amortized
//   - Pop / Peek / Len / Empty: O(1)
//
// Errors:
//
//   - ErrEmptyStack: Pop and Peek on a stack of size 0. Failed calls never
//     mutate the stack.
package stack
