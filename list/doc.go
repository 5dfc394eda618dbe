// Package list implements a singly linked list with head and tail
// pointers.
//
// What:
//
//   - List[T] chains nodes head→tail. PushFront and PushBack are O(1)
//     (the tail pointer buys the back insertion); Remove unlinks the
//     first node matching a value.
//
// Why:
//
//   - Constant-time insertion at either end without reallocating.
//   - The pointer-rewiring exercise every data-structures course starts
//     with.
//
// Complexity:
//
//   - PushFront / PushBack / Len: O(1)
//   - Remove / Contains / Values: O(n)
//
// Errors: none — misses are reported through boolean results.
package list
