// Package bst implements binary search trees: a unique-key Tree and a
// counted Multiset variant.
//
// What:
//
//   - Tree[T] stores each key at most once. Insert reports whether the key
//     was new; Remove handles all three textbook cases (leaf, one child,
//     two children via in-order successor).
//   - Multiset[T] stores a frequency per key instead of duplicate nodes.
//     Remove drops one occurrence; RemoveAll drops the whole key.
//
// Why:
//
//   - Ordered membership with O(h) operations and an O(n) sorted walk.
//   - The multiset shows how one counter per node replaces node
//     duplication without touching the tree shape rules.
//
// Complexity (h = tree height; O(n) worst case, unbalanced by design):
//
//   - Insert / Contains / Remove / Count: O(h)
//   - InOrder: O(n)
//
// Neither structure rebalances; this is the teaching shape, not an AVL or
// red-black tree.
package bst
