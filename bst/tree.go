package bst

import "golang.org/x/exp/constraints"

// node is a unique-key tree node.
type node[T constraints.Ordered] struct {
	key         T
	left, right *node[T]
}

// Tree is a binary search tree holding each key at most once.
// The zero value is an empty tree.
type Tree[T constraints.Ordered] struct {
	root *node[T]
	size int
}

// NewTree returns an empty unique-key tree.
func NewTree[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Len reports the number of stored keys. Complexity: O(1).
func (t *Tree[T]) Len() int {
	return t.size
}

// Insert adds key to the tree. It returns true when the key was absent and
// false (with no change) when it already exists. Complexity: O(h).
func (t *Tree[T]) Insert(key T) bool {
	inserted := false
	t.root, inserted = insertNode(t.root, key)
	if inserted {
		t.size++
	}

	return inserted
}

func insertNode[T constraints.Ordered](n *node[T], key T) (*node[T], bool) {
	if n == nil {
		return &node[T]{key: key}, true
	}
	var inserted bool
	switch {
	case key < n.key:
		n.left, inserted = insertNode(n.left, key)
	case key > n.key:
		n.right, inserted = insertNode(n.right, key)
	default:
		// Duplicate: unique-key trees ignore repeated inserts.
		return n, false
	}

	return n, inserted
}

// Contains reports whether key is stored. Complexity: O(h).
func (t *Tree[T]) Contains(key T) bool {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return true
		}
	}

	return false
}

// Remove deletes key from the tree, returning whether it was present.
// A node with two children swaps keys with its in-order successor (the
// smallest key of the right subtree) and deletes the successor instead.
// Complexity: O(h).
func (t *Tree[T]) Remove(key T) bool {
	removed := false
	t.root, removed = removeNode(t.root, key)
	if removed {
		t.size--
	}

	return removed
}

func removeNode[T constraints.Ordered](n *node[T], key T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch {
	case key < n.key:
		n.left, removed = removeNode(n.left, key)

		return n, removed
	case key > n.key:
		n.right, removed = removeNode(n.right, key)

		return n, removed
	}
	// Found the node; splice by child count.
	switch {
	case n.left == nil:
		return n.right, true
	case n.right == nil:
		return n.left, true
	default:
		successor := n.right
		for successor.left != nil {
			successor = successor.left
		}
		n.key = successor.key
		n.right, _ = removeNode(n.right, successor.key)

		return n, true
	}
}

// InOrder returns all keys in ascending order. Complexity: O(n).
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.key)
		walk(n.right)
	}
	walk(t.root)

	return out
}
