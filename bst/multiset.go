package bst

import "golang.org/x/exp/constraints"

// msNode carries a frequency count instead of duplicating nodes per
// occurrence, so the tree shape depends only on distinct keys.
type msNode[T constraints.Ordered] struct {
	key         T
	count       int
	left, right *msNode[T]
}

// Multiset is a binary search tree that stores repeated keys as per-node
// counts. The zero value is an empty multiset.
type Multiset[T constraints.Ordered] struct {
	root *msNode[T]
	size int // total occurrences across all keys
}

// NewMultiset returns an empty multiset.
func NewMultiset[T constraints.Ordered]() *Multiset[T] {
	return &Multiset[T]{}
}

// Len reports the total number of stored occurrences. Complexity: O(1).
func (m *Multiset[T]) Len() int {
	return m.size
}

// Insert adds one occurrence of key. Complexity: O(h).
func (m *Multiset[T]) Insert(key T) {
	m.root = msInsert(m.root, key)
	m.size++
}

func msInsert[T constraints.Ordered](n *msNode[T], key T) *msNode[T] {
	if n == nil {
		return &msNode[T]{key: key, count: 1}
	}
	switch {
	case key < n.key:
		n.left = msInsert(n.left, key)
	case key > n.key:
		n.right = msInsert(n.right, key)
	default:
		n.count++
	}

	return n
}

// Count reports how many occurrences of key are stored. Complexity: O(h).
func (m *Multiset[T]) Count(key T) int {
	n := m.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.count
		}
	}

	return 0
}

// Remove deletes one occurrence of key, returning whether the key was
// present. The node disappears only when its count reaches zero.
// Complexity: O(h).
func (m *Multiset[T]) Remove(key T) bool {
	root, removed, dropped := msErase(m.root, key, false)
	m.root = root
	if removed {
		m.size -= dropped
	}

	return removed
}

// RemoveAll deletes every occurrence of key, returning whether the key was
// present. Complexity: O(h).
func (m *Multiset[T]) RemoveAll(key T) bool {
	root, removed, dropped := msErase(m.root, key, true)
	m.root = root
	if removed {
		m.size -= dropped
	}

	return removed
}

// msErase removes occurrences of key below n. dropped reports how many
// occurrences actually left the tree (1, the full count, or 0 on a miss).
func msErase[T constraints.Ordered](n *msNode[T], key T, removeAll bool) (*msNode[T], bool, int) {
	if n == nil {
		return nil, false, 0
	}
	var (
		removed bool
		dropped int
	)
	switch {
	case key < n.key:
		n.left, removed, dropped = msErase(n.left, key, removeAll)

		return n, removed, dropped
	case key > n.key:
		n.right, removed, dropped = msErase(n.right, key, removeAll)

		return n, removed, dropped
	}
	// Found. Decrement first unless the whole key goes.
	if !removeAll && n.count > 1 {
		n.count--

		return n, true, 1
	}
	dropped = n.count
	switch {
	case n.left == nil:
		return n.right, true, dropped
	case n.right == nil:
		return n.left, true, dropped
	default:
		// Two children: adopt the in-order successor's key and count, then
		// delete the successor node wholesale from the right subtree. Its
		// count collapses to 1 first so the recursive erase removes the
		// node rather than occurrences the parent just adopted.
		successor := n.right
		for successor.left != nil {
			successor = successor.left
		}
		n.key = successor.key
		n.count = successor.count
		successor.count = 1
		n.right, _, _ = msErase(n.right, successor.key, true)

		return n, true, dropped
	}
}

// InOrder returns every occurrence in ascending order, repeating each key
// count times. Complexity: O(n + total occurrences).
func (m *Multiset[T]) InOrder() []T {
	out := make([]T, 0, m.size)
	var walk func(n *msNode[T])
	walk = func(n *msNode[T]) {
		if n == nil {
			return
		}
		walk(n.left)
		for i := 0; i < n.count; i++ {
			out = append(out, n.key)
		}
		walk(n.right)
	}
	walk(m.root)

	return out
}
