// Package minmaxheap implements the min-max heap operations and the two
// level-aware repair passes (bubble-up and trickle-down).
//
// Algorithm outline:
//
//  1. Insert appends at index n (preserving completeness), then bubbles up:
//     1.1 compare the new slot with its parent; a violation of the parent's
//     level rule swaps them and switches the climb to the opposite rule;
//     1.2 otherwise the climb proceeds along the same rule, two levels at
//     a time, comparing against grandparents only.
//  2. ExtractMin swaps the last element into the root and trickles down
//     under the min rule; ExtractMax does the same from the max-holding
//     slot (index 1 or 2) under the max rule.
//  3. Trickle-down inspects up to six descendants (children 2i+1, 2i+2 and
//     their children). When the extremal candidate is a grandchild, a swap
//     may leave it above its direct parent's rule — one extra swap repairs
//     that before the pass descends.
//
// Both passes move strictly toward the root or strictly away from it, so
// they terminate within the tree height: O(log n).
package minmaxheap

// Insert adds value to the heap. It always succeeds and grows Len by
// exactly one. Complexity: O(log n).
func (h *Heap[T]) Insert(value T) {
	// Append at the end to keep the tree complete, then repair upward.
	h.data = append(h.data, value)
	h.bubbleUp(len(h.data) - 1)
}

// Min returns the smallest stored value without removing it.
// The root is the global minimum by construction.
// Returns ErrEmptyHeap on a heap of size 0. Complexity: O(1).
func (h *Heap[T]) Min() (T, error) {
	if len(h.data) == 0 {
		var zero T

		return zero, ErrEmptyHeap
	}

	return h.data[0], nil
}

// Max returns the largest stored value without removing it.
// The alternating-level invariant pins the maximum to the root's direct
// children (depth 1), or to the root itself when Len ≤ 1.
// Returns ErrEmptyHeap on a heap of size 0. Complexity: O(1).
func (h *Heap[T]) Max() (T, error) {
	switch len(h.data) {
	case 0:
		var zero T

		return zero, ErrEmptyHeap
	case 1:
		return h.data[0], nil
	case 2:
		return h.data[1], nil
	default:
		if h.data[2] > h.data[1] {
			return h.data[2], nil
		}

		return h.data[1], nil
	}
}

// ExtractMin removes and returns the smallest stored value.
// Returns ErrEmptyHeap on a heap of size 0. Complexity: O(log n).
func (h *Heap[T]) ExtractMin() (T, error) {
	if len(h.data) == 0 {
		var zero T

		return zero, ErrEmptyHeap
	}
	// 1) Capture the root, overwrite it with the last element, shrink.
	minValue := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]
	// 2) The displaced value may violate the min rule at the root.
	if len(h.data) > 0 {
		h.trickleDown(0)
	}

	return minValue, nil
}

// ExtractMax removes and returns the largest stored value.
// Returns ErrEmptyHeap on a heap of size 0. Complexity: O(log n).
func (h *Heap[T]) ExtractMax() (T, error) {
	if len(h.data) == 0 {
		var zero T

		return zero, ErrEmptyHeap
	}
	if len(h.data) == 1 {
		maxValue := h.data[0]
		h.data = h.data[:0]

		return maxValue, nil
	}
	// 1) The maximum lives at index 1 or 2 (max level adjacent to the root).
	maxIndex := 1
	if len(h.data) > 2 && h.data[2] > h.data[1] {
		maxIndex = 2
	}
	// 2) Capture it, move the last element into its slot, shrink.
	maxValue := h.data[maxIndex]
	last := len(h.data) - 1
	h.data[maxIndex] = h.data[last]
	h.data = h.data[:last]
	// 3) Repair from the vacated slot unless it was the last slot itself.
	if maxIndex < len(h.data) {
		h.trickleDown(maxIndex)
	}

	return maxValue, nil
}

// parent returns the index of i's parent. Callers guarantee i > 0.
func parent(i int) int {
	return (i - 1) / 2
}

// grandparent returns the index of i's grandparent. Callers guarantee i ≥ 3.
func grandparent(i int) int {
	return parent(parent(i))
}

// onMinLevel reports whether index i sits on an even tree depth.
// Depth is recomputed by walking parent links; the walk is O(log n), which
// leaves every operation's bound unchanged.
func onMinLevel(i int) bool {
	depth := 0
	for i > 0 {
		i = parent(i)
		depth++
	}

	return depth%2 == 0
}

// bubbleUp restores ordering after an append at index i.
//
// The first comparison is against the direct parent: a violation there
// means the value belongs on the parent's level, so they swap and the
// climb continues under the parent's (opposite) rule. Otherwise the value
// already agrees with its parent and the climb skips to the grandparent
// chain, which shares i's rule.
func (h *Heap[T]) bubbleUp(i int) {
	if i == 0 {
		return
	}
	p := parent(i)
	if onMinLevel(i) {
		if h.data[i] > h.data[p] {
			// Too large for a min level: swap up and enforce max rules above.
			h.data[i], h.data[p] = h.data[p], h.data[i]
			h.bubbleUpMax(p)
		} else {
			h.bubbleUpMin(i)
		}
	} else {
		if h.data[i] < h.data[p] {
			// Too small for a max level: swap up and enforce min rules above.
			h.data[i], h.data[p] = h.data[p], h.data[i]
			h.bubbleUpMin(p)
		} else {
			h.bubbleUpMax(i)
		}
	}
}

// bubbleUpMin climbs the grandparent chain of min levels, swapping while
// the value is smaller than its grandparent. Indices below 3 have no
// grandparent, which terminates the loop at the root's level.
func (h *Heap[T]) bubbleUpMin(i int) {
	for i >= 3 {
		gp := grandparent(i)
		if h.data[i] >= h.data[gp] {
			break
		}
		h.data[i], h.data[gp] = h.data[gp], h.data[i]
		i = gp
	}
}

// bubbleUpMax mirrors bubbleUpMin along max levels: larger values leapfrog
// over the intervening min level toward the top of their chain.
func (h *Heap[T]) bubbleUpMax(i int) {
	for i >= 3 {
		gp := grandparent(i)
		if h.data[i] <= h.data[gp] {
			break
		}
		h.data[i], h.data[gp] = h.data[gp], h.data[i]
		i = gp
	}
}

// trickleDown restores ordering below index i after a replacement there,
// dispatching on i's level rule.
func (h *Heap[T]) trickleDown(i int) {
	if onMinLevel(i) {
		h.trickleDownMin(i)
	} else {
		h.trickleDownMax(i)
	}
}

// trickleDownMin pushes the value at i down min levels until every
// descendant satisfies the min rule.
//
// Each iteration finds the smallest value among i's children and
// grandchildren. A grandchild winner swaps into i and may now exceed its
// own (max-level) parent — the extra swap below repairs that inversion
// before the pass continues from the grandchild's slot. A child winner is
// terminal: a one-level swap cannot break anything deeper.
func (h *Heap[T]) trickleDownMin(i int) {
	for {
		m := h.minDescendant(i)
		if m == i {
			return
		}
		if h.isGrandchild(i, m) {
			if h.data[m] >= h.data[i] {
				return
			}
			h.data[m], h.data[i] = h.data[i], h.data[m]
			if p := parent(m); h.data[m] > h.data[p] {
				h.data[m], h.data[p] = h.data[p], h.data[m]
			}
			i = m
		} else {
			if h.data[m] < h.data[i] {
				h.data[m], h.data[i] = h.data[i], h.data[m]
			}

			return
		}
	}
}

// trickleDownMax is the symmetric pass for max levels: the largest
// descendant in the window rises, with the same parent fixup after a
// grandchild swap.
func (h *Heap[T]) trickleDownMax(i int) {
	for {
		m := h.maxDescendant(i)
		if m == i {
			return
		}
		if h.isGrandchild(i, m) {
			if h.data[m] <= h.data[i] {
				return
			}
			h.data[m], h.data[i] = h.data[i], h.data[m]
			if p := parent(m); h.data[m] < h.data[p] {
				h.data[m], h.data[p] = h.data[p], h.data[m]
			}
			i = m
		} else {
			if h.data[m] > h.data[i] {
				h.data[m], h.data[i] = h.data[i], h.data[m]
			}

			return
		}
	}
}

// isGrandchild reports whether descendant is a grandchild (not a direct
// child) of index i within the current bounds.
func (h *Heap[T]) isGrandchild(i, descendant int) bool {
	if descendant == i || descendant >= len(h.data) {
		return false
	}
	left, right := 2*i+1, 2*i+2
	if descendant == left || descendant == right {
		return false
	}
	p := parent(descendant)

	return p == left || p == right
}

// minDescendant returns the index of the smallest value among i's
// children and grandchildren — a window of at most six slots starting at
// 2i+1 and ending at the last grandchild, clamped to the heap bounds.
// Returns i itself when i has no descendants.
func (h *Heap[T]) minDescendant(i int) int {
	firstChild := 2*i + 1
	if firstChild >= len(h.data) {
		return i
	}
	minIdx := firstChild
	// Last grandchild of i is 2*(2i+2)+2 = 4i+6; clamp to the heap bounds.
	lastDescendant := 4*i + 6
	if last := len(h.data) - 1; last < lastDescendant {
		lastDescendant = last
	}
	for j := firstChild + 1; j <= lastDescendant; j++ {
		if h.data[j] < h.data[minIdx] {
			minIdx = j
		}
	}

	return minIdx
}

// maxDescendant is the symmetric scan for the largest candidate.
func (h *Heap[T]) maxDescendant(i int) int {
	firstChild := 2*i + 1
	if firstChild >= len(h.data) {
		return i
	}
	maxIdx := firstChild
	lastDescendant := 4*i + 6
	if last := len(h.data) - 1; last < lastDescendant {
		lastDescendant = last
	}
	for j := firstChild + 1; j <= lastDescendant; j++ {
		if h.data[j] > h.data[maxIdx] {
			maxIdx = j
		}
	}

	return maxIdx
}
