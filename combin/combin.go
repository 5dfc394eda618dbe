package combin

// Permutations returns every ordering of items. Positions are fixed left
// to right: each remaining candidate is swapped into the current slot and
// the suffix is permuted recursively, so the input's own order leads.
// The input is copied, never mutated.
//
// Complexity: O(n · n!) time and memory.
func Permutations[T any](items []T) [][]T {
	work := append([]T(nil), items...)
	out := make([][]T, 0)

	var permute func(index int)
	permute = func(index int) {
		if index == len(work) {
			out = append(out, snapshot(work))

			return
		}
		for i := index; i < len(work); i++ {
			work[index], work[i] = work[i], work[index]
			permute(index + 1)
			// Swap back so the next candidate sees the original suffix.
			work[index], work[i] = work[i], work[index]
		}
	}
	permute(0)

	return out
}

// Combinations returns every selection of k items, preserving the input's
// relative order within each result. Results appear in lexicographic
// order of chosen positions (the include branch recurses first).
// k < 0 or k > len(items) yields an empty enumeration.
//
// Complexity: O(C(n,k)) results, O(k) working memory beside the output.
func Combinations[T any](items []T, k int) [][]T {
	if k < 0 || k > len(items) {
		return nil
	}
	out := make([][]T, 0)
	current := make([]T, 0, k)

	var choose func(index int)
	choose = func(index int) {
		if len(current) == k {
			out = append(out, snapshot(current))

			return
		}
		// Not enough candidates left to reach k picks: dead branch.
		if index == len(items) {
			return
		}
		current = append(current, items[index])
		choose(index + 1)
		current = current[:len(current)-1]

		choose(index + 1)
	}
	choose(0)

	return out
}

// Subsets returns all 2^n subsets of items, preserving relative order
// within each subset. The include branch recurses first, so the full set
// is emitted first and the empty set last.
//
// Complexity: O(n · 2^n) time and memory.
func Subsets[T any](items []T) [][]T {
	out := make([][]T, 0, 1<<uint(len(items)))
	current := make([]T, 0, len(items))

	var explore func(index int)
	explore = func(index int) {
		if index == len(items) {
			out = append(out, snapshot(current))

			return
		}
		current = append(current, items[index])
		explore(index + 1)
		current = current[:len(current)-1]

		explore(index + 1)
	}
	explore(0)

	return out
}

// snapshot copies a working slice into an independent, never-nil result;
// the empty selection must still compare equal to []T{}.
func snapshot[T any](s []T) []T {
	return append(make([]T, 0, len(s)), s...)
}
