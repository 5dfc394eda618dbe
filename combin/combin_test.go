package combin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algolab/combin"
)

// TestPermutations_Order verifies the swap-recursion emission order.
func TestPermutations_Order(t *testing.T) {
	got := combin.Permutations([]int{1, 2, 3})
	want := [][]int{
		{1, 2, 3}, {1, 3, 2},
		{2, 1, 3}, {2, 3, 1},
		{3, 2, 1}, {3, 1, 2},
	}
	assert.Equal(t, want, got)
}

// TestPermutations_Boundaries covers empty and singleton inputs, and that
// the input is never mutated.
func TestPermutations_Boundaries(t *testing.T) {
	assert.Equal(t, [][]int{{}}, combin.Permutations([]int{}), "empty input has one (empty) ordering")
	assert.Equal(t, [][]int{{7}}, combin.Permutations([]int{7}))

	in := []int{1, 2, 3, 4}
	got := combin.Permutations(in)
	assert.Equal(t, []int{1, 2, 3, 4}, in, "input must stay untouched")
	assert.Len(t, got, 24, "4! orderings")
}

// TestCombinations_Order verifies lexicographic-by-position emission.
func TestCombinations_Order(t *testing.T) {
	got := combin.Combinations([]int{1, 2, 3, 4}, 2)
	want := [][]int{
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	}
	assert.Equal(t, want, got)
}

// TestCombinations_KBoundaries covers k = 0, k = n, and out-of-range k.
func TestCombinations_KBoundaries(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Equal(t, [][]int{{}}, combin.Combinations(items, 0), "k=0 picks the empty selection")
	assert.Equal(t, [][]int{{1, 2, 3}}, combin.Combinations(items, 3), "k=n picks everything")
	assert.Nil(t, combin.Combinations(items, 4), "k>n has no selections")
	assert.Nil(t, combin.Combinations(items, -1), "negative k has no selections")
}

// TestSubsets_OrderAndCount verifies the include-first emission order for
// the canonical {1,2,3} walkthrough.
func TestSubsets_OrderAndCount(t *testing.T) {
	got := combin.Subsets([]int{1, 2, 3})
	want := [][]int{
		{1, 2, 3}, {1, 2}, {1, 3}, {1},
		{2, 3}, {2}, {3}, {},
	}
	assert.Equal(t, want, got)
}

// TestSubsets_CountGrowth verifies the 2^n count on a larger input and
// that every emitted slice is an independent copy.
func TestSubsets_CountGrowth(t *testing.T) {
	got := combin.Subsets([]int{1, 2, 3, 4, 5, 6})
	require.Len(t, got, 64)

	got[0][0] = 999
	assert.Equal(t, []int{1, 2}, got[1][:2], "results must not share backing storage")
}

// TestCombin_Strings exercises genericity over strings.
func TestCombin_Strings(t *testing.T) {
	got := combin.Combinations([]string{"a", "b", "c"}, 2)
	assert.Equal(t, [][]string{{"a", "b"}, {"a", "c"}, {"b", "c"}}, got)
}
