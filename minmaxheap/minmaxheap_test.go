package minmaxheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algolab/minmaxheap"
)

// verifyInvariant checks the heap property from outside the package:
// internal slots are never exposed, so the check builds two heaps from the
// same multiset and drains one from each end. The alternating-level
// ordering holds iff the ExtractMin drain is non-decreasing and the
// ExtractMax drain is non-increasing, both matching the sorted multiset.
func verifyInvariant(t *testing.T, contents []int) {
	t.Helper()

	asc := minmaxheap.New[int]()
	desc := minmaxheap.New[int]()
	for _, v := range contents {
		asc.Insert(v)
		desc.Insert(v)
	}

	want := append([]int(nil), contents...)
	sort.Ints(want)

	got := make([]int, 0, len(contents))
	for !asc.Empty() {
		v, err := asc.ExtractMin()
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, want, got, "ExtractMin drain must be non-decreasing")

	got = got[:0]
	for !desc.Empty() {
		v, err := desc.ExtractMax()
		require.NoError(t, err)
		got = append(got, v)
	}
	for l, r := 0, len(got)-1; l < r; l, r = l+1, r-1 {
		got[l], got[r] = got[r], got[l]
	}
	require.Equal(t, want, got, "ExtractMax drain must be non-increasing")
}

// TestHeap_EmptyOperations verifies that every read/extract operation on an
// empty heap fails with ErrEmptyHeap and that the failure mutates nothing.
func TestHeap_EmptyOperations(t *testing.T) {
	h := minmaxheap.New[int]()

	_, err := h.Min()
	assert.ErrorIs(t, err, minmaxheap.ErrEmptyHeap, "Min on empty heap")
	_, err = h.Max()
	assert.ErrorIs(t, err, minmaxheap.ErrEmptyHeap, "Max on empty heap")
	_, err = h.ExtractMin()
	assert.ErrorIs(t, err, minmaxheap.ErrEmptyHeap, "ExtractMin on empty heap")
	_, err = h.ExtractMax()
	assert.ErrorIs(t, err, minmaxheap.ErrEmptyHeap, "ExtractMax on empty heap")

	assert.True(t, h.Empty(), "heap must stay empty after failed calls")
	assert.Equal(t, 0, h.Len(), "failed calls must not change size")
}

// TestHeap_SingleElement covers the size-1 boundary: Min and Max both
// return the sole element, and either extraction empties the heap.
func TestHeap_SingleElement(t *testing.T) {
	h := minmaxheap.New[int]()
	h.Insert(7)

	minV, err := h.Min()
	require.NoError(t, err)
	maxV, err := h.Max()
	require.NoError(t, err)
	assert.Equal(t, 7, minV, "Min of a singleton")
	assert.Equal(t, 7, maxV, "Max of a singleton equals the sole element")

	got, err := h.ExtractMax()
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.True(t, h.Empty(), "singleton heap drains to empty")
}

// TestHeap_TwoElements covers the size-2 boundary: the single child at
// index 1 is the maximum regardless of insertion order.
func TestHeap_TwoElements(t *testing.T) {
	for name, values := range map[string][2]int{
		"ascending_insert":  {1, 9},
		"descending_insert": {9, 1},
	} {
		t.Run(name, func(t *testing.T) {
			h := minmaxheap.New[int]()
			h.Insert(values[0])
			h.Insert(values[1])

			minV, err := h.Min()
			require.NoError(t, err)
			maxV, err := h.Max()
			require.NoError(t, err)
			assert.Equal(t, 1, minV)
			assert.Equal(t, 9, maxV, "size-2 Max is the non-root element")
		})
	}
}

// TestHeap_ReferenceScenario replays the canonical walkthrough:
// insert 10, 5, 30, 3, 17, 22 and exercise both ends.
func TestHeap_ReferenceScenario(t *testing.T) {
	h := minmaxheap.New[int]()
	for _, v := range []int{10, 5, 30, 3, 17, 22} {
		h.Insert(v)
	}
	require.Equal(t, 6, h.Len())

	minV, err := h.Min()
	require.NoError(t, err)
	maxV, err := h.Max()
	require.NoError(t, err)
	assert.Equal(t, 3, minV, "minimum after six inserts")
	assert.Equal(t, 30, maxV, "maximum after six inserts")

	gotMin, err := h.ExtractMin()
	require.NoError(t, err)
	gotMax, err := h.ExtractMax()
	require.NoError(t, err)
	assert.Equal(t, 3, gotMin, "ExtractMin returns the global minimum")
	assert.Equal(t, 30, gotMax, "ExtractMax returns the global maximum")

	minV, err = h.Min()
	require.NoError(t, err)
	maxV, err = h.Max()
	require.NoError(t, err)
	assert.Equal(t, 5, minV, "minimum after both extractions")
	assert.Equal(t, 22, maxV, "maximum after both extractions")
	assert.Equal(t, 4, h.Len(), "6 inserts - 2 extracts = 4")
}

// TestHeap_IdempotentReads verifies Min/Max do not mutate: repeated calls
// agree and Len never moves.
func TestHeap_IdempotentReads(t *testing.T) {
	h := minmaxheap.New[int]()
	for _, v := range []int{4, 8, 15, 16, 23, 42} {
		h.Insert(v)
	}

	first, err := h.Min()
	require.NoError(t, err)
	second, err := h.Min()
	require.NoError(t, err)
	assert.Equal(t, first, second, "Min must be idempotent")

	first, err = h.Max()
	require.NoError(t, err)
	second, err = h.Max()
	require.NoError(t, err)
	assert.Equal(t, first, second, "Max must be idempotent")

	assert.Equal(t, 6, h.Len(), "reads must not change size")
}

// TestHeap_Duplicates ensures the heap behaves as a multiset: repeated
// values survive and drain in order.
func TestHeap_Duplicates(t *testing.T) {
	verifyInvariant(t, []int{5, 5, 5, 1, 1, 9, 9, 5})
}

// TestHeap_AscendingAndDescendingInserts stresses bubble-up with the two
// adversarial insertion orders.
func TestHeap_AscendingAndDescendingInserts(t *testing.T) {
	asc := make([]int, 64)
	desc := make([]int, 64)
	for i := range asc {
		asc[i] = i
		desc[i] = len(desc) - i
	}
	verifyInvariant(t, asc)
	verifyInvariant(t, desc)
}

// TestHeap_RandomizedDrains drains random multisets from both ends and
// checks the global order each time; any off-by-one in the
// grandparent/grandchild index math surfaces as a misordered drain.
func TestHeap_RandomizedDrains(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		n := 1 + rng.Intn(200)
		contents := make([]int, n)
		for i := range contents {
			contents[i] = rng.Intn(50) // dense range forces duplicates
		}
		verifyInvariant(t, contents)
	}
}

// TestHeap_InterleavedExtremes alternates ExtractMin and ExtractMax and
// checks each against a sorted mirror of the remaining multiset.
func TestHeap_InterleavedExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := minmaxheap.New[int]()
	mirror := make([]int, 0, 300)
	for i := 0; i < 300; i++ {
		v := rng.Intn(1000)
		h.Insert(v)
		mirror = append(mirror, v)
	}
	sort.Ints(mirror)

	for len(mirror) > 0 {
		if len(mirror)%2 == 0 {
			got, err := h.ExtractMin()
			require.NoError(t, err)
			require.Equal(t, mirror[0], got, "ExtractMin must track the sorted mirror")
			mirror = mirror[1:]
		} else {
			got, err := h.ExtractMax()
			require.NoError(t, err)
			require.Equal(t, mirror[len(mirror)-1], got, "ExtractMax must track the sorted mirror")
			mirror = mirror[:len(mirror)-1]
		}
		require.Equal(t, len(mirror), h.Len(), "size bookkeeping after extraction")
	}
	assert.True(t, h.Empty())
}

// TestHeap_SizeAccounting verifies Len equals inserts minus extracts at
// every step of a mixed workload.
func TestHeap_SizeAccounting(t *testing.T) {
	h := minmaxheap.NewWithCapacity[int](16)
	inserted, extracted := 0, 0

	for i := 0; i < 40; i++ {
		h.Insert(i * 3 % 17)
		inserted++
		assert.Equal(t, inserted-extracted, h.Len())
		if i%3 == 2 {
			_, err := h.ExtractMax()
			require.NoError(t, err)
			extracted++
			assert.Equal(t, inserted-extracted, h.Len())
		}
	}
}

// TestHeap_Strings exercises genericity over a non-numeric ordered type.
func TestHeap_Strings(t *testing.T) {
	h := minmaxheap.New[string]()
	for _, w := range []string{"pear", "apple", "quince", "fig", "mango"} {
		h.Insert(w)
	}

	minV, err := h.Min()
	require.NoError(t, err)
	maxV, err := h.Max()
	require.NoError(t, err)
	assert.Equal(t, "apple", minV)
	assert.Equal(t, "quince", maxV)
}

// TestHeap_ZeroValueReady confirms the zero value works without New.
func TestHeap_ZeroValueReady(t *testing.T) {
	var h minmaxheap.Heap[float64]
	h.Insert(2.5)
	h.Insert(-1.5)

	minV, err := h.Min()
	require.NoError(t, err)
	assert.Equal(t, -1.5, minV)
	assert.Equal(t, 2, h.Len())
}
