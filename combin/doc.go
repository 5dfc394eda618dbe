// Package combin enumerates permutations, combinations, and subsets by
// recursive decision trees.
//
// What:
//
//   - Permutations fixes one position at a time, swapping each remaining
//     candidate into place and recursing on the suffix.
//   - Combinations walks the elements left to right, branching on
//     include/exclude until k picks accumulate.
//   - Subsets makes the same include/exclude decision for every element,
//     yielding all 2^n selections (include branch first, so the full set
//     leads and the empty set closes).
//
// Why:
//
//   - The three enumerators are the same backtracking skeleton with
//     different stop conditions — a compact tour of recursive search.
//
// Complexity (n = input length):
//
//   - Permutations: O(n · n!) results of length n
//   - Combinations: O(C(n,k)) results of length k
//   - Subsets:      O(n · 2^n) results of length ≤ n
//
// All functions copy their input and every emitted slice; callers may
// retain or mutate results freely. Errors: none — out-of-range k yields an
// empty enumeration.
package combin
