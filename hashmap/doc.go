// Package hashmap implements an open-addressed hash table with linear
// probing and tombstoned deletion.
//
// What:
//
//   - Map[K, V] keys integer values into a power-of-two bucket array.
//   - Collisions probe forward one slot at a time, wrapping at the end.
//   - Delete marks slots as tombstones so probe chains through them stay
//     intact; an insert may reuse the first tombstone on its probe path,
//     and a rehash purges the rest.
//   - The table rehashes before non-empty slots (live entries plus
//     tombstones) reach 60% of capacity, doubling only when live entries
//     alone warrant it. Counting tombstones keeps probe chains short and
//     guarantees every probe terminates.
//
// Why:
//
//   - O(1) average insert, lookup, and removal without per-entry
//     allocation or chaining pointers.
//   - Shows the empty/occupied/deleted state machine every open-addressed
//     table needs.
//
// Complexity:
//
//   - Put / Get / Contains / Delete: O(1) average, O(n) degenerate.
//   - Rehash: O(n), amortized away by doubling.
//
// Errors: none — misses are reported through boolean results.
package hashmap
