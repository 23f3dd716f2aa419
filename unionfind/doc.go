// Package unionfind provides a weighted quick-union disjoint-set structure
// over a fixed universe of integer elements.
//
// What:
//
//   - UnionFind partitions the elements 0..N-1 into disjoint sets.
//   - Union merges two sets; Connected reports whether two elements share a set.
//   - Find returns the canonical root of an element's set; Count the number of sets.
//
// Why:
//
//   - Incremental connectivity: grids, networks and equivalence classes that only
//     ever merge can be tracked without recomputing reachability from scratch.
//
// Complexity:
//
//   - New:       O(N) time, O(N) memory (two int slices, allocated once).
//   - Union:     O(α(N)) amortized.
//   - Connected: O(α(N)) amortized.
//   - Find:      O(α(N)) amortized.
//
// Union by size keeps trees shallow; path halving flattens them on every Find.
// Sets never split: there is no delete operation.
//
// Errors:
//
//   - ErrInvalidSize: negative universe size passed to New.
//   - ErrOutOfRange:  element index outside [0, N-1].
//
// Concurrency:
//
//   - A UnionFind is NOT safe for concurrent use; Find mutates the parent slice.
package unionfind
