// Package unionfind defines the UnionFind type and its sentinel errors.
package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrInvalidSize indicates a negative universe size was requested.
	ErrInvalidSize = errors.New("unionfind: universe size must be non-negative")
	// ErrOutOfRange indicates an element index outside [0, N-1].
	ErrOutOfRange = errors.New("unionfind: element index out of range")
)

// UnionFind is a weighted quick-union structure with path halving.
// parent[i] is the parent of i (parent[i] == i for roots); size[r] is the
// number of elements in the tree rooted at r and is only meaningful for roots.
// count tracks the current number of disjoint sets.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}
