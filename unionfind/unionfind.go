package unionfind

import "fmt"

// New returns a UnionFind over the universe 0..n-1 with every element in its
// own singleton set. A zero-sized universe is legal and rejects every index.
// Returns ErrInvalidSize if n < 0.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the size N of the universe.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root of the set containing p.
// Returns ErrOutOfRange if p is outside [0, N-1].
// Complexity: O(α(N)) amortized.
func (uf *UnionFind) Find(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.root(p), nil
}

// Connected reports whether p and q belong to the same set.
// Returns ErrOutOfRange if either index is outside [0, N-1].
// Complexity: O(α(N)) amortized.
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, err
	}
	if err := uf.validate(q); err != nil {
		return false, err
	}

	return uf.root(p) == uf.root(q), nil
}

// Union merges the set containing p with the set containing q.
// It is a no-op when p and q are already connected.
// Returns ErrOutOfRange if either index is outside [0, N-1].
// Complexity: O(α(N)) amortized.
func (uf *UnionFind) Union(p, q int) error {
	if err := uf.validate(p); err != nil {
		return err
	}
	if err := uf.validate(q); err != nil {
		return err
	}

	rootP, rootQ := uf.root(p), uf.root(q)
	if rootP == rootQ {
		return nil
	}
	// Attach the smaller tree under the larger root.
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--

	return nil
}

// root walks to the root of p, pointing every other node on the way at its
// grandparent. p must already be validated.
func (uf *UnionFind) root(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

// validate reports ErrOutOfRange, annotated with the index and bounds, when p
// is not an element of the universe.
func (uf *UnionFind) validate(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("%w: index %d not in [0, %d)", ErrOutOfRange, p, len(uf.parent))
	}

	return nil
}
