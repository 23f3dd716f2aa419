// Package percolation defines the Percolation type and its sentinel errors.
package percolation

import (
	"errors"

	"github.com/katalvlaran/percolate/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidArgument indicates a non-positive grid size or a coordinate
	// outside [1, n].
	ErrInvalidArgument = errors.New("percolation: invalid argument")
	// ErrInternal indicates a union-find operation failed, which only happens
	// if the site-to-element mapping is broken.
	ErrInternal = errors.New("percolation: internal invariant violated")
)

// siteOffsets lists the orthogonal neighbours (N, E, S, W) as (dRow, dCol).
var siteOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Percolation is an n×n grid of sites. It is mutable (Open) and not safe for
// concurrent use.
//
// open[i] is the state of the site with linear index i. top and bottom are
// the element ids of the virtual sentinels in both universes.
type Percolation struct {
	n       int
	open    []bool
	numOpen int
	top     int
	bottom  int
	percUF  *unionfind.UnionFind // TOP and BOTTOM; answers Percolates
	fullUF  *unionfind.UnionFind // TOP only; answers IsFull
}
