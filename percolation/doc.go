// Package percolation models an n×n grid of sites that are opened one at a
// time and answers connectivity questions about the open sites incrementally.
//
// What:
//
//   - Percolation owns the open/blocked state of every site.
//   - IsFull reports whether an open site is connected to the top row.
//   - Percolates reports whether an open path spans the top row to the bottom row.
//
// How:
//
//	Two union-find universes of size n²+2 are kept side by side. Elements
//	0..n²-1 are sites, n² is a virtual TOP node and n²+1 a virtual BOTTOM node.
//
//	  percolates  ──►  TOP ~ BOTTOM in the first universe
//	  isFull      ──►  site ~ TOP   in the second universe
//
//	The second universe never touches BOTTOM. With a single universe, once the
//	grid percolates BOTTOM is joined to TOP and every open bottom-row site would
//	be reported full, even when no path from the top reaches it ("backwash").
//
// Coordinates:
//
//   - External (row, col) are 1-based, both in [1, n].
//   - Internal index is (row-1)*n + (col-1).
//
// Complexity:
//
//   - New:               O(n²) time and memory.
//   - Open:              O(α(n²)) amortized (at most 4 neighbours, 2 universes).
//   - IsOpen:            O(1).
//   - IsFull:            O(α(n²)) amortized.
//   - NumberOfOpenSites: O(1).
//   - Percolates:        O(α(n²)) amortized.
//
// Errors:
//
//   - ErrInvalidArgument: n <= 0, or a coordinate outside [1, n].
//   - ErrInternal:        a union-find call failed; indicates a broken index mapping.
package percolation
