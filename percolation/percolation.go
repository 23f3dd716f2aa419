package percolation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/percolate/unionfind"
)

// ValidateSize reports ErrInvalidArgument unless n > 0 and the n²+2
// union-find elements of an n×n grid fit in an int.
// Complexity: O(1).
func ValidateSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: grid size %d must be positive", ErrInvalidArgument, n)
	}
	if n > (math.MaxInt-2)/n {
		return fmt.Errorf("%w: grid size %d too large", ErrInvalidArgument, n)
	}

	return nil
}

// New creates an n×n grid with every site blocked and both sentinels isolated.
// Returns ErrInvalidArgument if n fails ValidateSize.
// Complexity: O(n²) time and memory.
func New(n int) (*Percolation, error) {
	if err := ValidateSize(n); err != nil {
		return nil, err
	}
	sites := n * n
	percUF, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	fullUF, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Percolation{
		n:      n,
		open:   make([]bool, sites),
		top:    sites,
		bottom: sites + 1,
		percUF: percUF,
		fullUF: fullUF,
	}, nil
}

// Size returns the side length n of the grid.
func (p *Percolation) Size() int {
	return p.n
}

// Open opens the site (row, col) if it is not open already, then connects it
// to every open orthogonal neighbour. Sites in row 1 join TOP in both
// universes; sites in row n join BOTTOM in the percolation universe only.
// Opening an open site is a no-op.
// Returns ErrInvalidArgument if (row, col) is outside the grid.
func (p *Percolation) Open(row, col int) error {
	if err := p.validate(row, col); err != nil {
		return err
	}
	site := p.index(row, col)
	if p.open[site] {
		return nil
	}
	p.open[site] = true
	p.numOpen++

	if row == 1 {
		if err := p.unionBoth(site, p.top); err != nil {
			return err
		}
	}
	// BOTTOM lives only in percUF; fullUF must never see it.
	if row == p.n {
		if err := p.percUF.Union(site, p.bottom); err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	for _, d := range siteOffsets {
		nr, nc := row+d[0], col+d[1]
		if !p.inBounds(nr, nc) {
			continue
		}
		neighbor := p.index(nr, nc)
		if !p.open[neighbor] {
			continue
		}
		if err := p.unionBoth(site, neighbor); err != nil {
			return err
		}
	}

	return nil
}

// IsOpen reports whether the site (row, col) is open.
// Returns ErrInvalidArgument if (row, col) is outside the grid.
// Complexity: O(1).
func (p *Percolation) IsOpen(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}

	return p.open[p.index(row, col)], nil
}

// IsFull reports whether the site (row, col) is open and connected to the top
// row through open sites.
// Returns ErrInvalidArgument if (row, col) is outside the grid.
func (p *Percolation) IsFull(row, col int) (bool, error) {
	if err := p.validate(row, col); err != nil {
		return false, err
	}
	site := p.index(row, col)
	if !p.open[site] {
		return false, nil
	}
	full, err := p.fullUF.Connected(site, p.top)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return full, nil
}

// NumberOfOpenSites returns how many distinct sites have been opened.
// Complexity: O(1).
func (p *Percolation) NumberOfOpenSites() int {
	return p.numOpen
}

// Percolates reports whether TOP and BOTTOM are connected, i.e. an open path
// runs from the top row to the bottom row.
func (p *Percolation) Percolates() bool {
	// top and bottom are always in range, so err is nil.
	ok, err := p.percUF.Connected(p.top, p.bottom)

	return err == nil && ok
}

// unionBoth merges a and b in both universes.
func (p *Percolation) unionBoth(a, b int) error {
	if err := p.percUF.Union(a, b); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if err := p.fullUF.Union(a, b); err != nil {
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return nil
}

// inBounds reports whether (row, col) lies inside the 1-based grid.
func (p *Percolation) inBounds(row, col int) bool {
	return row >= 1 && row <= p.n && col >= 1 && col <= p.n
}

// validate wraps ErrInvalidArgument with the offending coordinates.
func (p *Percolation) validate(row, col int) error {
	if !p.inBounds(row, col) {
		return fmt.Errorf("%w: site (%d, %d) outside [1, %d]", ErrInvalidArgument, row, col, p.n)
	}

	return nil
}

// index maps the 1-based (row, col) to the row-major linear index.
func (p *Percolation) index(row, col int) int {
	return (row-1)*p.n + (col - 1)
}
