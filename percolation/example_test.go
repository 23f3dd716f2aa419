package percolation_test

import (
	"fmt"

	"github.com/katalvlaran/percolate/percolation"
)

// ExamplePercolation opens a vertical path through a 3×3 grid plus one
// isolated bottom-row site.
//
//	X . .
//	X . .
//	X . X
//
// The left column percolates; (3,3) is open but not full.
func ExamplePercolation() {
	p, err := percolation.New(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range [][2]int{{1, 1}, {2, 1}, {3, 1}, {3, 3}} {
		if err := p.Open(s[0], s[1]); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	full, _ := p.IsFull(3, 3)
	fmt.Println("open sites:", p.NumberOfOpenSites())
	fmt.Println("percolates:", p.Percolates())
	fmt.Println("(3,3) full:", full)
	// Output:
	// open sites: 4
	// percolates: true
	// (3,3) full: false
}
