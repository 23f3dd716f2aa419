package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/percolate/unionfind"
)

// ExampleUnionFind merges a few elements and queries connectivity.
func ExampleUnionFind() {
	uf, err := unionfind.New(6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = uf.Union(0, 1)
	_ = uf.Union(1, 2)
	_ = uf.Union(4, 5)

	a, _ := uf.Connected(0, 2)
	b, _ := uf.Connected(2, 4)
	fmt.Println("0~2:", a)
	fmt.Println("2~4:", b)
	fmt.Println("sets:", uf.Count())
	// Output:
	// 0~2: true
	// 2~4: false
	// sets: 3
}
