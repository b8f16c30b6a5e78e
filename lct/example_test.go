// SPDX-License-Identifier: MIT

package lct_test

import (
	"fmt"

	"github.com/katalvlaran/linkcut/lct"
)

// ExampleForest_PathAdd builds the chain 0─1─2─3─4 with values 1..5, adds 10
// to the middle three vertices and sums the whole chain.
func ExampleForest_PathAdd() {
	f := lct.New(5, lct.WithValues([]lct.Scalar{1, 2, 3, 4, 5}))
	for i := 0; i < 4; i++ {
		f.Link(i, i+1)
	}

	f.PathAdd(1, 3, 10)
	sum, _ := f.PathSum(0, 4)
	fmt.Println(sum)
	// Output: 45
}

// ExampleForest_Cut shows that Link refuses cycles and Cut refuses non-edges.
func ExampleForest_Cut() {
	f := lct.New(3)
	fmt.Println(f.Link(0, 1), f.Link(1, 2), f.Link(2, 0))
	fmt.Println(f.Cut(0, 2), f.Cut(1, 2), f.Connected(0, 2))
	// Output:
	// true true false
	// false true false
}

// ExampleForest_SubtreeSumFrom asks for subtree sums under two different roots.
//
//	1 ─ 0 ─ 2
//	        │
//	        3
func ExampleForest_SubtreeSumFrom() {
	f := lct.New(4, lct.WithValues([]lct.Scalar{1, 10, 100, 1000}))
	f.Link(1, 0)
	f.Link(2, 0)
	f.Link(3, 2)

	fromZero, _ := f.SubtreeSumFrom(2, 0)
	fromThree, _ := f.SubtreeSumFrom(2, 3)
	fmt.Println(fromZero, fromThree)
	// Output: 1100 111
}
