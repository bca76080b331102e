package kdtree_test

import (
	"fmt"

	"github.com/ughe/kdpoints/kdtree"
)

func ExamplePointSet() {
	s := kdtree.New(
		kdtree.Point{X: 2, Y: 3},
		kdtree.Point{X: 4, Y: 2},
		kdtree.Point{X: 4, Y: 5},
		kdtree.Point{X: 1, Y: 1},
	)
	fmt.Println(s.Size(), s.Contains(kdtree.Point{X: 4, Y: 2}))
	p, _ := s.Nearest(kdtree.Point{X: 0, Y: 0})
	fmt.Println(p)
	fmt.Println(s.Range(kdtree.NewRect(kdtree.Point{X: 1, Y: 1}, kdtree.Point{X: 4, Y: 3})))
	// Output:
	// 4 true
	// (1; 1)
	// [(1; 1) (2; 3) (4; 2)]
}

func ExamplePointSet_NearestK() {
	s := kdtree.New(
		kdtree.Point{X: 0, Y: 0},
		kdtree.Point{X: 10, Y: 0},
		kdtree.Point{X: 3, Y: 4},
		kdtree.Point{X: 1, Y: 1},
	)
	fmt.Println(s.NearestK(kdtree.Point{X: 0, Y: 0}, 3))
	// Output:
	// [(0; 0) (1; 1) (3; 4)]
}

func ExamplePointSet_Dump() {
	s := kdtree.New(kdtree.Point{X: 2, Y: 3}, kdtree.Point{X: 1, Y: 1}, kdtree.Point{X: 4, Y: 2})
	fmt.Print(s)
	// Output:
	// /---(1; 1)
	// (2; 3)
	// \---(4; 2)
}
