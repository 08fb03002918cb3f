// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ExampleGridGraph_ConnectedComponents splits a board into passable regions.
//
//	. . # .
//	. . # .
//	# # # .
func ExampleGridGraph_ConnectedComponents() {
	gg, _ := gridgraph.New(4, 3)
	for _, p := range []gridgraph.Position{{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}} {
		_ = gg.SetObstacle(p, true)
	}

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			fmt.Printf(" %v", gg.Position(idx))
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (0,0) (1,0) (0,1) (1,1)
	// component 1: (3,0) (3,1) (3,2)
}

// ExampleGridGraph_MinBreach counts the walls between two sealed rooms.
func ExampleGridGraph_MinBreach() {
	gg, _ := gridgraph.New(5, 1)
	_ = gg.SetObstacle(gridgraph.Position{X: 2, Y: 0}, true)

	path, cost, _ := gg.MinBreach(gridgraph.Position{X: 0, Y: 0}, gridgraph.Position{X: 4, Y: 0})
	fmt.Println("walls to clear:", cost)
	fmt.Println(path)

	// Output:
	// walls to clear: 1
	// [(0,0) (1,0) (2,0) (3,0) (4,0)]
}
