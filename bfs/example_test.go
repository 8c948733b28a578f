package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/loopway/bfs"
	"github.com/katalvlaran/loopway/core"
)

// ExampleBFS demonstrates BFS layering on a 3×3 street grid numbered
// row by row. Visits follow non-decreasing Manhattan distance.
func ExampleBFS() {
	g := core.NewGraph()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			id := r*3 + c
			if c+1 < 3 {
				_, _ = g.AddEdge(id, id+1, 100)
			}
			if r+1 < 3 {
				_, _ = g.AddEdge(id, id+3, 100)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	path, _ := res.PathTo(8)
	fmt.Println(path)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 5 8]
}

// ExampleReachable shows a ferry link that the pre-check refuses to use.
func ExampleReachable() {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 500)
	_, _ = g.AddEdge(1, 2, 4000, core.WithEnvironment(core.EnvironmentFerry))

	anyway, _ := bfs.Reachable(g, 0, 2)
	land, _ := bfs.Reachable(g, 0, 2, bfs.WithFilterEdge(bfs.SkipFerries))
	fmt.Println(anyway, land)
	// Output:
	// true false
}
