// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/dijkstra"
	"github.com/katalvlaran/loopway/weighting"
)

// ExampleDijkstra computes costs on a triangle.
func ExampleDijkstra() {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(0, 2, 5)

	res, err := dijkstra.Dijkstra(g, weighting.NewShortest(), dijkstra.Source(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("w(0)=%.0f w(1)=%.0f w(2)=%.0f\n", res.Weight(0), res.Weight(1), res.Weight(2))
	// Output: w(0)=0 w(1)=1 w(2)=3
}

// ExampleShortestPath shows how a hiking weighting avoids a primary road.
func ExampleShortestPath() {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 100, core.WithRoadClass(core.RoadClassPrimary))
	_, _ = g.AddEdge(0, 2, 70, core.WithRoadClass(core.RoadClassFootway))
	_, _ = g.AddEdge(2, 1, 70, core.WithRoadClass(core.RoadClassPath))

	hiking := weighting.NewHiking(weighting.DefaultHikingCoefficients())
	for _, w := range []weighting.Weighting{weighting.NewShortest(), hiking} {
		arena, leaf, err := dijkstra.ShortestPath(g, w, 0, 1)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		chain, _ := arena.Chain(leaf)
		nodes := make([]int, 0, len(chain))
		for _, e := range chain {
			nodes = append(nodes, e.AdjNode)
		}
		fmt.Println(w.Name(), nodes)
	}
	// Output:
	// shortest [0 1]
	// hiking [0 2 1]
}
