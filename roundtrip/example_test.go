package roundtrip_test

import (
	"fmt"

	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/roundtrip"
	"github.com/katalvlaran/loopway/weighting"
)

// ExampleCalcPaths finds loops of 3–5 km around a block of four 1 km streets.
func ExampleCalcPaths() {
	g := core.NewGraph()
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		if _, err := g.AddEdge(e[0], e[1], 1000, core.WithRoadClass(core.RoadClassResidential)); err != nil {
			panic(err)
		}
	}

	paths, err := roundtrip.CalcPaths(g, weighting.NewShortest(), 0, 0, 3000, 5000)
	if err != nil {
		panic(err)
	}
	for _, p := range paths {
		fmt.Printf("%v %.0f\n", p.Nodes, p.Distance)
	}
	// Output:
	// [0 1 2 1 0] 4000
	// [0 3 2 1 0] 4000
}

// ExampleSearch shows the counters that come with the routes.
func ExampleSearch() {
	g := core.NewGraph()
	if _, err := g.AddEdge(0, 1, 5); err != nil {
		panic(err)
	}

	res, err := roundtrip.Search(g, weighting.NewShortest(), 0, 1, 1, 10)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(res.Routes), res.Stats.Termination, res.Stats.ClosingEntries)
	// Output:
	// 1 exhausted 1
}
