package gridgraph_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/loopway/gridgraph"
)

// hills is an n×n raster of rolling terrain with ~10% water cells.
func hills(n int) [][]float64 {
	rng := rand.New(rand.NewSource(42))
	grid := make([][]float64, n)
	for y := 0; y < n; y++ {
		row := make([]float64, n)
		for x := 0; x < n; x++ {
			if rng.Intn(10) == 0 {
				row[x] = -9999
				continue
			}
			row[x] = 200 + 50*math.Sin(float64(x)/20)*math.Cos(float64(y)/30)
		}
		grid[y] = row
	}

	return grid
}

// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.NewGridGraph(hills(500), gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

func BenchmarkToCoreGraph(b *testing.B) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph(hills(200), opts)
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gg.ToCoreGraph(); err != nil {
			b.Fatal(err)
		}
	}
}
