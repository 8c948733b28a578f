package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/loopway/core"
)

// TestGraph_ConcurrentReadsDuringWrites runs with -race: readers iterate
// adjacency while a writer keeps appending edges.
func TestGraph_ConcurrentReadsDuringWrites(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	const n = 200

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_, _ = g.AddEdge(0, i+1, float64(i))
		}
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < n; i++ {
				prev := -1
				for s := range g.EdgesFrom(0) {
					assert.Greater(t, s.ID(), prev)
					prev = s.ID()
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, n, g.EdgeCount())
}
