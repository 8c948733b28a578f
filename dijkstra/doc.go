// Package dijkstra provides Dijkstra's shortest-path algorithm over a
// core.Graph, priced by a weighting.Weighting and recorded as an spt.Arena.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost tree from a single source node in
//     O((V + E) log V) time.
//   - ShortestPath is the point-to-point form used to close round trips: it
//     stops as soon as the target is settled and returns the target's entry.
//   - Turn costs are honored via weighting.TurnWeighting; WithIncomingEdge
//     charges the turn out of the source, so a closure leg does not start
//     with a forbidden u-turn.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource, ErrNilGraph, ErrNilWeighting, ErrVertexNotFound for invalid input.
//   - ErrNegativeWeight if the weighting prices a traversal below zero.
//   - ErrNoPath from ShortestPath when the target is unreachable.
//
// Example:
//
//	arena, leaf, err := dijkstra.ShortestPath(g, weighting.NewShortest(), 3, 0)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // no way back
//	}
//	chain, _ := arena.Chain(leaf)
package dijkstra
