package roundtrip

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/loopway/dijkstra"
	"github.com/katalvlaran/loopway/spt"
	"github.com/katalvlaran/loopway/weighting"
)

// closeLoops turns every closing entry into a leaf standing on the destination.
// Entries already on the destination are kept as they are; the rest get the
// cheapest way back under w spliced onto their chain. A way back that walks
// an edge in a direction the chain already used is dropped. Leaves come back
// in recording order.
func (s *searcher) closeLoops(w weighting.Weighting) ([]spt.ID, error) {
	leaves := make([]spt.ID, 0, len(s.closing))
	for _, id := range s.closing {
		entry := s.arena.MustGet(id)
		if entry.AdjNode == s.to {
			leaves = append(leaves, id)
			continue
		}

		back, leaf, err := dijkstra.ShortestPath(s.g, w, entry.AdjNode, s.to,
			dijkstra.WithIncomingEdge(entry.Edge))
		if errors.Is(err, dijkstra.ErrNoPath) {
			s.stats.ClosureFailures++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("roundtrip: closing entry %d: %w", id, err)
		}

		chain, err := back.Chain(leaf)
		if err != nil {
			return nil, fmt.Errorf("roundtrip: closure chain: %w", err)
		}
		reused, err := s.reusesTraversal(id, chain[1:])
		if err != nil {
			return nil, err
		}
		if reused {
			s.stats.RepeatedClosures++
			continue
		}

		spliced, err := s.splice(id, chain[1:])
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, spliced)
	}
	s.stats.ArenaEntries = s.arena.Len()

	return leaves, nil
}

// traversal is an edge walked toward a node.
type traversal struct{ edge, adj int }

// reusesTraversal reports whether any step of way repeats a directed edge
// already on the chain ending at tail.
func (s *searcher) reusesTraversal(tail spt.ID, way []spt.Entry) (bool, error) {
	cur := s.arena.MustGet(tail)
	used := make(map[traversal]struct{}, cur.Index)
	used[traversal{cur.Edge, cur.AdjNode}] = struct{}{}
	for en, err := range s.arena.Ancestors(tail) {
		if err != nil {
			return false, fmt.Errorf("roundtrip: closing entry %d: %w", tail, err)
		}
		used[traversal{en.Edge, en.AdjNode}] = struct{}{}
	}
	for _, e := range way {
		if _, ok := used[traversal{e.Edge, e.AdjNode}]; ok {
			return true, nil
		}
	}

	return false, nil
}

// splice appends the steps of way onto tail, continuing the cumulative
// distance, and returns the new last entry.
func (s *searcher) splice(tail spt.ID, way []spt.Entry) (spt.ID, error) {
	dist := s.arena.MustGet(tail).Weight
	for _, e := range way {
		edge, err := s.g.Edge(e.Edge)
		if err != nil {
			return spt.NoEntry, fmt.Errorf("roundtrip: closure chain: %w", err)
		}
		dist += edge.Distance
		next, err := s.arena.New(tail, e.Edge, e.AdjNode, dist)
		if err != nil {
			return spt.NoEntry, fmt.Errorf("roundtrip: splicing closure: %w", err)
		}
		tail = next
	}

	return tail, nil
}
