// File: methods_edges.go
// Role: Edge lifecycle & traversal queries: AddEdge, Edge, Edges, EdgeCount,
//       EdgesFrom, EdgeState and Points.
// Determinism:
//   - Edge IDs are dense and assigned in insertion order (0,1,2,...).
//   - EdgesFrom yields edges in ascending edge ID order.
// Concurrency:
//   - Mutations under muEdges write lock; node bootstrap under muNodes first.
//   - Adjacency slices are append-only: a captured slice header stays valid
//     after the read lock is released.

package core

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// AddEdge creates a new edge and returns its ID. Missing endpoints are
// created without coordinates.
//
// Steps:
//  1. Validate distance and loop constraint.
//  2. Ensure endpoints exist (muNodes).
//  3. Under muEdges: multi-edge check, allocate ID, apply options.
//  4. Link adjacency: From always; To too when the edge is undirected and not a loop.
//
// Complexity: O(1) amortized, O(deg(from)) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to int, distance float64, opts ...EdgeOption) (int, error) {
	if distance < 0 || math.IsNaN(distance) {
		return -1, fmt.Errorf("%w: %d→%d distance=%v", ErrNegativeDistance, from, to, distance)
	}
	if from == to && !g.allowLoops {
		return -1, fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}

	g.muNodes.Lock()
	g.ensureNode(from)
	g.ensureNode(to)
	g.muNodes.Unlock()

	g.muEdges.Lock()
	defer g.muEdges.Unlock()

	if !g.allowMulti && g.connectedLocked(from, to) {
		return -1, fmt.Errorf("%w: %d→%d", ErrMultiEdgeNotAllowed, from, to)
	}

	e := &Edge{ID: len(g.edges), From: from, To: to, Distance: distance, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}

	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], e.ID)
	if !e.Directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], e.ID)
	}

	return e.ID, nil
}

// connectedLocked reports whether an edge from→to is already traversable.
// Caller must hold muEdges.
func (g *Graph) connectedLocked(from, to int) bool {
	for _, id := range g.adjacency[from] {
		if stateOf(g.edges[id], from).Adj == to {
			return true
		}
	}

	return false
}

// Edge returns the edge with the given ID.
// The returned pointer must be treated as read-only.
func (g *Graph) Edge(id int) (*Edge, error) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	if id < 0 || id >= len(g.edges) {
		return nil, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}

	return g.edges[id], nil
}

// Edges returns all edges ordered by ID.
func (g *Graph) Edges() []*Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return slices.Clone(g.edges)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return len(g.edges)
}

// EdgesFrom returns an iterator over the edges traversable out of node, in
// ascending edge ID order. Unknown nodes yield nothing.
//
// The adjacency snapshot is taken when EdgesFrom is called; the iterator can
// be ranged over any number of times.
func (g *Graph) EdgesFrom(node int) iter.Seq[EdgeState] {
	g.muEdges.RLock()
	ids := g.adjacency[node]
	edges := g.edges
	g.muEdges.RUnlock()

	return func(yield func(EdgeState) bool) {
		for _, id := range ids {
			if !yield(stateOf(edges[id], node)) {
				return
			}
		}
	}
}

// EdgeState returns the traversal of edge edgeID that ends in adjNode.
// Returns ErrEdgeNotFound if the edge does not exist or cannot be walked
// into adjNode (wrong endpoint, or against a directed edge).
func (g *Graph) EdgeState(edgeID, adjNode int) (EdgeState, error) {
	e, err := g.Edge(edgeID)
	if err != nil {
		return EdgeState{}, err
	}
	switch {
	case e.To == adjNode:
		return EdgeState{Edge: e, Base: e.From, Adj: e.To}, nil
	case e.From == adjNode && !e.Directed:
		return EdgeState{Edge: e, Base: e.To, Adj: e.From, Reverse: true}, nil
	default:
		return EdgeState{}, fmt.Errorf("%w: edge %d does not lead into node %d", ErrEdgeNotFound, edgeID, adjNode)
	}
}

// Points returns the full geometry of a traversal, both tower nodes
// included, oriented from s.Base to s.Adj.
func (g *Graph) Points(s EdgeState) []Point {
	g.muNodes.RLock()
	var from, to Point
	if n, ok := g.nodes[s.Edge.From]; ok {
		from = n.Point
	}
	if n, ok := g.nodes[s.Edge.To]; ok {
		to = n.Point
	}
	g.muNodes.RUnlock()

	pts := make([]Point, 0, len(s.Edge.Geometry)+2)
	pts = append(pts, from)
	pts = append(pts, s.Edge.Geometry...)
	pts = append(pts, to)
	if s.Reverse {
		slices.Reverse(pts)
	}

	return pts
}

// stateOf orients e as seen from base.
func stateOf(e *Edge, base int) EdgeState {
	if e.From == base {
		return EdgeState{Edge: e, Base: base, Adj: e.To}
	}

	return EdgeState{Edge: e, Base: base, Adj: e.From, Reverse: true}
}
