// Package bfs provides breadth-first search over a core.Graph, returning
// edge-count distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing edge count from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks:
//   - OnEnqueue (before a node is enqueued)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual traversals via WithFilterEdge
//     (SkipFerries drops ferry crossings).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Follows one-way edges only from From to To.
//
// Why
//
//   - Reachable answers "can the destination be reached at all?" in O(V + E)
//     before the round-trip search spends its budget on a hopeless request.
//   - Discover reachable subgraphs and level layering.
//
// Determinism
//
//	core.Graph.EdgesFrom yields edges in ID order and BFS enqueues neighbors
//	in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterEdge(bfs.SkipFerries),
//	)
//
//	ok, err := bfs.Reachable(g, from, to, bfs.WithFilterEdge(bfs.SkipFerries))
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit, ctx errors on cancellation.
package bfs
