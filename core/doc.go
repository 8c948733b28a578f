// Package core provides a thread-safe in-memory road network: nodes with
// coordinates and elevation, and edges carrying a travel distance, road
// attributes and an optional pillar geometry.
//
// The Graph is the read side every search in loopway walks over:
//
//   - Dense integer IDs: nodes are addressed by caller-chosen ints, edges get
//     IDs 0,1,2,... in insertion order. Search entries store these IDs directly.
//   - Directed vs. undirected edges (WithDirected, WithEdgeDirected).
//     An undirected edge is visible from both endpoints; traversing it from
//     To towards From yields an EdgeState with Reverse=true.
//   - Parallel edges (WithMultiEdges) and self-loops (WithLoops).
//   - Road attributes (RoadClass, TrackType, RoadEnvironment) feed the
//     road-preference scoring and the hiking weighting.
//   - Per-edge geometry (WithGeometry) with elevation per point; Points returns
//     it oriented in traversal direction including both tower nodes.
//
// Concurrency:
//
//   - muNodes guards the node catalog, muEdges guards edges and adjacency.
//   - Adjacency lists are append-only, so EdgesFrom captures a slice header
//     under the read lock and iterates without holding it.
//   - Searches treat the graph as read-only; mutating a graph while a search
//     runs over it is allowed but the search may or may not observe the change.
//
// Core methods:
//
//	AddNode(id int, opts ...NodeOption) error                      // O(1)
//	AddEdge(from, to int, distance float64, opts ...EdgeOption) (int, error) // O(1)†
//	EdgesFrom(node int) iter.Seq[EdgeState]                       // O(deg)
//	EdgeState(edgeID, adjNode int) (EdgeState, error)             // O(1)
//	Points(state EdgeState) []Point                               // O(len(geometry))
//
// † O(deg(from)) when multi-edges are disabled (parallel-edge check).
package core
