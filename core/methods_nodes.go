// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs in insertion order.
//
// Concurrency:
//   - Node catalog protected by muNodes.
package core

import "fmt"

// AddNode inserts a new node. Adding an existing ID returns ErrDuplicateNode;
// nodes created implicitly by AddEdge can be given coordinates with SetPoint.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int, opts ...NodeOption) error {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	n := &Node{ID: id}
	for _, opt := range opts {
		opt(n)
	}
	g.nodes[id] = n
	g.nodeOrder = append(g.nodeOrder, id)

	return nil
}

// ensureNode registers id without coordinates when it is missing.
// Caller must hold muNodes write lock.
func (g *Graph) ensureNode(id int) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &Node{ID: id}
	g.nodeOrder = append(g.nodeOrder, id)
}

// SetPoint replaces the coordinates and elevation of an existing node.
func (g *Graph) SetPoint(id int, p Point) error {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	n.Point = p

	return nil
}

// HasNode reports whether id is part of the graph.
func (g *Graph) HasNode(id int) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given ID.
func (g *Graph) Node(id int) (Node, error) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return *n, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return len(g.nodes)
}

// Nodes returns all node IDs in insertion order.
func (g *Graph) Nodes() []int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	out := make([]int, len(g.nodeOrder))
	copy(out, g.nodeOrder)

	return out
}

// Degree returns the number of traversable edges leaving id.
// Undirected edges count once per endpoint; a self-loop counts once.
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasNode(id) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	return len(g.adjacency[id]), nil
}
