// Package path turns entry chains into concrete routes.
//
// A Path lists the nodes and directed edge traversals from the root of a
// chain to its leaf, with the summed distance and the summed weighting cost
// (turn costs included). Paths are immutable once extracted.
package path

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/spt"
	"github.com/katalvlaran/loopway/weighting"
)

// ErrBrokenChain indicates a chain references an edge that does not lead
// into the entry's node.
var ErrBrokenChain = errors.New("path: chain does not match the graph")

// Path is a route through the road graph.
type Path struct {
	Nodes    []int
	Edges    []core.EdgeState
	Distance float64
	Weight   float64
}

// Extract builds the Path ending at leaf. The weighting only prices the
// result; a nil weighting leaves Weight at zero.
func Extract(g *core.Graph, w weighting.Weighting, arena *spt.Arena, leaf spt.ID) (*Path, error) {
	chain, err := arena.Chain(leaf)
	if err != nil {
		return nil, fmt.Errorf("path: extract %d: %w", leaf, err)
	}

	p := &Path{
		Nodes: make([]int, 0, len(chain)),
		Edges: make([]core.EdgeState, 0, len(chain)-1),
	}
	p.Nodes = append(p.Nodes, chain[0].AdjNode)
	prevEdge := weighting.NoEdge
	for _, e := range chain[1:] {
		s, err := g.EdgeState(e.Edge, e.AdjNode)
		if err != nil {
			return nil, fmt.Errorf("%w: entry on node %d: %v", ErrBrokenChain, e.AdjNode, err)
		}
		if s.Base != p.Nodes[len(p.Nodes)-1] {
			return nil, fmt.Errorf("%w: edge %d starts at %d, chain is at %d",
				ErrBrokenChain, s.ID(), s.Base, p.Nodes[len(p.Nodes)-1])
		}
		p.Edges = append(p.Edges, s)
		p.Nodes = append(p.Nodes, s.Adj)
		p.Distance += s.Edge.Distance
		if w != nil {
			p.Weight += weighting.Calc(w, s, prevEdge)
		}
		prevEdge = s.ID()
	}

	return p, nil
}

// Len returns the number of edges.
func (p *Path) Len() int { return len(p.Edges) }

// Origin returns the first node.
func (p *Path) Origin() int { return p.Nodes[0] }

// Destination returns the last node.
func (p *Path) Destination() int { return p.Nodes[len(p.Nodes)-1] }

// EdgeIDs returns the edge IDs in travel order.
func (p *Path) EdgeIDs() []int {
	ids := make([]int, len(p.Edges))
	for i, s := range p.Edges {
		ids[i] = s.ID()
	}

	return ids
}

// Points returns the route geometry. Tower points shared by consecutive
// edges appear once. A path without edges yields the origin's point.
func (p *Path) Points(g *core.Graph) []core.Point {
	if len(p.Edges) == 0 {
		n, err := g.Node(p.Origin())
		if err != nil {
			return nil
		}
		return []core.Point{n.Point}
	}

	var pts []core.Point
	for i, s := range p.Edges {
		ep := g.Points(s)
		if i > 0 {
			ep = ep[1:]
		}
		pts = append(pts, ep...)
	}

	return pts
}
