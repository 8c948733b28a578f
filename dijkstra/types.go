// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on road graphs.
//
// Costs come from a weighting.Weighting, so the same search serves plain
// distance, hiking-biased and turn-cost-aware routing. Every improvement of a
// node's tentative cost allocates a new entry in an spt.Arena; the settled
// entry of a node is the tail of its shortest path.
//
// Options:
//
//	– Source:           start node (required).
//	– Target:           optional node; the search stops once it is settled.
//	– IncomingEdge:     edge the walker arrived on at Source, so the first
//	                    departure pays its turn cost (u-turns included).
//	– MaxWeight:        optional cap; nodes costing more are not settled.
//	– InfEdgeThreshold: edges with weight ≥ this threshold are impassable.
//
// Errors (sentinel):
//
//	– ErrNoSource        if Source was never set.
//	– ErrNilGraph        if the graph pointer is nil.
//	– ErrNilWeighting    if the weighting is nil.
//	– ErrVertexNotFound  if Source or Target is not in the graph.
//	– ErrNegativeWeight  if the weighting priced a traversal below zero.
//	– ErrNoPath          (ShortestPath only) if Target is unreachable.
//	– ErrBadMaxWeight / ErrBadInfThreshold from option constructors (panic).
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/loopway/weighting"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source node not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilWeighting indicates that a nil weighting was passed to Dijkstra.
	ErrNilWeighting = errors.New("dijkstra: weighting is nil")

	// ErrVertexNotFound indicates that the source or target node does not exist.
	ErrVertexNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNegativeWeight indicates the weighting returned a negative cost.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that the target cannot be reached from the source.
	ErrNoPath = errors.New("dijkstra: no path to target")

	// ErrBadMaxWeight indicates that MaxWeight was set to a negative value.
	ErrBadMaxWeight = errors.New("dijkstra: MaxWeight must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           int     // start node
	Target           int     // node to stop at, when HasTarget
	IncomingEdge     int     // edge used to arrive at Source, weighting.NoEdge if none
	MaxWeight        float64 // maximum cost to settle
	InfEdgeThreshold float64 // cost threshold above which traversals are skipped
	ArenaCapacity    int     // initial arena size hint

	hasSource bool
	hasTarget bool
}

// HasTarget reports whether a Target was configured.
func (o Options) HasTarget() bool { return o.hasTarget }

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the start node. Must be supplied.
func Source(node int) Option {
	return func(o *Options) {
		o.Source = node
		o.hasSource = true
	}
}

// Target makes the search stop as soon as node is settled.
func Target(node int) Option {
	return func(o *Options) {
		o.Target = node
		o.hasTarget = true
	}
}

// WithIncomingEdge records the edge the walker arrived on at Source, so that
// turn costs of the first departure are charged.
func WithIncomingEdge(edge int) Option {
	return func(o *Options) {
		o.IncomingEdge = edge
	}
}

// WithMaxWeight sets a maximum cost threshold.
// Nodes whose cost would exceed this value are not settled.
// Negative values panic with ErrBadMaxWeight.
func WithMaxWeight(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxWeight.Error())
	}
	return func(o *Options) {
		o.MaxWeight = max
	}
}

// WithInfEdgeThreshold defines a cost threshold above which traversals are
// skipped. Zero or negative values panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithArenaCapacity presizes the entry arena.
func WithArenaCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.ArenaCapacity = n
		}
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - no Source, no Target
//   - IncomingEdge:     weighting.NoEdge
//   - MaxWeight:        +Inf (no limit)
//   - InfEdgeThreshold: +Inf (only infinite costs are impassable)
func DefaultOptions() Options {
	return Options{
		IncomingEdge:     weighting.NoEdge,
		MaxWeight:        math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
