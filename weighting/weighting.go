// Package weighting turns road edges into traversal costs.
//
// A Weighting prices a single directed traversal (CalcEdgeWeight) and the
// transition between two consecutive edges at a junction (CalcTurnWeight).
// Costs are non-negative; +Inf marks a forbidden edge or turn.
//
// Implementations:
//
//   - Shortest: cost equals distance, no turn costs.
//   - Hiking: distance scaled by road class; ferries, motorways and trunk
//     roads are forbidden. Used for the return leg of round trips.
//   - TurnWeighting: wraps any Weighting and adds turn costs from a
//     TurnCostHandler backed by a TurnCostTable.
package weighting

import (
	"math"

	"github.com/katalvlaran/loopway/core"
)

// NoEdge stands for "no previous edge" in turn cost lookups.
const NoEdge = -1

// Weighting is the cost model used by shortest-path searches.
type Weighting interface {
	// CalcEdgeWeight returns the cost of walking s.Edge from s.Base to s.Adj.
	CalcEdgeWeight(s core.EdgeState) float64

	// CalcTurnWeight returns the cost of leaving viaNode over outEdge after
	// arriving over inEdge. Either edge may be NoEdge.
	CalcTurnWeight(inEdge, viaNode, outEdge int) float64

	// Name identifies the weighting in logs and metrics.
	Name() string
}

// Calc returns the full cost of entering s after prevEdge: edge weight plus
// turn weight. It returns +Inf as soon as either part is infinite.
func Calc(w Weighting, s core.EdgeState, prevEdge int) float64 {
	ew := w.CalcEdgeWeight(s)
	if math.IsInf(ew, 1) {
		return ew
	}
	if prevEdge < 0 {
		return ew
	}
	tw := w.CalcTurnWeight(prevEdge, s.Base, s.ID())
	if math.IsInf(tw, 1) {
		return tw
	}

	return ew + tw
}

// Millis converts a weight in seconds to milliseconds; infinite weights map
// to math.MaxInt64.
func Millis(weight float64) int64 {
	if math.IsInf(weight, 0) || math.IsNaN(weight) || weight*1000 >= math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(1000 * weight)
}

// Shortest prices every edge by its distance.
type Shortest struct{}

// NewShortest returns the distance weighting.
func NewShortest() Shortest { return Shortest{} }

// CalcEdgeWeight returns the edge distance.
func (Shortest) CalcEdgeWeight(s core.EdgeState) float64 { return s.Edge.Distance }

// CalcTurnWeight is always zero.
func (Shortest) CalcTurnWeight(int, int, int) float64 { return 0 }

// Name returns "shortest".
func (Shortest) Name() string { return "shortest" }
