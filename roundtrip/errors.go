package roundtrip

import (
	"errors"

	"github.com/katalvlaran/loopway/spt"
)

// Sentinel errors returned by Search, CalcPaths and CalcBatch.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("roundtrip: graph is nil")

	// ErrNilWeighting indicates a nil weighting.
	ErrNilWeighting = errors.New("roundtrip: weighting is nil")

	// ErrVertexNotFound indicates the origin or destination is not in the graph.
	ErrVertexNotFound = errors.New("roundtrip: node not found in graph")

	// ErrInvalidDistance indicates a negative, NaN or inverted [min, max] band.
	ErrInvalidDistance = errors.New("roundtrip: invalid distance range")

	// ErrOptionViolation indicates an Options value that cannot drive a search.
	ErrOptionViolation = errors.New("roundtrip: invalid option supplied")

	// ErrCorruptedAncestry aborts a search whose entry chains are malformed.
	// It is the same value as spt.ErrCorruptedAncestry.
	ErrCorruptedAncestry = spt.ErrCorruptedAncestry
)
