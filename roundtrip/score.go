package roundtrip

import (
	"github.com/katalvlaran/loopway/core"
)

// roadScorer prices edges for the frontier ordering.
type roadScorer struct {
	prefs          [256]float64
	hasPref        [256]bool
	trackBonus     float64
	lengthWeighted bool
}

func newRoadScorer(o Options) roadScorer {
	rs := roadScorer{trackBonus: o.TrackBonus, lengthWeighted: o.LengthWeighted}
	for rc, v := range o.RoadPreferences {
		rs.prefs[rc] = v
		rs.hasPref[rc] = true
	}

	return rs
}

// contribution is the score an edge adds to its path.
func (rs roadScorer) contribution(s core.EdgeState) float64 {
	attrs := s.Edge.Attributes
	var v float64
	switch {
	case rs.hasPref[attrs.RoadClass]:
		v = rs.prefs[attrs.RoadClass]
	case attrs.TrackType != core.TrackTypeMissing:
		v = rs.trackBonus
	}
	if rs.lengthWeighted {
		v *= s.Edge.Distance
	}

	return v
}

// revisitPenalty is the (non-positive) score change for stepping onto a node
// already on the path.
//
//	−k · (1 − d/max) · (1 − ancestorIndex/candidateIndex)
//
// k is the "after" scale once d ≥ max/2. The penalty fades as the loop gets
// longer and is largest when the earlier visit was close to the start.
func revisitPenalty(d, maxDistance float64, ancestorIndex, candidateIndex int, before, after float64) float64 {
	k := before
	if d >= maxDistance/2 {
		k = after
	}
	progress := 0.0
	if maxDistance > 0 {
		progress = d / maxDistance
	}
	recency := 1.0
	if candidateIndex > 0 {
		recency = 1 - float64(ancestorIndex)/float64(candidateIndex)
	}

	return -k * (1 - progress) * recency
}
