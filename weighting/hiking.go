package weighting

import (
	"math"

	"github.com/katalvlaran/loopway/core"
)

// HikingCoefficients scales distances per road attribute.
//
// Lookup order: ferry environment, then Forbidden classes, then
// ClassFactors, then TrackFactor for edges carrying a track grade; anything
// left costs its plain distance.
type HikingCoefficients struct {
	Forbidden    []core.RoadClass           `yaml:"forbidden"`
	ClassFactors map[core.RoadClass]float64 `yaml:"class_factors"`
	TrackFactor  float64                    `yaml:"track_factor"`
}

// DefaultHikingCoefficients returns the coefficients of a walker who avoids
// busy roads: primary ×2, secondary and tertiary ×1.5, footway, path and
// pedestrian ×0.5, graded tracks ×0.5, motorway and trunk forbidden.
func DefaultHikingCoefficients() HikingCoefficients {
	return HikingCoefficients{
		Forbidden: []core.RoadClass{core.RoadClassMotorway, core.RoadClassTrunk},
		ClassFactors: map[core.RoadClass]float64{
			core.RoadClassPrimary:    2,
			core.RoadClassSecondary:  1.5,
			core.RoadClassTertiary:   1.5,
			core.RoadClassFootway:    0.5,
			core.RoadClassPath:       0.5,
			core.RoadClassPedestrian: 0.5,
		},
		TrackFactor: 0.5,
	}
}

// Hiking prefers quiet paths and refuses roads a pedestrian cannot use.
type Hiking struct {
	forbidden [256]bool
	factors   [256]float64
	hasFactor [256]bool
	track     float64
}

// NewHiking builds a Hiking weighting. Negative factors panic.
func NewHiking(c HikingCoefficients) *Hiking {
	h := &Hiking{track: c.TrackFactor}
	if c.TrackFactor < 0 {
		panic("weighting: NewHiking(TrackFactor<0)")
	}
	for _, rc := range c.Forbidden {
		h.forbidden[rc] = true
	}
	for rc, f := range c.ClassFactors {
		if f < 0 || math.IsNaN(f) {
			panic("weighting: NewHiking(negative class factor)")
		}
		h.factors[rc] = f
		h.hasFactor[rc] = true
	}

	return h
}

// CalcEdgeWeight returns the scaled distance or +Inf for forbidden edges.
func (h *Hiking) CalcEdgeWeight(s core.EdgeState) float64 {
	attrs := s.Edge.Attributes
	switch {
	case attrs.Environment == core.EnvironmentFerry:
		return math.Inf(1)
	case h.forbidden[attrs.RoadClass]:
		return math.Inf(1)
	case h.hasFactor[attrs.RoadClass]:
		return h.factors[attrs.RoadClass] * s.Edge.Distance
	case attrs.TrackType != core.TrackTypeMissing:
		return h.track * s.Edge.Distance
	default:
		return s.Edge.Distance
	}
}

// CalcTurnWeight is always zero.
func (*Hiking) CalcTurnWeight(int, int, int) float64 { return 0 }

// Name returns "hiking".
func (*Hiking) Name() string { return "hiking" }
