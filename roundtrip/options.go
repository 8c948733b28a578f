// SPDX-License-Identifier: MIT
// Package: loopway/roundtrip
//
// options.go — tunables of the round-trip search.
//
// Contract:
//   • Options is a plain struct with yaml tags; DefaultOptions returns the
//     documented defaults and Option functions override single fields.
//   • Option constructors VALIDATE and PANIC on meaningless literals.
//     Search re-validates the resolved struct (it may come from a file) and
//     reports ErrOptionViolation instead of panicking.
//   • Zero FrontierCapacity / MaxVisitedNodes mean "derive from graph size".

package roundtrip

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/elevation"
	"github.com/katalvlaran/loopway/weighting"
)

// Frontier sizing derived from the node count: min(max(200, n/10), 2000).
const (
	minFrontierCapacity = 200
	maxFrontierCapacity = 2000
	frontierNodeDivisor = 10
)

// Visit budget derived from the node count: max(10000, 50·n).
const (
	minVisitedNodes      = 10_000
	visitedNodesPerNode  = 50
	defaultMaxTrips      = 100
	defaultUTurnWindow   = 0.75
	defaultSimilarity    = 1.7
	defaultMaxFactor     = 1.2
	defaultMinDivisor    = 1.1
	defaultRevisitBefore = 2.0
	defaultRevisitAfter  = 4.0
	defaultTrackBonus    = 0.5
)

// ToleranceMode selects the distance filter predicate.
type ToleranceMode uint8

const (
	// ToleranceLegacy keeps a loop iff d < MaxFactor·max || d < min/MinDivisor.
	// With min ≤ max the second clause never adds anything; the predicate is
	// kept in this literal form for compatibility.
	ToleranceLegacy ToleranceMode = iota

	// ToleranceBand keeps a loop iff min/MinDivisor ≤ d ≤ MaxFactor·max.
	ToleranceBand
)

func (m ToleranceMode) String() string {
	switch m {
	case ToleranceLegacy:
		return "legacy"
	case ToleranceBand:
		return "band"
	default:
		return fmt.Sprintf("ToleranceMode(%d)", uint8(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m ToleranceMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ToleranceMode) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "", "legacy":
		*m = ToleranceLegacy
	case "band":
		*m = ToleranceBand
	default:
		return fmt.Errorf("%w: unknown tolerance mode %q", ErrOptionViolation, b)
	}

	return nil
}

// DistanceTolerance configures the post-closure distance filter.
type DistanceTolerance struct {
	Mode       ToleranceMode `yaml:"mode"`
	MaxFactor  float64       `yaml:"max_factor"`
	MinDivisor float64       `yaml:"min_divisor"`
}

// Accept reports whether a loop of length d survives the filter.
func (t DistanceTolerance) Accept(d, minDistance, maxDistance float64) bool {
	upper := maxDistance * t.MaxFactor
	lower := minDistance / t.MinDivisor
	if t.Mode == ToleranceBand {
		return d >= lower && d <= upper
	}

	return d < upper || d < lower
}

// Options holds every tunable of a round-trip search.
type Options struct {
	// FrontierCapacity bounds the frontier; 0 derives it from the node count.
	FrontierCapacity int `yaml:"frontier_capacity"`
	// MaxVisitedNodes bounds the number of frontier pops; 0 derives it.
	MaxVisitedNodes int `yaml:"max_visited_nodes"`
	// MaxTrips stops the search once this many closing entries exist.
	MaxTrips int `yaml:"max_trips"`
	// MaxResults caps the returned loops; 0 is unlimited.
	MaxResults int `yaml:"max_results"`

	// RoadPreferences is the per-class score contribution of an edge.
	RoadPreferences map[core.RoadClass]float64 `yaml:"road_preferences"`
	// TrackBonus is added for graded edges whose class has no preference.
	TrackBonus float64 `yaml:"track_bonus"`
	// LengthWeighted multiplies the contribution by the edge distance.
	LengthWeighted bool `yaml:"length_weighted"`

	// RevisitPenaltyBefore scales the revisit penalty before the midpoint.
	RevisitPenaltyBefore float64 `yaml:"revisit_penalty_before"`
	// RevisitPenaltyAfter scales the revisit penalty past the midpoint.
	RevisitPenaltyAfter float64 `yaml:"revisit_penalty_after"`
	// UTurnWindow is the fraction of the turning point after which an
	// immediate u-turn is tolerated.
	UTurnWindow float64 `yaml:"uturn_window"`

	// Tolerance is the distance filter applied to closed loops.
	Tolerance DistanceTolerance `yaml:"tolerance"`
	// SimilarityThreshold is the largest shared/len1 + shared/len2 allowed
	// between two returned loops.
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	// ReachabilityCheck runs a BFS from origin to destination first.
	ReachabilityCheck bool `yaml:"reachability_check"`

	// ClosureWeighting prices the way back; nil uses the search weighting.
	ClosureWeighting weighting.Weighting `yaml:"-"`
	// Elevation supplies elevation samples; nil reads the graph geometry.
	Elevation elevation.Provider `yaml:"-"`
	// Logger receives one record per search.
	Logger *Logger `yaml:"-"`
	// Metrics receives one observation per search.
	Metrics MetricsCollector `yaml:"-"`
}

// DefaultRoadPreferences favours footpaths and tracks and penalizes busy roads.
func DefaultRoadPreferences() map[core.RoadClass]float64 {
	return map[core.RoadClass]float64{
		core.RoadClassFootway:      1,
		core.RoadClassPath:         1,
		core.RoadClassPedestrian:   1,
		core.RoadClassTrack:        1,
		core.RoadClassCycleway:     0.5,
		core.RoadClassBridleway:    0.5,
		core.RoadClassLivingStreet: 0.5,
		core.RoadClassSecondary:    -0.5,
		core.RoadClassPrimary:      -1,
		core.RoadClassTrunk:        -2,
		core.RoadClassMotorway:     -2,
	}
}

// DefaultOptions returns the defaults:
//   - FrontierCapacity, MaxVisitedNodes: derived from the graph
//   - MaxTrips: 100, MaxResults: unlimited
//   - RoadPreferences: DefaultRoadPreferences, TrackBonus 0.5, per-edge scoring
//   - RevisitPenalty: 2 before the midpoint, 4 after
//   - UTurnWindow: 0.75
//   - Tolerance: legacy, ×1.2 / ÷1.1
//   - SimilarityThreshold: 1.7
//   - ReachabilityCheck: on
func DefaultOptions() Options {
	return Options{
		MaxTrips:             defaultMaxTrips,
		RoadPreferences:      DefaultRoadPreferences(),
		TrackBonus:           defaultTrackBonus,
		RevisitPenaltyBefore: defaultRevisitBefore,
		RevisitPenaltyAfter:  defaultRevisitAfter,
		UTurnWindow:          defaultUTurnWindow,
		Tolerance: DistanceTolerance{
			Mode:       ToleranceLegacy,
			MaxFactor:  defaultMaxFactor,
			MinDivisor: defaultMinDivisor,
		},
		SimilarityThreshold: defaultSimilarity,
		ReachabilityCheck:   true,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithOptions replaces the whole struct, e.g. with one loaded from YAML.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// WithFrontierCapacity fixes the frontier size. Panics if n < 1.
func WithFrontierCapacity(n int) Option {
	if n < 1 {
		panic("roundtrip: WithFrontierCapacity(n<1)")
	}
	return func(o *Options) { o.FrontierCapacity = n }
}

// WithMaxVisitedNodes fixes the visit budget. Panics if n < 1.
func WithMaxVisitedNodes(n int) Option {
	if n < 1 {
		panic("roundtrip: WithMaxVisitedNodes(n<1)")
	}
	return func(o *Options) { o.MaxVisitedNodes = n }
}

// WithMaxTrips sets the closing-entry cap. Panics if n < 1.
func WithMaxTrips(n int) Option {
	if n < 1 {
		panic("roundtrip: WithMaxTrips(n<1)")
	}
	return func(o *Options) { o.MaxTrips = n }
}

// WithMaxResults caps the number of returned loops; 0 is unlimited.
func WithMaxResults(n int) Option {
	if n < 0 {
		panic("roundtrip: WithMaxResults(n<0)")
	}
	return func(o *Options) { o.MaxResults = n }
}

// WithRoadPreferences replaces the per-class score table. The map is copied.
func WithRoadPreferences(prefs map[core.RoadClass]float64) Option {
	cp := make(map[core.RoadClass]float64, len(prefs))
	for k, v := range prefs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic("roundtrip: WithRoadPreferences(non-finite score)")
		}
		cp[k] = v
	}
	return func(o *Options) { o.RoadPreferences = cp }
}

// WithTrackBonus sets the bonus for graded edges without a class preference.
func WithTrackBonus(b float64) Option {
	if math.IsNaN(b) || math.IsInf(b, 0) {
		panic("roundtrip: WithTrackBonus(non-finite)")
	}
	return func(o *Options) { o.TrackBonus = b }
}

// WithLengthWeighted scales edge contributions by distance.
func WithLengthWeighted(on bool) Option {
	return func(o *Options) { o.LengthWeighted = on }
}

// WithRevisitPenalty sets the revisit penalty scale before and after the
// midpoint. Panics on negative values.
func WithRevisitPenalty(before, after float64) Option {
	if before < 0 || after < 0 || math.IsNaN(before) || math.IsNaN(after) {
		panic("roundtrip: WithRevisitPenalty(negative)")
	}
	return func(o *Options) {
		o.RevisitPenaltyBefore = before
		o.RevisitPenaltyAfter = after
	}
}

// WithUTurnWindow sets the fraction of the turning point from which
// immediate u-turns are tolerated. Panics outside [0, 1].
func WithUTurnWindow(f float64) Option {
	if f < 0 || f > 1 || math.IsNaN(f) {
		panic("roundtrip: WithUTurnWindow(outside [0,1])")
	}
	return func(o *Options) { o.UTurnWindow = f }
}

// WithDistanceTolerance replaces the distance filter. Panics unless both
// factors are positive.
func WithDistanceTolerance(t DistanceTolerance) Option {
	if !(t.MaxFactor > 0) || !(t.MinDivisor > 0) {
		panic("roundtrip: WithDistanceTolerance(non-positive factor)")
	}
	return func(o *Options) { o.Tolerance = t }
}

// WithSimilarityThreshold sets the dedup bound. Panics outside [0, 2].
func WithSimilarityThreshold(s float64) Option {
	if s < 0 || s > 2 || math.IsNaN(s) {
		panic("roundtrip: WithSimilarityThreshold(outside [0,2])")
	}
	return func(o *Options) { o.SimilarityThreshold = s }
}

// WithReachabilityCheck toggles the BFS pre-check.
func WithReachabilityCheck(on bool) Option {
	return func(o *Options) { o.ReachabilityCheck = on }
}

// WithClosureWeighting sets the weighting of the way back. Panics on nil.
func WithClosureWeighting(w weighting.Weighting) Option {
	if w == nil {
		panic("roundtrip: WithClosureWeighting(nil)")
	}
	return func(o *Options) { o.ClosureWeighting = w }
}

// WithElevationProvider sets the elevation source. Panics on nil.
func WithElevationProvider(p elevation.Provider) Option {
	if p == nil {
		panic("roundtrip: WithElevationProvider(nil)")
	}
	return func(o *Options) { o.Elevation = p }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic("roundtrip: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithMetrics sets the metrics collector. Panics on nil.
func WithMetrics(m MetricsCollector) Option {
	if m == nil {
		panic("roundtrip: WithMetrics(nil)")
	}
	return func(o *Options) { o.Metrics = m }
}

// Validate reports the first field that cannot drive a search.
func (o Options) Validate() error {
	switch {
	case o.FrontierCapacity < 0:
		return fmt.Errorf("%w: FrontierCapacity=%d", ErrOptionViolation, o.FrontierCapacity)
	case o.MaxVisitedNodes < 0:
		return fmt.Errorf("%w: MaxVisitedNodes=%d", ErrOptionViolation, o.MaxVisitedNodes)
	case o.MaxTrips < 1:
		return fmt.Errorf("%w: MaxTrips=%d", ErrOptionViolation, o.MaxTrips)
	case o.MaxResults < 0:
		return fmt.Errorf("%w: MaxResults=%d", ErrOptionViolation, o.MaxResults)
	case o.RevisitPenaltyBefore < 0 || o.RevisitPenaltyAfter < 0:
		return fmt.Errorf("%w: negative revisit penalty", ErrOptionViolation)
	case !(o.UTurnWindow >= 0 && o.UTurnWindow <= 1):
		return fmt.Errorf("%w: UTurnWindow=%v", ErrOptionViolation, o.UTurnWindow)
	case !(o.Tolerance.MaxFactor > 0) || !(o.Tolerance.MinDivisor > 0):
		return fmt.Errorf("%w: tolerance factors must be positive", ErrOptionViolation)
	case !(o.SimilarityThreshold >= 0 && o.SimilarityThreshold <= 2):
		return fmt.Errorf("%w: SimilarityThreshold=%v", ErrOptionViolation, o.SimilarityThreshold)
	case math.IsNaN(o.TrackBonus) || math.IsInf(o.TrackBonus, 0):
		return fmt.Errorf("%w: TrackBonus=%v", ErrOptionViolation, o.TrackBonus)
	}
	for rc, v := range o.RoadPreferences {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: road preference %s=%v", ErrOptionViolation, rc, v)
		}
	}

	return nil
}

// frontierCapacity resolves the frontier size for a graph of n nodes.
func (o Options) frontierCapacity(n int) int {
	if o.FrontierCapacity > 0 {
		return o.FrontierCapacity
	}

	return min(max(minFrontierCapacity, n/frontierNodeDivisor), maxFrontierCapacity)
}

// visitBudget resolves the visit budget for a graph of n nodes.
func (o Options) visitBudget(n int) int {
	if o.MaxVisitedNodes > 0 {
		return o.MaxVisitedNodes
	}

	return max(minVisitedNodes, visitedNodesPerNode*n)
}
