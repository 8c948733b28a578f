package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/loopway/core"
)

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → node ID mapping.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithIDOffset numbers nodes from offset, so several fixtures can share a graph.
func WithIDOffset(offset int) BuilderOption {
	return WithIDScheme(OffsetIDFn(offset))
}

// WithRand attaches an RNG; callers decide the seed policy.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a seeded RNG for reproducible stochastic fixtures.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDistanceFn overrides the length of every emitted edge.
func WithDistanceFn(fn DistanceFn) BuilderOption {
	if fn == nil {
		panic("builder: WithDistanceFn(nil)")
	}
	return func(c *builderConfig) { c.distanceFn = fn }
}

// WithConstantDistance gives every edge the same length.
func WithConstantDistance(d float64) BuilderOption {
	return WithDistanceFn(ConstantDistanceFn(d))
}

// WithUniformDistance draws edge lengths from [min, max).
func WithUniformDistance(min, max float64) BuilderOption {
	return WithDistanceFn(UniformDistanceFn(min, max))
}

// WithAttributeFn sets the attribute policy of emitted edges.
func WithAttributeFn(fn AttributeFn) BuilderOption {
	if fn == nil {
		panic("builder: WithAttributeFn(nil)")
	}
	return func(c *builderConfig) { c.attrFn = fn }
}

// WithRoadClass gives every edge the same road class.
func WithRoadClass(rc core.RoadClass) BuilderOption {
	return WithAttributeFn(ConstantAttributes(core.EdgeAttributes{RoadClass: rc}))
}

// WithElevationFn sets the terrain sampled at every node.
func WithElevationFn(fn ElevationFn) BuilderOption {
	if fn == nil {
		panic("builder: WithElevationFn(nil)")
	}
	return func(c *builderConfig) { c.elevationFn = fn }
}

// WithSpacing sets the distance in metres between neighbouring nodes.
func WithSpacing(metres float64) BuilderOption {
	if !(metres > 0) || math.IsInf(metres, 0) {
		panic("builder: WithSpacing(metres<=0)")
	}
	return func(c *builderConfig) { c.spacing = metres }
}

// WithOrigin anchors the planar layout at lat/lon.
func WithOrigin(lat, lon float64) BuilderOption {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		panic("builder: WithOrigin(out of range)")
	}
	return func(c *builderConfig) { c.origin = core.Point{Lat: lat, Lon: lon} }
}
