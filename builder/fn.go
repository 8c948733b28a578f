// SPDX-License-Identifier: MIT
// Package: loopway/builder
//
// fn.go — pluggable policies: node IDs, edge lengths, edge attributes and
// terrain.
//
// Contract:
//   • Policy constructors validate and panic on meaningless parameters.
//   • Stochastic policies fall back to a deterministic value when no RNG is
//     configured.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/loopway/core"
)

// IDFn maps a constructor-local index to a node ID.
type IDFn func(idx int) int

// DefaultIDFn uses the index itself.
func DefaultIDFn(idx int) int { return idx }

// OffsetIDFn shifts indices by offset.
func OffsetIDFn(offset int) IDFn {
	return func(idx int) int { return offset + idx }
}

// DistanceFn draws an edge length in metres.
type DistanceFn func(rng *rand.Rand) float64

// ConstantDistanceFn always returns d.
func ConstantDistanceFn(d float64) DistanceFn {
	if d < 0 || math.IsNaN(d) {
		panic(fmt.Sprintf("ConstantDistanceFn: d must be ≥ 0, got %g", d))
	}

	return func(*rand.Rand) float64 { return d }
}

// UniformDistanceFn draws from [min, max); without an RNG it returns min.
func UniformDistanceFn(min, max float64) DistanceFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformDistanceFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalDistanceFn draws from N(mean, stddev) clamped at 0; without an RNG
// it returns mean.
func NormalDistanceFn(mean, stddev float64) DistanceFn {
	if mean < 0 || stddev < 0 {
		panic(fmt.Sprintf("NormalDistanceFn: mean and stddev must be ≥ 0, got %g, %g", mean, stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return mean
		}

		return math.Max(0, rng.NormFloat64()*stddev+mean)
	}
}

// AttributeFn returns the attributes of the k-th edge a constructor emits.
type AttributeFn func(k int, rng *rand.Rand) core.EdgeAttributes

// ConstantAttributes gives every edge attrs.
func ConstantAttributes(attrs core.EdgeAttributes) AttributeFn {
	return func(int, *rand.Rand) core.EdgeAttributes { return attrs }
}

// CycleRoadClasses assigns classes round-robin in emission order.
func CycleRoadClasses(classes ...core.RoadClass) AttributeFn {
	if len(classes) == 0 {
		panic("CycleRoadClasses: no classes")
	}

	return func(k int, _ *rand.Rand) core.EdgeAttributes {
		return core.EdgeAttributes{RoadClass: classes[k%len(classes)]}
	}
}

// RandomRoadClasses picks a class uniformly per edge; without an RNG it
// behaves like CycleRoadClasses.
func RandomRoadClasses(classes ...core.RoadClass) AttributeFn {
	if len(classes) == 0 {
		panic("RandomRoadClasses: no classes")
	}

	return func(k int, rng *rand.Rand) core.EdgeAttributes {
		if rng == nil {
			return core.EdgeAttributes{RoadClass: classes[k%len(classes)]}
		}

		return core.EdgeAttributes{RoadClass: classes[rng.Intn(len(classes))]}
	}
}

// ElevationFn samples terrain height in metres at a planar position.
type ElevationFn func(x, y float64) float64

// Hill is a Gaussian bump of the given height centred on (cx, cy).
func Hill(cx, cy, height, radius float64) ElevationFn {
	if !(radius > 0) {
		panic(fmt.Sprintf("Hill: radius must be > 0, got %g", radius))
	}

	return func(x, y float64) float64 {
		dx, dy := x-cx, y-cy
		return height * math.Exp(-(dx*dx+dy*dy)/(2*radius*radius))
	}
}

// Slope rises by grade metres per metre eastwards from base.
func Slope(base, grade float64) ElevationFn {
	return func(x, _ float64) float64 { return base + grade*x }
}
