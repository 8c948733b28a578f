// SPDX-License-Identifier: MIT
// Package: loopway/builder
//
// impl_random_sparse.go — RandomSparse(n, p): a connected random network.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • Requires an RNG (WithSeed/WithRand), else ErrNeedRandSource.
//   • Nodes are scattered uniformly over a square of side spacing·√n.
//   • A backbone (i, i+1) keeps the network connected; every other pair
//     (i, j), j > i+1, is linked with probability p, in lexicographic order.
//   • Natural edge length is the straight-line distance.
//
// Complexity: O(n²) pair checks. Deterministic for a fixed seed.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/loopway/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
)

// RandomSparse returns a Constructor for a connected random road network.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		side := cfg.spacing * math.Sqrt(float64(n))
		pos := make([][2]float64, n)
		for i := range pos {
			pos[i] = [2]float64{cfg.rng.Float64() * side, cfg.rng.Float64() * side}
			if _, err := cfg.addNode(g, methodRandomSparse, i, pos[i][0], pos[i][1]); err != nil {
				return err
			}
		}
		length := func(i, j int) float64 {
			return math.Hypot(pos[i][0]-pos[j][0], pos[i][1]-pos[j][1])
		}

		k := 0
		for i := 0; i+1 < n; i++ {
			if err := cfg.addRoad(g, methodRandomSparse, k, cfg.idFn(i), cfg.idFn(i+1), length(i, i+1)); err != nil {
				return err
			}
			k++
		}
		for i := 0; i < n; i++ {
			for j := i + 2; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := cfg.addRoad(g, methodRandomSparse, k, cfg.idFn(i), cfg.idFn(j), length(i, j)); err != nil {
					return err
				}
				k++
			}
		}

		return nil
	}
}
