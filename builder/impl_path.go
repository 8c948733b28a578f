// SPDX-License-Identifier: MIT
// Package: loopway/builder
//
// impl_path.go — Path(n): a straight road running east.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Node idFn(i) at (i·spacing, 0); edges (i, i+1) in ascending order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/loopway/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a straight road of n nodes.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if _, err := cfg.addNode(g, methodPath, i, float64(i)*cfg.spacing, 0); err != nil {
				return err
			}
		}
		for i := 0; i+1 < n; i++ {
			if err := cfg.addRoad(g, methodPath, i, cfg.idFn(i), cfg.idFn(i+1), cfg.spacing); err != nil {
				return err
			}
		}

		return nil
	}
}
