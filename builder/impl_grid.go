// SPDX-License-Identifier: MIT
// Package: loopway/builder
//
// impl_grid.go — Grid(rows, cols): an orthogonal street grid.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Node index r·cols + c at (c·spacing, r·spacing), added row-major.
//   • For each (r,c) emit Right then Bottom neighbour edges where they exist.
//     In directed graphs the reverse arc is emitted too.
//
// Complexity:
//   • Time: O(rows·cols).
//   • Space: O(1) extra.
//
// Determinism:
//   • Stable node order (row-major) and edge order (Right, Bottom).

package builder

import (
	"fmt"

	"github.com/katalvlaran/loopway/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				x, y := float64(c)*cfg.spacing, float64(r)*cfg.spacing
				if _, err := cfg.addNode(g, methodGrid, r*cols+c, x, y); err != nil {
					return err
				}
			}
		}

		k := 0
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cfg.idFn(r*cols + c)
				if c+1 < cols {
					if err := cfg.addRoad(g, methodGrid, k, u, cfg.idFn(r*cols+c+1), cfg.spacing); err != nil {
						return err
					}
					k++
				}
				if r+1 < rows {
					if err := cfg.addRoad(g, methodGrid, k, u, cfg.idFn((r+1)*cols+c), cfg.spacing); err != nil {
						return err
					}
					k++
				}
			}
		}

		return nil
	}
}
