// SPDX-License-Identifier: MIT
// Package: loopway/builder
//
// impl_cycle.go — Cycle(n) and RingWithChord(n, a, b).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Nodes idFn(0..n-1) sit on a circle whose circumference is n·spacing.
//   • Edges (i, i+1 mod n) for i = 0..n-1, each of length spacing.
//   • RingWithChord adds one more edge a—b after the ring, its natural
//     length being the straight line between them.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/loopway/core"
)

const (
	methodCycle         = "Cycle"
	methodRingWithChord = "RingWithChord"
	minCycleNodes       = 3
)

// Cycle returns a Constructor that builds a ring road of n nodes.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		_, err := ring(g, cfg, methodCycle, n)
		return err
	}
}

// RingWithChord builds Cycle(n) plus a shortcut between ring indices a and b.
func RingWithChord(n, a, b int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if a < 0 || b < 0 || a >= n || b >= n || a == b {
			return fmt.Errorf("%s: chord %d—%d on ring of %d: %w", methodRingWithChord, a, b, n, ErrBadEdge)
		}
		pos, err := ring(g, cfg, methodRingWithChord, n)
		if err != nil {
			return err
		}
		natural := math.Hypot(pos[a][0]-pos[b][0], pos[a][1]-pos[b][1])

		return cfg.addRoad(g, methodRingWithChord, n, cfg.idFn(a), cfg.idFn(b), natural)
	}
}

// ring emits the nodes and edges of a cycle and returns the planar positions.
func ring(g *core.Graph, cfg builderConfig, method string, n int) ([][2]float64, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minCycleNodes, ErrTooFewVertices)
	}

	radius := float64(n) * cfg.spacing / (2 * math.Pi)
	pos := make([][2]float64, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pos[i] = [2]float64{radius * math.Cos(angle), radius * math.Sin(angle)}
		if _, err := cfg.addNode(g, method, i, pos[i][0], pos[i][1]); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		if err := cfg.addRoad(g, method, i, cfg.idFn(i), cfg.idFn((i+1)%n), cfg.spacing); err != nil {
			return nil, err
		}
	}

	return pos, nil
}
