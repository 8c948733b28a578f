// SPDX-License-Identifier: MIT
// Package: loopway/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, method name first.
//   • Constructors never panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadEdge indicates an explicit edge or chord that cannot be added
// (unknown ring index, negative distance, self loop).
var ErrBadEdge = errors.New("builder: invalid edge")

// ErrConstructFailed indicates a nil constructor or a core error while
// assembling the fixture.
var ErrConstructFailed = errors.New("builder: construction failed")
