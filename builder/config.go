// SPDX-License-Identifier: MIT
// Package: loopway/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn         (0, 1, 2, ...)
//   • rng         = nil                 (pure/deterministic unless seeded)
//   • distanceFn  = nil                 (each constructor's natural length)
//   • attrFn      = residential roads, no track grade
//   • elevationFn = nil                 (flat, elevation 0)
//   • spacing     = 100 m
//   • origin      = 0°N 0°E

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/loopway/core"
)

const (
	defaultSpacing = 100.0
	metresPerDeg   = 111_320.0
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn        IDFn
	rng         *rand.Rand
	distanceFn  DistanceFn
	attrFn      AttributeFn
	elevationFn ElevationFn
	spacing     float64
	origin      core.Point
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:    DefaultIDFn,
		attrFn:  ConstantAttributes(core.EdgeAttributes{RoadClass: core.RoadClassResidential}),
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// distance returns the length of the next edge; natural is the constructor's
// own geometric length.
func (c builderConfig) distance(natural float64) float64 {
	if c.distanceFn == nil {
		return natural
	}

	return c.distanceFn(c.rng)
}

// point converts a planar position (metres east, metres north of origin)
// into a WGS84 point with elevation.
func (c builderConfig) point(x, y float64) core.Point {
	lat := c.origin.Lat + y/metresPerDeg
	lon := c.origin.Lon + x/(metresPerDeg*math.Cos(c.origin.Lat*math.Pi/180))
	var ele float64
	if c.elevationFn != nil {
		ele = c.elevationFn(x, y)
	}

	return core.Point{Lat: lat, Lon: lon, Elevation: ele}
}

// addNode places node idx at (x, y). A node that already exists is left as
// it is, so constructors can share junctions.
func (c builderConfig) addNode(g *core.Graph, method string, idx int, x, y float64) (int, error) {
	id := c.idFn(idx)
	if g.HasNode(id) {
		return id, nil
	}
	p := c.point(x, y)
	if err := g.AddNode(id, core.WithCoordinates(p.Lat, p.Lon, p.Elevation)); err != nil {
		return id, fmt.Errorf("%s: AddNode(%d): %w", method, id, err)
	}

	return id, nil
}

// addRoad links u and v with the k-th edge of a constructor. In directed
// graphs the reverse arc is emitted too, so fixtures stay walkable both ways.
func (c builderConfig) addRoad(g *core.Graph, method string, k, u, v int, natural float64) error {
	d := c.distance(natural)
	attrs := c.attrFn(k, c.rng)
	if _, err := g.AddEdge(u, v, d, core.WithAttributes(attrs)); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, d=%g): %w", method, u, v, d, err)
	}
	if g.Directed() {
		if _, err := g.AddEdge(v, u, d, core.WithAttributes(attrs)); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, d=%g): %w", method, v, u, d, err)
		}
	}

	return nil
}
