// SPDX-License-Identifier: MIT
// Package: loopway/roundtrip
//
// roundtrip.go — public entry points: Search, SearchContext, CalcPaths, CalcBatch.
//
// Contract:
//   • Inputs are validated before any traversal, in this order: graph,
//     weighting, origin/destination, distance band, options.
//   • Every call owns its arena and frontier; the graph is only read.
//   • An empty result is not an error.

package roundtrip

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/loopway/bfs"
	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/elevation"
	"github.com/katalvlaran/loopway/path"
	"github.com/katalvlaran/loopway/weighting"
)

// Request names one round trip: start at From, end at To, with a length
// inside [MinDistance, MaxDistance]. From == To asks for a closed loop.
type Request struct {
	From        int     `json:"from" yaml:"from"`
	To          int     `json:"to" yaml:"to"`
	MinDistance float64 `json:"min_distance" yaml:"min_distance"`
	MaxDistance float64 `json:"max_distance" yaml:"max_distance"`
}

// Route is one ranked loop.
type Route struct {
	Path           *path.Path
	Profile        elevation.Profile
	ElevationScore float64
}

// Result is the outcome of one search.
type Result struct {
	Routes []Route
	Stats  Stats
}

// Paths returns the loops of r in rank order.
func (r *Result) Paths() []*path.Path {
	out := make([]*path.Path, len(r.Routes))
	for i, rt := range r.Routes {
		out[i] = rt.Path
	}

	return out
}

// CalcPaths returns the ranked, deduplicated loops from → to whose length
// falls in [minDistance, maxDistance] under the default tolerance.
//
// Errors: ErrNilGraph, ErrNilWeighting, ErrVertexNotFound,
// ErrInvalidDistance, ErrOptionViolation, ErrCorruptedAncestry.
func CalcPaths(g *core.Graph, w weighting.Weighting, from, to int, minDistance, maxDistance float64, opts ...Option) ([]*path.Path, error) {
	res, err := Search(g, w, from, to, minDistance, maxDistance, opts...)
	if err != nil {
		return nil, err
	}

	return res.Paths(), nil
}

// Search is CalcPaths returning routes with their elevation profile and the
// search counters.
func Search(g *core.Graph, w weighting.Weighting, from, to int, minDistance, maxDistance float64, opts ...Option) (*Result, error) {
	return search(context.Background(), g, w, Request{
		From:        from,
		To:          to,
		MinDistance: minDistance,
		MaxDistance: maxDistance,
	}, opts)
}

// SearchContext runs req like Search. ctx is attached to the search log
// records; a done ctx fails the call before the search starts.
func SearchContext(ctx context.Context, g *core.Graph, w weighting.Weighting, req Request, opts ...Option) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return search(ctx, g, w, req, opts)
}

func search(ctx context.Context, g *core.Graph, w weighting.Weighting, req Request, opts []Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.Logger
	if logger == nil {
		logger = NoopLogger()
	}
	collector := o.Metrics
	if collector == nil {
		collector = NoopMetricsCollector{}
	}

	start := time.Now()
	res, err := run(g, w, req, o)
	took := time.Since(start)

	var stats Stats
	loops := 0
	if res != nil {
		stats = res.Stats
		loops = len(res.Routes)
	}
	logger.LogSearch(ctx, req, stats, loops, took, err)
	collector.RecordSearch(stats, loops, took, err)

	return res, err
}

func run(g *core.Graph, w weighting.Weighting, req Request, o Options) (*Result, error) {
	if err := validate(g, w, req, o); err != nil {
		return nil, err
	}

	if o.ReachabilityCheck && req.From != req.To {
		ok, err := bfs.Reachable(g, req.From, req.To, bfs.WithFilterEdge(bfs.SkipFerries))
		if err != nil {
			return nil, fmt.Errorf("roundtrip: reachability: %w", err)
		}
		if !ok {
			return &Result{Stats: Stats{Termination: TerminationUnreachable}}, nil
		}
	}

	s := newSearcher(g, req, o)
	if err := s.run(); err != nil {
		return nil, err
	}

	closure := o.ClosureWeighting
	if closure == nil {
		closure = w
	}
	leaves, err := s.closeLoops(closure)
	if err != nil {
		return nil, err
	}

	prov := o.Elevation
	if prov == nil {
		prov = elevation.NewGraphProvider(g)
	}
	routes, err := s.rank(w, prov, leaves)
	if err != nil {
		return nil, err
	}

	return &Result{Routes: routes, Stats: s.stats}, nil
}

func validate(g *core.Graph, w weighting.Weighting, req Request, o Options) error {
	if g == nil {
		return ErrNilGraph
	}
	if w == nil {
		return ErrNilWeighting
	}
	if !g.HasNode(req.From) {
		return fmt.Errorf("%w: origin %d", ErrVertexNotFound, req.From)
	}
	if !g.HasNode(req.To) {
		return fmt.Errorf("%w: destination %d", ErrVertexNotFound, req.To)
	}
	if !(req.MinDistance >= 0) || !(req.MaxDistance >= 0) || math.IsInf(req.MaxDistance, 0) {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidDistance, req.MinDistance, req.MaxDistance)
	}
	if req.MinDistance > req.MaxDistance {
		return fmt.Errorf("%w: min %v > max %v", ErrInvalidDistance, req.MinDistance, req.MaxDistance)
	}

	return o.Validate()
}

// BatchResult pairs a request with its outcome. Err is set instead of
// Result when that search failed.
type BatchResult struct {
	Request Request
	Result  *Result
	Err     error
}

// CalcBatch runs one isolated search per request with at most limit running
// at a time; limit ≤ 0 means no limit.
// Per-request failures are reported in the matching BatchResult; the call
// itself fails only when ctx is done, in which case results of requests that
// never started carry ctx.Err().
func CalcBatch(ctx context.Context, g *core.Graph, w weighting.Weighting, reqs []Request, limit int, opts ...Option) ([]BatchResult, error) {
	out := make([]BatchResult, len(reqs))
	start := time.Now()

	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	for i, req := range reqs {
		out[i].Request = req
		if err := egCtx.Err(); err != nil {
			out[i].Err = err
			continue
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				out[i].Err = err
				return nil
			}
			out[i].Result, out[i].Err = search(egCtx, g, w, req, opts)
			return nil
		})
	}
	_ = eg.Wait()

	failed := 0
	for _, r := range out {
		if r.Err != nil {
			failed++
		}
	}
	logger := resolveLogger(opts)
	logger.LogBatch(ctx, len(reqs), failed, time.Since(start))

	return out, ctx.Err()
}

func resolveLogger(opts []Option) *Logger {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		return NoopLogger()
	}

	return o.Logger
}
