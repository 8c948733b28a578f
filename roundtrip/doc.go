// Package roundtrip generates round-trip routes on a road graph.
//
// Given an origin, a destination (often the origin itself) and a distance
// band [min, max], Search returns several distinct loops whose length falls
// in the band, preferring quiet road classes and avoiding self-intersection.
//
// Overview:
//
//   - Frontier search: a bounded best-first traversal grows a tree of partial
//     paths from the origin, ordered by a road-preference score rather than
//     by distance. Revisiting a node costs a penalty, a third visit and a
//     repeated directed edge are refused, and early u-turns are banned.
//   - Closing entries: partial paths that reach the destination with at
//     least min, or pass the turning point (min+max)/4, stop growing.
//   - Loop closure: each closing entry gets the cheapest way back to the
//     destination from an isolated dijkstra.ShortestPath, spliced onto its
//     chain.
//   - Ranking: loops outside the distance tolerance are dropped, the rest are
//     sorted by elevation score (lower first) and near-duplicates sharing too
//     much edge distance are removed.
//
// Limits: the frontier holds min(max(200, n/10), 2000) entries and the search
// pops at most max(10000, 50·n) of them unless Options say otherwise; it stops
// early after MaxTrips closing entries. Stats report which limit ended it.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilWeighting, ErrVertexNotFound, ErrInvalidDistance,
//     ErrOptionViolation for invalid input, before any traversal.
//   - ErrCorruptedAncestry if an entry chain is malformed; no partial result.
//   - An unreachable destination or a closure without a way back is not an
//     error: the result simply has fewer (or no) routes.
//
// Concurrency: one search runs on one goroutine and only reads the graph.
// CalcBatch runs independent searches in parallel.
//
// Example:
//
//	paths, err := roundtrip.CalcPaths(g, weighting.NewShortest(), home, home, 8000, 10000,
//	    roundtrip.WithClosureWeighting(weighting.NewHiking(weighting.DefaultHikingCoefficients())),
//	    roundtrip.WithMaxResults(5))
package roundtrip
