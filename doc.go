// Package loopway generates round-trip routes: loops that start and end at
// a chosen point (or between two points) with a length inside a requested
// band, preferring quiet roads and distinct from each other.
//
// The library is organized in small packages:
//
//	core/       — road graph: junctions, segments, road attributes, geometry
//	weighting/  — edge and turn costs: shortest, hiking, turn-cost tables
//	spt/        — arena of search entries with parent links
//	dijkstra/   — isolated shortest-path search used to close loops
//	bfs/        — reachability pre-check and breadth-first traversal
//	path/       — entry chains to concrete routes
//	elevation/  — elevation sampling, route profiles and scores
//	roundtrip/  — the loop search, ranking and batch API
//	builder/    — synthetic street networks for tests and demos
//	gridgraph/  — elevation rasters as walkable graphs and elevation sources
//	roadio/     — JSON / zstd graph files
//	config/     — YAML configuration
//	metrics/    — Prometheus collectors
//
// The loopway command (cmd/loopway) runs one search from the command line or
// serves the HTTP API of internal/server.
//
// Quick start:
//
//	g := core.NewGraph()
//	// ... add junctions and road segments ...
//	paths, err := roundtrip.CalcPaths(g, weighting.NewShortest(), home, home, 8000, 10000)
package loopway
