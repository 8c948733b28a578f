// Package builder assembles deterministic road-network fixtures for tests,
// benchmarks and demos.
//
// A fixture is a core.Graph built by composing Constructors:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSpacing(250), builder.WithElevationFn(builder.Hill(500, 500, 80, 300))},
//	    builder.Grid(5, 5),
//	)
//
// Constructors place nodes on a plane (metres east/north of an origin),
// convert the positions to WGS84 coordinates, sample elevation with the
// configured ElevationFn and link neighbours with road edges whose distance
// and attributes come from DistanceFn and AttributeFn.
//
// Determinism: same options, same seed and same constructor order produce
// identical graphs, node IDs and edge IDs included.
//
// Constructors:
//
//   - Cycle(n): a ring road of n nodes.
//   - Path(n): a straight road of n nodes.
//   - Grid(rows, cols): a street grid with 4-neighbourhood.
//   - RingWithChord(n, a, b): a ring with one shortcut between ring nodes a and b.
//   - RandomSparse(n, p): a connected random network (backbone plus random links).
//   - Edges(specs...): explicit edges, for hand-traced tests.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrBadEdge, ErrConstructFailed) wrapped with the
// constructor name; option constructors panic on meaningless values.
package builder
