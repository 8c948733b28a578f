package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/loopway/core"
)

const methodEdges = "Edges"

// EdgeSpec is one explicit road. Zero Distance takes the configured
// DistanceFn, or spacing when none is set.
type EdgeSpec struct {
	From, To   int
	Distance   float64
	Attributes core.EdgeAttributes
	OneWay     bool
}

// Edges adds the given roads in order. Node IDs are used as given (idFn is
// not applied); missing nodes are created without coordinates.
func Edges(specs ...EdgeSpec) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		for i, s := range specs {
			if s.From == s.To || s.Distance < 0 || math.IsNaN(s.Distance) {
				return fmt.Errorf("%s: spec %d (%d→%d, d=%g): %w", methodEdges, i, s.From, s.To, s.Distance, ErrBadEdge)
			}
			d := s.Distance
			if d == 0 {
				d = cfg.distance(cfg.spacing)
			}
			opts := []core.EdgeOption{core.WithAttributes(s.Attributes)}
			if s.OneWay {
				opts = append(opts, core.WithEdgeDirected(true))
			}
			if _, err := g.AddEdge(s.From, s.To, d, opts...); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodEdges, s.From, s.To, err)
			}
		}

		return nil
	}
}
