// Package elevation reads elevation along routes and scores how much of the
// climbing a route spends above its starting height.
//
// The score is low when the highest point is as far above the start as the
// total ascent, that is, the loop spends its climbing on one summit. Loops
// that climb and descend many small hills score close to 1. The round-trip
// ranking sorts ascending, so summit loops come first.
//
//	score = 1 − (max − start) / ascent       (1 when ascent is 0)
//
// Since max − start never exceeds the cumulative ascent, scores lie in [0, 1].
package elevation

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/path"
)

// Provider returns the elevation samples of one traversal, oriented from
// s.Base to s.Adj, tower nodes included.
type Provider interface {
	EdgeElevations(s core.EdgeState) []float64
}

// GraphProvider reads elevations from node and edge geometry in a core.Graph.
type GraphProvider struct {
	g *core.Graph
}

// NewGraphProvider returns a Provider backed by g.
func NewGraphProvider(g *core.Graph) GraphProvider { return GraphProvider{g: g} }

// EdgeElevations implements Provider.
func (p GraphProvider) EdgeElevations(s core.EdgeState) []float64 {
	pts := p.g.Points(s)
	out := make([]float64, len(pts))
	for i, pt := range pts {
		out[i] = pt.Elevation
	}

	return out
}

// Samples concatenates the elevations of every traversal of p, dropping the
// tower sample shared by consecutive edges.
func Samples(p *path.Path, prov Provider) []float64 {
	var out []float64
	for i, s := range p.Edges {
		ele := prov.EdgeElevations(s)
		if i > 0 && len(ele) > 0 {
			ele = ele[1:]
		}
		out = append(out, ele...)
	}

	return out
}

// Profile summarizes the elevation of a route.
type Profile struct {
	Start   float64
	Max     float64
	Min     float64
	Ascent  float64
	Descent float64
	Samples int
}

// ProfileOf computes the Profile of p.
func ProfileOf(p *path.Path, prov Provider) Profile {
	return ProfileFromSamples(Samples(p, prov))
}

// ProfileFromSamples computes a Profile from raw samples in travel order.
func ProfileFromSamples(s []float64) Profile {
	if len(s) == 0 {
		return Profile{}
	}
	pr := Profile{
		Start:   s[0],
		Max:     floats.Max(s),
		Min:     floats.Min(s),
		Samples: len(s),
	}
	if len(s) < 2 {
		return pr
	}

	deltas := make([]float64, len(s)-1)
	floats.SubTo(deltas, s[1:], s[:len(s)-1])
	for _, d := range deltas {
		if d > 0 {
			pr.Ascent += d
		} else {
			pr.Descent -= d
		}
	}

	return pr
}

// Score returns 1 − (Max − Start)/Ascent, or 1 for a route without ascent.
func (pr Profile) Score() float64 {
	if pr.Ascent <= 0 {
		return 1
	}

	return 1 - (pr.Max-pr.Start)/pr.Ascent
}
