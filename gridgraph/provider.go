package gridgraph

import (
	"math"

	"github.com/katalvlaran/loopway/core"
)

// ElevationAt interpolates the raster bilinearly at fractional cell
// coordinates. Positions outside the grid are clamped to the border;
// impassable corners are ignored.
func (gg *GridGraph) ElevationAt(fx, fy float64) float64 {
	fx = math.Max(0, math.Min(fx, float64(gg.Width-1)))
	fy = math.Max(0, math.Min(fy, float64(gg.Height-1)))
	x0, y0 := int(math.Floor(fx)), int(math.Floor(fy))
	x1, y1 := min(x0+1, gg.Width-1), min(y0+1, gg.Height-1)
	tx, ty := fx-float64(x0), fy-float64(y0)

	var sum, weight float64
	for _, c := range [4]struct {
		x, y int
		w    float64
	}{
		{x0, y0, (1 - tx) * (1 - ty)},
		{x1, y0, tx * (1 - ty)},
		{x0, y1, (1 - tx) * ty},
		{x1, y1, tx * ty},
	} {
		if c.w == 0 || !gg.Passable(c.x, c.y) {
			continue
		}
		sum += c.w * gg.Elevations[c.y][c.x]
		weight += c.w
	}
	if weight == 0 {
		return 0
	}

	return sum / weight
}

// cell converts a WGS84 position into fractional cell coordinates.
func (gg *GridGraph) cell(p core.Point) (float64, float64) {
	fy := (p.Lat - gg.opts.OriginLat) * metresPerDeg / gg.opts.CellSize
	fx := (p.Lon - gg.opts.OriginLon) * metresPerDeg * math.Cos(gg.opts.OriginLat*math.Pi/180) / gg.opts.CellSize

	return fx, fy
}

// Provider samples the raster along edges of g. It implements
// elevation.Provider.
type Provider struct {
	gg *GridGraph
	g  *core.Graph
}

// Provider returns an elevation source for g backed by the raster. Use it
// when g was not built from the raster itself, e.g. a road network loaded
// from a file over the same area.
func (gg *GridGraph) Provider(g *core.Graph) Provider {
	return Provider{gg: gg, g: g}
}

// EdgeElevations returns one sample per half cell along the traversal,
// both ends included.
func (p Provider) EdgeElevations(s core.EdgeState) []float64 {
	pts := p.g.Points(s)
	out := make([]float64, 0, len(pts))
	for i, pt := range pts {
		fx, fy := p.gg.cell(pt)
		if i == 0 {
			out = append(out, p.gg.ElevationAt(fx, fy))
			continue
		}
		px, py := p.gg.cell(pts[i-1])
		steps := max(1, int(math.Ceil(2*math.Hypot(fx-px, fy-py))))
		for k := 1; k <= steps; k++ {
			t := float64(k) / float64(steps)
			out = append(out, p.gg.ElevationAt(px+t*(fx-px), py+t*(fy-py)))
		}
	}

	return out
}
