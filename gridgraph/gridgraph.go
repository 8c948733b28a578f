package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/loopway/core"
)

const metresPerDeg = 111_320.0

// NewGridGraph validates a rectangular elevation raster and copies it.
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrBadCellSize.
// Complexity: O(W·H).
func NewGridGraph(values [][]float64, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if !(opts.CellSize > 0) || math.IsInf(opts.CellSize, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadCellSize, opts.CellSize)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]float64, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]float64, w)
		copy(cells[y], values[y])
	}

	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		Elevations:      cells,
		opts:            opts,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x, y) lies within the grid dimensions.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the neighbour offsets for the chosen connectivity.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// NodeID is the graph node of cell (x, y).
func (gg *GridGraph) NodeID(x, y int) int { return y*gg.Width + x }

// Coordinate converts a node ID back to (x, y).
func (gg *GridGraph) Coordinate(id int) (x, y int) {
	return id % gg.Width, id / gg.Width
}

// Point returns the WGS84 position and elevation of cell (x, y).
func (gg *GridGraph) Point(x, y int) core.Point {
	lat := gg.opts.OriginLat + float64(y)*gg.opts.CellSize/metresPerDeg
	lon := gg.opts.OriginLon + float64(x)*gg.opts.CellSize/(metresPerDeg*math.Cos(gg.opts.OriginLat*math.Pi/180))

	return core.Point{Lat: lat, Lon: lon, Elevation: gg.Elevations[y][x]}
}

// ToCoreGraph builds the walkable network: one node per passable cell,
// one undirected link per pair of passable neighbours whose grade does not
// exceed MaxGrade. Link distance is the planar cell distance; the track
// grade follows the slope.
//
// Determinism: nodes row-major, links emitted from the lower node ID.
// Complexity: O(W·H·k), k = 4 or 8.
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			p := gg.Point(x, y)
			if err := g.AddNode(gg.NodeID(x, y), core.WithCoordinates(p.Lat, p.Lon, p.Elevation)); err != nil {
				return nil, fmt.Errorf("gridgraph: cell (%d,%d): %w", x, y, err)
			}
		}
	}

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Passable(x, y) {
				continue
			}
			u := gg.NodeID(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Passable(nx, ny) || gg.NodeID(nx, ny) < u {
					continue
				}
				run := gg.opts.CellSize * math.Hypot(float64(d[0]), float64(d[1]))
				grade := math.Abs(gg.Elevations[ny][nx]-gg.Elevations[y][x]) / run
				if gg.opts.MaxGrade > 0 && grade > gg.opts.MaxGrade {
					continue
				}
				attrs := core.EdgeAttributes{RoadClass: gg.opts.RoadClass, TrackType: trackGrade(grade)}
				if _, err := g.AddEdge(u, gg.NodeID(nx, ny), run, core.WithAttributes(attrs)); err != nil {
					return nil, fmt.Errorf("gridgraph: link (%d,%d)→(%d,%d): %w", x, y, nx, ny, err)
				}
			}
		}
	}

	return g, nil
}

// trackGrade maps a rise/run ratio to a track grade, 1 being the easiest.
func trackGrade(grade float64) core.TrackType {
	switch {
	case grade < 0.05:
		return core.TrackTypeGrade1
	case grade < 0.10:
		return core.TrackTypeGrade2
	case grade < 0.20:
		return core.TrackTypeGrade3
	case grade < 0.35:
		return core.TrackTypeGrade4
	default:
		return core.TrackTypeGrade5
	}
}
