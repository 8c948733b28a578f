package gridgraph

import (
	"errors"
	"math"

	"github.com/katalvlaran/loopway/core"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid is returned when the raster has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")

	// ErrNonRectangular is returned when rows differ in length.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")

	// ErrBadCellSize is returned for a non-positive cell size.
	ErrBadCellSize = errors.New("gridgraph: cell size must be positive")
)

// Connectivity defines neighbor relations in the grid.
type Connectivity int

const (
	// Conn4 links orthogonal neighbours: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 also links diagonals.
	Conn8
)

// GridOptions configures how a raster becomes a road graph.
type GridOptions struct {
	// Conn selects 4- or 8-neighbour links.
	Conn Connectivity
	// CellSize is the distance in metres between orthogonal neighbours.
	CellSize float64
	// NoData marks impassable cells (water, buildings). NaN cells are always
	// impassable.
	NoData float64
	// MaxGrade, if > 0, drops links steeper than this rise/run ratio.
	MaxGrade float64
	// OriginLat, OriginLon place cell (0,0); y grows north, x grows east.
	OriginLat, OriginLon float64
	// RoadClass is assigned to every link.
	RoadClass core.RoadClass
}

// DefaultGridOptions returns:
//   - Conn4, 30 m cells (a common DEM resolution)
//   - NoData −9999, no grade limit
//   - origin 0°N 0°E, RoadClassPath
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:      Conn4,
		CellSize:  30,
		NoData:    -9999,
		RoadClass: core.RoadClassPath,
	}
}

// GridGraph is an elevation raster, row y, column x.
type GridGraph struct {
	Width, Height   int
	Elevations      [][]float64
	opts            GridOptions
	neighborOffsets [][2]int
}

// Passable reports whether (x, y) is in bounds and carries data.
func (gg *GridGraph) Passable(x, y int) bool {
	if !gg.InBounds(x, y) {
		return false
	}
	v := gg.Elevations[y][x]

	return !math.IsNaN(v) && v != gg.opts.NoData
}
