// Package gridgraph turns an elevation raster (DEM) into a walkable road
// graph and serves the raster as an elevation source.
//
// Each passable cell becomes a node at its WGS84 position with the cell's
// elevation; neighbouring passable cells (4- or 8-connectivity) are linked
// with undirected path edges whose track grade follows the slope. Cells
// equal to NoData or NaN are impassable. Links steeper than MaxGrade are
// dropped.
//
// ConnectedComponents and LargestComponent help pick an origin that can
// actually produce loops. Provider samples the raster along any graph's
// edges, so loops on a road network from another source can still be ranked
// by terrain.
//
//	gg, err := gridgraph.NewGridGraph(dem, gridgraph.DefaultGridOptions())
//	g, err := gg.ToCoreGraph()
//	paths, err := roundtrip.CalcPaths(g, weighting.NewShortest(), home, home, 3000, 5000)
package gridgraph
