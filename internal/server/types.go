package server

import (
	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/roundtrip"
)

// RoundTripRequest is the body of POST /v1/roundtrip.
type RoundTripRequest struct {
	roundtrip.Request
	// MaxResults caps the returned loops; 0 keeps the server default.
	MaxResults int `json:"max_results,omitempty"`
	// Geometry asks for the route points.
	Geometry bool `json:"geometry,omitempty"`
}

// BatchRequest is the body of POST /v1/roundtrip/batch.
type BatchRequest struct {
	Requests []roundtrip.Request `json:"requests"`
}

// RouteResponse is one loop.
type RouteResponse struct {
	Nodes          []int        `json:"nodes"`
	Edges          []int        `json:"edges"`
	Distance       float64      `json:"distance"`
	Weight         float64      `json:"weight"`
	Ascent         float64      `json:"ascent"`
	Descent        float64      `json:"descent"`
	ElevationScore float64      `json:"elevation_score"`
	Points         [][3]float64 `json:"points,omitempty"`
}

// RoundTripResponse answers one search.
type RoundTripResponse struct {
	RequestID string          `json:"request_id"`
	Routes    []RouteResponse `json:"routes"`
	Stats     roundtrip.Stats `json:"stats"`
}

// BatchItem is one entry of a batch answer; Error replaces Routes when that
// search failed.
type BatchItem struct {
	Request roundtrip.Request `json:"request"`
	Routes  []RouteResponse   `json:"routes,omitempty"`
	Stats   *roundtrip.Stats  `json:"stats,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// BatchResponse answers a batch.
type BatchResponse struct {
	RequestID string      `json:"request_id"`
	Results   []BatchItem `json:"results"`
}

// GraphResponse describes the served graph.
type GraphResponse struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"error"`
}

func toRoutes(g *core.Graph, routes []roundtrip.Route, geometry bool) []RouteResponse {
	out := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		rr := RouteResponse{
			Nodes:          r.Path.Nodes,
			Edges:          r.Path.EdgeIDs(),
			Distance:       r.Path.Distance,
			Weight:         r.Path.Weight,
			Ascent:         r.Profile.Ascent,
			Descent:        r.Profile.Descent,
			ElevationScore: r.ElevationScore,
		}
		if geometry {
			for _, p := range r.Path.Points(g) {
				rr.Points = append(rr.Points, [3]float64{p.Lat, p.Lon, p.Elevation})
			}
		}
		out = append(out, rr)
	}

	return out
}
