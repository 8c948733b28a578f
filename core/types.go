// Package core defines the road network Graph, its Node and Edge types,
// functional options and sentinel errors.
//
// Errors:
//
//	ErrNodeNotFound        - requested node does not exist.
//	ErrDuplicateNode       - AddNode called twice for the same ID.
//	ErrEdgeNotFound        - requested edge does not exist or does not touch a node.
//	ErrNegativeDistance    - edge distance is negative or NaN.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates AddNode was called for an existing node ID.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge,
	// or an edge that is not incident to the requested node.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeDistance indicates an edge distance below zero (or NaN).
	ErrNegativeDistance = errors.New("core: edge distance must be non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Point is one geometry sample: WGS84 coordinates plus elevation in meters.
type Point struct {
	Lat       float64
	Lon       float64
	Elevation float64
}

// Node is a junction (tower node) of the road network.
type Node struct {
	// ID is the caller-chosen identifier of this node.
	ID int

	// Point holds the coordinates and the elevation of the junction.
	Point
}

// Edge is a road segment between two tower nodes.
//
// Distance is the travel length in meters. Geometry holds the pillar points
// strictly between From and To in From→To order; the tower points are taken
// from the nodes themselves.
type Edge struct {
	ID         int
	From       int
	To         int
	Distance   float64
	Attributes EdgeAttributes
	Directed   bool
	Geometry   []Point
}

// Other returns the endpoint opposite to node, or -1 when node is not incident.
func (e *Edge) Other(node int) int {
	switch node {
	case e.From:
		return e.To
	case e.To:
		return e.From
	default:
		return -1
	}
}

// EdgeState is a directed traversal view of an Edge: the edge walked from
// Base to Adj. Reverse is true when an undirected edge is walked To→From.
type EdgeState struct {
	Edge    *Edge
	Base    int
	Adj     int
	Reverse bool
}

// ID is shorthand for s.Edge.ID.
func (s EdgeState) ID() int { return s.Edge.ID }

// Distance is shorthand for s.Edge.Distance.
func (s EdgeState) Distance() float64 { return s.Edge.Distance }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for new edges.
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithMultiEdges permits parallel edges between the same nodes.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// NodeOption configures a node when added.
type NodeOption func(*Node)

// WithCoordinates sets latitude, longitude and elevation of a node.
func WithCoordinates(lat, lon, ele float64) NodeOption {
	return func(n *Node) { n.Point = Point{Lat: lat, Lon: lon, Elevation: ele} }
}

// WithElevation sets only the elevation of a node.
func WithElevation(ele float64) NodeOption {
	return func(n *Node) { n.Elevation = ele }
}

// EdgeOption configures an edge when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the graph default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// WithAttributes replaces all road attributes of the edge.
func WithAttributes(attrs EdgeAttributes) EdgeOption {
	return func(e *Edge) { e.Attributes = attrs }
}

// WithRoadClass sets the road class of the edge.
func WithRoadClass(rc RoadClass) EdgeOption {
	return func(e *Edge) { e.Attributes.RoadClass = rc }
}

// WithTrackType sets the track grade of the edge.
func WithTrackType(tt TrackType) EdgeOption {
	return func(e *Edge) { e.Attributes.TrackType = tt }
}

// WithEnvironment sets the road environment of the edge.
func WithEnvironment(env RoadEnvironment) EdgeOption {
	return func(e *Edge) { e.Attributes.Environment = env }
}

// WithGeometry sets the pillar points of the edge in From→To order.
// The slice is copied.
func WithGeometry(points ...Point) EdgeOption {
	return func(e *Edge) {
		e.Geometry = append([]Point(nil), points...)
	}
}

// Graph is the in-memory road network.
//
// muNodes protects nodes and nodeOrder; muEdges protects edges and adjacency.
// Lock order is muNodes -> muEdges.
type Graph struct {
	muNodes sync.RWMutex
	muEdges sync.RWMutex

	directed   bool
	allowMulti bool
	allowLoops bool

	nodes     map[int]*Node
	nodeOrder []int // insertion order, for deterministic Nodes()

	edges     []*Edge       // edge ID == index
	adjacency map[int][]int // node -> incident traversable edge IDs, ascending
}

// NewGraph creates an empty Graph. By default edges are undirected, and
// neither loops nor multi-edges are allowed.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[int]*Node),
		adjacency: make(map[int][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the default directedness of new edges.
func (g *Graph) Directed() bool { return g.directed }

// Multigraph reports whether parallel edges are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }
