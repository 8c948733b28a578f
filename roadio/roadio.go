// Package roadio reads and writes road graphs as JSON documents, optionally
// zstd-compressed.
//
// Layout (version 1):
//
//	{
//	  "version": 1,
//	  "directed": false, "multi_edges": false, "loops": false,
//	  "nodes": [{"id": 0, "lat": 52.5, "lon": 13.4, "ele": 34}],
//	  "edges": [{"id": 0, "from": 0, "to": 1, "distance": 120.5,
//	             "directed": false, "road_class": "residential",
//	             "track_type": "missing", "environment": "road",
//	             "geometry": [[52.51, 13.41, 35]]}]
//	}
//
// Edges are stored in ID order and must be numbered 0..n-1 so a loaded graph
// keeps the edge IDs of the saved one. Decode detects zstd input by its
// magic number; Save compresses when the file name ends in ".zst".
package roadio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/loopway/core"
)

// Version is the document version written by Encode.
const Version = 1

var (
	// ErrVersion is returned for documents of an unknown version.
	ErrVersion = errors.New("roadio: unsupported document version")

	// ErrFormat is returned for structurally invalid documents.
	ErrFormat = errors.New("roadio: malformed document")
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

type document struct {
	Version    int    `json:"version"`
	Directed   bool   `json:"directed"`
	MultiEdges bool   `json:"multi_edges"`
	Loops      bool   `json:"loops"`
	Nodes      []node `json:"nodes"`
	Edges      []edge `json:"edges"`
}

type node struct {
	ID  int     `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
	Ele float64 `json:"ele"`
}

type edge struct {
	ID       int          `json:"id"`
	From     int          `json:"from"`
	To       int          `json:"to"`
	Distance float64      `json:"distance"`
	Directed bool         `json:"directed"`
	Geometry [][3]float64 `json:"geometry,omitempty"`
	core.EdgeAttributes
}

// Encode writes g to w, zstd-compressed when compress is set.
func Encode(w io.Writer, g *core.Graph, compress bool) error {
	doc := toDocument(g)
	if !compress {
		return json.NewEncoder(w).Encode(doc)
	}

	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("roadio: zstd writer: %w", err)
	}
	if err := json.NewEncoder(zw).Encode(doc); err != nil {
		zw.Close()
		return fmt.Errorf("roadio: encode: %w", err)
	}

	return zw.Close()
}

// Decode reads a graph from r, plain or zstd-compressed.
func Decode(r io.Reader) (*core.Graph, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(zstdMagic))

	var src io.Reader = br
	if bytes.Equal(head, zstdMagic) {
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("roadio: zstd reader: %w", err)
		}
		defer zr.Close()
		src = zr
	}

	var doc document
	if err := json.NewDecoder(src).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	return fromDocument(doc)
}

// Save writes g to the file at path; a ".zst" suffix selects compression.
func Save(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(f)
	if err = Encode(bw, g, strings.HasSuffix(path, ".zst")); err != nil {
		return err
	}

	return bw.Flush()
}

// Load reads the graph file at path.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

func toDocument(g *core.Graph) document {
	doc := document{
		Version:    Version,
		Directed:   g.Directed(),
		MultiEdges: g.Multigraph(),
		Loops:      g.Looped(),
	}
	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		doc.Nodes = append(doc.Nodes, node{ID: id, Lat: n.Lat, Lon: n.Lon, Ele: n.Elevation})
	}
	for _, e := range g.Edges() {
		out := edge{
			ID:             e.ID,
			From:           e.From,
			To:             e.To,
			Distance:       e.Distance,
			Directed:       e.Directed,
			EdgeAttributes: e.Attributes,
		}
		for _, p := range e.Geometry {
			out.Geometry = append(out.Geometry, [3]float64{p.Lat, p.Lon, p.Elevation})
		}
		doc.Edges = append(doc.Edges, out)
	}

	return doc
}

func fromDocument(doc document) (*core.Graph, error) {
	if doc.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, doc.Version)
	}
	opts := []core.GraphOption{core.WithDirected(doc.Directed)}
	if doc.MultiEdges {
		opts = append(opts, core.WithMultiEdges())
	}
	if doc.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for _, n := range doc.Nodes {
		if err := g.AddNode(n.ID, core.WithCoordinates(n.Lat, n.Lon, n.Ele)); err != nil {
			return nil, fmt.Errorf("%w: node %d: %v", ErrFormat, n.ID, err)
		}
	}
	for i, e := range doc.Edges {
		if e.ID != i {
			return nil, fmt.Errorf("%w: edge at position %d has id %d", ErrFormat, i, e.ID)
		}
		geom := make([]core.Point, len(e.Geometry))
		for k, p := range e.Geometry {
			geom[k] = core.Point{Lat: p[0], Lon: p[1], Elevation: p[2]}
		}
		if _, err := g.AddEdge(e.From, e.To, e.Distance,
			core.WithEdgeDirected(e.Directed),
			core.WithAttributes(e.EdgeAttributes),
			core.WithGeometry(geom...),
		); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrFormat, e.ID, err)
		}
	}

	return g, nil
}
