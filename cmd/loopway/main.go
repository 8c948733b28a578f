// Command loopway finds round-trip routes on a road graph, once from the
// command line or continuously as an HTTP service.
//
//	loopway --graph roads.json.zst --from 42 --min 8000 --max 10000
//	loopway --dem terrain.txt --cell-size 30 --min 3000 --max 5000 --json
//	loopway --config loopway.yaml --serve
//
// Without --graph or --dem the road graph is a synthetic street grid as
// configured under graph.grid.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/loopway/builder"
	"github.com/katalvlaran/loopway/config"
	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/gridgraph"
	"github.com/katalvlaran/loopway/internal/server"
	"github.com/katalvlaran/loopway/roadio"
	"github.com/katalvlaran/loopway/roundtrip"
)

const version = "0.3.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	configPath string
	graphPath  string
	demPath    string
	cellSize   float64
	savePath   string
	from, to   int
	min, max   float64
	maxResults int
	json       bool
	serve      bool
	version    bool
	help       bool
}

// loaded is the graph plus what the DEM path knows about it.
type loaded struct {
	graph  *core.Graph
	grid   *gridgraph.GridGraph
	origin int
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("loopway", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	var o options
	fs.StringVarP(&o.configPath, "config", "c", "", "YAML configuration file")
	fs.StringVarP(&o.graphPath, "graph", "g", "", "Road graph document (.json or .json.zst); overrides graph.path")
	fs.StringVar(&o.demPath, "dem", "", "Elevation raster (whitespace-separated rows) to walk on instead of a road graph")
	fs.Float64Var(&o.cellSize, "cell-size", 30, "Raster cell size in metres (with --dem)")
	fs.StringVar(&o.savePath, "save", "", "Write the loaded graph to this file and continue")
	fs.IntVarP(&o.from, "from", "f", 0, "Origin node")
	fs.IntVarP(&o.to, "to", "t", 0, "Destination node (default: the origin)")
	fs.Float64Var(&o.min, "min", 3000, "Minimum loop length in metres")
	fs.Float64Var(&o.max, "max", 5000, "Maximum loop length in metres")
	fs.IntVarP(&o.maxResults, "max-results", "n", 0, "Return at most this many loops (0: all)")
	fs.BoolVarP(&o.json, "json", "j", false, "Print the result as JSON")
	fs.BoolVar(&o.serve, "serve", false, "Run the HTTP API instead of a single search")
	fs.BoolVarP(&o.version, "version", "V", false, "Print version information")
	fs.BoolVarP(&o.help, "help", "h", false, "Show this help message")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "loopway %s: round-trip route generation\n\nUsage:\n  loopway [flags]\n\nFlags:\n", version)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if o.help {
		fs.Usage()
		return 0
	}
	if o.version {
		fmt.Fprintf(stdout, "loopway %s\n", version)
		return 0
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if o.graphPath != "" {
		cfg.Graph.Path = o.graphPath
	}
	logger, err := cfg.Log.Logger()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	ld, err := loadGraph(cfg.Graph, o.demPath, o.cellSize)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger.Info("road graph ready", "nodes", ld.graph.NodeCount(), "edges", ld.graph.EdgeCount())
	if o.savePath != "" {
		if err := roadio.Save(o.savePath, ld.graph); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	w, err := cfg.Search.BuildWeighting()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	opts, err := cfg.Search.RoundTripOptions()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if ld.grid != nil {
		opts = append(opts, roundtrip.WithElevationProvider(ld.grid.Provider(ld.graph)))
	}

	if o.serve {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		srv := server.New(ld.graph, w, opts, cfg.Server, logger, reg)
		if err := srv.Run(ctx); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	from := o.from
	if !fs.Changed("from") && ld.grid != nil {
		from = ld.origin
	}
	to := from
	if fs.Changed("to") {
		to = o.to
	}
	if o.maxResults > 0 {
		opts = append(opts, roundtrip.WithMaxResults(o.maxResults))
	}
	opts = append(opts, roundtrip.WithLogger(logger))

	res, err := roundtrip.SearchContext(ctx, ld.graph, w, roundtrip.Request{
		From: from, To: to, MinDistance: o.min, MaxDistance: o.max,
	}, opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := printResult(stdout, res, o.json); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	return 0
}

func loadGraph(gc config.GraphConfig, demPath string, cellSize float64) (loaded, error) {
	switch {
	case demPath != "":
		raster, err := readRaster(demPath)
		if err != nil {
			return loaded{}, err
		}
		opts := gridgraph.DefaultGridOptions()
		opts.CellSize = cellSize
		gg, err := gridgraph.NewGridGraph(raster, opts)
		if err != nil {
			return loaded{}, fmt.Errorf("%s: %w", demPath, err)
		}
		g, err := gg.ToCoreGraph()
		if err != nil {
			return loaded{}, err
		}
		comp := gg.LargestComponent()
		if len(comp) == 0 {
			return loaded{}, fmt.Errorf("%s: no passable cell", demPath)
		}
		return loaded{graph: g, grid: gg, origin: comp[len(comp)/2]}, nil

	case gc.Path != "":
		g, err := roadio.Load(gc.Path)
		return loaded{graph: g}, err

	default:
		grid := gc.Grid
		w, h := float64(grid.Cols-1)*grid.Spacing, float64(grid.Rows-1)*grid.Spacing
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{
			builder.WithSeed(grid.Seed),
			builder.WithSpacing(grid.Spacing),
			builder.WithAttributeFn(builder.RandomRoadClasses(
				core.RoadClassResidential, core.RoadClassFootway, core.RoadClassTrack,
				core.RoadClassPath, core.RoadClassSecondary,
			)),
			builder.WithElevationFn(builder.Hill(w/2, h/2, 80, max(w, h, grid.Spacing)/3)),
		}, builder.Grid(grid.Rows, grid.Cols))
		return loaded{graph: g}, err
	}
}

// readRaster parses rows of whitespace-separated elevations; blank lines and
// lines starting with '#' are skipped.
func readRaster(p string) ([][]float64, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows [][]float64
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]float64, len(fields))
		for i, fld := range fields {
			v, err := strconv.ParseFloat(fld, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", p, line, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", p, gridgraph.ErrEmptyGrid)
	}

	return rows, nil
}

type jsonRoute struct {
	Nodes          []int   `json:"nodes"`
	Distance       float64 `json:"distance"`
	Weight         float64 `json:"weight"`
	Ascent         float64 `json:"ascent"`
	Descent        float64 `json:"descent"`
	ElevationScore float64 `json:"elevation_score"`
}

func printResult(out io.Writer, res *roundtrip.Result, asJSON bool) error {
	if asJSON {
		doc := struct {
			Routes []jsonRoute     `json:"routes"`
			Stats  roundtrip.Stats `json:"stats"`
		}{Routes: []jsonRoute{}, Stats: res.Stats}
		for _, r := range res.Routes {
			doc.Routes = append(doc.Routes, jsonRoute{
				Nodes:          r.Path.Nodes,
				Distance:       r.Path.Distance,
				Weight:         r.Path.Weight,
				Ascent:         r.Profile.Ascent,
				Descent:        r.Profile.Descent,
				ElevationScore: r.ElevationScore,
			})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	if len(res.Routes) == 0 {
		_, err := fmt.Fprintf(out, "no loop found (%s)\n", res.Stats.Termination)
		return err
	}
	for i, r := range res.Routes {
		if _, err := fmt.Fprintf(out, "#%d %.0f m, +%.0f/-%.0f m, score %.3f: %v\n",
			i+1, r.Path.Distance, r.Profile.Ascent, r.Profile.Descent, r.ElevationScore, r.Path.Nodes); err != nil {
			return err
		}
	}

	return nil
}
