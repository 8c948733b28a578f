// Package config loads the loopway YAML configuration: where the road graph
// comes from, how searches are tuned, how the HTTP server is limited and
// how logs are written.
//
// Load starts from DefaultConfig and overlays the file, so a config file
// only needs the keys it changes. Unknown keys are an error.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/loopway/roundtrip"
	"github.com/katalvlaran/loopway/weighting"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root document.
type Config struct {
	Graph  GraphConfig  `yaml:"graph"`
	Search SearchConfig `yaml:"search"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// GraphConfig selects the road graph. Path wins over Grid.
type GraphConfig struct {
	// Path is a roadio document, ".zst" for compressed.
	Path string `yaml:"path"`
	// Grid describes a synthetic street grid used when Path is empty.
	Grid GridConfig `yaml:"grid"`
}

// GridConfig is a synthetic rows×cols street grid.
type GridConfig struct {
	Rows    int     `yaml:"rows"`
	Cols    int     `yaml:"cols"`
	Spacing float64 `yaml:"spacing"`
	Seed    int64   `yaml:"seed"`
}

// SearchConfig carries the round-trip options plus the weightings by name.
type SearchConfig struct {
	roundtrip.Options `yaml:",inline"`

	// Weighting is "shortest" or "hiking".
	Weighting string `yaml:"weighting"`
	// Closure, if set, weights the way back independently of Weighting.
	Closure string `yaml:"closure"`
	// NoUTurns forbids u-turns on the way back.
	NoUTurns bool `yaml:"no_uturns"`
	// Hiking tunes the hiking weighting.
	Hiking weighting.HikingCoefficients `yaml:"hiking"`
}

// ServerConfig limits the HTTP API.
type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// RateLimit is requests per second across all clients; 0 disables.
	RateLimit float64 `yaml:"rate_limit"`
	Burst     int     `yaml:"burst"`
	// MaxConcurrent bounds searches running at once.
	MaxConcurrent int64 `yaml:"max_concurrent"`
	// MaxBatch bounds the requests of one batch call.
	MaxBatch int `yaml:"max_batch"`
	// BatchParallelism bounds parallel searches inside one batch.
	BatchParallelism int `yaml:"batch_parallelism"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns a configuration that serves a 20×20 synthetic grid
// on :8080 with hiking weighting.
func DefaultConfig() Config {
	return Config{
		Graph: GraphConfig{
			Grid: GridConfig{Rows: 20, Cols: 20, Spacing: 100, Seed: 1},
		},
		Search: SearchConfig{
			Options:   roundtrip.DefaultOptions(),
			Weighting: "hiking",
			Hiking:    weighting.DefaultHikingCoefficients(),
		},
		Server: ServerConfig{
			Addr:             ":8080",
			RequestTimeout:   30 * time.Second,
			RateLimit:        20,
			Burst:            40,
			MaxConcurrent:    8,
			MaxBatch:         32,
			BatchParallelism: 4,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the YAML file at path over DefaultConfig and validates the
// result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse strictly decodes data over cfg and validates it.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %w", err)
	}

	return cfg.Validate()
}

// Validate checks every section.
func (c Config) Validate() error {
	if c.Graph.Path == "" && (c.Graph.Grid.Rows < 1 || c.Graph.Grid.Cols < 1) {
		return fmt.Errorf("%w: graph needs a path or a grid of at least 1×1", ErrInvalidConfig)
	}
	if c.Graph.Path == "" && !(c.Graph.Grid.Spacing > 0) {
		return fmt.Errorf("%w: grid spacing must be positive", ErrInvalidConfig)
	}
	if err := c.Search.Options.Validate(); err != nil {
		return fmt.Errorf("%w: search: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Search.weighting(c.Search.Weighting); err != nil {
		return err
	}
	if c.Search.Closure != "" {
		if _, err := c.Search.weighting(c.Search.Closure); err != nil {
			return err
		}
	}
	if c.Server.RateLimit < 0 || c.Server.Burst < 0 || c.Server.MaxConcurrent < 1 ||
		c.Server.MaxBatch < 1 || c.Server.BatchParallelism < 0 || c.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: server limits", ErrInvalidConfig)
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// BuildWeighting returns the search weighting.
func (s SearchConfig) BuildWeighting() (weighting.Weighting, error) {
	return s.weighting(s.Weighting)
}

// RoundTripOptions returns the options for roundtrip searches: the loaded
// Options with the closure weighting resolved.
func (s SearchConfig) RoundTripOptions() ([]roundtrip.Option, error) {
	opts := []roundtrip.Option{roundtrip.WithOptions(s.Options)}
	if s.Closure == "" && !s.NoUTurns {
		return opts, nil
	}
	name := s.Closure
	if name == "" {
		name = s.Weighting
	}
	w, err := s.weighting(name)
	if err != nil {
		return nil, err
	}
	if s.NoUTurns {
		w = weighting.NewTurnWeighting(w, weighting.NewDefaultTurnCostHandler(weighting.NewTurnCostTable()))
	}

	return append(opts, roundtrip.WithClosureWeighting(w)), nil
}

func (s SearchConfig) weighting(name string) (weighting.Weighting, error) {
	switch strings.ToLower(name) {
	case "shortest":
		return weighting.NewShortest(), nil
	case "hiking":
		if s.Hiking.TrackFactor < 0 {
			return nil, fmt.Errorf("%w: hiking track factor %v", ErrInvalidConfig, s.Hiking.TrackFactor)
		}
		for rc, f := range s.Hiking.ClassFactors {
			if f < 0 {
				return nil, fmt.Errorf("%w: hiking factor %v for %s", ErrInvalidConfig, f, rc)
			}
		}
		return weighting.NewHiking(s.Hiking), nil
	default:
		return nil, fmt.Errorf("%w: unknown weighting %q", ErrInvalidConfig, name)
	}
}

// Logger builds the round-trip logger described by the section.
func (l LogConfig) Logger() (*roundtrip.Logger, error) {
	lvl, err := l.level()
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(l.Format, "json") {
		return roundtrip.NewJSONLogger(lvl), nil
	}

	return roundtrip.NewTextLogger(lvl), nil
}

func (l LogConfig) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalidConfig, l.Level)
	}

	return lvl, nil
}
