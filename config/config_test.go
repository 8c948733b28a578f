package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopway/config"
	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/roundtrip"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())

	w, err := cfg.Search.BuildWeighting()
	require.NoError(t, err)
	assert.Equal(t, "hiking", w.Name())

	opts, err := cfg.Search.RoundTripOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 1)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Server, cfg.Server)
}

func TestLoad_Overlay(t *testing.T) {
	doc := `
graph:
  path: roads.json.zst
search:
  max_trips: 20
  similarity_threshold: 1.5
  road_preferences:
    residential: 0.25
  tolerance:
    mode: band
  weighting: shortest
  closure: hiking
  no_uturns: true
server:
  addr: 127.0.0.1:9000
  request_timeout: 5s
log:
  level: debug
  format: json
`
	p := filepath.Join(t.TempDir(), "loopway.yaml")
	require.NoError(t, os.WriteFile(p, []byte(doc), 0o600))

	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, "roads.json.zst", cfg.Graph.Path)
	assert.Equal(t, 20, cfg.Search.MaxTrips)
	assert.Equal(t, 1.5, cfg.Search.SimilarityThreshold)
	assert.Equal(t, roundtrip.ToleranceBand, cfg.Search.Tolerance.Mode)
	assert.Equal(t, 0.25, cfg.Search.RoadPreferences[core.RoadClassResidential])
	// untouched defaults survive the overlay
	assert.Equal(t, 1.0, cfg.Search.RoadPreferences[core.RoadClassFootway])
	assert.Equal(t, roundtrip.DefaultOptions().RevisitPenaltyAfter, cfg.Search.RevisitPenaltyAfter)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(8), cfg.Server.MaxConcurrent)

	w, err := cfg.Search.BuildWeighting()
	require.NoError(t, err)
	assert.Equal(t, "shortest", w.Name())
	opts, err := cfg.Search.RoundTripOptions()
	require.NoError(t, err)
	require.Len(t, opts, 2)
	o := roundtrip.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	require.NotNil(t, o.ClosureWeighting)
	assert.Equal(t, "turn|hiking", o.ClosureWeighting.Name())

	l, err := cfg.Log.Logger()
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":     "search:\n  bogus: 1\n",
		"bad weighting":   "search:\n  weighting: fastest\n",
		"bad closure":     "search:\n  closure: teleport\n",
		"bad option":      "search:\n  max_trips: -1\n",
		"bad level":       "log:\n  level: loud\n",
		"bad format":      "log:\n  format: xml\n",
		"server":          "server:\n  max_concurrent: 0\n",
		"no graph":        "graph:\n  grid:\n    rows: 0\n",
		"bad spacing":     "graph:\n  grid:\n    spacing: 0\n",
		"hiking negative": "search:\n  hiking:\n    track_factor: -1\n",
		"road class":      "search:\n  road_preferences:\n    autobahn: 1\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			assert.Error(t, config.Parse([]byte(doc), &cfg))
		})
	}
}

func TestParse_Empty(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, config.Parse(nil, &cfg))
	assert.Equal(t, config.DefaultConfig().Log, cfg.Log)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
