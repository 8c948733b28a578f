package elevation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/elevation"
	"github.com/katalvlaran/loopway/path"
	"github.com/katalvlaran/loopway/spt"
)

func TestProfileFromSamples(t *testing.T) {
	cases := []struct {
		name    string
		samples []float64
		want    elevation.Profile
		score   float64
	}{
		{"empty", nil, elevation.Profile{}, 1},
		{"single", []float64{5}, elevation.Profile{Start: 5, Max: 5, Min: 5, Samples: 1}, 1},
		{"flat", []float64{3, 3, 3}, elevation.Profile{Start: 3, Max: 3, Min: 3, Samples: 3}, 1},
		{
			"one climb", []float64{0, 10, 0},
			elevation.Profile{Start: 0, Max: 10, Min: 0, Ascent: 10, Descent: 10, Samples: 3}, 0,
		},
		{
			"rolling", []float64{0, 5, 0, 5, 0},
			elevation.Profile{Start: 0, Max: 5, Min: 0, Ascent: 10, Descent: 10, Samples: 5}, 0.5,
		},
		{
			"start on top", []float64{10, 0, 10},
			elevation.Profile{Start: 10, Max: 10, Min: 0, Ascent: 10, Descent: 10, Samples: 3}, 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := elevation.ProfileFromSamples(tc.samples)
			assert.Equal(t, tc.want, got)
			assert.InDelta(t, tc.score, got.Score(), 1e-12)
		})
	}
}

func TestProfileOf_Path(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(0, core.WithElevation(100)))
	require.NoError(t, g.AddNode(1, core.WithElevation(120)))
	require.NoError(t, g.AddNode(2, core.WithElevation(110)))
	a, _ := g.AddEdge(0, 1, 10, core.WithGeometry(core.Point{Elevation: 130}))
	b, _ := g.AddEdge(1, 2, 10)

	arena := spt.NewArena(3)
	root := arena.NewRoot(0)
	e1, _ := arena.New(root, a, 1, 10)
	e2, _ := arena.New(e1, b, 2, 20)
	p, err := path.Extract(g, nil, arena, e2)
	require.NoError(t, err)

	prov := elevation.NewGraphProvider(g)
	assert.Equal(t, []float64{100, 130, 120, 110}, elevation.Samples(p, prov))

	pr := elevation.ProfileOf(p, prov)
	assert.Equal(t, 30.0, pr.Ascent)
	assert.Equal(t, 20.0, pr.Descent)
	assert.Equal(t, 130.0, pr.Max)
	assert.InDelta(t, 0.0, pr.Score(), 1e-12)
}
