package weighting_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/weighting"
)

func state(t *testing.T, g *core.Graph, id, adj int) core.EdgeState {
	t.Helper()
	s, err := g.EdgeState(id, adj)
	require.NoError(t, err)

	return s
}

func TestHiking_Coefficients(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	add := func(opts ...core.EdgeOption) int {
		id, err := g.AddEdge(0, 1, 100, opts...)
		require.NoError(t, err)
		return id
	}
	cases := []struct {
		name string
		id   int
		want float64
	}{
		{"ferry", add(core.WithEnvironment(core.EnvironmentFerry)), math.Inf(1)},
		{"motorway", add(core.WithRoadClass(core.RoadClassMotorway)), math.Inf(1)},
		{"trunk", add(core.WithRoadClass(core.RoadClassTrunk)), math.Inf(1)},
		{"primary", add(core.WithRoadClass(core.RoadClassPrimary)), 200},
		{"secondary", add(core.WithRoadClass(core.RoadClassSecondary)), 150},
		{"tertiary", add(core.WithRoadClass(core.RoadClassTertiary)), 150},
		{"footway", add(core.WithRoadClass(core.RoadClassFootway)), 50},
		{"path", add(core.WithRoadClass(core.RoadClassPath)), 50},
		{"pedestrian", add(core.WithRoadClass(core.RoadClassPedestrian)), 50},
		{"graded track", add(core.WithRoadClass(core.RoadClassTrack), core.WithTrackType(core.TrackTypeGrade2)), 50},
		{"ungraded track", add(core.WithRoadClass(core.RoadClassTrack)), 100},
		{"residential", add(core.WithRoadClass(core.RoadClassResidential)), 100},
	}

	h := weighting.NewHiking(weighting.DefaultHikingCoefficients())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, h.CalcEdgeWeight(state(t, g, tc.id, 1)))
			assert.Equal(t, tc.want, h.CalcEdgeWeight(state(t, g, tc.id, 0)), "direction independent")
		})
	}
	assert.Equal(t, "hiking", h.Name())
}

func TestHiking_PanicsOnNegativeFactor(t *testing.T) {
	c := weighting.DefaultHikingCoefficients()
	c.ClassFactors[core.RoadClassService] = -1
	assert.Panics(t, func() { weighting.NewHiking(c) })
}

func TestDefaultTurnCostHandler(t *testing.T) {
	table := weighting.NewTurnCostTable()
	table.AddRestriction(1, 5, 2)
	table.AddTurnCost(1, 5, 3, 12)

	h := weighting.NewDefaultTurnCostHandler(table)
	assert.Equal(t, 0.0, h.CalcTurnWeight(weighting.NoEdge, 5, 2))
	assert.Equal(t, 0.0, h.CalcTurnWeight(1, 5, weighting.NoEdge))
	assert.True(t, math.IsInf(h.CalcTurnWeight(1, 5, 1), 1), "u-turn defaults to forbidden")
	assert.True(t, math.IsInf(h.CalcTurnWeight(1, 5, 2), 1))
	assert.Equal(t, 12.0, h.CalcTurnWeight(1, 5, 3))
	assert.Equal(t, 0.0, h.CalcTurnWeight(1, 5, 4))

	assert.Equal(t, int64(math.MaxInt64), h.CalcTurnMillis(1, 5, 2))
	assert.Equal(t, int64(12000), h.CalcTurnMillis(1, 5, 3))

	h.SetDefaultUTurnCost(40)
	assert.Equal(t, 40.0, h.CalcTurnWeight(1, 5, 1))
}

func TestJunctionWiseTurnCostHandler(t *testing.T) {
	table := weighting.NewTurnCostTable()
	table.SetUTurnCost(5, 30)
	table.AddTurnCost(7, 6, 7, 3)

	h := weighting.NewJunctionWiseTurnCostHandler(table)
	assert.Equal(t, 30.0, h.CalcTurnWeight(1, 5, 1), "junction override")
	assert.Equal(t, 3.0, h.CalcTurnWeight(7, 6, 7), "explicit u-turn entry")
	assert.True(t, math.IsInf(h.CalcTurnWeight(1, 9, 1), 1), "falls back to the default")

	h.SetDefaultUTurnCost(60)
	assert.Equal(t, 60.0, h.CalcTurnWeight(1, 9, 1))
}

func TestTurnWeighting_Calc(t *testing.T) {
	g := core.NewGraph()
	a, _ := g.AddEdge(0, 1, 10)
	b, _ := g.AddEdge(1, 2, 20)

	table := weighting.NewTurnCostTable()
	table.AddTurnCost(a, 1, b, 5)
	tw := weighting.NewTurnWeighting(weighting.NewShortest(), weighting.NewDefaultTurnCostHandler(table))

	sb := state(t, g, b, 2)
	assert.Equal(t, 25.0, weighting.Calc(tw, sb, a))
	assert.Equal(t, 20.0, weighting.Calc(tw, sb, weighting.NoEdge))
	assert.Equal(t, "turn|shortest", tw.Name())

	sa := state(t, g, a, 0)
	assert.True(t, math.IsInf(weighting.Calc(tw, sa, a), 1), "u-turn")

	assert.Equal(t, 20.0, weighting.Calc(weighting.NewShortest(), sb, a))
	assert.Panics(t, func() { weighting.NewTurnWeighting(nil, nil) })
}

func TestMillis(t *testing.T) {
	assert.Equal(t, int64(1500), weighting.Millis(1.5))
	assert.Equal(t, int64(math.MaxInt64), weighting.Millis(math.Inf(1)))
}
