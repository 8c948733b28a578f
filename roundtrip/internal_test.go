package roundtrip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/spt"
	"github.com/katalvlaran/loopway/weighting"
)

func TestFrontier_OrderAndEviction(t *testing.T) {
	f := newFrontier(2)
	assert.True(t, f.push(1, 1))
	assert.True(t, f.push(2, 3))
	assert.True(t, f.push(3, 2)) // evicts 1
	assert.False(t, f.push(4, 0))
	assert.Equal(t, 2, f.len())
	assert.Equal(t, 2, f.evicted)

	id, ok := f.pop()
	require.True(t, ok)
	assert.Equal(t, spt.ID(2), id)
	id, ok = f.pop()
	require.True(t, ok)
	assert.Equal(t, spt.ID(3), id)
	_, ok = f.pop()
	assert.False(t, ok)
}

func TestFrontier_TiesPopOldestFirst(t *testing.T) {
	f := newFrontier(4)
	f.push(7, 1)
	f.push(8, 1)
	f.push(9, 1)
	for _, want := range []spt.ID{7, 8, 9} {
		id, _ := f.pop()
		assert.Equal(t, want, id)
	}
}

func TestFrontier_EqualScoreNewcomerIsDropped(t *testing.T) {
	f := newFrontier(1)
	f.push(1, 5)
	assert.False(t, f.push(2, 5))
	id, _ := f.pop()
	assert.Equal(t, spt.ID(1), id)
}

func TestRevisitPenalty(t *testing.T) {
	// before the midpoint: k=2, (1-1000/4000)=0.75, (1-1/4)=0.75
	assert.InDelta(t, -1.125, revisitPenalty(1000, 4000, 1, 4, 2, 4), 1e-12)
	// after: k=4, 0.25 · 0.5
	assert.InDelta(t, -0.5, revisitPenalty(3000, 4000, 2, 4, 2, 4), 1e-12)
	assert.InDelta(t, 0.0, revisitPenalty(4000, 4000, 0, 3, 2, 4), 1e-12)
	assert.NotPanics(t, func() { revisitPenalty(0, 0, 0, 0, 2, 4) })
}

func TestRoadScorer(t *testing.T) {
	rs := newRoadScorer(DefaultOptions())
	edge := func(attrs core.EdgeAttributes, d float64) core.EdgeState {
		return core.EdgeState{Edge: &core.Edge{Distance: d, Attributes: attrs}}
	}

	assert.Equal(t, 1.0, rs.contribution(edge(core.EdgeAttributes{RoadClass: core.RoadClassFootway}, 10)))
	assert.Equal(t, -2.0, rs.contribution(edge(core.EdgeAttributes{RoadClass: core.RoadClassMotorway}, 10)))
	assert.Equal(t, 0.0, rs.contribution(edge(core.EdgeAttributes{RoadClass: core.RoadClassResidential}, 10)))
	assert.Equal(t, 0.5, rs.contribution(edge(core.EdgeAttributes{TrackType: core.TrackTypeGrade2}, 10)))
	assert.Equal(t, 1.0, rs.contribution(edge(core.EdgeAttributes{
		RoadClass: core.RoadClassTrack,
		TrackType: core.TrackTypeGrade1,
	}, 10)))

	o := DefaultOptions()
	o.LengthWeighted = true
	assert.Equal(t, 10.0, newRoadScorer(o).contribution(edge(core.EdgeAttributes{RoadClass: core.RoadClassPath}, 10)))
}

func TestSearcher_Inspect(t *testing.T) {
	// chain 0 →e0→ 1 →e1→ 2 →e2→ 1 →e3→ 3
	a := spt.NewArena(8)
	id := a.NewRoot(0)
	var err error
	for i, node := range []int{1, 2, 1, 3} {
		id, err = a.New(id, i, node, float64(i+1))
		require.NoError(t, err)
	}
	s := &searcher{arena: a}
	cur := a.MustGet(id)
	step := func(edge, adj int) core.EdgeState {
		return core.EdgeState{Edge: &core.Edge{ID: edge}, Base: 3, Adj: adj}
	}

	anc, err := s.inspect(id, cur, step(9, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, anc.visits)
	assert.Equal(t, 3, anc.lastIndex)

	anc, err = s.inspect(id, cur, step(9, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, anc.visits)
	assert.Equal(t, 2, anc.lastIndex)

	anc, err = s.inspect(id, cur, step(9, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, anc.visits)
	assert.Equal(t, 0, anc.lastIndex)

	anc, err = s.inspect(id, cur, step(1, 2))
	require.NoError(t, err)
	assert.True(t, anc.repeat)

	// Same edge, other direction, is not a repeat.
	anc, err = s.inspect(id, cur, step(1, 1))
	require.NoError(t, err)
	assert.False(t, anc.repeat)
}

func TestSearcher_ChainsKeepVisitLimits(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]int{{0, 1}, {1, 2}, {3, 2}, {3, 5}, {5, 7}, {3, 4}, {4, 6}, {6, 7}, {6, 5}, {0, 7}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}
	type traversal struct{ edge, adj int }

	for _, req := range []Request{
		{From: 0, To: 2, MinDistance: 1, MaxDistance: 10},
		{From: 0, To: 0, MinDistance: 4, MaxDistance: 8},
	} {
		s := newSearcher(g, req, DefaultOptions())
		require.NoError(t, s.run())
		require.NotEmpty(t, s.closing)

		for _, id := range s.closing {
			chain, err := s.arena.Chain(id)
			require.NoError(t, err)
			visits := make(map[int]int)
			seen := make(map[traversal]bool)
			for _, en := range chain {
				visits[en.AdjNode]++
				if en.IsRoot() {
					continue
				}
				k := traversal{en.Edge, en.AdjNode}
				assert.False(t, seen[k], "%+v: edge %d toward %d repeated", req, en.Edge, en.AdjNode)
				seen[k] = true
			}
			for node, n := range visits {
				assert.LessOrEqual(t, n, 2, "%+v: node %d", req, node)
			}
		}

		leaves, err := s.closeLoops(weighting.NewShortest())
		require.NoError(t, err)
		assert.Len(t, leaves, len(s.closing)-s.stats.ClosureFailures-s.stats.RepeatedClosures)
		for _, leaf := range leaves {
			chain, err := s.arena.Chain(leaf)
			require.NoError(t, err)
			assert.Equal(t, req.To, chain[len(chain)-1].AdjNode)
			seen := make(map[traversal]bool)
			for _, en := range chain[1:] {
				k := traversal{en.Edge, en.AdjNode}
				assert.False(t, seen[k], "%+v: loop repeats edge %d toward %d", req, en.Edge, en.AdjNode)
				seen[k] = true
			}
		}
	}
}

func TestSearcher_ReusesTraversal(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 1)
	require.NoError(t, err)

	// 0 →e0→ 1 →e1→ 2
	a := spt.NewArena(8)
	id := a.NewRoot(0)
	id, err = a.New(id, 0, 1, 1)
	require.NoError(t, err)
	id, err = a.New(id, 1, 2, 2)
	require.NoError(t, err)
	s := &searcher{g: g, arena: a}

	back := []spt.Entry{{Edge: 1, AdjNode: 1}, {Edge: 0, AdjNode: 0}}
	reused, err := s.reusesTraversal(id, back)
	require.NoError(t, err)
	assert.False(t, reused)

	reused, err = s.reusesTraversal(id, []spt.Entry{{Edge: 1, AdjNode: 2}})
	require.NoError(t, err)
	assert.True(t, reused)

	leaf, err := s.splice(id, back)
	require.NoError(t, err)
	assert.Equal(t, 0, a.MustGet(leaf).AdjNode)
	assert.InDelta(t, 4.0, a.MustGet(leaf).Weight, 1e-12)
}

func TestOptions_DerivedSizes(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, 200, o.frontierCapacity(10))
	assert.Equal(t, 500, o.frontierCapacity(5000))
	assert.Equal(t, 2000, o.frontierCapacity(1_000_000))
	assert.Equal(t, 10_000, o.visitBudget(10))
	assert.Equal(t, 50_000, o.visitBudget(1000))

	o.FrontierCapacity = 3
	o.MaxVisitedNodes = 7
	assert.Equal(t, 3, o.frontierCapacity(5000))
	assert.Equal(t, 7, o.visitBudget(5000))
}
