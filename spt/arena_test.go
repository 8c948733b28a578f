package spt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopway/spt"
)

func TestArena_ChainIndicesAndParents(t *testing.T) {
	a := spt.NewArena(4)
	root := a.NewRoot(7)

	c1, err := a.New(root, 0, 8, 10)
	require.NoError(t, err)
	a.SetScore(c1, 2.5)
	c2, err := a.New(c1, 1, 9, 25)
	require.NoError(t, err)

	e2, ok := a.Get(c2)
	require.True(t, ok)
	assert.Equal(t, 2, e2.Index)
	assert.Equal(t, c1, e2.Parent)
	assert.Equal(t, 2.5, e2.Score, "child inherits the parent score")

	chain, err := a.Chain(c2)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.True(t, chain[0].IsRoot())
	assert.Equal(t, spt.NoEdge, chain[0].Edge)
	assert.Equal(t, []int{7, 8, 9}, []int{chain[0].AdjNode, chain[1].AdjNode, chain[2].AdjNode})
	for i, e := range chain {
		assert.Equal(t, i, e.Index)
	}
}

func TestArena_AncestorsRestartable(t *testing.T) {
	a := spt.NewArena(0)
	cur := a.NewRoot(0)
	for i := 1; i <= 5; i++ {
		var err error
		cur, err = a.New(cur, i, i, float64(i))
		require.NoError(t, err)
	}

	walk := func() []int {
		var nodes []int
		for e, err := range a.Ancestors(cur) {
			require.NoError(t, err)
			nodes = append(nodes, e.AdjNode)
		}
		return nodes
	}
	assert.Equal(t, []int{4, 3, 2, 1, 0}, walk())
	assert.Equal(t, walk(), walk())

	// early break
	n := 0
	for range a.Ancestors(cur) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestArena_UnknownIDs(t *testing.T) {
	a := spt.NewArena(1)
	_, err := a.New(3, 0, 1, 1)
	assert.ErrorIs(t, err, spt.ErrCorruptedAncestry)

	_, err = a.Chain(0)
	assert.ErrorIs(t, err, spt.ErrCorruptedAncestry)

	_, ok := a.Get(-1)
	assert.False(t, ok)

	a.NewRoot(1)
	a.Reset()
	assert.Equal(t, 0, a.Len())
}
