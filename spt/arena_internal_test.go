package spt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAncestors_CorruptedLinkStops rewires a parent to point forward and
// checks the walk reports the corruption instead of cycling.
func TestAncestors_CorruptedLinkStops(t *testing.T) {
	a := NewArena(3)
	root := a.NewRoot(0)
	c1, err := a.New(root, 0, 1, 1)
	require.NoError(t, err)
	c2, err := a.New(c1, 1, 2, 2)
	require.NoError(t, err)

	a.entries[c1].Parent = c2 // cycle c2 -> c1 -> c2

	var got error
	steps := 0
	for _, err := range a.Ancestors(c2) {
		steps++
		if err != nil {
			got = err
		}
	}
	assert.ErrorIs(t, got, ErrCorruptedAncestry)
	assert.LessOrEqual(t, steps, a.Len())

	_, err = a.Chain(c2)
	assert.ErrorIs(t, err, ErrCorruptedAncestry)
}
