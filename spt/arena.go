package spt

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrCorruptedAncestry is returned when an ancestry walk meets a parent link
// that cannot belong to a well-formed chain.
var ErrCorruptedAncestry = errors.New("spt: corrupted ancestry chain")

// ID addresses an Entry inside its Arena.
type ID int32

const (
	// NoEntry is the parent of a root entry.
	NoEntry ID = -1

	// NoEdge is the edge of a root entry.
	NoEdge = -1
)

// Entry is one node of a search tree.
type Entry struct {
	// Edge is the edge used to reach AdjNode, NoEdge for a root.
	Edge int
	// AdjNode is the node this entry stands on.
	AdjNode int
	// Weight is the cumulative distance or cost from the root.
	Weight float64
	// Score is the heuristic desirability of this partial path.
	Score float64
	// Index is the 1-based position along the path; the root has 0.
	Index int
	// Parent is the previous entry along the path, NoEntry for a root.
	Parent ID
}

// IsRoot reports whether e starts a chain.
func (e Entry) IsRoot() bool { return e.Parent == NoEntry }

// Arena owns all entries of one search.
// An Arena is not safe for concurrent use.
type Arena struct {
	entries []Entry
}

// NewArena returns an arena with room for capacity entries before growing.
func NewArena(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}

	return &Arena{entries: make([]Entry, 0, capacity)}
}

// Len returns the number of entries allocated so far.
func (a *Arena) Len() int { return len(a.entries) }

// NewRoot allocates a root entry standing on node.
func (a *Arena) NewRoot(node int) ID {
	id := ID(len(a.entries))
	a.entries = append(a.entries, Entry{
		Edge:    NoEdge,
		AdjNode: node,
		Parent:  NoEntry,
	})

	return id
}

// New allocates a child of parent reached over edge into adjNode with the
// given cumulative weight. The score starts at the parent's score.
func (a *Arena) New(parent ID, edge, adjNode int, weight float64) (ID, error) {
	if !a.valid(parent) {
		return NoEntry, fmt.Errorf("%w: parent %d outside arena of %d", ErrCorruptedAncestry, parent, len(a.entries))
	}
	p := a.entries[parent]
	id := ID(len(a.entries))
	a.entries = append(a.entries, Entry{
		Edge:    edge,
		AdjNode: adjNode,
		Weight:  weight,
		Score:   p.Score,
		Index:   p.Index + 1,
		Parent:  parent,
	})

	return id, nil
}

// Get returns a copy of the entry. Unknown IDs return false.
func (a *Arena) Get(id ID) (Entry, bool) {
	if !a.valid(id) {
		return Entry{}, false
	}

	return a.entries[id], true
}

// MustGet returns the entry for an ID the caller allocated itself.
// It panics on an unknown ID.
func (a *Arena) MustGet(id ID) Entry {
	return a.entries[id]
}

// SetScore sets the score of id. Call it before publishing the entry.
func (a *Arena) SetScore(id ID, score float64) {
	if a.valid(id) {
		a.entries[id].Score = score
	}
}

// Ancestors iterates the chain above id towards the root, excluding id.
// On a malformed link it yields a zero Entry with ErrCorruptedAncestry and stops.
func (a *Arena) Ancestors(id ID) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		if !a.valid(id) {
			yield(Entry{}, fmt.Errorf("%w: entry %d outside arena of %d", ErrCorruptedAncestry, id, len(a.entries)))
			return
		}
		cur := id
		for steps := 0; ; steps++ {
			parent := a.entries[cur].Parent
			if parent == NoEntry {
				return
			}
			if parent >= cur || parent < 0 || steps >= len(a.entries) {
				yield(Entry{}, fmt.Errorf("%w: entry %d has parent %d", ErrCorruptedAncestry, cur, parent))
				return
			}
			if !yield(a.entries[parent], nil) {
				return
			}
			cur = parent
		}
	}
}

// Chain returns the entries from the root down to id, id included.
func (a *Arena) Chain(id ID) ([]Entry, error) {
	leaf, ok := a.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: entry %d outside arena of %d", ErrCorruptedAncestry, id, len(a.entries))
	}
	out := make([]Entry, 0, leaf.Index+1)
	out = append(out, leaf)
	for e, err := range a.Ancestors(id) {
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	slices.Reverse(out)

	return out, nil
}

// Reset drops all entries and keeps the backing storage.
func (a *Arena) Reset() { a.entries = a.entries[:0] }

func (a *Arena) valid(id ID) bool {
	return id >= 0 && int(id) < len(a.entries)
}
