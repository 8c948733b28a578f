// Package spt stores search trees as chains of entries in an arena.
//
// Every entry records the edge used to reach its node, the node itself, a
// cumulative weight, a heuristic score, its 1-based depth along the path and
// the ID of its parent entry. Entries never point at each other directly:
// the parent is an index into the same Arena, which keeps a whole search tree
// in one contiguous slice and lets it be dropped in one go when the search
// ends.
//
// Invariants:
//
//   - A parent is always allocated before its children, so parent ID < child ID.
//     Walking parents therefore strictly decreases the ID and terminates after
//     at most Index steps.
//   - Index(child) == Index(parent) + 1; the root has Index 0, Edge NoEdge and
//     Parent NoEntry.
//   - Entries are immutable after creation except for the score, which is set
//     once before the entry is handed to any frontier.
//
// A walk that observes a parent ID that is not strictly smaller than the
// current one reports ErrCorruptedAncestry instead of looping forever.
//
// Example:
//
//	a := spt.NewArena(64)
//	root := a.NewRoot(origin)
//	child, _ := a.New(root, edgeID, adjNode, 120.5)
//	for e, err := range a.Ancestors(child) {
//	    if err != nil { return err }
//	    fmt.Println(e.AdjNode)
//	}
package spt
