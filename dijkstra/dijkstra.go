// Package dijkstra implements Dijkstra's shortest-path algorithm on road graphs.
//
// Nodes are processed in order of increasing cost using a min-heap,
// relaxing outgoing edges with costs supplied by a weighting.Weighting.
// The search tree is recorded in an spt.Arena so callers can splice a
// shortest path onto another chain or extract it with package path.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with lazy decrease-key.
//   - Space: O(V + E): one arena entry and one heap item per improvement.
//
// Notes on implementation choices:
//
//   - Turn costs are charged against the edge of the entry a node was settled
//     with (node-based search); the Source may carry an IncomingEdge.
//   - Traversals with cost ≥ InfEdgeThreshold (or +Inf) are walls.
//   - A negative cost from the weighting aborts the search with ErrNegativeWeight.
//   - Equal costs are settled in push order, which keeps results deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/spt"
	"github.com/katalvlaran/loopway/weighting"
)

// Result is the shortest-path tree of one Dijkstra run.
type Result struct {
	// Arena holds every entry created by the run.
	Arena *spt.Arena
	// Source is the start node.
	Source int
	// Settled counts nodes whose cost became final.
	Settled int

	best    map[int]spt.ID
	settled map[int]bool
}

// Entry returns the settled entry of node, if the node was settled.
func (r *Result) Entry(node int) (spt.ID, bool) {
	if !r.settled[node] {
		return spt.NoEntry, false
	}
	id, ok := r.best[node]

	return id, ok
}

// Weight returns the final cost of node, or +Inf if it was not settled.
func (r *Result) Weight(node int) float64 {
	id, ok := r.Entry(node)
	if !ok {
		return math.Inf(1)
	}

	return r.Arena.MustGet(id).Weight
}

// Dijkstra computes shortest costs from Options.Source under w.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph), w must be non-nil (ErrNilWeighting).
//  3. g must contain Source, and Target when set (ErrVertexNotFound).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, w weighting.Weighting, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if !cfg.hasSource {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if w == nil {
		return nil, ErrNilWeighting
	}
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}
	if cfg.hasTarget && !g.HasNode(cfg.Target) {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, cfg.Target)
	}

	// 3) Prepare state. Arena capacity defaults to the node count.
	capacity := cfg.ArenaCapacity
	if capacity == 0 {
		capacity = g.NodeCount()
	}
	r := &runner{
		g:       g,
		w:       w,
		options: cfg,
		arena:   spt.NewArena(capacity),
		best:    make(map[int]spt.ID, capacity),
		settled: make(map[int]bool, capacity),
		pq:      make(nodePQ, 0, capacity),
	}

	// 4) Seed and run.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{
		Arena:   r.arena,
		Source:  cfg.Source,
		Settled: r.count,
		best:    r.best,
		settled: r.settled,
	}, nil
}

// ShortestPath runs a targeted search from → to and returns the arena and
// the entry standing on to. ErrNoPath if to is unreachable.
func ShortestPath(g *core.Graph, w weighting.Weighting, from, to int, opts ...Option) (*spt.Arena, spt.ID, error) {
	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, Source(from), Target(to))

	res, err := Dijkstra(g, w, all...)
	if err != nil {
		return nil, spt.NoEntry, err
	}
	id, ok := res.Entry(to)
	if !ok {
		return res.Arena, spt.NoEntry, fmt.Errorf("%w: %d→%d", ErrNoPath, from, to)
	}

	return res.Arena, id, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	w       weighting.Weighting
	options Options
	arena   *spt.Arena
	best    map[int]spt.ID // node → entry with the lowest tentative cost
	settled map[int]bool   // node → cost is final
	pq      nodePQ
	seq     uint64 // push counter for deterministic ties
	count   int
}

// init pushes the root entry for Source with cost 0.
func (r *runner) init() {
	root := r.arena.NewRoot(r.options.Source)
	r.best[r.options.Source] = root
	heap.Init(&r.pq)
	r.push(r.options.Source, 0, root)
}

// process pops nodes in cost order until the heap is empty, the target is
// settled, or the next cost exceeds MaxWeight.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Skip stale heap entries (lazy decrease-key).
		if r.settled[item.node] || r.best[item.node] != item.entry {
			continue
		}
		if item.weight > r.options.MaxWeight {
			break
		}

		r.settled[item.node] = true
		r.count++
		if r.options.hasTarget && item.node == r.options.Target {
			return nil
		}

		if err := r.relax(item); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of a freshly settled node.
func (r *runner) relax(item *nodeItem) error {
	cur := r.arena.MustGet(item.entry)
	prevEdge := cur.Edge
	if cur.IsRoot() {
		prevEdge = r.options.IncomingEdge
	}

	for s := range r.g.EdgesFrom(item.node) {
		if r.settled[s.Adj] {
			continue
		}
		cost := weighting.Calc(r.w, s, prevEdge)
		if cost < 0 {
			return fmt.Errorf("%w: edge %d %d→%d cost=%v", ErrNegativeWeight, s.ID(), s.Base, s.Adj, cost)
		}
		if math.IsInf(cost, 1) || cost >= r.options.InfEdgeThreshold {
			continue
		}

		next := item.weight + cost
		if next > r.options.MaxWeight {
			continue
		}
		if id, seen := r.best[s.Adj]; seen && next >= r.arena.MustGet(id).Weight {
			continue
		}

		id, err := r.arena.New(item.entry, s.ID(), s.Adj, next)
		if err != nil {
			return fmt.Errorf("dijkstra: relax %d→%d: %w", s.Base, s.Adj, err)
		}
		r.best[s.Adj] = id
		r.push(s.Adj, next, id)
	}

	return nil
}

func (r *runner) push(node int, w float64, id spt.ID) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{node: node, weight: w, entry: id, seq: r.seq})
}

// nodeItem is a heap element: a node, its tentative cost and the entry
// carrying that cost.
type nodeItem struct {
	node   int
	weight float64
	entry  spt.ID
	seq    uint64
}

// nodePQ is a min-heap of *nodeItem ordered by weight, then push order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
