package roundtrip

import (
	"fmt"

	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/spt"
)

// searcher holds the mutable state of one frontier search. It is created per
// call and never shared.
type searcher struct {
	g      *core.Graph
	opts   Options
	scorer roadScorer

	from, to    int
	minDistance float64
	maxDistance float64
	half        float64
	uturnFrom   float64
	budget      int
	arena       *spt.Arena
	frontier    *frontier
	closing     []spt.ID
	stats       Stats
}

func newSearcher(g *core.Graph, req Request, o Options) *searcher {
	n := g.NodeCount()
	capacity := o.frontierCapacity(n)
	half := (req.MinDistance + req.MaxDistance) / 4

	return &searcher{
		g:           g,
		opts:        o,
		scorer:      newRoadScorer(o),
		from:        req.From,
		to:          req.To,
		minDistance: req.MinDistance,
		maxDistance: req.MaxDistance,
		half:        half,
		uturnFrom:   o.UTurnWindow * half,
		budget:      o.visitBudget(n),
		arena:       spt.NewArena(4 * capacity),
		frontier:    newFrontier(capacity),
		closing:     make([]spt.ID, 0, o.MaxTrips),
	}
}

// run grows the entry tree until the frontier is empty, the visit budget is
// spent or MaxTrips closing entries exist.
func (s *searcher) run() error {
	root := s.arena.NewRoot(s.from)
	s.frontier.push(root, 0)

	for {
		s.stats.VisitedNodes++
		if s.stats.VisitedNodes > s.budget {
			s.stats.VisitedNodes--
			s.stats.Termination = TerminationBudgetExceeded
			break
		}
		id, ok := s.frontier.pop()
		if !ok {
			s.stats.VisitedNodes--
			s.stats.Termination = TerminationExhausted
			break
		}
		done, err := s.expand(id)
		if err != nil {
			return err
		}
		if done {
			s.stats.Termination = TerminationTargetReached
			break
		}
	}
	s.stats.FrontierEvictions = s.frontier.evicted
	s.stats.ClosingEntries = len(s.closing)

	return nil
}

// expand inspects every edge leaving the entry id. It reports true once the
// closing set is full.
func (s *searcher) expand(id spt.ID) (bool, error) {
	cur := s.arena.MustGet(id)
	for e := range s.g.EdgesFrom(cur.AdjNode) {
		s.stats.ExpandedEdges++
		d := cur.Weight + e.Edge.Distance

		if e.ID() == cur.Edge && d < s.uturnFrom {
			continue
		}
		if d > s.maxDistance {
			continue
		}
		if e.Edge.Attributes.Environment == core.EnvironmentFerry {
			continue
		}

		anc, err := s.inspect(id, cur, e)
		if err != nil {
			return false, err
		}
		if anc.repeat {
			continue
		}

		if e.Adj == s.to {
			if d < s.minDistance {
				continue
			}
			child, err := s.child(id, cur, e, d, 0)
			if err != nil {
				return false, err
			}
			if s.record(child) {
				return true, nil
			}
			continue
		}

		if anc.visits >= 2 {
			continue
		}
		var penalty float64
		if anc.visits == 1 {
			penalty = revisitPenalty(d, s.maxDistance, anc.lastIndex, cur.Index+1,
				s.opts.RevisitPenaltyBefore, s.opts.RevisitPenaltyAfter)
		}
		child, err := s.child(id, cur, e, d, penalty)
		if err != nil {
			return false, err
		}

		if d >= s.half {
			if s.record(child) {
				return true, nil
			}
			continue
		}
		s.frontier.push(child, s.arena.MustGet(child).Score)
	}

	return false, nil
}

// ancestry is what one walk over a candidate's ancestors found.
type ancestry struct {
	repeat    bool
	visits    int
	lastIndex int
}

// inspect walks cur and its ancestors once. It flags a directed edge already
// on the path and counts earlier visits of e.Adj, keeping the index of the
// most recent one.
func (s *searcher) inspect(id spt.ID, cur spt.Entry, e core.EdgeState) (ancestry, error) {
	var a ancestry
	visit := func(en spt.Entry) bool {
		if en.Edge == e.ID() && en.AdjNode == e.Adj {
			a.repeat = true
			return false
		}
		if en.AdjNode == e.Adj {
			if a.visits == 0 {
				a.lastIndex = en.Index
			}
			a.visits++
		}
		return true
	}

	if !visit(cur) {
		return a, nil
	}
	for en, err := range s.arena.Ancestors(id) {
		if err != nil {
			return a, fmt.Errorf("roundtrip: expanding entry %d: %w", id, err)
		}
		if !visit(en) {
			return a, nil
		}
	}

	return a, nil
}

// child allocates the entry for traversal e and scores it.
func (s *searcher) child(parent spt.ID, cur spt.Entry, e core.EdgeState, d, penalty float64) (spt.ID, error) {
	id, err := s.arena.New(parent, e.ID(), e.Adj, d)
	if err != nil {
		return spt.NoEntry, fmt.Errorf("roundtrip: allocating entry: %w", err)
	}
	s.arena.SetScore(id, cur.Score+s.scorer.contribution(e)+penalty)

	return id, nil
}

// record adds a closing entry and reports whether MaxTrips is reached.
func (s *searcher) record(id spt.ID) bool {
	s.closing = append(s.closing, id)

	return len(s.closing) >= s.opts.MaxTrips
}
