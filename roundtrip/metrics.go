package roundtrip

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Termination tells why the frontier search stopped.
type Termination uint8

const (
	// TerminationNone means the search did not run (validation failed).
	TerminationNone Termination = iota
	// TerminationExhausted: the frontier ran empty.
	TerminationExhausted
	// TerminationTargetReached: MaxTrips closing entries were collected.
	TerminationTargetReached
	// TerminationBudgetExceeded: MaxVisitedNodes pops were spent.
	TerminationBudgetExceeded
	// TerminationUnreachable: the reachability check found no route to the destination.
	TerminationUnreachable
)

func (t Termination) String() string {
	switch t {
	case TerminationNone:
		return "none"
	case TerminationExhausted:
		return "exhausted"
	case TerminationTargetReached:
		return "target_reached"
	case TerminationBudgetExceeded:
		return "budget_exceeded"
	case TerminationUnreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("Termination(%d)", uint8(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Termination) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Stats are the counters of one search.
type Stats struct {
	VisitedNodes      int         `json:"visited_nodes"`
	ExpandedEdges     int         `json:"expanded_edges"`
	FrontierEvictions int         `json:"frontier_evictions"`
	ClosingEntries    int         `json:"closing_entries"`
	ClosureFailures   int         `json:"closure_failures"`
	RepeatedClosures  int         `json:"repeated_closures"`
	Candidates        int         `json:"candidates"`
	DistanceFiltered  int         `json:"distance_filtered"`
	Deduplicated      int         `json:"deduplicated"`
	ArenaEntries      int         `json:"arena_entries"`
	Termination       Termination `json:"termination"`
}

// MetricsCollector receives one observation per search.
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordSearch is called after each search with its counters, the
	// number of returned loops, its wall time and its error.
	RecordSearch(stats Stats, loops int, duration time.Duration, err error)
}

// NoopMetricsCollector drops every observation.
type NoopMetricsCollector struct{}

// RecordSearch implements MetricsCollector.
func (NoopMetricsCollector) RecordSearch(Stats, int, time.Duration, error) {}

// BasicMetricsCollector keeps in-memory totals.
type BasicMetricsCollector struct {
	Searches        atomic.Int64
	SearchErrors    atomic.Int64
	SearchNanos     atomic.Int64
	Loops           atomic.Int64
	VisitedNodes    atomic.Int64
	ExpandedEdges   atomic.Int64
	Evictions       atomic.Int64
	ClosureFailures atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(stats Stats, loops int, duration time.Duration, err error) {
	b.Searches.Add(1)
	b.SearchNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
		return
	}
	b.Loops.Add(int64(loops))
	b.VisitedNodes.Add(int64(stats.VisitedNodes))
	b.ExpandedEdges.Add(int64(stats.ExpandedEdges))
	b.Evictions.Add(int64(stats.FrontierEvictions))
	b.ClosureFailures.Add(int64(stats.ClosureFailures))
}

// BasicMetricsStats is a point-in-time copy of BasicMetricsCollector.
type BasicMetricsStats struct {
	Searches      int64
	SearchErrors  int64
	AvgSearchTime time.Duration
	Loops         int64
	VisitedNodes  int64
}

// GetStats returns a snapshot of the totals.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	n := b.Searches.Load()
	var avg time.Duration
	if n > 0 {
		avg = time.Duration(b.SearchNanos.Load() / n)
	}

	return BasicMetricsStats{
		Searches:      n,
		SearchErrors:  b.SearchErrors.Load(),
		AvgSearchTime: avg,
		Loops:         b.Loops.Load(),
		VisitedNodes:  b.VisitedNodes.Load(),
	}
}
