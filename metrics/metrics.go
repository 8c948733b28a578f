// Package metrics exposes round-trip search and HTTP counters to Prometheus.
//
// Collector implements roundtrip.MetricsCollector; pass it with
// roundtrip.WithMetrics. Metrics are registered on the Registerer given to
// New, so tests and embedders can use their own registry.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/loopway/roundtrip"
)

// Collector holds the loopway metric families.
type Collector struct {
	Searches        *prometheus.CounterVec
	SearchDuration  prometheus.Histogram
	Loops           prometheus.Histogram
	VisitedNodes    prometheus.Histogram
	ClosureFailures prometheus.Counter
	Evictions       prometheus.Counter

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	GraphNodes          prometheus.Gauge
	GraphEdges          prometheus.Gauge
}

// New registers every metric on reg under the given namespace.
// A nil reg means prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		Searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Round-trip searches by termination reason; failed searches are labeled error.",
		}, []string{"termination"}),
		SearchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of one round-trip search.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		Loops: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_loops",
			Help:      "Loops returned per successful search.",
			Buckets:   []float64{0, 1, 2, 3, 5, 10, 20},
		}),
		VisitedNodes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_visited_nodes",
			Help:      "Frontier pops per search.",
			Buckets:   prometheus.ExponentialBuckets(100, 4, 8),
		}),
		ClosureFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "closure_failures_total",
			Help:      "Closing entries with no way back to the destination.",
		}),
		Evictions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frontier_evictions_total",
			Help:      "Partial paths dropped because the frontier was full.",
		}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests processed.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "path"}),
		GraphNodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Junctions in the loaded road graph.",
		}),
		GraphEdges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Road segments in the loaded road graph.",
		}),
	}
}

// RecordSearch implements roundtrip.MetricsCollector.
func (c *Collector) RecordSearch(stats roundtrip.Stats, loops int, duration time.Duration, err error) {
	c.SearchDuration.Observe(duration.Seconds())
	if err != nil {
		c.Searches.WithLabelValues(errorLabel(err)).Inc()
		return
	}
	c.Searches.WithLabelValues(stats.Termination.String()).Inc()
	c.Loops.Observe(float64(loops))
	c.VisitedNodes.Observe(float64(stats.VisitedNodes))
	c.ClosureFailures.Add(float64(stats.ClosureFailures))
	c.Evictions.Add(float64(stats.FrontierEvictions))
}

// ObserveHTTP records one served request.
func (c *Collector) ObserveHTTP(method, path string, status int, took time.Duration) {
	c.HTTPRequests.WithLabelValues(method, path, statusClass(status)).Inc()
	c.HTTPRequestDuration.WithLabelValues(method, path).Observe(took.Seconds())
}

// SetGraphSize publishes the size of the served graph.
func (c *Collector) SetGraphSize(nodes, edges int) {
	c.GraphNodes.Set(float64(nodes))
	c.GraphEdges.Set(float64(edges))
}

func errorLabel(err error) string {
	switch {
	case errors.Is(err, roundtrip.ErrVertexNotFound):
		return "error_vertex"
	case errors.Is(err, roundtrip.ErrInvalidDistance), errors.Is(err, roundtrip.ErrOptionViolation):
		return "error_input"
	default:
		return "error"
	}
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
