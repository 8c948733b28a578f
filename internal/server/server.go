// Package server exposes round-trip searches over HTTP.
//
// Routes:
//
//	POST /v1/roundtrip        one search
//	POST /v1/roundtrip/batch  several searches in parallel
//	GET  /v1/graph            size of the served graph
//	GET  /healthz             liveness
//	GET  /metrics             Prometheus exposition
//
// Every request gets an X-Request-ID (kept when the client sends one). A
// global token bucket rejects bursts with 429 and a weighted semaphore
// bounds the searches running at once; a search that cannot start before
// the request timeout gets 503.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/loopway/config"
	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/metrics"
	"github.com/katalvlaran/loopway/roundtrip"
	"github.com/katalvlaran/loopway/weighting"
)

// Server serves one immutable road graph.
type Server struct {
	graph     *core.Graph
	weighting weighting.Weighting
	opts      []roundtrip.Option
	cfg       config.ServerConfig
	logger    *roundtrip.Logger
	metrics   *metrics.Collector
	limiter   *rate.Limiter
	sem       *semaphore.Weighted
	router    *mux.Router
	http      *http.Server
}

// New wires a Server. Metrics are registered on reg, which also backs
// /metrics. opts are applied to every search before per-request overrides.
func New(g *core.Graph, w weighting.Weighting, opts []roundtrip.Option, cfg config.ServerConfig, logger *roundtrip.Logger, reg *prometheus.Registry) *Server {
	if logger == nil {
		logger = roundtrip.NoopLogger()
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}

	s := &Server{
		graph:     g,
		weighting: w,
		cfg:       cfg,
		logger:    logger,
		metrics:   metrics.New(reg, "loopway"),
		sem:       semaphore.NewWeighted(cfg.MaxConcurrent),
		router:    mux.NewRouter(),
	}
	s.opts = append(append([]roundtrip.Option(nil), opts...),
		roundtrip.WithLogger(logger),
		roundtrip.WithMetrics(s.metrics),
	)
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	s.metrics.SetGraphSize(g.NodeCount(), g.EdgeCount())

	s.router.Use(s.requestIDMiddleware, s.recoveryMiddleware, s.loggingMiddleware)
	s.router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/v1").Subrouter()
	api.Use(s.rateLimitMiddleware)
	api.HandleFunc("/graph", s.handleGraph).Methods(http.MethodGet)
	api.HandleFunc("/roundtrip", s.handleRoundTrip).Methods(http.MethodPost)
	api.HandleFunc("/roundtrip/batch", s.handleBatch).Methods(http.MethodPost)

	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on cfg.Addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.http = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.cfg.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("http server shutting down")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return nil
}
