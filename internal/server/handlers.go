package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/katalvlaran/loopway/roundtrip"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, GraphResponse{Nodes: s.graph.NodeCount(), Edges: s.graph.EdgeCount()})
}

func (s *Server) handleRoundTrip(w http.ResponseWriter, r *http.Request) {
	var req RoundTripRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := s.withTimeout(r.Context())
	defer cancel()
	if err := s.sem.Acquire(ctx, 1); err != nil {
		s.writeError(w, r, http.StatusServiceUnavailable, "search capacity exhausted")
		return
	}
	defer s.sem.Release(1)

	opts := s.opts
	if req.MaxResults > 0 {
		opts = append(append([]roundtrip.Option(nil), s.opts...), roundtrip.WithMaxResults(req.MaxResults))
	}
	res, err := roundtrip.SearchContext(ctx, s.graph, s.weighting, req.Request, opts...)
	if err != nil {
		s.writeError(w, r, statusOf(err), err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, RoundTripResponse{
		RequestID: requestID(r.Context()),
		Routes:    toRoutes(s.graph, res.Routes, req.Geometry),
		Stats:     res.Stats,
	})
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Requests) == 0 || len(req.Requests) > s.cfg.MaxBatch {
		s.writeError(w, r, http.StatusBadRequest,
			fmt.Sprintf("batch must hold 1 to %d requests, got %d", s.cfg.MaxBatch, len(req.Requests)))
		return
	}

	parallel := s.cfg.BatchParallelism
	if parallel <= 0 || parallel > len(req.Requests) {
		parallel = len(req.Requests)
	}
	weight := min(int64(parallel), s.cfg.MaxConcurrent)

	ctx, cancel := s.withTimeout(r.Context())
	defer cancel()
	if err := s.sem.Acquire(ctx, weight); err != nil {
		s.writeError(w, r, http.StatusServiceUnavailable, "search capacity exhausted")
		return
	}
	defer s.sem.Release(weight)

	results, err := roundtrip.CalcBatch(ctx, s.graph, s.weighting, req.Requests, int(weight), s.opts...)
	if err != nil {
		s.writeError(w, r, statusOf(err), err.Error())
		return
	}

	out := BatchResponse{RequestID: requestID(r.Context()), Results: make([]BatchItem, len(results))}
	for i, br := range results {
		item := BatchItem{Request: br.Request}
		if br.Err != nil {
			item.Error = br.Err.Error()
		} else {
			item.Routes = toRoutes(s.graph, br.Result.Routes, false)
			stats := br.Result.Stats
			item.Stats = &stats
		}
		out.Results[i] = item
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.RequestTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.RequestTimeout)
	}

	return context.WithCancel(ctx)
}

func decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	return nil
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, roundtrip.ErrVertexNotFound):
		return http.StatusNotFound
	case errors.Is(err, roundtrip.ErrInvalidDistance), errors.Is(err, roundtrip.ErrOptionViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	s.writeJSON(w, status, ErrorResponse{RequestID: requestID(r.Context()), Error: msg})
}
