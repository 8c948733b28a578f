package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loopway/config"
	"github.com/katalvlaran/loopway/core"
	"github.com/katalvlaran/loopway/weighting"
)

// block is four 1 km streets around one block.
func block(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		_, err := g.AddEdge(e[0], e[1], 1000, core.WithRoadClass(core.RoadClassResidential))
		require.NoError(t, err)
	}

	return g
}

func newTestServer(t *testing.T, mutate func(*config.ServerConfig)) *Server {
	t.Helper()
	cfg := config.DefaultConfig().Server
	cfg.RateLimit = 0
	if mutate != nil {
		mutate(&cfg)
	}

	return New(block(t), weighting.NewShortest(), nil, cfg, nil, prometheus.NewRegistry())
}

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(method, target, rd))

	return rec
}

func TestRoundTrip_OK(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, http.MethodPost, "/v1/roundtrip",
		`{"from":0,"to":0,"min_distance":3000,"max_distance":5000,"geometry":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp RoundTripResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Routes, 2)
	assert.Equal(t, []int{0, 1, 2, 1, 0}, resp.Routes[0].Nodes)
	assert.Equal(t, []int{0, 3, 2, 1, 0}, resp.Routes[1].Nodes)
	assert.Equal(t, 4000.0, resp.Routes[0].Distance)
	assert.Len(t, resp.Routes[0].Points, 5)
	assert.Equal(t, rec.Header().Get(requestIDHeader), resp.RequestID)
	_, err := uuid.Parse(resp.RequestID)
	assert.NoError(t, err)
}

func TestRoundTrip_MaxResultsOverride(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, http.MethodPost, "/v1/roundtrip",
		`{"from":0,"to":0,"min_distance":3000,"max_distance":5000,"max_results":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp RoundTripResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Routes, 1)
	assert.Empty(t, resp.Routes[0].Points)
}

func TestRoundTrip_Errors(t *testing.T) {
	s := newTestServer(t, nil)
	cases := map[string]struct {
		body string
		code int
	}{
		"bad json":      {`{"from":`, http.StatusBadRequest},
		"unknown field": {`{"from":0,"to":0,"radius":3}`, http.StatusBadRequest},
		"unknown node":  {`{"from":0,"to":9,"min_distance":1,"max_distance":2}`, http.StatusNotFound},
		"bad band":      {`{"from":0,"to":0,"min_distance":5,"max_distance":2}`, http.StatusUnprocessableEntity},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/v1/roundtrip", tc.body)
			assert.Equal(t, tc.code, rec.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}

	assert.Equal(t, http.StatusMethodNotAllowed, do(t, s, http.MethodGet, "/v1/roundtrip", "").Code)
}

func TestRequestID_Propagated(t *testing.T) {
	s := newTestServer(t, nil)
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, id)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(requestIDHeader))

	req.Header.Set(requestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(requestIDHeader))
}

func TestBatch(t *testing.T) {
	s := newTestServer(t, nil)
	body := `{"requests":[
		{"from":0,"to":0,"min_distance":3000,"max_distance":5000},
		{"from":0,"to":7,"min_distance":1,"max_distance":2},
		{"from":0,"to":2,"min_distance":1000,"max_distance":3000}]}`
	rec := do(t, s, http.MethodPost, "/v1/roundtrip/batch", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp BatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)
	assert.Len(t, resp.Results[0].Routes, 2)
	assert.Empty(t, resp.Results[0].Error)
	assert.NotNil(t, resp.Results[0].Stats)
	assert.Contains(t, resp.Results[1].Error, "not found")
	assert.Nil(t, resp.Results[1].Stats)
	assert.Equal(t, 2, resp.Results[2].Request.To)
}

func TestBatch_Size(t *testing.T) {
	s := newTestServer(t, func(c *config.ServerConfig) { c.MaxBatch = 1 })
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/v1/roundtrip/batch", `{"requests":[]}`).Code)
	two := `{"requests":[{"from":0,"to":0,"max_distance":1},{"from":0,"to":0,"max_distance":1}]}`
	assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodPost, "/v1/roundtrip/batch", two).Code)
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(t, func(c *config.ServerConfig) {
		c.RateLimit = 0.001
		c.Burst = 1
	})
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/v1/graph", "").Code)
	rec := do(t, s, http.MethodGet, "/v1/graph", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	// health and metrics are not limited
	assert.Equal(t, http.StatusOK, do(t, s, http.MethodGet, "/healthz", "").Code)
}

func TestCapacityExhausted(t *testing.T) {
	s := newTestServer(t, func(c *config.ServerConfig) {
		c.MaxConcurrent = 1
		c.RequestTimeout = 20 * time.Millisecond
	})
	require.NoError(t, s.sem.Acquire(context.Background(), 1))
	defer s.sem.Release(1)

	rec := do(t, s, http.MethodPost, "/v1/roundtrip", `{"from":0,"to":0,"min_distance":3000,"max_distance":5000}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGraphAndMetrics(t *testing.T) {
	s := newTestServer(t, nil)
	rec := do(t, s, http.MethodGet, "/v1/graph", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var gr GraphResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gr))
	assert.Equal(t, GraphResponse{Nodes: 4, Edges: 4}, gr)

	do(t, s, http.MethodPost, "/v1/roundtrip", `{"from":0,"to":0,"min_distance":3000,"max_distance":5000}`)
	rec = do(t, s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `loopway_http_requests_total{method="GET",path="/v1/graph",status="2xx"} 1`)
	assert.Contains(t, body, "loopway_search_duration_seconds_count 1")
	assert.Contains(t, body, "loopway_graph_nodes 4")
}

func TestRecovery(t *testing.T) {
	s := newTestServer(t, nil)
	s.router.HandleFunc("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
	rec := do(t, s, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRun_Shutdown(t *testing.T) {
	s := newTestServer(t, func(c *config.ServerConfig) { c.Addr = "127.0.0.1:0" })
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

