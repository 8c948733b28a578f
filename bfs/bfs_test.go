package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/loopway/bfs"
	"github.com/katalvlaran/loopway/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, 7); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if err := g.AddNode(0); err != nil {
		t.Fatal(err)
	}
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleNode covers the trivial one-node graph.
func TestBFS_SingleNode(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddNode(4); err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth[4]; d != 0 {
		t.Errorf("Depth[4] = %d; want 0", d)
	}
}

// TestBFS_CycleDepths checks depths on 0–1–2–3–0.
func TestBFS_CycleDepths(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		if _, err := g.AddEdge(e[0], e[1], 10); err != nil {
			t.Fatal(err)
		}
	}
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := map[int]int{0: 0, 1: 1, 3: 1, 2: 2}
	if !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if p := res.Parent[2]; p != 1 {
		t.Errorf("Parent[2] = %d; want 1", p)
	}
}

// TestBFS_OneWay checks that a one-way street is not followed backwards.
func TestBFS_OneWay(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.AddEdge(0, 1, 10, core.WithEdgeDirected(true)); err != nil {
		t.Fatal(err)
	}
	res, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	ok, err := bfs.Reachable(g, 0, 1)
	if err != nil || !ok {
		t.Errorf("Reachable(0,1) = %v, %v; want true", ok, err)
	}
	ok, err = bfs.Reachable(g, 1, 0)
	if err != nil || ok {
		t.Errorf("Reachable(1,0) = %v, %v; want false", ok, err)
	}
}

// TestBFS_MaxDepthAndFilter combines depth limit and edge filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		if _, err := g.AddEdge(i, i+1, 10); err != nil {
			t.Fatal(err)
		}
	}
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth Order = %v; want %v", res.Order, want)
	}

	res, err = bfs.BFS(g, 0, bfs.WithFilterEdge(func(s core.EdgeState) bool { return s.Adj != 3 }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}
	if _, err := res.PathTo(4); err == nil {
		t.Error("PathTo(4) should fail behind the filter")
	}
}

// TestBFS_Hooks checks hook ordering and abort on OnVisit error.
func TestBFS_Hooks(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(0, 2, 1)

	var enq []int
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }),
		bfs.WithOnVisit(func(id, _ int) error {
			if id == 1 {
				return stop
			}
			return nil
		}),
	)
	if !errors.Is(err, stop) {
		t.Fatalf("want hook error, got %v", err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(enq, want) {
		t.Errorf("enqueued = %v; want %v", enq, want)
	}
}

// TestBFS_Canceled checks context cancellation.
func TestBFS_Canceled(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestReachable covers the trivial and the disconnected case.
func TestReachable(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(2, 3, 1)

	for _, tc := range []struct {
		from, to int
		want     bool
	}{
		{0, 0, true},
		{0, 1, true},
		{1, 0, true},
		{0, 3, false},
	} {
		got, err := bfs.Reachable(g, tc.from, tc.to)
		if err != nil {
			t.Fatalf("Reachable(%d,%d): %v", tc.from, tc.to, err)
		}
		if got != tc.want {
			t.Errorf("Reachable(%d,%d) = %v; want %v", tc.from, tc.to, got, tc.want)
		}
	}
	if _, err := bfs.Reachable(g, 9, 0); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("want ErrStartVertexNotFound, got %v", err)
	}
}
