package diffusion

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/gilchrisn/influence-maximization/graph"
	"github.com/gilchrisn/influence-maximization/imerr"
)

// TestLTThresholdBoundary is spec.md S2: n=2, edge (0,1,0.5), seeds={0}.
// With θl=θh=0.5, influence reaches the threshold exactly, so node 1
// activates on every trial. With θl=θh=0.5+1e-9, it never does.
func TestLTThresholdBoundary(t *testing.T) {
	g := graph.New(2, true)
	_ = g.AddEdge(0, 1, 0.5)

	lt, err := NewLT(g, []int{0}, 0.5, 0.5)
	if err != nil {
		t.Fatalf("NewLT: %v", err)
	}
	for trial := 0; trial < 200; trial++ {
		r := rand.New(rand.NewSource(int64(trial)))
		if got := lt.RunSingleTrial(r); got != 2 {
			t.Fatalf("trial %d: spread = %d, want 2 at the boundary", trial, got)
		}
	}

	ltAbove, err := NewLT(g, []int{0}, 0.5+1e-9, 0.5+1e-9)
	if err != nil {
		t.Fatalf("NewLT: %v", err)
	}
	for trial := 0; trial < 200; trial++ {
		r := rand.New(rand.NewSource(int64(trial)))
		if got := ltAbove.RunSingleTrial(r); got != 1 {
			t.Fatalf("trial %d: spread = %d, want 1 just above the boundary", trial, got)
		}
	}
}

func TestLTInvalidThresholdRange(t *testing.T) {
	g := graph.New(2, true)
	_, err := NewLT(g, nil, 0.8, 0.2)
	if !errors.Is(err, imerr.InvalidParameter) {
		t.Fatalf("err = %v, want InvalidParameter", err)
	}
	_, err = NewLT(g, nil, -0.1, 0.5)
	if !errors.Is(err, imerr.InvalidParameter) {
		t.Fatalf("err = %v, want InvalidParameter", err)
	}
}

func TestLTSeedsAlwaysActivated(t *testing.T) {
	g := graph.New(5, true)
	lt, err := NewLT(g, []int{0, 1, 2}, 0.0, 1.0)
	if err != nil {
		t.Fatalf("NewLT: %v", err)
	}
	r := rand.New(rand.NewSource(3))
	if got := lt.RunSingleTrial(r); got < 3 {
		t.Fatalf("spread = %d, want at least |S| = 3", got)
	}
}

func TestLTSampleRRSetContainsRoot(t *testing.T) {
	g := graph.New(4, true)
	_ = g.AddEdge(0, 1, 0.5)
	_ = g.AddEdge(1, 2, 0.5)
	lt, _ := NewLT(g, nil, 0.0, 1.0)
	r := rand.New(rand.NewSource(11))
	rr := lt.SampleRRSet(2, r)
	if _, ok := rr[2]; !ok {
		t.Fatalf("RR set must always contain its root: %v", rr)
	}
}

func TestLTDiffuseRecordsWaves(t *testing.T) {
	g := graph.New(2, true)
	_ = g.AddEdge(0, 1, 1.0)
	lt, _ := NewLT(g, []int{0}, 0.0, 0.5)
	r := rand.New(rand.NewSource(1))
	trace := lt.Diffuse(r, true)
	if len(trace.Activated) != 2 {
		t.Fatalf("activated = %v, want both nodes", trace.Activated)
	}
	if len(trace.Waves) != 2 {
		t.Fatalf("waves = %d, want 2 (seed wave + one propagation wave)", len(trace.Waves))
	}
}
