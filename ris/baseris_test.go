package ris

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gilchrisn/influence-maximization/graph"
	"github.com/gilchrisn/influence-maximization/imconfig"
	"github.com/gilchrisn/influence-maximization/imerr"
)

func TestBaseRISInvalidParameters(t *testing.T) {
	g := graph.New(5, true)
	b := NewBaseRIS(g, icCtor, zerolog.Nop())

	if _, err := b.Run(-1, 10, 1); !errors.Is(err, imerr.InvalidParameter) {
		t.Fatalf("k=-1: err = %v, want InvalidParameter", err)
	}
	if _, err := b.Run(1, 0, 1); !errors.Is(err, imerr.InvalidParameter) {
		t.Fatalf("theta=0: err = %v, want InvalidParameter", err)
	}
}

func TestBaseRISBudgetExceedsNodesClamps(t *testing.T) {
	g := graph.New(3, true)
	_ = g.AddEdge(0, 1, 1.0)
	_ = g.AddEdge(1, 2, 1.0)
	b := NewBaseRIS(g, icCtor, zerolog.Nop())
	seeds, err := b.Run(10, 20, 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(seeds) != 3 {
		t.Fatalf("seeds = %v, want 3 (clamped to n)", seeds)
	}
}

func TestBaseRISStrictBudgetExceedsNodesFails(t *testing.T) {
	g := graph.New(3, true)
	_ = g.AddEdge(0, 1, 1.0)
	b := NewBaseRIS(g, icCtor, zerolog.Nop())
	b.Strict = true
	if _, err := b.Run(10, 20, 1); !errors.Is(err, imerr.BudgetExceedsNodes) {
		t.Fatalf("err = %v, want BudgetExceedsNodes", err)
	}
}

func TestBaseRISFromConfigRunsWithConfiguredLogger(t *testing.T) {
	g := graph.New(4, true)
	_ = g.AddEdge(0, 1, 1.0)
	_ = g.AddEdge(1, 2, 1.0)
	_ = g.AddEdge(2, 3, 1.0)
	cfg := imconfig.New()
	cfg.Set("logging.level", "error")

	b := NewBaseRISFromConfig(g, icCtor, cfg)
	seeds, err := b.Run(2, 50, 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(seeds) != 2 {
		t.Fatalf("seeds = %v, want 2", seeds)
	}
}
