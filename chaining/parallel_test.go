package chaining

import (
	"context"
	"testing"
)

type multiThreadSettings struct{ n int }

func (s multiThreadSettings) NumThreads() int                      { return s.n }
func (multiThreadSettings) FixedChainingMode() FixedChainingMode { return DeterministicMode }

// sparseGrid returns a grid with every cell solved except the few named
// ones, so a multiple/dynamic collection run touches only a handful of
// starting cells regardless of parallel/sequential fan-out.
func sparseGrid(open ...Cell) *fakeGrid {
	g := newFakeGrid()
	openSet := make(map[Cell]bool, len(open))
	for _, c := range open {
		openSet[c] = true
	}
	for c := Cell(0); c < 81; c++ {
		if openSet[c] {
			continue
		}
		g.values[c] = 1
		g.candidates[c] = 0
	}
	return g
}

func TestCollectMultipleChainsHintsSequentialBelowLevel3(t *testing.T) {
	g := sparseGrid(0, 1, 2)
	e := NewEngine(Config{Multiple: true, Level: 2, Parallel: true}, multiThreadSettings{n: 4}, nil)
	if _, err := e.collectMultipleChainsHints(context.Background(), g); err != nil {
		t.Fatalf("collectMultipleChainsHints: %v", err)
	}
}

func TestCollectMultipleChainsHintsSequentialWithOneThread(t *testing.T) {
	g := sparseGrid(0, 1, 2)
	e := NewEngine(Config{Multiple: true, Level: 4, Parallel: true}, multiThreadSettings{n: 1}, nil)
	if _, err := e.collectMultipleChainsHints(context.Background(), g); err != nil {
		t.Fatalf("collectMultipleChainsHints: %v", err)
	}
}

func TestCollectMultipleChainsHintsParallelFanOut(t *testing.T) {
	g := sparseGrid(0, 1, 2, 3, 4)
	e := NewEngine(Config{Multiple: true, Level: 4, Parallel: true}, multiThreadSettings{n: 3}, nil)
	if _, err := e.collectMultipleChainsHints(context.Background(), g); err != nil {
		t.Fatalf("collectMultipleChainsHints (parallel): %v", err)
	}
}

// TestCollectMultipleChainsHintsSkipsCardinalityTwoWhenNotDynamic checks
// that a non-dynamic Multiple-only engine never calls hintsForCell for a
// bivalue cell — only cells with more than two candidates qualify outside
// dynamic mode.
func TestCollectMultipleChainsHintsSkipsCardinalityTwoWhenNotDynamic(t *testing.T) {
	g := sparseGrid(0)
	for v := Digit(1); v <= 9; v++ {
		if v != 3 && v != 7 {
			g.Eliminate(0, v)
		}
	}

	e := NewEngine(Config{Multiple: true, Level: 2, Parallel: false}, multiThreadSettings{n: 1}, nil)
	hints, err := e.collectMultipleChainsHints(context.Background(), g)
	if err != nil {
		t.Fatalf("collectMultipleChainsHints: %v", err)
	}
	if len(hints) != 0 {
		t.Fatalf("expected a bivalue cell to be skipped in non-dynamic Multiple-only mode, got %v", hints)
	}
}

// TestCollectMultipleChainsHintsIncludesCardinalityTwoWhenDynamic checks
// the opposite: a dynamic engine does visit a bivalue starting cell.
func TestCollectMultipleChainsHintsIncludesCardinalityTwoWhenDynamic(t *testing.T) {
	g := sparseGrid(0, 1)
	for v := Digit(1); v <= 9; v++ {
		if v != 3 && v != 7 {
			g.Eliminate(0, v)
			g.Eliminate(1, v)
		}
	}

	e := NewEngine(Config{Dynamic: true, Level: 2, Parallel: false}, multiThreadSettings{n: 1}, nil)
	if _, err := e.collectMultipleChainsHints(context.Background(), g); err != nil {
		t.Fatalf("collectMultipleChainsHints: %v", err)
	}
}

func TestNewSiblingEngineDisablesParallel(t *testing.T) {
	e := NewEngine(Config{Parallel: true, Level: 3}, multiThreadSettings{n: 4}, nil)
	sibling := e.newSiblingEngine()
	if sibling.config.Parallel {
		t.Fatalf("expected a sibling engine to have Parallel disabled")
	}
	if sibling.config.Level != e.config.Level {
		t.Fatalf("expected a sibling engine to keep the parent's Level")
	}
}
