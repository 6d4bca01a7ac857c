package chaining

import (
	"context"
	"testing"
)

func TestContainsPotential(t *testing.T) {
	list := []*Potential{NewPotential(0, 1, true), NewPotential(5, 3, false)}
	if !containsPotential(list, NewPotential(5, 3, false)) {
		t.Fatalf("expected containsPotential to find a value-equal Potential")
	}
	if containsPotential(list, NewPotential(5, 3, true)) {
		t.Fatalf("expected containsPotential to distinguish polarity")
	}
	if containsPotential(list, NewPotential(9, 9, true)) {
		t.Fatalf("expected containsPotential to reject an absent Potential")
	}
}

// TestReverseCycleFlipsPolarityAndOrder builds a 3-node chain
// root(On) -> mid(Off) -> dstOn(On), each pointing at its single parent,
// and checks that reverseCycle rebuilds it head-first from root with every
// polarity flipped, re-linking the reversed nodes root -> mid' -> dstOn'
// in forward order.
func TestReverseCycleFlipsPolarityAndOrder(t *testing.T) {
	root := NewPotentialWithCause(0, 1, true, nil, CauseNone, "")
	root.Parents = nil
	mid := NewPotentialWithCause(1, 2, false, root, CauseNakedSingle, "mid-explanation")
	dstOn := NewPotentialWithCause(2, 3, true, mid, CauseHiddenRow, "dst-explanation")

	rev := reverseCycle(dstOn)

	if rev.Cell != root.Cell || rev.Value != root.Value || rev.IsOn {
		t.Fatalf("expected the reversed head to be root with flipped polarity, got %+v", rev)
	}
	if len(rev.Parents) != 1 {
		t.Fatalf("expected the reversed head to carry exactly one forward link, got %d", len(rev.Parents))
	}
	revMid := rev.Parents[0]
	if revMid.Cell != mid.Cell || revMid.Value != mid.Value || !revMid.IsOn {
		t.Fatalf("expected the second reversed node to be mid with flipped polarity, got %+v", revMid)
	}
	if len(revMid.Parents) != 1 {
		t.Fatalf("expected mid's reversed node to carry exactly one forward link, got %d", len(revMid.Parents))
	}
	revDst := revMid.Parents[0]
	if revDst.Cell != dstOn.Cell || revDst.Value != dstOn.Value || revDst.IsOn {
		t.Fatalf("expected the tail reversed node to be dstOn with flipped polarity, got %+v", revDst)
	}
	if len(revDst.Parents) != 0 {
		t.Fatalf("expected the tail reversed node to carry no further link, got %d", len(revDst.Parents))
	}
}

// TestDoForcingChainsFindsConjugateOfSource builds a grid where value 5
// survives only in cells 0, 1 and 19, all in block 0 (cells 1 and 19 also
// share column 1). Assuming cell 0 holds 5 turns cell 1 off-5, which leaves
// cell 19 as column 1's only position for 5; cell 19 on-5 then reaches back
// through block 0 and forces cell 0 off-5 — the exact conjugate of the
// starting assumption.
func TestDoForcingChainsFindsConjugateOfSource(t *testing.T) {
	g := newFakeGrid()
	for c := Cell(0); c < 81; c++ {
		g.Eliminate(c, 5)
		g.Eliminate(c, 9)
	}
	g.candidates[0] = g.candidates[0].Set(5)
	g.candidates[1] = g.candidates[1].Set(5).Set(9)
	g.candidates[19] = g.candidates[19].Set(5)

	e := NewEngine(Config{}, fakeSettings{}, nil)
	source := NewPotential(0, 5, true)
	onSet := NewPotentialSet()
	offSet := NewPotentialSet()
	onSet.Add(source)

	var chains []*Potential
	if err := e.doForcingChains(context.Background(), g, onSet, offSet, true, &chains, source); err != nil {
		t.Fatalf("doForcingChains: %v", err)
	}

	found := false
	for _, c := range chains {
		if c.Cell == 0 && c.Value == 5 && !c.IsOn {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected doForcingChains to surface cell 0 forced off-5, got %v", chains)
	}
}

// TestDoCyclesFindsNoCycleInAcyclicChain checks that a simple, non-looping
// propagation (values 3 and 7 confined to cells 0 and 1, with no path back
// to the start) never reports a cycle.
func TestDoCyclesFindsNoCycleInAcyclicChain(t *testing.T) {
	g := newFakeGrid()
	for c := Cell(0); c < 81; c++ {
		g.Eliminate(c, 3)
		g.Eliminate(c, 7)
	}
	g.candidates[0] = g.candidates[0].Set(3).Set(7)
	g.candidates[1] = g.candidates[1].Set(3).Set(7)

	e := NewEngine(Config{}, fakeSettings{}, nil)
	source := NewPotential(0, 3, true)
	onSet := NewPotentialSet()
	offSet := NewPotentialSet()
	onSet.Add(source)

	var cycles []*Potential
	if err := e.doCycles(context.Background(), g, onSet, offSet, true, true, &cycles, source); err != nil {
		t.Fatalf("doCycles: %v", err)
	}
	if len(cycles) != 0 {
		t.Fatalf("expected no cycle from a simple conjugate pair, got %v", cycles)
	}
}

// TestDoUnaryChainingSkipsHighCardinalityWithoutXLinks checks the entry
// gate: when a cell has more than two candidates and x-links are
// disabled, there is no useful unary search to run.
func TestDoUnaryChainingSkipsHighCardinalityWithoutXLinks(t *testing.T) {
	g := newFakeGrid() // every cell starts with all 9 candidates
	e := NewEngine(Config{}, fakeSettings{}, nil)
	hints, err := e.doUnaryChaining(context.Background(), g, NewPotential(0, 1, true), true, false)
	if err != nil {
		t.Fatalf("doUnaryChaining: %v", err)
	}
	if hints != nil {
		t.Fatalf("expected no hints when cardinality > 2 and x-links are disabled, got %v", hints)
	}
}
