package chaining

import "testing"

func TestPotentialEquals(t *testing.T) {
	a := NewPotential(5, 3, true)
	b := NewPotential(5, 3, true)
	c := NewPotential(5, 3, false)
	if !a.Equals(b) {
		t.Fatalf("expected potentials with the same (cell, value, polarity) to be equal")
	}
	if a.Equals(c) {
		t.Fatalf("expected potentials with different polarity to differ")
	}
	var nilP *Potential
	if !nilP.Equals(nil) {
		t.Fatalf("two nil potentials should compare equal")
	}
	if a.Equals(nil) {
		t.Fatalf("a non-nil potential should never equal nil")
	}
}

func TestPotentialConjugate(t *testing.T) {
	on := NewPotential(10, 4, true)
	off := on.Conjugate()
	if off.IsOn {
		t.Fatalf("expected conjugate to flip polarity")
	}
	if off.Cell != on.Cell || off.Value != on.Value {
		t.Fatalf("expected conjugate to keep cell and value")
	}
	if len(off.Parents) != 0 {
		t.Fatalf("expected a conjugate to have no parents of its own")
	}
}

func TestAncestorCountCountsDistinctParents(t *testing.T) {
	root := NewPotential(0, 1, true)
	if got := root.AncestorCount(); got != 1 {
		t.Fatalf("expected a root potential to have ancestor count 1, got %d", got)
	}

	mid := NewPotentialWithCause(1, 2, false, root, CauseNakedSingle, "")
	if got := mid.AncestorCount(); got != 2 {
		t.Fatalf("expected ancestor count 2 for one parent, got %d", got)
	}

	leaf := NewPotentialWithCause(2, 3, true, mid, CauseNakedSingle, "")
	if got := leaf.AncestorCount(); got != 3 {
		t.Fatalf("expected ancestor count 3 for a two-deep chain, got %d", got)
	}
}

func TestAncestorCountDedupsDiamonds(t *testing.T) {
	root := NewPotential(0, 1, true)
	left := NewPotentialWithCause(1, 2, false, root, CauseNakedSingle, "")
	right := NewPotentialWithCause(2, 2, false, root, CauseNakedSingle, "")
	tip := &Potential{Cell: 3, Value: 3, IsOn: true, Parents: []*Potential{left, right}}

	if got := tip.AncestorCount(); got != 4 {
		t.Fatalf("expected diamond-shaped ancestry to count root once: got %d, want 4", got)
	}
}

func TestCollectOffAncestorsOnlyOffPolarity(t *testing.T) {
	onRoot := NewPotential(0, 1, true)
	offMid := NewPotentialWithCause(1, 2, false, onRoot, CauseNakedSingle, "")
	onLeaf := NewPotentialWithCause(2, 3, true, offMid, CauseNakedSingle, "")

	ancestors := collectOffAncestors(onLeaf)
	if len(ancestors) != 1 {
		t.Fatalf("expected exactly one off-ancestor, got %d", len(ancestors))
	}
	if ancestors[0].IsOn {
		t.Fatalf("expected collected ancestor to be off-polarity")
	}
	if !ancestors[0].Equals(offMid) {
		t.Fatalf("expected the collected ancestor to be offMid")
	}
}

func TestIsAncestorWalksSingleParentChain(t *testing.T) {
	root := NewPotential(0, 1, true)
	mid := NewPotentialWithCause(1, 2, false, root, CauseNakedSingle, "")
	leaf := NewPotentialWithCause(2, 3, true, mid, CauseNakedSingle, "")

	if !isAncestor(leaf, root) {
		t.Fatalf("expected root to be an ancestor of leaf")
	}
	if isAncestor(root, leaf) {
		t.Fatalf("did not expect leaf to be an ancestor of root")
	}
}

func TestRegionCauseMapping(t *testing.T) {
	cases := map[RegionType]Cause{
		RegionBlock:  CauseHiddenBlock,
		RegionRow:    CauseHiddenRow,
		RegionColumn: CauseHiddenColumn,
	}
	for rt, want := range cases {
		if got := regionCause(rt); got != want {
			t.Errorf("regionCause(%v) = %v, want %v", rt, got, want)
		}
	}
}
