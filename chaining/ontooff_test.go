package chaining

import "testing"

func TestOnToOffYLinkRemovesOtherCandidatesOfSameCell(t *testing.T) {
	g := newFakeGrid()
	p := NewPotential(0, 5, true)
	result := OnToOff(g, p, true)

	sawOtherValueSameCell := false
	for _, r := range result {
		if r.Cell == 0 && r.Value != 5 {
			sawOtherValueSameCell = true
			if r.IsOn {
				t.Fatalf("expected a Y-link consequence to be off-polarity")
			}
		}
	}
	if !sawOtherValueSameCell {
		t.Fatalf("expected OnToOff with yChainEnabled to produce same-cell eliminations")
	}
}

func TestOnToOffDisablesYLinkWhenRequested(t *testing.T) {
	g := newFakeGrid()
	p := NewPotential(0, 5, true)
	result := OnToOff(g, p, false)
	for _, r := range result {
		if r.Cell == 0 {
			t.Fatalf("expected no same-cell eliminations when yChainEnabled is false, got %v", r)
		}
	}
}

func TestOnToOffXLinksCoverBlockRowColumn(t *testing.T) {
	g := newFakeGrid()
	p := NewPotential(0, 5, true) // r1c1 (block 0, row 0, col 0)
	result := OnToOff(g, p, false)

	var sawBlockPeer, sawRowPeer, sawColPeer bool
	for _, r := range result {
		if r.Value != 5 {
			continue
		}
		switch {
		case r.Cell == 10: // r2c2, same block
			sawBlockPeer = true
		case r.Cell == 4: // r1c5, same row
			sawRowPeer = true
		case r.Cell == 36: // r5c1, same column
			sawColPeer = true
		}
	}
	if !sawBlockPeer || !sawRowPeer || !sawColPeer {
		t.Fatalf("expected X-link eliminations across block, row and column peers (block=%v row=%v col=%v)",
			sawBlockPeer, sawRowPeer, sawColPeer)
	}
}

func TestOnToOffNeverDuplicatesACellReachedByMultipleRegions(t *testing.T) {
	g := newFakeGrid()
	p := NewPotential(0, 5, true)
	result := OnToOff(g, p, true)

	seen := make(map[potentialKey]int)
	for _, r := range result {
		seen[r.key()]++
	}
	for k, count := range seen {
		if count > 1 {
			t.Fatalf("expected every (cell, value, polarity) to appear at most once, got %d for %v", count, k)
		}
	}
}
