package chaining

import (
	"reflect"
	"testing"
)

func TestSortedRemovableCellsDeterministicModeCanonicalOrder(t *testing.T) {
	g := newFakeGrid()
	// cell 10 = r1c1 (col 1, row 1 in a 9-wide fake layout where Cell=row*9+col)
	m := RemovableMap{
		Cell(9 + 5): BitSet9(0).Set(1),  // row 1, col 5
		Cell(0 + 2): BitSet9(0).Set(1),  // row 0, col 2
		Cell(9 + 2): BitSet9(0).Set(1),  // row 1, col 2
	}
	got := sortedRemovableCells(m, g, DeterministicMode)
	want := []Cell{0 + 2, 9 + 2, 9 + 5} // ascending column, then row
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sortedRemovableCells(deterministic) = %v, want %v", got, want)
	}
}

func TestSortedRemovableCellsLegacyModeAscendingIndex(t *testing.T) {
	g := newFakeGrid()
	m := RemovableMap{
		Cell(40): BitSet9(0).Set(1),
		Cell(5):  BitSet9(0).Set(1),
		Cell(20): BitSet9(0).Set(1),
	}
	got := sortedRemovableCells(m, g, LegacyMode)
	want := []Cell{5, 20, 40}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("sortedRemovableCells(legacy) = %v, want %v", got, want)
	}
}

func TestRemovableNonEmpty(t *testing.T) {
	if removableNonEmpty(RemovableMap{0: 0}) {
		t.Fatalf("expected an all-zero RemovableMap to report empty")
	}
	if !removableNonEmpty(RemovableMap{0: BitSet9(0).Set(3)}) {
		t.Fatalf("expected a RemovableMap with a set bit to report non-empty")
	}
}

func TestInitOtherRulesBuildsOnceAndGatesByLevel(t *testing.T) {
	e := NewEngine(Config{Level: 2}, fakeSettings{}, nil)
	e.initOtherRules()
	first := e.otherRules
	e.initOtherRules()
	if len(e.otherRules) != len(first) {
		t.Fatalf("expected initOtherRules to be idempotent after the first call")
	}
	if len(first) != 1 {
		t.Fatalf("expected exactly one nested rule producer at level 2, got %d", len(first))
	}
}

func TestAdvancedAccumulatorSkipsIndependentHints(t *testing.T) {
	acc := &advancedAccumulator{
		grid:   newFakeGrid(),
		source: newFakeGrid(),
		offSet: NewPotentialSet(),
		mode:   DeterministicMode,
	}
	hint := &setHintStub{removable: RemovableMap{0: BitSet9(0).Set(1)}}
	acc.Add(hint)
	if len(acc.result) != 0 {
		t.Fatalf("expected a hint with no rule parents to be skipped, got %d results", len(acc.result))
	}
}

type setHintStub struct {
	removable RemovableMap
}

func (h *setHintStub) RemovablePotentials() RemovableMap { return h.removable }
func (h *setHintStub) RuleParents(source, current GridView) []*Potential { return nil }
func (h *setHintStub) String() string { return "stub" }
