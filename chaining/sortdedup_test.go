package chaining

import "testing"

func forcingHint(difficulty float64, complexity, sortKey int, cell Cell, value Digit) *ForcingChainHint {
	return &ForcingChainHint{
		hintBase: hintBase{
			difficulty: difficulty,
			complexity: complexity,
			sortKey:    sortKey,
			removable:  RemovableMap{cell: BitSet9(0).Set(int(value))},
		},
		Target: NewPotential(cell, value, false),
	}
}

func TestSortHintsOrdersByDifficultyThenComplexity(t *testing.T) {
	low := forcingHint(5.0, 3, 9, 0, 1)
	mid := forcingHint(5.0, 1, 9, 1, 1)
	high := forcingHint(8.5, 1, 1, 2, 1)

	sorted := sortHints([]Hint{high, low, mid})
	if sorted[0] != mid || sorted[1] != low || sorted[2] != high {
		t.Fatalf("expected order [mid, low, high] by (difficulty, complexity), got %v", sorted)
	}
}

func TestSortHintsDoesNotMutateInput(t *testing.T) {
	a := forcingHint(5.0, 1, 1, 0, 1)
	b := forcingHint(1.0, 1, 1, 1, 1)
	input := []Hint{a, b}
	_ = sortHints(input)
	if input[0] != a || input[1] != b {
		t.Fatalf("expected sortHints to leave its input slice untouched")
	}
}

func TestDedupeHintsDropsRepeatedIdentity(t *testing.T) {
	a := forcingHint(5.0, 1, 1, 0, 1)
	// Same concrete type and same String() output as a (same target, so
	// same RemovablePotentials + Target) => same identity.
	b := forcingHint(5.0, 1, 1, 0, 1)
	c := forcingHint(5.0, 1, 1, 1, 2)

	result := dedupeHints([]Hint{a, b, c})
	if len(result) != 2 {
		t.Fatalf("expected duplicate hint dropped, got %d results", len(result))
	}
	if result[0] != a {
		t.Fatalf("expected the first occurrence to be kept")
	}
	if result[1] != c {
		t.Fatalf("expected the distinct hint to survive")
	}
}

func TestHintTypeNameDistinguishesKinds(t *testing.T) {
	cycle := &CycleHint{DstOn: NewPotential(0, 1, true)}
	forcing := forcingHint(1, 1, 1, 0, 1)
	binary := &BinaryChainingHint{Source: NewPotential(0, 1, true), Target: NewPotential(1, 2, false)}

	if hintTypeName(cycle) != "cycle" {
		t.Errorf("expected cycle hint type name 'cycle', got %q", hintTypeName(cycle))
	}
	if hintTypeName(forcing) != "forcing_chain" {
		t.Errorf("expected forcing chain type name 'forcing_chain', got %q", hintTypeName(forcing))
	}
	if hintTypeName(binary) != "binary" {
		t.Errorf("expected binary hint type name 'binary', got %q", hintTypeName(binary))
	}
}
