package chaining

import "sort"

// sortHints orders hints by ascending difficulty, then ascending
// complexity, then ascending sort key — so two runs over the same grid
// always report hints in the same order.
func sortHints(hints []Hint) []Hint {
	sorted := make([]Hint, len(hints))
	copy(sorted, hints)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Difficulty() != b.Difficulty() {
			return a.Difficulty() < b.Difficulty()
		}
		if a.Complexity() != b.Complexity() {
			return a.Complexity() < b.Complexity()
		}
		return a.SortKey() < b.SortKey()
	})
	return sorted
}

// dedupeHints drops hints that repeat an earlier hint's identity (same
// concrete type and description), preserving the first occurrence's
// position.
func dedupeHints(hints []Hint) []Hint {
	seen := make(map[string]bool, len(hints))
	result := make([]Hint, 0, len(hints))
	for _, h := range hints {
		key := hintIdentity(h)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, h)
	}
	return result
}

func hintIdentity(h Hint) string {
	return hintTypeName(h) + "|" + h.String()
}

func hintTypeName(h Hint) string {
	switch h.(type) {
	case *CycleHint:
		return "cycle"
	case *ForcingChainHint:
		return "forcing_chain"
	case *BinaryChainingHint:
		return "binary"
	case *CellChainingHint:
		return "cell_reduction"
	case *RegionChainingHint:
		return "region_reduction"
	default:
		return "hint"
	}
}

func hintKind(h Hint) string { return hintTypeName(h) }
