package chaining

// OffToOn computes the direct consequences of a Potential being OFF: if the
// cell is left with exactly one other candidate, that candidate must be ON
// (a Y-link, when yChainEnabled); if a block/row/column is left with
// exactly one remaining position for the value, that position must hold it
// (an X-link, when xChainEnabled). Every produced ON-potential recovers its
// hidden parents — off-potentials the source grid shows as candidates but
// the current, possibly dynamically-mutated, grid does not — against
// offSet, the accumulated set of off-potentials seen so far in this
// propagation.
//
// When the same on-potential would be produced by more than one region
// rule (e.g. a block vote and a row vote on the same target), mode decides
// the resolution: DeterministicMode keeps the occurrence with the smaller
// ancestor count; LegacyMode keeps the first one found.
func OffToOn(grid GridView, p *Potential, source GridView, offSet *PotentialSet, yChainEnabled, xChainEnabled bool, mode FixedChainingMode) ([]*Potential, error) {
	result := NewPotentialSet()

	if yChainEnabled {
		cands := grid.Candidates(p.Cell)
		if cands.Count() == 2 {
			other := otherCandidate(cands, p.Value)
			pOn := NewPotentialWithCause(p.Cell, other, true, p,
				CauseNakedSingle, "the only remaining candidate of the cell")
			if err := addHiddenParentsOfCell(pOn, grid, source, offSet); err != nil {
				return nil, err
			}
			result.Add(pOn)
		}
	}

	if xChainEnabled {
		for _, rt := range [...]RegionType{RegionBlock, RegionRow, RegionColumn} {
			region := grid.RegionAt(rt, p.Cell)
			otherPos := -1
			ambiguous := false
			for i := 0; i < 9; i++ {
				c := region.Cell(i)
				if c == p.Cell {
					continue
				}
				if grid.HasCandidate(c, p.Value) {
					if otherPos >= 0 {
						ambiguous = true
						break
					}
					otherPos = i
				}
			}
			if ambiguous || otherPos < 0 {
				continue
			}
			targetCell := region.Cell(otherPos)
			pOn := NewPotentialWithCause(targetCell, p.Value, true, p,
				regionCause(rt), "the only remaining position for the value in the "+rt.String())
			if err := addHiddenParentsOfRegion(pOn, grid, source, region, p.Value, offSet); err != nil {
				return nil, err
			}
			if existing := result.Get(pOn); existing != nil {
				if mode == DeterministicMode && pOn.AncestorCount() < existing.AncestorCount() {
					result.Replace(existing, pOn)
				}
				continue
			}
			result.Add(pOn)
		}
	}

	return result.Slice(), nil
}

// otherCandidate returns the single candidate of a two-bit BitSet9 that is
// not v.
func otherCandidate(cands BitSet9, v Digit) Digit {
	for d := Digit(1); d <= 9; d++ {
		if d != v && cands.Has(int(d)) {
			return d
		}
	}
	return 0
}

// addHiddenParentsOfCell finds, for every value the source grid still
// allowed in p.Cell but the current grid no longer does, the off-potential
// that removed it, and adds it as a parent of p. Missing an expected parent
// is a logic invariant violation.
func addHiddenParentsOfCell(p *Potential, grid, source GridView, offSet *PotentialSet) error {
	for v := Digit(1); v <= 9; v++ {
		if v == p.Value {
			continue
		}
		if source.HasCandidate(p.Cell, v) && !grid.HasCandidate(p.Cell, v) {
			key := NewPotential(p.Cell, v, false)
			parent := offSet.Get(key)
			if parent == nil {
				return &ChainError{Kind: MissingParent, Message: "no off-potential recorded for " + key.String()}
			}
			p.Parents = append(p.Parents, parent)
		}
	}
	return nil
}

// addHiddenParentsOfRegion finds, for every position of region the source
// grid still allowed value in but the current grid no longer does, the
// off-potential that removed it, and adds it as a parent of p.
func addHiddenParentsOfRegion(p *Potential, grid, source GridView, region Region, value Digit, offSet *PotentialSet) error {
	for i := 0; i < 9; i++ {
		c := region.Cell(i)
		if c == p.Cell {
			continue
		}
		if source.HasCandidate(c, value) && !grid.HasCandidate(c, value) {
			key := NewPotential(c, value, false)
			parent := offSet.Get(key)
			if parent == nil {
				return &ChainError{Kind: MissingParent, Message: "no off-potential recorded for " + key.String()}
			}
			p.Parents = append(p.Parents, parent)
		}
	}
	return nil
}
