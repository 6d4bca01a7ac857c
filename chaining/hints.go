package chaining

import (
	"fmt"
)

// hintBase carries the fields every concrete Hint needs: what it removes,
// and the three values sortHints ranks on.
type hintBase struct {
	difficulty float64
	complexity int
	sortKey    int
	removable  RemovableMap
}

func (h hintBase) RemovablePotentials() RemovableMap { return h.removable }
func (h hintBase) Difficulty() float64               { return h.difficulty }
func (h hintBase) Complexity() int                    { return h.complexity }
func (h hintBase) SortKey() int                       { return h.sortKey }

func (h hintBase) IsWorth() bool {
	for _, bits := range h.removable {
		if bits != 0 {
			return true
		}
	}
	return false
}

func sortKeyFor(p *Potential) int {
	return int(p.Cell)*10 + int(p.Value)
}

// CycleHint reports an implication cycle: a chain of alternating ON/OFF
// links that loops back to its own starting node, eliminating every
// candidate both halves of the loop agree is impossible.
type CycleHint struct {
	hintBase
	IsYChain, IsXChain bool
	DstOn, DstOff      *Potential
}

func (h *CycleHint) RuleParents(source, current GridView) []*Potential {
	return nil
}

func (h *CycleHint) String() string {
	return fmt.Sprintf("%s: %s", cycleKindName(h.IsYChain, h.IsXChain), h.DstOn)
}

func cycleKindName(yChain, xChain bool) string {
	switch {
	case yChain && xChain:
		return "Bidirectional Cycle"
	case xChain:
		return "X-Cycle"
	default:
		return "Y-Cycle"
	}
}

// ForcingChainHint reports a unary forcing chain: a single starting
// assumption whose consequences, followed far enough, reach the
// assumption's own conjugate, so Target (that conjugate) holds.
type ForcingChainHint struct {
	hintBase
	IsYChain, IsXChain bool
	Target             *Potential
}

func (h *ForcingChainHint) RuleParents(source, current GridView) []*Potential {
	return nil
}

func (h *ForcingChainHint) String() string {
	kind := "Forcing Chain"
	if h.IsXChain && !h.IsYChain {
		kind = "X-Chain"
	} else if h.IsYChain && !h.IsXChain {
		kind = "Y-Chain"
	}
	return fmt.Sprintf("%s: %s", kind, h.Target)
}

// BinaryChainingHint reports either a contradiction (assuming Source leads
// to an impossibility) or a double-implication reduction (both polarities
// of Source agree Target holds or doesn't).
type BinaryChainingHint struct {
	hintBase
	Source, Target *Potential
	DstOn, DstOff  *Potential
	IsAbsurd       bool
	IsNishio       bool
}

func (h *BinaryChainingHint) RuleParents(source, current GridView) []*Potential {
	return filterRealAncestors(collectOffAncestors(h.Target), source)
}

func (h *BinaryChainingHint) String() string {
	if h.IsAbsurd {
		return fmt.Sprintf("Contradiction: assuming %s leads to an impossibility", h.Source)
	}
	return fmt.Sprintf("Double Implication: %s and its negation both force %s", h.Source, h.Target)
}

// CellChainingHint reports a cell reduction: every candidate value of a
// cell leads, directly or through a chain, to the same Potential.
type CellChainingHint struct {
	hintBase
	SourceCell Cell
	Target     *Potential
	Chains     map[Digit]*Potential
}

func (h *CellChainingHint) RuleParents(source, current GridView) []*Potential {
	return filterRealAncestors(collectOffAncestors(h.Target), source)
}

func (h *CellChainingHint) String() string {
	return fmt.Sprintf("Cell Forcing Chains: every candidate of r%dc%d forces %s",
		h.SourceCell.Row()+1, h.SourceCell.Col()+1, h.Target)
}

// RegionChainingHint reports a region reduction: every remaining position
// of a value within a region leads to the same Potential.
type RegionChainingHint struct {
	hintBase
	Region     Region
	RegionType RegionType
	Value      Digit
	Target     *Potential
	Chains     map[int]*Potential
}

func (h *RegionChainingHint) RuleParents(source, current GridView) []*Potential {
	return filterRealAncestors(collectOffAncestors(h.Target), source)
}

func (h *RegionChainingHint) String() string {
	return fmt.Sprintf("Region Forcing Chains: every position for %d in the %s forces %s",
		h.Value, h.RegionType, h.Target)
}

// filterRealAncestors keeps only the off-ancestors whose (cell, value) was
// actually a candidate in source — the real premises of the chain, as
// opposed to facts that happen to always hold.
func filterRealAncestors(ancestors []*Potential, source GridView) []*Potential {
	var kept []*Potential
	for _, a := range ancestors {
		if source.HasCandidate(a.Cell, a.Value) {
			kept = append(kept, a)
		}
	}
	return kept
}

func (e *Engine) buildCycleHint(grid GridView, dstOn, dstOff *Potential, isYChain, isXChain bool) *CycleHint {
	// Both parent walks stop at a root or at a potential already walked, so
	// a parent chain that loops back onto itself ends after one lap.
	cellsInCycle := make(map[Cell]bool)
	walked := make(map[*Potential]bool)
	for p := dstOn; !walked[p]; {
		walked[p] = true
		cellsInCycle[p.Cell] = true
		if len(p.Parents) == 0 {
			break
		}
		p = p.Parents[0]
	}

	cancelForw := NewPotentialSet()
	cancelBack := NewPotentialSet()
	walked = make(map[*Potential]bool)
	for p := dstOn; !walked[p]; {
		walked[p] = true
		for other := range visibleCells(grid, p.Cell) {
			if cellsInCycle[other] {
				continue
			}
			if grid.HasCandidate(other, p.Value) {
				cand := NewPotential(other, p.Value, false)
				if p.IsOn {
					cancelForw.Add(cand)
				} else {
					cancelBack.Add(cand)
				}
			}
		}
		if len(p.Parents) == 0 {
			break
		}
		p = p.Parents[0]
	}
	cancelForw.RetainIntersection(cancelBack)

	removable := make(RemovableMap)
	for _, rp := range cancelForw.Slice() {
		removable[rp.Cell] = removable[rp.Cell].Set(int(rp.Value))
	}

	return &CycleHint{
		hintBase: hintBase{
			difficulty: e.GetDifficulty() + float64(len(cellsInCycle))*0.001,
			complexity: len(cellsInCycle),
			sortKey:    sortKeyFor(dstOn),
			removable:  removable,
		},
		IsYChain: isYChain, IsXChain: isXChain, DstOn: dstOn, DstOff: dstOff,
	}
}

func (e *Engine) buildForcingChainHint(grid GridView, target *Potential, isYChain, isXChain bool) *ForcingChainHint {
	removable := make(RemovableMap)
	if !target.IsOn {
		removable[target.Cell] = removable[target.Cell].Set(int(target.Value))
	} else {
		var bits BitSet9
		for v := Digit(1); v <= 9; v++ {
			if v != target.Value && grid.HasCandidate(target.Cell, v) {
				bits = bits.Set(int(v))
			}
		}
		removable[target.Cell] = bits
	}
	complexity := target.AncestorCount()
	return &ForcingChainHint{
		hintBase: hintBase{
			difficulty: e.GetDifficulty() + float64(complexity)*0.001,
			complexity: complexity,
			sortKey:    sortKeyFor(target),
			removable:  removable,
		},
		IsYChain: isYChain, IsXChain: isXChain, Target: target,
	}
}

// buildChainingOnHint builds a hint forcing target's cell to hold target's
// value: every other candidate of that cell is removable.
func (e *Engine) buildChainingOnHint(grid GridView, dstOn, dstOff, source, target *Potential, isAbsurd bool) *BinaryChainingHint {
	bits := grid.Candidates(target.Cell).Clear(int(target.Value))
	removable := make(RemovableMap)
	if bits != 0 {
		removable[target.Cell] = bits
	}
	complexity := target.AncestorCount()
	return &BinaryChainingHint{
		hintBase: hintBase{
			difficulty: e.GetDifficulty() + float64(complexity)*0.001,
			complexity: complexity,
			sortKey:    sortKeyFor(target),
			removable:  removable,
		},
		Source: source, Target: target, DstOn: dstOn, DstOff: dstOff,
		IsAbsurd: isAbsurd, IsNishio: e.config.Nishio,
	}
}

// buildChainingOffHint builds a hint forcing target's value out of
// target's cell.
func (e *Engine) buildChainingOffHint(dstOn, dstOff, source, target *Potential, isAbsurd bool) *BinaryChainingHint {
	removable := RemovableMap{target.Cell: BitSet9(0).Set(int(target.Value))}
	complexity := target.AncestorCount()
	return &BinaryChainingHint{
		hintBase: hintBase{
			difficulty: e.GetDifficulty() + float64(complexity)*0.001,
			complexity: complexity,
			sortKey:    sortKeyFor(target),
			removable:  removable,
		},
		Source: source, Target: target, DstOn: dstOn, DstOff: dstOff,
		IsAbsurd: isAbsurd, IsNishio: e.config.Nishio,
	}
}

func (e *Engine) buildCellReductionHint(grid GridView, cell Cell, target *Potential, chainsByValue map[Digit]*PotentialSet) *CellChainingHint {
	chains := make(map[Digit]*Potential)
	for v, set := range chainsByValue {
		if stored := set.Get(target); stored != nil {
			chains[v] = stored
		}
	}
	removable := make(RemovableMap)
	if !target.IsOn {
		removable[target.Cell] = removable[target.Cell].Set(int(target.Value))
	} else if bits := grid.Candidates(target.Cell).Clear(int(target.Value)); bits != 0 {
		removable[target.Cell] = bits
	}
	return &CellChainingHint{
		hintBase: hintBase{
			difficulty: e.GetDifficulty() + float64(target.AncestorCount())*0.001,
			complexity: target.AncestorCount(),
			sortKey:    sortKeyFor(target),
			removable:  removable,
		},
		SourceCell: cell, Target: target, Chains: chains,
	}
}

func (e *Engine) buildRegionReductionHint(grid GridView, region Region, rt RegionType, value Digit, target *Potential, chainsByPos map[int]*PotentialSet) *RegionChainingHint {
	chains := make(map[int]*Potential)
	for pos, set := range chainsByPos {
		if stored := set.Get(target); stored != nil {
			chains[pos] = stored
		}
	}
	removable := make(RemovableMap)
	if !target.IsOn {
		removable[target.Cell] = removable[target.Cell].Set(int(target.Value))
	} else if bits := grid.Candidates(target.Cell).Clear(int(target.Value)); bits != 0 {
		removable[target.Cell] = bits
	}
	return &RegionChainingHint{
		hintBase: hintBase{
			difficulty: e.GetDifficulty() + float64(target.AncestorCount())*0.001,
			complexity: target.AncestorCount(),
			sortKey:    sortKeyFor(target),
			removable:  removable,
		},
		Region: region, RegionType: rt, Value: value, Target: target, Chains: chains,
	}
}

// visibleCells returns every cell sharing a block, row, or column with c,
// excluding c itself.
func visibleCells(grid GridView, c Cell) map[Cell]bool {
	seen := make(map[Cell]bool)
	for _, rt := range [...]RegionType{RegionBlock, RegionRow, RegionColumn} {
		region := grid.RegionAt(rt, c)
		for i := 0; i < 9; i++ {
			other := region.Cell(i)
			if other != c {
				seen[other] = true
			}
		}
	}
	return seen
}
