package rules

import "mvsolver/sudokuchains/chaining"

// NakedSet finds size cells within a single region whose candidates'
// union has cardinality size: those candidates can be removed from every
// other cell of the region. NakedSet(2) is the naked pair, NakedSet(3)
// the naked triple.
type NakedSet struct {
	size int
}

func NewNakedSet(size int) *NakedSet { return &NakedSet{size: size} }

func (n *NakedSet) ProduceHints(grid chaining.GridView, acc chaining.HintAccumulator) error {
	for rt := chaining.RegionBlock; rt <= chaining.RegionColumn; rt++ {
		for idx := 0; idx < 9; idx++ {
			region := grid.RegionAt(rt, baseCellOf(rt, idx))
			n.scanRegion(grid, region, acc)
		}
	}
	return nil
}

func (n *NakedSet) scanRegion(grid chaining.GridView, region chaining.Region, acc chaining.HintAccumulator) {
	cells := regionCells(region)
	var unsolved []chaining.Cell
	for _, c := range cells {
		if grid.Candidates(c).Count() > 0 {
			unsolved = append(unsolved, c)
		}
	}
	combinations(len(unsolved), n.size, func(idxs []int) {
		var union chaining.BitSet9
		chosen := make([]chaining.Cell, n.size)
		for i, ci := range idxs {
			c := unsolved[ci]
			chosen[i] = c
			union |= grid.Candidates(c)
		}
		if union.Count() != n.size {
			return
		}
		in := make(map[chaining.Cell]bool, n.size)
		for _, c := range chosen {
			in[c] = true
		}
		removable := make(chaining.RemovableMap)
		for _, c := range cells {
			if in[c] {
				continue
			}
			overlap := grid.Candidates(c) & union
			if overlap != 0 {
				removable[c] = overlap
			}
		}
		if len(removable) == 0 {
			return
		}
		acc.Add(&setHint{removable: removable, scope: cells, kind: "naked"})
	})
}

// HiddenSet finds size candidates within a single region whose remaining
// positions all fall within the same size cells: every other candidate of
// those cells can be removed. HiddenSet(2) is the hidden pair.
type HiddenSet struct {
	size int
}

func NewHiddenSet(size int) *HiddenSet { return &HiddenSet{size: size} }

func (h *HiddenSet) ProduceHints(grid chaining.GridView, acc chaining.HintAccumulator) error {
	for rt := chaining.RegionBlock; rt <= chaining.RegionColumn; rt++ {
		for idx := 0; idx < 9; idx++ {
			region := grid.RegionAt(rt, baseCellOf(rt, idx))
			h.scanRegion(grid, region, acc)
		}
	}
	return nil
}

func (h *HiddenSet) scanRegion(grid chaining.GridView, region chaining.Region, acc chaining.HintAccumulator) {
	cells := regionCells(region)
	var values []chaining.Digit
	for v := chaining.Digit(1); v <= 9; v++ {
		if region.PotentialPositions(grid, v).Count() > 0 {
			values = append(values, v)
		}
	}
	combinations(len(values), h.size, func(idxs []int) {
		var positions chaining.BitSet9
		chosen := make([]chaining.Digit, h.size)
		for i, vi := range idxs {
			v := values[vi]
			chosen[i] = v
			positions |= region.PotentialPositions(grid, v)
		}
		if positions.Count() != h.size {
			return
		}
		inSet := make(map[chaining.Digit]bool, h.size)
		for _, v := range chosen {
			inSet[v] = true
		}
		removable := make(chaining.RemovableMap)
		for i := 0; i < 9; i++ {
			if !positions.Has(i) {
				continue
			}
			c := region.Cell(i)
			for v := chaining.Digit(1); v <= 9; v++ {
				if inSet[v] {
					continue
				}
				if grid.HasCandidate(c, v) {
					removable[c] = removable[c].Set(int(v))
				}
			}
		}
		if len(removable) == 0 {
			return
		}
		acc.Add(&setHint{removable: removable, scope: cells, kind: "hidden"})
	})
}

func baseCellOf(rt chaining.RegionType, idx int) chaining.Cell {
	switch rt {
	case chaining.RegionBlock:
		return chaining.Cell(blockBaseCell(idx))
	case chaining.RegionRow:
		return chaining.Cell(idx * 9)
	default:
		return chaining.Cell(idx)
	}
}

// combinations calls fn once for every size-length strictly increasing
// index combination drawn from [0, n).
func combinations(n, size int, fn func(idxs []int)) {
	if size <= 0 || size > n {
		return
	}
	idxs := make([]int, size)
	for i := range idxs {
		idxs[i] = i
	}
	for {
		fn(idxs)
		i := size - 1
		for i >= 0 && idxs[i] == n-size+i {
			i--
		}
		if i < 0 {
			return
		}
		idxs[i]++
		for j := i + 1; j < size; j++ {
			idxs[j] = idxs[j-1] + 1
		}
	}
}

type setHint struct {
	removable chaining.RemovableMap
	scope     []chaining.Cell
	kind      string
}

func (h *setHint) RemovablePotentials() chaining.RemovableMap { return h.removable }

func (h *setHint) RuleParents(source, current chaining.GridView) []*chaining.Potential {
	return chainDependentParents(source, current, h.scope)
}

func (h *setHint) String() string {
	return h.kind + " set reduction"
}
