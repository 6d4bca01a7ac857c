package rules

import "mvsolver/sudokuchains/chaining"

// Fisherman finds size-by-size fish: a value confined, across size rows, to
// the same size columns (or vice versa) lets every other occurrence of the
// value in those columns (rows) be removed. Fisherman(2) is the X-Wing,
// Fisherman(3) the Swordfish.
type Fisherman struct {
	size int
}

func NewFisherman(size int) *Fisherman { return &Fisherman{size: size} }

func (f *Fisherman) ProduceHints(grid chaining.GridView, acc chaining.HintAccumulator) error {
	for v := chaining.Digit(1); v <= 9; v++ {
		f.scan(grid, v, chaining.RegionRow, acc)
		f.scan(grid, v, chaining.RegionColumn, acc)
	}
	return nil
}

// scan looks for size base lines (rows, say) whose candidate positions for
// v all fall within the same size cover lines (columns); candidates for v
// in those cover lines outside the base lines are removable.
func (f *Fisherman) scan(grid chaining.GridView, v chaining.Digit, baseType chaining.RegionType, acc chaining.HintAccumulator) {
	coverType := chaining.RegionColumn
	if baseType == chaining.RegionColumn {
		coverType = chaining.RegionRow
	}

	var lines []int
	var positions []chaining.BitSet9
	for idx := 0; idx < 9; idx++ {
		region := grid.RegionAt(baseType, baseCellOf(baseType, idx))
		bits := region.PotentialPositions(grid, v)
		count := bits.Count()
		if count >= 2 && count <= f.size {
			lines = append(lines, idx)
			positions = append(positions, bits)
		}
	}

	combinations(len(lines), f.size, func(idxs []int) {
		var cover chaining.BitSet9
		baseLines := make([]int, f.size)
		for i, li := range idxs {
			baseLines[i] = lines[li]
			cover |= positions[li]
		}
		if cover.Count() != f.size {
			return
		}
		inBase := make(map[int]bool, f.size)
		for _, l := range baseLines {
			inBase[l] = true
		}

		scope := make([]chaining.Cell, 0, f.size*9)
		removable := make(chaining.RemovableMap)
		for i := 0; i < 9; i++ {
			if !cover.Has(i) {
				continue
			}
			coverRegion := grid.RegionAt(coverType, baseCellOf(coverType, i))
			scope = append(scope, regionCells(coverRegion)...)
			for pos := 0; pos < 9; pos++ {
				c := coverRegion.Cell(pos)
				crossLine := crossLineIndex(baseType, c)
				if inBase[crossLine] {
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
		acc.Add(&fishermanHint{removable: removable, scope: scope, value: v, size: f.size})
	})
}

func crossLineIndex(baseType chaining.RegionType, c chaining.Cell) int {
	if baseType == chaining.RegionRow {
		return c.Row()
	}
	return c.Col()
}

type fishermanHint struct {
	removable chaining.RemovableMap
	scope     []chaining.Cell
	value     chaining.Digit
	size      int
}

func (h *fishermanHint) RemovablePotentials() chaining.RemovableMap { return h.removable }

func (h *fishermanHint) RuleParents(source, current chaining.GridView) []*chaining.Potential {
	return chainDependentParents(source, current, h.scope)
}

func (h *fishermanHint) String() string {
	names := map[int]string{2: "X-Wing", 3: "Swordfish", 4: "Jellyfish"}
	name, ok := names[h.size]
	if !ok {
		name = "fish"
	}
	return name
}
