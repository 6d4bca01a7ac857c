package chaining

// OnToOff computes the direct consequences of a Potential being ON: the
// cell loses every other candidate (a Y-link, when yChainEnabled), and
// every other cell of its block, row, and column that still carries the
// value loses it (X-links). Results are emitted in a fixed, deterministic
// order: Y-link values ascending, then block positions ascending, then row
// positions ascending, then column positions ascending — with row/column
// cells already reached through the block skipped, so a cell reachable by
// more than one region only ever appears once, attributed to the block.
func OnToOff(grid GridView, p *Potential, yChainEnabled bool) []*Potential {
	var result []*Potential

	if yChainEnabled {
		cands := grid.Candidates(p.Cell)
		for v := Digit(1); v <= 9; v++ {
			if v == p.Value || !cands.Has(int(v)) {
				continue
			}
			result = append(result, NewPotentialWithCause(p.Cell, v, false, p,
				CauseNakedSingle, "the cell can hold only one value"))
		}
	}

	seenInBlock := make(map[Cell]bool)
	block := grid.RegionAt(RegionBlock, p.Cell)
	blockPositions := block.PotentialPositions(grid, p.Value)
	for i := 0; i < 9; i++ {
		if !blockPositions.Has(i) {
			continue
		}
		c := block.Cell(i)
		if c == p.Cell {
			continue
		}
		seenInBlock[c] = true
		result = append(result, NewPotentialWithCause(c, p.Value, false, p,
			CauseHiddenBlock, "the value can occur only once in the block"))
	}

	row := grid.RegionAt(RegionRow, p.Cell)
	rowPositions := row.PotentialPositions(grid, p.Value)
	for i := 0; i < 9; i++ {
		if !rowPositions.Has(i) {
			continue
		}
		c := row.Cell(i)
		if c == p.Cell || seenInBlock[c] {
			continue
		}
		result = append(result, NewPotentialWithCause(c, p.Value, false, p,
			CauseHiddenRow, "the value can occur only once in the row"))
	}

	col := grid.RegionAt(RegionColumn, p.Cell)
	colPositions := col.PotentialPositions(grid, p.Value)
	for i := 0; i < 9; i++ {
		if !colPositions.Has(i) {
			continue
		}
		c := col.Cell(i)
		if c == p.Cell || seenInBlock[c] {
			continue
		}
		result = append(result, NewPotentialWithCause(c, p.Value, false, p,
			CauseHiddenColumn, "the value can occur only once in the column"))
	}

	return result
}
