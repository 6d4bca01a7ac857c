// Package rules is a reference RuleProducer catalogue for the chaining
// engine's AdvancedExtension: Locking (pointing pairs/triples), Hidden and
// Naked Sets, and Fisherman (X-Wing/Swordfish-family) candidate
// eliminations, grounded the way
// wllclngn-muEmacs-extensions/go_sudoku/sudoku/heuristics.go and
// strategies.go scan a grid for naked/hidden pairs over a bitmask
// candidate representation.
package rules

import "mvsolver/sudokuchains/chaining"

// Locking finds block/line interactions: when every remaining candidate
// position for a value in a block lies on a single row or column, the
// value can be removed from the rest of that row/column. The opposite
// direction (a line's positions confined to one block) is not searched.
// Locking(false) checks both rows and columns; the contradictionsOnly flag
// drops the column check, so Locking(true) finds block-to-row reductions
// only.
type Locking struct {
	contradictionsOnly bool
}

// NewLocking returns a Locking rule. contradictionsOnly true restricts the
// search to block-to-row reductions.
func NewLocking(contradictionsOnly bool) *Locking {
	return &Locking{contradictionsOnly: contradictionsOnly}
}

func (l *Locking) ProduceHints(grid chaining.GridView, acc chaining.HintAccumulator) error {
	for block := 0; block < 9; block++ {
		region := grid.RegionAt(chaining.RegionBlock, chaining.Cell(blockBaseCell(block)))
		for v := chaining.Digit(1); v <= 9; v++ {
			positions := region.PotentialPositions(grid, v)
			if positions.Count() < 2 {
				continue
			}
			if row, ok := singleRow(region, positions); ok {
				acc.Add(l.lineReduction(grid, chaining.RegionRow, row, v, region, positions))
			}
			if !l.contradictionsOnly {
				if col, ok := singleColumn(region, positions); ok {
					acc.Add(l.lineReduction(grid, chaining.RegionColumn, col, v, region, positions))
				}
			}
		}
	}
	return nil
}

func blockBaseCell(block int) int {
	return (block/3)*3*9 + (block%3)*3
}

func singleRow(region chaining.Region, positions chaining.BitSet9) (int, bool) {
	row := -1
	for i := 0; i < 9; i++ {
		if !positions.Has(i) {
			continue
		}
		r := region.Cell(i).Row()
		if row == -1 {
			row = r
		} else if r != row {
			return 0, false
		}
	}
	return row, row != -1
}

func singleColumn(region chaining.Region, positions chaining.BitSet9) (int, bool) {
	col := -1
	for i := 0; i < 9; i++ {
		if !positions.Has(i) {
			continue
		}
		c := region.Cell(i).Col()
		if col == -1 {
			col = c
		} else if c != col {
			return 0, false
		}
	}
	return col, col != -1
}

func (l *Locking) lineReduction(grid chaining.GridView, lineType chaining.RegionType, lineIndex int, v chaining.Digit, block chaining.Region, blockPositions chaining.BitSet9) *lockingHint {
	inBlock := make(map[chaining.Cell]bool)
	scope := regionCells(block)
	for i := 0; i < 9; i++ {
		if blockPositions.Has(i) {
			inBlock[block.Cell(i)] = true
		}
	}

	removable := make(chaining.RemovableMap)
	var line chaining.Region
	if lineType == chaining.RegionRow {
		line = grid.RegionAt(chaining.RegionRow, block.Cell(blockPositions.NextSet(0)))
	} else {
		line = grid.RegionAt(chaining.RegionColumn, block.Cell(blockPositions.NextSet(0)))
	}
	scope = append(scope, regionCells(line)...)
	for i := 0; i < 9; i++ {
		c := line.Cell(i)
		if inBlock[c] {
			continue
		}
		if grid.HasCandidate(c, v) {
			removable[c] = removable[c].Set(int(v))
		}
	}
	return &lockingHint{removable: removable, value: v, lineType: lineType, scope: scope}
}

type lockingHint struct {
	removable chaining.RemovableMap
	value     chaining.Digit
	lineType  chaining.RegionType
	scope     []chaining.Cell
}

func (h *lockingHint) RemovablePotentials() chaining.RemovableMap { return h.removable }

// RuleParents reports which candidates in the block/line scope this hint
// examined were removed by the chain so far (source vs current). A nil
// result means the conclusion already follows from source alone, and the
// hint is not useful as a chain link.
func (h *lockingHint) RuleParents(source, current chaining.GridView) []*chaining.Potential {
	return chainDependentParents(source, current, h.scope)
}

func (h *lockingHint) String() string {
	return "Locking: value " + string(rune('0'+h.value)) + " confined to one " + h.lineType.String()
}
