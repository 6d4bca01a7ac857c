// Package grid is a reference GridView implementation for the chaining
// engine: a plain 9x9 board of placed values plus a per-cell candidate
// bitmask, the same uint16-over-1..9 representation
// wllclngn-muEmacs-extensions/go_sudoku/sudoku/constraints.go uses
// (valueMask := uint16(1 << value), bits.OnesCount16 for cardinality).
package grid

import (
	"fmt"

	"mvsolver/sudokuchains/chaining"
)

// FullCandidates is the bitmask with every value 1..9 set.
const FullCandidates = chaining.BitSet9(0x3FE)

// Grid is a concrete, independent GridView: 81 placed values and 81
// candidate bitmasks.
type Grid struct {
	values     [81]int
	candidates [81]chaining.BitSet9
}

// New returns an empty 9x9 grid: no values placed, every cell holding
// every candidate.
func New() *Grid {
	g := &Grid{}
	for i := range g.candidates {
		g.candidates[i] = FullCandidates
	}
	return g
}

// Place sets cell c to value v and removes v as a candidate from every
// cell that sees c (its block, row, and column). v must still have been a
// candidate of c.
func (g *Grid) Place(c chaining.Cell, v chaining.Digit) {
	g.values[c] = int(v)
	g.candidates[c] = 0
	for _, rt := range [...]chaining.RegionType{chaining.RegionBlock, chaining.RegionRow, chaining.RegionColumn} {
		region := g.RegionAt(rt, c)
		for i := 0; i < 9; i++ {
			other := region.Cell(i)
			if other != c {
				g.candidates[other] = g.candidates[other].Clear(int(v))
			}
		}
	}
}

func (g *Grid) CellValue(c chaining.Cell) int { return g.values[c] }

func (g *Grid) HasCandidate(c chaining.Cell, v chaining.Digit) bool {
	return g.candidates[c].Has(int(v))
}

func (g *Grid) Candidates(c chaining.Cell) chaining.BitSet9 { return g.candidates[c] }

func (g *Grid) Eliminate(c chaining.Cell, v chaining.Digit) {
	g.candidates[c] = g.candidates[c].Clear(int(v))
}

func (g *Grid) RegionAt(t chaining.RegionType, c chaining.Cell) chaining.Region {
	switch t {
	case chaining.RegionRow:
		return rowRegion{row: c.Row()}
	case chaining.RegionColumn:
		return columnRegion{col: c.Col()}
	default:
		return blockRegion{block: c.Block()}
	}
}

func (g *Grid) CopyTo(dst chaining.GridView) {
	other, ok := dst.(*Grid)
	if !ok {
		panic("grid: CopyTo requires a *grid.Grid destination")
	}
	other.values = g.values
	other.candidates = g.candidates
}

func (g *Grid) Equals(other chaining.GridView) bool {
	o, ok := other.(*Grid)
	if !ok {
		return false
	}
	return g.values == o.values && g.candidates == o.candidates
}

func (g *Grid) Clone() chaining.GridView {
	clone := &Grid{values: g.values, candidates: g.candidates}
	return clone
}

func (g *Grid) String() string {
	s := ""
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g.values[r*9+c]
			if v == 0 {
				s += "."
			} else {
				s += fmt.Sprintf("%d", v)
			}
		}
		s += "\n"
	}
	return s
}
