package rules

import "mvsolver/sudokuchains/chaining"

// chainDependentParents compares source (the grid before the enclosing
// chain's eliminations) against current (the grid as mutated so far) over
// scope, returning an off-Potential for every candidate scope lost between
// the two. An empty result means the rule's conclusion already follows
// from source alone — it does not depend on the chain, so it is not a
// useful link in one.
func chainDependentParents(source, current chaining.GridView, scope []chaining.Cell) []*chaining.Potential {
	var parents []*chaining.Potential
	for _, c := range scope {
		for v := chaining.Digit(1); v <= 9; v++ {
			if source.HasCandidate(c, v) && !current.HasCandidate(c, v) {
				parents = append(parents, chaining.NewPotential(c, v, false))
			}
		}
	}
	return parents
}

func regionCells(region chaining.Region) []chaining.Cell {
	cells := make([]chaining.Cell, 9)
	for i := 0; i < 9; i++ {
		cells[i] = region.Cell(i)
	}
	return cells
}
