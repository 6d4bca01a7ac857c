package chaining

import "context"

// hintsForCell runs the binary (single-value) and region chaining drivers
// for every candidate value of a starting cell, then — unless the engine is
// in Nishio mode — looks for a cell reduction: a Potential common to every
// value's consequence set, which must hold (or must not) regardless of
// which candidate the cell turns out to hold.
func (e *Engine) hintsForCell(ctx context.Context, grid GridView, cell Cell, cardinality int) ([]Hint, error) {
	var hints []Hint

	valueToOn := make(map[Digit]*PotentialSet)
	valueToOff := make(map[Digit]*PotentialSet)
	var cellToOn, cellToOff *PotentialSet

	for v := Digit(1); v <= 9; v++ {
		if !grid.HasCandidate(cell, v) {
			continue
		}
		select {
		case <-ctx.Done():
			return nil, &ChainError{Kind: Cancelled, Message: "cell chaining cancelled", Cause: ctx.Err()}
		default:
		}

		pOn := NewPotential(cell, v, true)
		pOff := NewPotential(cell, v, false)
		onToOn := NewPotentialSet()
		onToOff := NewPotentialSet()

		doReduction := cardinality >= 3 && !e.config.Nishio && e.config.Dynamic
		doContradiction := e.config.Dynamic || e.config.Nishio

		binHints, err := e.doBinaryChaining(ctx, grid, pOn, pOff, onToOn, onToOff, doReduction, doContradiction)
		if err != nil {
			return nil, err
		}
		hints = append(hints, binHints...)

		if !e.config.Nishio {
			regionHints, err := e.doRegionChainings(ctx, grid, cell, v, onToOn, onToOff)
			if err != nil {
				return nil, err
			}
			hints = append(hints, regionHints...)
		}

		valueToOn[v] = onToOn
		valueToOff[v] = onToOff
		if cellToOn == nil {
			cellToOn = onToOn.Clone()
			cellToOff = onToOff.Clone()
		} else {
			cellToOn.RetainIntersection(onToOn)
			cellToOff.RetainIntersection(onToOff)
		}
	}

	if !e.config.Nishio && cellToOn != nil && (cardinality == 2 || (e.config.Multiple && cardinality > 2)) {
		for _, p := range cellToOn.Slice() {
			hint := e.buildCellReductionHint(grid, cell, p, valueToOn)
			if hint.IsWorth() {
				hints = append(hints, hint)
			}
		}
		for _, p := range cellToOff.Slice() {
			hint := e.buildCellReductionHint(grid, cell, p, valueToOff)
			if hint.IsWorth() {
				hints = append(hints, hint)
			}
		}
	}

	return hints, nil
}

// doBinaryChaining propagates both pOn and its conjugate pOff and reports:
// a contradiction hint when assuming either one leads to an impossibility
// (when doContradiction is set), and, when doReduction is set, a reduction
// hint for every Potential both assumptions agree on.
func (e *Engine) doBinaryChaining(ctx context.Context, grid GridView, pOn, pOff *Potential, onToOn, onToOff *PotentialSet, doReduction, doContradiction bool) ([]Hint, error) {
	var hints []Hint
	offToOn := NewPotentialSet()
	offToOff := NewPotentialSet()

	onToOn.Add(pOn)
	contradictionFromOn, err := e.doChaining(ctx, grid, onToOn, onToOff)
	if err != nil {
		return nil, err
	}
	if doContradiction && contradictionFromOn != nil {
		// Assuming pOn holds is impossible, so pOn's value cannot occur here.
		hint := e.buildChainingOffHint(contradictionFromOn.On, contradictionFromOn.Off, pOn, pOn, true)
		if hint.IsWorth() {
			hints = append(hints, hint)
		}
	}

	offToOff.Add(pOff)
	contradictionFromOff, err := e.doChaining(ctx, grid, offToOn, offToOff)
	if err != nil {
		return nil, err
	}
	if doContradiction && contradictionFromOff != nil {
		// Assuming pOn does not hold is impossible, so pOn's value must occur here.
		hint := e.buildChainingOnHint(grid, contradictionFromOff.On, contradictionFromOff.Off, pOff, pOff, true)
		if hint.IsWorth() {
			hints = append(hints, hint)
		}
	}

	if doReduction {
		for _, pFromOn := range onToOn.Slice() {
			if pFromOff := offToOn.Get(pFromOn); pFromOff != nil {
				hint := e.buildChainingOnHint(grid, pFromOn, pFromOff, pOn, pFromOn, false)
				if hint.IsWorth() {
					hints = append(hints, hint)
				}
			}
		}
		for _, pFromOn := range onToOff.Slice() {
			if pFromOff := offToOff.Get(pFromOn); pFromOff != nil {
				hint := e.buildChainingOffHint(pFromOn, pFromOff, pOff, pFromOff, false)
				if hint.IsWorth() {
					hints = append(hints, hint)
				}
			}
		}
	}

	return hints, nil
}

// doRegionChainings looks, for each region type containing cell, at every
// position still carrying value. When exactly two positions remain (or
// more than two in Multiple mode), it propagates an ON assumption from
// each position and intersects their consequence sets: anything every
// position's assumption agrees on is forced regardless of which position
// actually holds the value. Only the lowest-indexed candidate position in
// the region does this work, so a region is never processed more than
// once across its candidate cells.
func (e *Engine) doRegionChainings(ctx context.Context, grid GridView, cell Cell, value Digit, onToOn, onToOff *PotentialSet) ([]Hint, error) {
	var hints []Hint

	for _, rt := range [...]RegionType{RegionBlock, RegionRow, RegionColumn} {
		region := grid.RegionAt(rt, cell)
		positions := region.PotentialPositions(grid, value)
		cardinality := positions.Count()
		if !(cardinality == 2 || (e.config.Multiple && cardinality > 2)) {
			continue
		}
		firstPos := positions.NextSet(0)
		if region.Cell(firstPos) != cell {
			continue // a lower-indexed cell in the region already did this work
		}

		posToOn := make(map[int]*PotentialSet)
		posToOff := make(map[int]*PotentialSet)
		var regionToOn, regionToOff *PotentialSet

		for pos := positions.NextSet(0); pos >= 0; pos = positions.NextSet(pos + 1) {
			select {
			case <-ctx.Done():
				return nil, &ChainError{Kind: Cancelled, Message: "region chaining cancelled", Cause: ctx.Err()}
			default:
			}

			otherCell := region.Cell(pos)
			var posOn, posOff *PotentialSet
			if otherCell == cell {
				posOn, posOff = onToOn, onToOff
			} else {
				posOn = NewPotentialSet()
				posOff = NewPotentialSet()
				posOn.Add(NewPotential(otherCell, value, true))
				if _, err := e.doChaining(ctx, grid, posOn, posOff); err != nil {
					return nil, err
				}
			}
			posToOn[pos] = posOn
			posToOff[pos] = posOff
			if regionToOn == nil {
				regionToOn = posOn.Clone()
				regionToOff = posOff.Clone()
			} else {
				regionToOn.RetainIntersection(posOn)
				regionToOff.RetainIntersection(posOff)
			}
		}

		for _, p := range regionToOn.Slice() {
			hint := e.buildRegionReductionHint(grid, region, rt, value, p, posToOn)
			if hint.IsWorth() {
				hints = append(hints, hint)
			}
		}
		for _, p := range regionToOff.Slice() {
			hint := e.buildRegionReductionHint(grid, region, rt, value, p, posToOff)
			if hint.IsWorth() {
				hints = append(hints, hint)
			}
		}
	}

	return hints, nil
}
