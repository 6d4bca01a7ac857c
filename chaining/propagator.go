package chaining

import "context"

// Contradiction is a pair of conjugate Potentials that both ended up in the
// same frontier — proof the starting assumption cannot hold.
type Contradiction struct {
	On  *Potential
	Off *Potential
}

// combinedAncestorCount is the tie-break score used to pick between several
// contradictions surfacing from the same sweep: fewer combined ancestors
// means a shorter, simpler chain.
func (c Contradiction) combinedAncestorCount() int {
	return c.On.AncestorCount() + c.Off.AncestorCount()
}

func selectMinAncestor(candidates []Contradiction) *Contradiction {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.combinedAncestorCount() < best.combinedAncestorCount() {
			best = c
		}
	}
	return &best
}

// doChaining is the core BFS propagator. It drains toOn/toOff one pending
// Potential at a time (ON-frontier items take priority over OFF-frontier
// ones), computing direct consequences with OnToOff/OffToOn, until either a
// contradiction surfaces or both frontiers run dry. When both frontiers run
// dry and the engine's level allows it, AdvancedExtension is consulted for
// further eliminations before giving up.
//
// The working grid is snapshotted into the engine's save buffer on entry
// and restored from it on every exit path — even when the engine is not
// dynamic, this scope discipline costs nothing (nothing will have changed)
// and guarantees dynamic and non-dynamic callers share one code path.
func (e *Engine) doChaining(ctx context.Context, grid GridView, toOn, toOff *PotentialSet) (*Contradiction, error) {
	e.ensureSaveGrid(grid)
	grid.CopyTo(e.saveGrid)
	defer e.saveGrid.CopyTo(grid)

	pendingOn := toOn.Slice()
	pendingOff := toOff.Slice()
	propagationFrontier.Observe(float64(len(pendingOn) + len(pendingOff)))
	deterministic := e.settings.FixedChainingMode() == DeterministicMode

	for len(pendingOn) > 0 || len(pendingOff) > 0 {
		select {
		case <-ctx.Done():
			return nil, &ChainError{Kind: Cancelled, Message: "propagation cancelled", Cause: ctx.Err()}
		default:
		}

		var found []Contradiction

		if len(pendingOn) > 0 {
			p := pendingOn[0]
			pendingOn = pendingOn[1:]
			for _, pOff := range OnToOff(grid, p, !e.config.Nishio) {
				conjOn := pOff.Conjugate()
				if existing := toOn.Get(conjOn); existing != nil {
					found = append(found, Contradiction{On: existing, Off: pOff})
					if !deterministic {
						return &found[0], nil
					}
					continue
				}
				if toOff.Add(pOff) {
					pendingOff = append(pendingOff, pOff)
				}
			}
		} else {
			p := pendingOff[0]
			pendingOff = pendingOff[1:]
			ons, err := OffToOn(grid, p, e.saveGrid, toOff, !e.config.Nishio, true, e.settings.FixedChainingMode())
			if err != nil {
				return nil, err
			}
			if e.config.Dynamic {
				grid.Eliminate(p.Cell, p.Value)
			}
			for _, pOn := range ons {
				conjOff := pOn.Conjugate()
				if existing := toOff.Get(conjOff); existing != nil {
					found = append(found, Contradiction{On: pOn, Off: existing})
					if !deterministic {
						return &found[0], nil
					}
					continue
				}
				if toOn.Add(pOn) {
					pendingOn = append(pendingOn, pOn)
				}
			}
		}

		if len(found) > 0 {
			contradictionsFound.Add(float64(len(found)))
			return selectMinAncestor(found), nil
		}

		if e.config.Level > 0 && len(pendingOn) == 0 && len(pendingOff) == 0 {
			extra, err := e.advancedExtension(ctx, grid, e.saveGrid, toOff)
			if err != nil {
				return nil, err
			}
			for _, pOff := range extra {
				if toOff.Add(pOff) {
					pendingOff = append(pendingOff, pOff)
				}
			}
		}
	}

	return nil, nil
}
