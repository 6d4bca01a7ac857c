package chaining

import "context"

// doUnaryChaining searches, from a single starting ON assumption, for
// cycles (the assumption's own consequences loop back to it) and forcing
// chains (the assumption, or its negation, leads to its own conjugate, so
// that conjugate holds). This is the level-0, non-multiple, non-dynamic engine's only
// driver: it never mutates the grid and never consults AdvancedExtension.
func (e *Engine) doUnaryChaining(ctx context.Context, grid GridView, pOn *Potential, yChainEnabled, xChainEnabled bool) ([]Hint, error) {
	if grid.Candidates(pOn.Cell).Count() > 2 && !xChainEnabled {
		return nil, nil
	}

	var cycleTargets []*Potential
	var chainTargets []*Potential

	onSet := NewPotentialSet()
	offSet := NewPotentialSet()
	onSet.Add(pOn)
	if err := e.doCycles(ctx, grid, onSet, offSet, yChainEnabled, xChainEnabled, &cycleTargets, pOn); err != nil {
		return nil, err
	}

	if xChainEnabled {
		onSet = NewPotentialSet()
		offSet = NewPotentialSet()
		onSet.Add(pOn)
		if err := e.doForcingChains(ctx, grid, onSet, offSet, yChainEnabled, &chainTargets, pOn); err != nil {
			return nil, err
		}

		pOff := NewPotential(pOn.Cell, pOn.Value, false)
		onSet = NewPotentialSet()
		offSet = NewPotentialSet()
		offSet.Add(pOff)
		if err := e.doForcingChains(ctx, grid, onSet, offSet, yChainEnabled, &chainTargets, pOff); err != nil {
			return nil, err
		}
	}

	var hints []Hint
	for _, dstOn := range cycleTargets {
		dstOff := reverseCycle(dstOn)
		hint := e.buildCycleHint(grid, dstOn, dstOff, yChainEnabled, xChainEnabled)
		if hint.IsWorth() {
			hints = append(hints, hint)
		}
	}
	for _, target := range chainTargets {
		hint := e.buildForcingChainHint(grid, target, yChainEnabled, xChainEnabled)
		if hint.IsWorth() {
			hints = append(hints, hint)
		}
	}
	return hints, nil
}

// doCycles runs the BFS that looks for the starting potential reappearing
// in its own frontier after at least two full on/off round-trips (length
// >= 4 half-steps). Only first-time nodes are enqueued in either frontier;
// an off-potential equal to an ancestor of the on-potential producing it is
// dropped (it would walk back the way the search came from). On-potentials
// are not filtered this way, so the source itself can be produced again.
func (e *Engine) doCycles(ctx context.Context, grid GridView, toOn, toOff *PotentialSet, yChain, xChain bool, cycles *[]*Potential, source *Potential) error {
	pendingOn := toOn.Slice()
	pendingOff := toOff.Slice()
	length := 0

	for len(pendingOn) > 0 || len(pendingOff) > 0 {
		select {
		case <-ctx.Done():
			return &ChainError{Kind: Cancelled, Message: "cycle search cancelled", Cause: ctx.Err()}
		default:
		}

		length++
		for len(pendingOn) > 0 {
			p := pendingOn[0]
			pendingOn = pendingOn[1:]
			for _, pOff := range OnToOff(grid, p, yChain) {
				if isAncestor(p, pOff) {
					continue
				}
				if toOff.Add(pOff) {
					pendingOff = append(pendingOff, pOff)
				}
			}
		}

		length++
		for len(pendingOff) > 0 {
			p := pendingOff[0]
			pendingOff = pendingOff[1:]
			ons, err := OffToOn(grid, p, grid, toOff, yChain, xChain, e.settings.FixedChainingMode())
			if err != nil {
				return err
			}
			for _, pOn := range ons {
				if length >= 4 && pOn.Equals(source) {
					*cycles = append(*cycles, pOn)
				}
				if toOn.Add(pOn) {
					pendingOn = append(pendingOn, pOn)
				}
			}
		}
	}
	return nil
}

// doForcingChains runs the BFS that looks for the conjugate of source
// reappearing anywhere in the opposite frontier — proof that source's
// assumption leads to its own negation, so that negation holds.
func (e *Engine) doForcingChains(ctx context.Context, grid GridView, toOn, toOff *PotentialSet, yChain bool, chains *[]*Potential, source *Potential) error {
	pendingOn := toOn.Slice()
	pendingOff := toOff.Slice()

	for len(pendingOn) > 0 || len(pendingOff) > 0 {
		select {
		case <-ctx.Done():
			return &ChainError{Kind: Cancelled, Message: "forcing chain search cancelled", Cause: ctx.Err()}
		default:
		}

		for len(pendingOn) > 0 {
			p := pendingOn[0]
			pendingOn = pendingOn[1:]
			for _, pOff := range OnToOff(grid, p, yChain) {
				if pOff.Conjugate().Equals(source) && !containsPotential(*chains, pOff) {
					*chains = append(*chains, pOff)
				}
				if toOff.Add(pOff) {
					pendingOff = append(pendingOff, pOff)
				}
			}
		}

		for len(pendingOff) > 0 {
			p := pendingOff[0]
			pendingOff = pendingOff[1:]
			ons, err := OffToOn(grid, p, grid, toOff, yChain, true, e.settings.FixedChainingMode())
			if err != nil {
				return err
			}
			for _, pOn := range ons {
				if pOn.Conjugate().Equals(source) && !containsPotential(*chains, pOn) {
					*chains = append(*chains, pOn)
				}
				if toOn.Add(pOn) {
					pendingOn = append(pendingOn, pOn)
				}
			}
		}
	}
	return nil
}

func containsPotential(list []*Potential, p *Potential) bool {
	for _, q := range list {
		if q.Equals(p) {
			return true
		}
	}
	return false
}

// reverseCycle rebuilds a cycle as the reversed, polarity-flipped chain
// starting from the same node, so the cycle can be reported both forward
// and backward.
func reverseCycle(dstOn *Potential) *Potential {
	var chain []*Potential
	explanation := ""
	cur := dstOn
	for cur != nil {
		rev := &Potential{Cell: cur.Cell, Value: cur.Value, IsOn: !cur.IsOn, Cause: cur.Cause, Explanation: explanation}
		explanation = cur.Explanation
		chain = append([]*Potential{rev}, chain...)
		if len(cur.Parents) > 0 {
			cur = cur.Parents[0]
		} else {
			cur = nil
		}
	}
	var prev *Potential
	for _, rev := range chain {
		if prev != nil {
			prev.Parents = append(prev.Parents, rev)
		}
		prev = rev
	}
	return chain[0]
}
