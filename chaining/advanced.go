package chaining

import (
	"context"
	"fmt"
	"sort"
)

// advancedExtension consults the engine's auxiliary rule list — the
// level-1 catalogue plus any nested Chaining instances the level allows —
// in order, stopping at the first rule that produces any implication.
// Each produced rule hint is turned into OFF-potentials whose parents are
// recovered from offSet, the accumulated set of off-potentials seen so far
// in the enclosing propagation.
func (e *Engine) advancedExtension(ctx context.Context, grid, source GridView, offSet *PotentialSet) ([]*Potential, error) {
	e.initOtherRules()

	for _, rule := range e.otherRules {
		select {
		case <-ctx.Done():
			return nil, &ChainError{Kind: Cancelled, Message: "advanced extension cancelled", Cause: ctx.Err()}
		default:
		}

		acc := &advancedAccumulator{grid: grid, source: source, offSet: offSet, mode: e.settings.FixedChainingMode()}
		if err := rule.ProduceHints(grid, acc); err != nil {
			return nil, err
		}
		if acc.err != nil {
			return nil, acc.err
		}
		if len(acc.result) > 0 {
			return acc.result, nil
		}
	}
	return nil, nil
}

// initOtherRules builds the engine's auxiliary rule list exactly once,
// mirroring the original engine's "otherRules == nil" lazy-init guard.
// Nested Chaining instances are fresh *Engine values, each with their own
// save buffer and rule list — never shared with the parent or with
// siblings.
func (e *Engine) initOtherRules() {
	e.rulesOnce.Do(func() {
		rules := append([]RuleProducer{}, e.config.AuxiliaryRules...)

		if e.config.Level < 4 {
			if e.config.Level >= 2 {
				rules = append(rules, e.newNestedRuleProducer(Config{Level: 0, Multiple: false, Dynamic: false}))
			}
			if e.config.Level >= 3 {
				rules = append(rules, e.newNestedRuleProducer(Config{Level: 0, Multiple: true, Dynamic: false}))
			}
		} else {
			rules = append(rules, e.newNestedRuleProducer(Config{
				Level: e.config.NestingLimit, Multiple: true, Dynamic: true,
			}))
		}

		e.otherRules = rules
	})
}

// newNestedRuleProducer wraps a freshly-constructed nested Engine as a
// RuleProducer: its GetHints output is fed, hint by hint, into the
// accumulator.
func (e *Engine) newNestedRuleProducer(cfg Config) RuleProducer {
	cfg.Parallel = false
	cfg.AuxiliaryRules = e.config.AuxiliaryRules
	cfg.Logger = e.config.Logger
	cfg.ExperimentalNestingSchedule = e.config.ExperimentalNestingSchedule
	nested := NewEngine(cfg, e.settings, e.config.Logger)
	return &nestedRuleProducer{engine: nested}
}

type nestedRuleProducer struct {
	engine *Engine
}

func (n *nestedRuleProducer) ProduceHints(grid GridView, acc HintAccumulator) error {
	return n.engine.GetHints(grid, hintSinkFunc(func(h Hint) error {
		acc.Add(h)
		return nil
	}))
}

// advancedAccumulator turns RuleHints into OFF-potentials whose parents are
// the hint's recovered premises.
type advancedAccumulator struct {
	grid, source GridView
	offSet       *PotentialSet
	mode         FixedChainingMode
	result       []*Potential
	err          error
}

func (a *advancedAccumulator) Add(hint RuleHint) {
	if a.err != nil {
		return
	}
	parents := hint.RuleParents(a.source, a.grid)
	if len(parents) == 0 {
		return // the rule holds independently of the chain; not useful as a link
	}
	removable := hint.RemovablePotentials()
	if !removableNonEmpty(removable) {
		return
	}

	for _, cell := range sortedRemovableCells(removable, a.grid, a.mode) {
		bits := removable[cell]
		for v := Digit(1); v <= 9; v++ {
			if !bits.Has(int(v)) {
				continue
			}
			toOff := &Potential{Cell: cell, Value: v, IsOn: false, Cause: CauseAdvanced, Explanation: hint.String()}
			if asHint, ok := hint.(Hint); ok {
				toOff.NestedChain = asHint
			}
			for _, parent := range parents {
				real := a.offSet.Get(parent)
				if real == nil {
					a.err = &ChainError{Kind: MissingParent, Message: fmt.Sprintf("no off-potential recorded for advanced rule parent %s", parent)}
					return
				}
				toOff.Parents = append(toOff.Parents, real)
			}
			a.result = append(a.result, toOff)
		}
	}
}

func removableNonEmpty(m RemovableMap) bool {
	for _, bits := range m {
		if bits != 0 {
			return true
		}
	}
	return false
}

// sortedRemovableCells orders a RemovableMap's keys. In DeterministicMode
// the order is canonical — ascending column, then row, then smallest
// candidate value — so two runs of the same rule on the same grid always
// emit the same Potentials in the same order. LegacyMode falls back to
// ascending cell index, a stable and simple choice since the original's
// raw hash-map iteration order was never a real contract.
func sortedRemovableCells(m RemovableMap, grid GridView, mode FixedChainingMode) []Cell {
	cells := make([]Cell, 0, len(m))
	for c := range m {
		cells = append(cells, c)
	}
	if mode == DeterministicMode {
		sort.Slice(cells, func(i, j int) bool {
			ci, cj := cells[i], cells[j]
			if ci.Col() != cj.Col() {
				return ci.Col() < cj.Col()
			}
			if ci.Row() != cj.Row() {
				return ci.Row() < cj.Row()
			}
			return smallestCandidate(grid, ci) < smallestCandidate(grid, cj)
		})
	} else {
		sort.Slice(cells, func(i, j int) bool { return cells[i] < cells[j] })
	}
	return cells
}

func smallestCandidate(grid GridView, c Cell) int {
	pos := grid.Candidates(c).NextSet(1)
	if pos < 0 {
		return 10
	}
	return pos
}
