package chaining

import (
	"context"
	"testing"
)

func TestDoChainingRestoresGridOnExit(t *testing.T) {
	g := newFakeGrid()
	before := g.Clone()

	e := NewEngine(Config{Dynamic: true}, fakeSettings{}, nil)
	toOn := NewPotentialSet()
	toOff := NewPotentialSet()
	toOn.Add(NewPotential(0, 5, true))

	if _, err := e.doChaining(context.Background(), g, toOn, toOff); err != nil {
		t.Fatalf("doChaining: %v", err)
	}
	if !g.Equals(before) {
		t.Fatalf("expected doChaining to restore the grid to its pre-call state in dynamic mode")
	}
}

func TestSelectMinAncestorPicksSmallestCombinedCount(t *testing.T) {
	root := NewPotential(0, 1, true)
	shortOn := NewPotentialWithCause(1, 2, true, root, CauseNakedSingle, "")
	shortOff := NewPotentialWithCause(2, 3, false, root, CauseNakedSingle, "")

	deepMid := NewPotentialWithCause(3, 4, false, root, CauseNakedSingle, "")
	deepOn := NewPotentialWithCause(4, 5, true, deepMid, CauseNakedSingle, "")
	deepOff := NewPotentialWithCause(5, 6, false, deepMid, CauseNakedSingle, "")

	best := selectMinAncestor([]Contradiction{
		{On: deepOn, Off: deepOff},
		{On: shortOn, Off: shortOff},
	})
	if best.On != shortOn || best.Off != shortOff {
		t.Fatalf("expected selectMinAncestor to pick the shallower contradiction")
	}
}
