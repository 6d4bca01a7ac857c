package chaining

// PotentialSet is an insertion-ordered set of Potentials, keyed by
// (cell, value, polarity). Looking a Potential up returns the instance
// actually stored, not the lookup key — callers rely on this to recover a
// node's real parent chain from just its identity.
type PotentialSet struct {
	order []*Potential
	index map[potentialKey]int
}

// NewPotentialSet returns an empty set.
func NewPotentialSet() *PotentialSet {
	return &PotentialSet{index: make(map[potentialKey]int)}
}

// Len reports the number of stored Potentials.
func (s *PotentialSet) Len() int { return len(s.order) }

// Contains reports whether a Potential with p's key is already stored.
func (s *PotentialSet) Contains(p *Potential) bool {
	_, ok := s.index[p.key()]
	return ok
}

// Get returns the stored Potential with p's key, or nil if none.
func (s *PotentialSet) Get(p *Potential) *Potential {
	if i, ok := s.index[p.key()]; ok {
		return s.order[i]
	}
	return nil
}

// Add inserts p if no Potential with its key is already stored. Returns
// true if p was newly added.
func (s *PotentialSet) Add(p *Potential) bool {
	if s.Contains(p) {
		return false
	}
	s.index[p.key()] = len(s.order)
	s.order = append(s.order, p)
	return true
}

// Replace overwrites the stored Potential with the same key as old with
// new, keeping old's position in iteration order. old and new must share
// the same key. Used to keep the minimum-ancestor-count occurrence when the
// same on-potential is produced by more than one region rule.
func (s *PotentialSet) Replace(old, new *Potential) {
	if i, ok := s.index[old.key()]; ok {
		s.order[i] = new
	}
}

// Remove deletes the Potential with p's key, if present. Returns true if
// something was removed.
func (s *PotentialSet) Remove(p *Potential) bool {
	i, ok := s.index[p.key()]
	if !ok {
		return false
	}
	s.order = append(s.order[:i], s.order[i+1:]...)
	delete(s.index, p.key())
	for k, idx := range s.index {
		if idx > i {
			s.index[k] = idx - 1
		}
	}
	return true
}

// AddAll adds every Potential of other not already present, preserving this
// set's existing order for elements already present and appending new ones
// in other's order.
func (s *PotentialSet) AddAll(other *PotentialSet) {
	for _, p := range other.order {
		s.Add(p)
	}
}

// RetainIntersection reduces this set to only the Potentials also present
// (by key) in other, preserving this set's order.
func (s *PotentialSet) RetainIntersection(other *PotentialSet) {
	kept := s.order[:0]
	newIndex := make(map[potentialKey]int, len(s.order))
	for _, p := range s.order {
		if other.Contains(p) {
			newIndex[p.key()] = len(kept)
			kept = append(kept, p)
		}
	}
	s.order = kept
	s.index = newIndex
}

// Slice returns a copy of the stored Potentials in insertion order.
func (s *PotentialSet) Slice() []*Potential {
	out := make([]*Potential, len(s.order))
	copy(out, s.order)
	return out
}

// Clone returns an independent copy of s, sharing the underlying Potential
// pointers but not the set's internal slices/maps.
func (s *PotentialSet) Clone() *PotentialSet {
	clone := NewPotentialSet()
	clone.AddAll(s)
	return clone
}
