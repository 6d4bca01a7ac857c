package chaining

import "github.com/sirupsen/logrus"

// Config describes one chaining engine instance's behavior. It is a plain
// value: no file/env/flag concerns live here, only the knobs the algorithm
// itself needs.
type Config struct {
	// Multiple enables multiple forcing chains (binary + region drivers)
	// instead of the plain unary cycle/forcing-chain search.
	Multiple bool
	// Dynamic enables Dynamic Forcing Chains: the working grid is mutated
	// as OFF-potentials are derived, and AdvancedExtension may recurse.
	Dynamic bool
	// Nishio restricts the search to contradiction-only binary chaining.
	Nishio bool
	// Level gates which auxiliary rules and nested engines AdvancedExtension
	// consults. 0 disables AdvancedExtension entirely.
	Level int
	// NestingLimit bounds how deep a level-4-or-above dynamic nested engine
	// may itself recurse.
	NestingLimit int
	// Parallel requests per-starting-cell worker fan-out. Still overridden
	// to sequential when Level < 3 or Settings.NumThreads() == 1.
	Parallel bool
	// ExperimentalNestingSchedule is copied into nested engines and read
	// nowhere else: setting it has no effect, and the level schedule
	// implemented in advanced.go applies either way.
	ExperimentalNestingSchedule bool
	// AuxiliaryRules is the level-1 rule catalogue (Locking, HiddenSet,
	// NakedSet, Fisherman, ...) AdvancedExtension consults before any
	// nested Chaining instance. Supplied by the caller; this package has no
	// opinion on what rules exist, only on when to call them.
	AuxiliaryRules []RuleProducer
	// Logger receives structured diagnostic output. Nil-safe: defaults to a
	// discard logger.
	Logger *logrus.Logger
}

// Difficulty returns this configuration's difficulty score, or an
// IllegalConfig error if the configuration names nothing ratable (level 0,
// not multiple, not dynamic, not nishio).
func (c Config) Difficulty() (float64, error) {
	switch {
	case c.Nishio:
		return 7.5, nil
	case c.Multiple:
		return 8.0, nil
	case c.Dynamic || c.Level == 1:
		return 8.5, nil
	case c.Level >= 2:
		return 9.0 + 0.5*float64(c.Level-2), nil
	default:
		return 0, &ChainError{Kind: IllegalConfig, Message: "difficulty is undefined for a plain, non-multiple, non-dynamic, non-nishio engine at level 0"}
	}
}
