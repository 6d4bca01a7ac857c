// Package chaining implements a chaining inference engine for Sudoku
// solvers: cycles, forcing chains, binary and region chaining, and Dynamic
// Forcing Chains with nested recursion, driven over a bidirectional
// implication graph.
//
// The package owns none of the grid/candidate representation, the
// auxiliary pattern-rule catalogue, or any hint rendering/UI — those are
// external collaborators reached through GridView, RuleProducer and
// HintSink. See internal/grid and internal/rules for reference
// implementations.
package chaining
