// errors.go — sentinel errors for the bif package, following the same
// policy as graph/errors.go: plain package-level sentinels, wrapped
// with %w at the call site rather than interpolated into the sentinel
// text itself.
package bif

import "errors"

var (
	// ErrUnknownVariable is returned when a probability block names a
	// child or parent that no variable declaration defined.
	ErrUnknownVariable = errors.New("bif: probability block references an undeclared variable")

	// ErrUnknownState is returned when an explicit probability entry
	// names a parent state that the parent's discrete declaration does
	// not list.
	ErrUnknownState = errors.New("bif: probability entry references an undeclared state")

	// ErrDimensionMismatch is returned when a table/entry/default row's
	// value count does not match its child variable's arity (or, for a
	// flat table, arity times the parent combination count).
	ErrDimensionMismatch = errors.New("bif: probability values do not match variable arity")

	// ErrNoVariables is returned when a compilation unit declares no
	// variables at all.
	ErrNoVariables = errors.New("bif: network declares no variables")

	// ErrMissingProbability is returned when a declared variable has no
	// matching probability block.
	ErrMissingProbability = errors.New("bif: variable has no probability block")

	// ErrDegenerateDistribution is never returned — it is logged as a
	// warning attribute when a joint-table row sums to zero and is
	// replaced with a uniform row, so the condition is still
	// identifiable by error value in log output without aborting the
	// build.
	ErrDegenerateDistribution = errors.New("bif: probability row has no mass, substituting uniform")
)
