// errors.go — sentinel errors for the builder package.
//
// Error policy, kept from the teacher's builder/errors.go: only
// sentinel package-level variables are exposed; sentinels are never
// stringified with interpolated data at the definition site, callers
// branch with errors.Is, and implementations attach context via %w at
// the call site.
package builder

import "errors"

var (
	// ErrTooFewVertices indicates n (or, for Wheel, the ring size) is
	// below the requested topology's minimum.
	ErrTooFewVertices = errors.New("builder: vertex count too small for this topology")

	// ErrInvalidArity indicates a non-positive requested variable arity.
	ErrInvalidArity = errors.New("builder: arity must be positive")
)
