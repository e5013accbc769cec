// errors.go — sentinel errors for the graph package.
//
// Error policy, following builder/errors.go's convention: sentinels are
// package-level vars, never stringified with interpolated data at the
// definition site; callers use errors.Is and implementations attach
// context with %w at the call site.
package graph

import "errors"

var (
	// ErrNodeIndexOutOfRange is returned when a node index is invalid.
	ErrNodeIndexOutOfRange = errors.New("graph: node index out of range")

	// ErrStateLengthMismatch is returned when a state vector's length
	// does not match the node's declared arity.
	ErrStateLengthMismatch = errors.New("graph: state vector length mismatch")

	// ErrDimensionMismatch is returned when an edge's declared x/y
	// dimensions do not match its endpoints' arities (spec §7,
	// BUILD_DIMENSION_MISMATCH).
	ErrDimensionMismatch = errors.New("graph: edge dimension mismatch")

	// ErrTooManyStates is returned when a node's arity exceeds MaxStates.
	ErrTooManyStates = errors.New("graph: variable arity exceeds MaxStates")

	// ErrVerticesIncomplete is returned when an operation requiring a
	// fully populated vertex arena (e.g. incidence setup) runs before
	// CurrentNumVertices reaches TotalNumVertices.
	ErrVerticesIncomplete = errors.New("graph: not all declared vertices have been added")

	// ErrTooManyEdges is returned when AddEdge would exceed the edge
	// arena sized by New.
	ErrTooManyEdges = errors.New("graph: edge arena exhausted")

	// ErrTooManyVertices is returned when AddNode would exceed the
	// vertex arena sized by New.
	ErrTooManyVertices = errors.New("graph: vertex arena exhausted")

	// ErrLevelsDidNotConverge is returned by Levels when BFS from the
	// degree<=1 frontier leaves some node unreached, meaning the graph
	// is not a single connected acyclic structure.
	ErrLevelsDidNotConverge = errors.New("graph: level assignment did not reach every node")
)
