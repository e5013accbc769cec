// errors.go — sentinel errors for the infer package.
package infer

import "errors"

var (
	// ErrCycleDetected is returned by Tree when the graph's level
	// assignment does not converge, meaning the graph is not acyclic
	// and tree propagation is the wrong algorithm for it.
	ErrCycleDetected = errors.New("infer: graph is not acyclic, use Loopy instead of Tree")

	// ErrEmptyGraph is returned by Tree and Loopy when the graph has no
	// nodes.
	ErrEmptyGraph = errors.New("infer: graph has no nodes")
)
