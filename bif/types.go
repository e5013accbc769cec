// types.go — the result of building a graph.Graph from a BIF
// compilation unit: the graph itself plus the name/state metadata the
// parse discarded structure for but callers still need (for reporting,
// for evidence lookups by variable name).
package bif

// Names carries the human-readable metadata recovered from a BIF file
// alongside the graph.Graph it describes.
type Names struct {
	Network string

	// NodeNames[i] is the declared name of graph node i.
	NodeNames []string

	// NodeIndex maps a declared variable name back to its node index.
	NodeIndex map[string]int

	// StateNames[i] is the ordered list of state labels for node i, as
	// written in its "type discrete [n] { ... }" declaration.
	StateNames [][]string
}
