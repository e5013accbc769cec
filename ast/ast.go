// Package ast defines the binary abstract-syntax-tree node produced by
// the parser package, per spec §4.2.
//
// A Node carries a Kind tag, a string payload (Value), an integer
// payload (IntValue), a double payload (DoubleValue), and two children
// (Left, Right). List productions in the grammar are right-leaning
// chains: each list element links to the next through Right. The
// original C parser allocates these nodes with
// raw cross-pointers that must be freed recursively; here the tree is
// plain Go values owned by the garbage collector (per §9 design note),
// so there is no destroy/free operation.
package ast

// Kind tags the grammatical role of a Node.
type Kind int

// Node kinds, one per grammar production (or production family) in
// spec §4.2 that needs to be distinguished during the graph build walk.
const (
	KindCompilationUnit Kind = iota
	KindNetworkDeclaration
	KindPropertyList
	KindProperty
	KindVariableOrProbList
	KindVariableDeclaration
	KindVariableContent
	KindVariableDiscrete
	KindVariableValuesList
	KindProbabilityDeclaration
	KindProbabilityNamesList
	KindProbabilityContent
	KindProbabilityDefaultEntry
	KindProbabilityEntry
	KindProbabilityValuesList
	KindProbabilityTable
	KindFloatList
	KindWord
)

var kindNames = [...]string{
	"CompilationUnit", "NetworkDeclaration", "PropertyList", "Property",
	"VariableOrProbList", "VariableDeclaration", "VariableContent",
	"VariableDiscrete", "VariableValuesList", "ProbabilityDeclaration",
	"ProbabilityNamesList", "ProbabilityContent", "ProbabilityDefaultEntry",
	"ProbabilityEntry", "ProbabilityValuesList", "ProbabilityTable",
	"FloatList", "Word",
}

// String renders a human-readable name for k, used in diagnostics.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Node is one AST node: see package doc for the field semantics.
type Node struct {
	Kind        Kind
	Value       string
	IntValue    int64
	DoubleValue float64
	Left        *Node
	Right       *Node
}

// Words flattens a right-leaning WORD list (as built by
// probability_names_list / variable_values_list / probability_values)
// into a slice, in source order. A nil n yields an empty slice.
func Words(n *Node) []string {
	var out []string
	for cur := n; cur != nil; cur = cur.Right {
		if cur.Kind == KindWord {
			out = append(out, cur.Value)
			continue
		}
		// A list node holds its head word in Left and tail in Right.
		if cur.Left != nil && cur.Left.Kind == KindWord {
			out = append(out, cur.Left.Value)
		}
		if cur.Right == nil {
			break
		}
	}
	return out
}

// Floats flattens a right-leaning FLOATING_POINT_LITERAL list (as built
// by floating_point_list) into a slice, in source order.
func Floats(n *Node) []float64 {
	var out []float64
	for cur := n; cur != nil; cur = cur.Right {
		out = append(out, cur.DoubleValue)
		if cur.Right == nil {
			break
		}
	}
	return out
}
