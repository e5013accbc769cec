// builder.go — two-pass BIF-to-graph.Graph builder.
//
// Pass one walks the parsed compilation unit purely to count vertices
// and edges (graph.New needs both arena sizes up front, per
// original_source/src/graph/graph.c's create_graph). Pass two
// re-walks the same tree to materialize nodes, project each
// probability block's conditional table onto one edge CPT per parent,
// and add the resulting edges.
package bif

import (
	"fmt"
	"io"
	"log/slog"

	"gonum.org/v1/gonum/mat"

	"github.com/arlenvance/beliefprop/ast"
	"github.com/arlenvance/beliefprop/graph"
	"github.com/arlenvance/beliefprop/parser"
)

// Parse reads r in full, parses it, and builds a graph.Graph from the
// result in one call — the lexer+parser+builder combined entry point.
func Parse(r io.Reader) (*graph.Graph, *Names, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	root, err := parser.Parse(src)
	if err != nil {
		return nil, nil, err
	}
	return Build(root)
}

type varDecl struct {
	name   string
	arity  int
	states []string
}

type probDecl struct {
	child   string
	parents []string
	node    *ast.Node // the ProbabilityDeclaration node, for entries
}

// Build walks a parsed compilation unit and produces a frozen
// graph.Graph plus its name/state metadata.
func Build(root *ast.Node) (*graph.Graph, *Names, error) {
	network := ""
	if root.Left != nil {
		network = root.Left.Value
	}

	vars, probs := collectDecls(root.Right)
	if len(vars) == 0 {
		return nil, nil, ErrNoVariables
	}

	nodeIndex := make(map[string]int, len(vars))
	for i, v := range vars {
		nodeIndex[v.name] = i
	}

	// Last-block-wins: keep only the final probability block per child.
	byChild := make(map[string]probDecl, len(probs))
	for _, p := range probs {
		if _, ok := nodeIndex[p.child]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownVariable, p.child)
		}
		byChild[p.child] = p
	}

	numEdges := 0
	for _, v := range vars {
		p, ok := byChild[v.name]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingProbability, v.name)
		}
		numEdges += len(p.parents)
	}

	g := graph.New(len(vars), numEdges)
	stateNames := make([][]string, len(vars))
	for _, v := range vars {
		if _, err := g.AddNode(v.name, v.arity); err != nil {
			return nil, nil, fmt.Errorf("bif: adding variable %s: %w", v.name, err)
		}
		stateNames[nodeIndex[v.name]] = v.states
	}

	for _, v := range vars {
		p := byChild[v.name]
		childIdx := nodeIndex[v.name]
		childArity := v.arity

		parentIdx := make([]int, len(p.parents))
		parentArity := make([]int, len(p.parents))
		for i, name := range p.parents {
			idx, ok := nodeIndex[name]
			if !ok {
				return nil, nil, fmt.Errorf("%w: %s (parent of %s)", ErrUnknownVariable, name, v.name)
			}
			parentIdx[i] = idx
			parentArity[i] = vars[idx].arity
		}

		joint, err := buildJointTable(p.node, childArity, parentArity, stateNames, parentIdx, v.name)
		if err != nil {
			return nil, nil, err
		}

		if len(p.parents) == 0 {
			if err := g.SetNodeState(childIdx, joint[0]); err != nil {
				return nil, nil, fmt.Errorf("bif: setting prior for %s: %w", v.name, err)
			}
			continue
		}

		for pi, parent := range p.parents {
			cpt := projectParent(joint, parentArity, pi, parentArity[pi], childArity)
			dense := mat.NewDense(parentArity[pi], childArity, cpt)
			if _, err := g.AddEdge(parentIdx[pi], childIdx, dense); err != nil {
				return nil, nil, fmt.Errorf("bif: adding edge %s -> %s: %w", parent, v.name, err)
			}
		}
	}

	if err := g.BuildSrcIncidence(); err != nil {
		return nil, nil, err
	}
	if err := g.BuildDestIncidence(); err != nil {
		return nil, nil, err
	}

	names := &Names{
		Network:    network,
		NodeNames:  make([]string, len(vars)),
		NodeIndex:  nodeIndex,
		StateNames: stateNames,
	}
	for _, v := range vars {
		names.NodeNames[nodeIndex[v.name]] = v.name
	}
	return g, names, nil
}

// collectDecls walks the right-leaning VariableOrProbList chain once,
// splitting it into ordered variable and probability declarations.
func collectDecls(n *ast.Node) ([]varDecl, []probDecl) {
	var vars []varDecl
	var probs []probDecl
	for cur := n; cur != nil; cur = cur.Right {
		switch cur.Kind {
		case ast.KindVariableDeclaration:
			vars = append(vars, parseVarDecl(cur))
		case ast.KindProbabilityDeclaration:
			probs = append(probs, parseProbDecl(cur))
		}
	}
	return vars, probs
}

func parseVarDecl(n *ast.Node) varDecl {
	v := varDecl{name: n.Value}
	for cur := n.Left; cur != nil; cur = cur.Right {
		if cur.Kind == ast.KindVariableDiscrete {
			v.arity = int(cur.IntValue)
			v.states = ast.Words(cur.Left)
		}
	}
	return v
}

func parseProbDecl(n *ast.Node) probDecl {
	pair := n.Left // KindProbabilityNamesList: Left=names chain, Right=entries chain
	names := ast.Words(pair.Left)
	p := probDecl{node: n}
	if len(names) == 0 {
		return p
	}
	p.child = names[0]
	if len(names) > 1 {
		p.parents = names[2:] // names[1] is the "|" separator word
	}
	return p
}

// buildJointTable produces the numCombos x childArity joint table for
// one probability block, where numCombos is the product of
// parentArity. Row ordering is mixed-radix with the first parent
// slowest-varying and the last fastest, matching the canonical BIF
// table layout.
func buildJointTable(decl *ast.Node, childArity int, parentArity []int, stateNames [][]string, parentIdx []int, childName string) ([][]float64, error) {
	numCombos := 1
	for _, a := range parentArity {
		numCombos *= a
	}

	joint := make([][]float64, numCombos)
	for i := range joint {
		joint[i] = uniformRow(childArity)
	}

	pair := decl.Left

	// First pass: default/table entries establish a baseline, in source
	// order (a later default or table block overwrites an earlier one).
	for cur := pair.Right; cur != nil; cur = cur.Right {
		switch cur.Kind {
		case ast.KindProbabilityDefaultEntry:
			vals := ast.Floats(cur.Left)
			if len(vals) != childArity {
				return nil, fmt.Errorf("%w: default entry for %s", ErrDimensionMismatch, childName)
			}
			for i := range joint {
				joint[i] = append([]float64(nil), vals...)
			}

		case ast.KindProbabilityTable:
			vals := ast.Floats(cur.Left)
			if len(vals) != numCombos*childArity {
				return nil, fmt.Errorf("%w: table for %s", ErrDimensionMismatch, childName)
			}
			for i := range joint {
				joint[i] = append([]float64(nil), vals[i*childArity:(i+1)*childArity]...)
			}
		}
	}

	// Second pass: explicit per-combination entries always override the
	// baseline, regardless of where they appeared relative to it.
	for cur := pair.Right; cur != nil; cur = cur.Right {
		if cur.Kind != ast.KindProbabilityEntry {
			continue
		}
		entryPair := cur.Left // KindProbabilityValuesList: Left=state labels, Right=values
		labels := ast.Words(entryPair.Left)
		vals := ast.Floats(entryPair.Right)
		if len(vals) != childArity {
			return nil, fmt.Errorf("%w: entry for %s", ErrDimensionMismatch, childName)
		}
		if len(labels) != len(parentArity) {
			return nil, fmt.Errorf("%w: entry for %s names %d states, expected %d", ErrDimensionMismatch, childName, len(labels), len(parentArity))
		}
		combo, err := comboIndex(labels, parentIdx, stateNames, parentArity)
		if err != nil {
			return nil, err
		}
		joint[combo] = append([]float64(nil), vals...)
	}

	for i, row := range joint {
		s := sum(row)
		if s == 0 {
			slog.Warn("substituting uniform row for degenerate probability",
				"error", ErrDegenerateDistribution, "variable", childName, "combo", i)
			joint[i] = uniformRow(childArity)
			continue
		}
		for c := range row {
			row[c] /= s
		}
	}
	return joint, nil
}

// comboIndex resolves a parenthesized entry's parent-state labels to a
// row index in the mixed-radix joint table.
func comboIndex(labels []string, parentIdx []int, stateNames [][]string, parentArity []int) (int, error) {
	idx := 0
	for i, label := range labels {
		states := stateNames[parentIdx[i]]
		pos := -1
		for si, s := range states {
			if s == label {
				pos = si
				break
			}
		}
		if pos == -1 {
			return 0, fmt.Errorf("%w: %s", ErrUnknownState, label)
		}
		idx = idx*parentArity[i] + pos
	}
	return idx, nil
}

// projectParent averages the joint table's rows into an
// parentArity[parentPos]-by-childArity CPT for one parent, by grouping
// rows that share the same state of that parent and averaging them —
// a uniform marginalization over the other parents.
func projectParent(joint [][]float64, parentArity []int, parentPos, thisArity, childArity int) []float64 {
	cpt := make([][]float64, thisArity)
	counts := make([]int, thisArity)
	for i := range cpt {
		cpt[i] = make([]float64, childArity)
	}

	for row, state := range enumerateParentState(parentArity, parentPos, len(joint)) {
		for c := 0; c < childArity; c++ {
			cpt[state][c] += joint[row][c]
		}
		counts[state]++
	}
	for s := 0; s < thisArity; s++ {
		if counts[s] == 0 {
			continue
		}
		for c := 0; c < childArity; c++ {
			cpt[s][c] /= float64(counts[s])
		}
	}

	flat := make([]float64, thisArity*childArity)
	for s := 0; s < thisArity; s++ {
		copy(flat[s*childArity:(s+1)*childArity], cpt[s])
	}
	return flat
}

// enumerateParentState returns, for each joint-table row index, the
// state (0..arity-1) that parentPos held in that row, given the
// mixed-radix row ordering buildJointTable used.
func enumerateParentState(parentArity []int, parentPos, numRows int) []int {
	out := make([]int, numRows)
	stride := 1
	for i := parentPos + 1; i < len(parentArity); i++ {
		stride *= parentArity[i]
	}
	arity := parentArity[parentPos]
	for row := 0; row < numRows; row++ {
		out[row] = (row / stride) % arity
	}
	return out
}

func uniformRow(n int) []float64 {
	row := make([]float64, n)
	p := 1.0 / float64(n)
	for i := range row {
		row[i] = p
	}
	return row
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}
