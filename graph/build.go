// build.go — incremental node/edge construction, mirroring the
// original's graph_add_node/graph_add_edge pair.
package graph

import (
	"gonum.org/v1/gonum/mat"
)

// AddNode appends a new variable to the graph and returns its index.
// States is initialized to a uniform distribution over numVariables
// states; callers with an explicit prior (BIF probability blocks with
// no parents) overwrite it with SetNodeState.
func (g *Graph) AddNode(name string, numVariables int) (int, error) {
	if g.CurrentNumVertices >= g.TotalNumVertices {
		return 0, ErrTooManyVertices
	}
	if numVariables > MaxStates {
		return 0, ErrTooManyStates
	}

	uniform := make([]float64, numVariables)
	p := 1.0 / float64(numVariables)
	for i := range uniform {
		uniform[i] = p
	}

	idx := g.CurrentNumVertices
	g.Nodes = append(g.Nodes, &Node{
		Index:        idx,
		Name:         name,
		NumVariables: numVariables,
		States:       uniform,
	})
	g.CurrentNumVertices++
	return idx, nil
}

// AddObservedNode is AddNode followed by SetNodeState with Observed set,
// mirroring the original's graph_add_and_set_node_state convenience.
func (g *Graph) AddObservedNode(name string, state []float64) (int, error) {
	idx, err := g.AddNode(name, len(state))
	if err != nil {
		return 0, err
	}
	if err := g.SetNodeState(idx, state); err != nil {
		return 0, err
	}
	g.Nodes[idx].Observed = true
	return idx, nil
}

// SetNodeState overwrites a node's marginal/evidence vector in place.
func (g *Graph) SetNodeState(index int, state []float64) error {
	if index < 0 || index >= len(g.Nodes) {
		return ErrNodeIndexOutOfRange
	}
	n := g.Nodes[index]
	if len(state) != n.NumVariables {
		return ErrStateLengthMismatch
	}
	copy(n.States, state)
	return nil
}

// AddEdge appends a directed edge src -> dest with the given joint CPT,
// populating both parity buffers with independently allocated message
// vectors that share the same (immutable) Joint matrix.
func (g *Graph) AddEdge(src, dest int, joint *mat.Dense) (int, error) {
	if g.CurrentNumEdges >= g.TotalNumEdges {
		return 0, ErrTooManyEdges
	}
	if src < 0 || src >= len(g.Nodes) || dest < 0 || dest >= len(g.Nodes) {
		return 0, ErrNodeIndexOutOfRange
	}
	xdim, ydim := joint.Dims()
	if xdim != g.Nodes[src].NumVariables || ydim != g.Nodes[dest].NumVariables {
		return 0, ErrDimensionMismatch
	}

	idx := g.CurrentNumEdges
	g.Edges = append(g.Edges, &Edge{
		Index: idx, SrcIndex: src, DestIndex: dest,
		XDim: xdim, YDim: ydim, Joint: joint,
		Message: uniformVector(ydim),
	})
	g.PrevEdges = append(g.PrevEdges, &Edge{
		Index: idx, SrcIndex: src, DestIndex: dest,
		XDim: xdim, YDim: ydim, Joint: joint,
		Message: uniformVector(ydim),
	})
	g.CurrentNumEdges++
	return idx, nil
}

func uniformVector(n int) []float64 {
	v := make([]float64, n)
	p := 1.0 / float64(n)
	for i := range v {
		v[i] = p
	}
	return v
}
