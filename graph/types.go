// types.go — core data model: Node, Edge, Graph.
//
// Mirrors the arena layout of original_source's graph_t (src/graph/graph.c):
// fixed-capacity vertex and edge arenas sized up front by New, filled
// incrementally by AddNode/AddEdge, then frozen by BuildSrcIncidence/
// BuildDestIncidence once every declared vertex has been added. Two
// independent edge arenas (Edges, PrevEdges) replace the C code's
// pointer-swapped message buffers; Swap flips a parity bit instead of
// copying or re-pointing memory.
package graph

import "gonum.org/v1/gonum/mat"

// MaxStates bounds a variable's arity. The BIF corpus in practice never
// declares more than a handful of states per variable; this is kept as
// a variable rather than a const so callers with unusual networks can
// raise it before parsing.
var MaxStates = 32

// Node is one random variable in the network.
type Node struct {
	Index        int
	Name         string
	NumVariables int

	// States holds the node's current marginal (or, for an observed
	// node, a one-hot indicator). Length is always NumVariables.
	States []float64

	// Observed marks a node whose States were pinned by evidence
	// rather than computed by inference.
	Observed bool
}

// Edge is one directed message channel between two nodes. XDim is the
// source node's arity, YDim the destination node's arity; Joint is the
// XDim-by-YDim conditional probability table governing messages sent
// across this edge, and Message is the current YDim-length message
// vector living on this edge.
type Edge struct {
	Index     int
	SrcIndex  int
	DestIndex int
	XDim      int
	YDim      int

	// Joint is shared between an edge's two parity-buffer copies: the
	// CPT never changes during inference, only Message does.
	Joint *mat.Dense

	Message []float64
}

// Graph is a frozen, CSR-indexed Bayesian network ready for inference.
// It is built once (New, AddNode*, AddEdge, BuildSrcIncidence,
// BuildDestIncidence) and is not safe for concurrent mutation; see
// DESIGN.md's concurrency note for why no mutex guards these fields.
type Graph struct {
	Nodes []*Node

	// Edges and PrevEdges are the two parity buffers backing belief
	// propagation's previous/current message ping-pong. Current and
	// Previous pick between them according to parity; Swap flips it.
	Edges     []*Edge
	PrevEdges []*Edge

	// SrcNodesToEdges and DestNodesToEdges are CSR incidence arrays:
	// the first TotalNumVertices entries are per-node offsets into the
	// remaining CurrentNumEdges entries, which list edge indices.
	SrcNodesToEdges  []int
	DestNodesToEdges []int

	// Visited is scratch space for traversal passes: infer.Tree marks
	// each node in it as its sweeps process it. Levels and Diameter keep
	// their own local state and do not touch it. Callers reset it
	// between uses with ResetVisited.
	Visited []bool

	TotalNumVertices   int
	TotalNumEdges      int
	CurrentNumVertices int
	CurrentNumEdges    int

	parity int
}

// New allocates a graph with room for exactly numVertices nodes and
// numEdges directed edges. The vertex arena must be filled to capacity
// (by AddNode/AddObservedNode) before BuildSrcIncidence or
// BuildDestIncidence will succeed; the edge arena may be left partly
// filled, and the incidence arrays then cover only the edges added.
func New(numVertices, numEdges int) *Graph {
	return &Graph{
		Nodes:              make([]*Node, 0, numVertices),
		Edges:              make([]*Edge, 0, numEdges),
		PrevEdges:          make([]*Edge, 0, numEdges),
		Visited:            make([]bool, numVertices),
		TotalNumVertices:   numVertices,
		TotalNumEdges:      numEdges,
		CurrentNumVertices: 0,
		CurrentNumEdges:    0,
	}
}

// Current returns the edge buffer inference should read/write this
// round; Previous returns the other one. Swap exchanges their roles.
func (g *Graph) Current() []*Edge {
	if g.parity == 0 {
		return g.Edges
	}
	return g.PrevEdges
}

func (g *Graph) Previous() []*Edge {
	if g.parity == 0 {
		return g.PrevEdges
	}
	return g.Edges
}

func (g *Graph) Swap() { g.parity ^= 1 }

// ResetVisited clears the traversal scratch slice in place.
func (g *Graph) ResetVisited() {
	for i := range g.Visited {
		g.Visited[i] = false
	}
}
