// topologies.go — fixed-shape benchmark networks. Each constructor
// allocates a graph.Graph sized exactly to its vertex/edge count, adds
// one uniform-arity node per vertex, then wires edges with a randomly
// generated row-stochastic CPT (P(child | parent), rows sum to 1).
package builder

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/arlenvance/beliefprop/graph"
)

// Path builds a simple chain v0 -> v1 -> ... -> v(n-1) (n >= 2), the
// topology infer.Tree exercises exactly like a BIF chain network.
func Path(n int, opts ...BuilderOption) (*graph.Graph, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	edges := make([][2]int, n-1)
	for i := 0; i < n-1; i++ {
		edges[i] = [2]int{i, i + 1}
	}
	return buildFromEdges(n, edges, opts...)
}

// Cycle builds an n-vertex ring v0 -> v1 -> ... -> v(n-1) -> v0 (n >=
// 3). The ring closes a cycle, so graph.Levels cannot converge on it —
// this is a Loopy fixture, not a Tree one.
func Cycle(n int, opts ...BuilderOption) (*graph.Graph, error) {
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	edges := make([][2]int, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]int{i, (i + 1) % n}
	}
	return buildFromEdges(n, edges, opts...)
}

// Star builds a center (index 0) with n-1 leaves, center -> leaf for
// every leaf (n >= 2).
func Star(n int, opts ...BuilderOption) (*graph.Graph, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	edges := make([][2]int, n-1)
	for i := 1; i < n; i++ {
		edges[i-1] = [2]int{0, i}
	}
	return buildFromEdges(n, edges, opts...)
}

// Wheel builds a ring of n-1 rim vertices (indices 1..n-1) plus a
// center (index 0) spoked to every rim vertex (n >= 4). Like Cycle,
// this is a Loopy fixture.
func Wheel(n int, opts ...BuilderOption) (*graph.Graph, error) {
	if n < 4 {
		return nil, ErrTooFewVertices
	}
	rim := n - 1
	edges := make([][2]int, 0, 2*rim)
	for i := 1; i <= rim; i++ {
		edges = append(edges, [2]int{0, i})
		next := i + 1
		if next > rim {
			next = 1
		}
		edges = append(edges, [2]int{i, next})
	}
	return buildFromEdges(n, edges, opts...)
}

// Complete builds the complete DAG K_n: an edge i -> j for every i < j
// (n >= 1). Acyclic as a DAG (edges only point toward higher index),
// but its undirected view has cycles once n >= 3: every vertex then has
// degree >= 2, so graph.Levels does not converge on it and it serves as
// a dense Loopy stress case.
func Complete(n int, opts ...BuilderOption) (*graph.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	edges := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return buildFromEdges(n, edges, opts...)
}

func buildFromEdges(n int, edges [][2]int, opts ...BuilderOption) (*graph.Graph, error) {
	cfg := newConfig(opts...)
	if cfg.arity < 1 {
		return nil, ErrInvalidArity
	}
	rng := rand.New(rand.NewSource(cfg.seed))

	g := graph.New(n, len(edges))
	for i := 0; i < n; i++ {
		if _, err := g.AddNode(cfg.idFn(i), cfg.arity); err != nil {
			return nil, fmt.Errorf("builder: adding vertex %d: %w", i, err)
		}
	}
	for _, e := range edges {
		joint := randomRowStochastic(rng, cfg.arity, cfg.arity)
		if _, err := g.AddEdge(e[0], e[1], joint); err != nil {
			return nil, fmt.Errorf("builder: adding edge %d->%d: %w", e[0], e[1], err)
		}
	}
	if err := g.BuildSrcIncidence(); err != nil {
		return nil, err
	}
	if err := g.BuildDestIncidence(); err != nil {
		return nil, err
	}
	return g, nil
}

// randomRowStochastic returns an rows-by-cols matrix whose every row
// sums to 1, each row drawn from rng and normalized.
func randomRowStochastic(rng *rand.Rand, rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		sum := 0.0
		row := data[r*cols : (r+1)*cols]
		for c := range row {
			row[c] = rng.Float64() + 1e-6 // avoid an all-zero degenerate row
			sum += row[c]
		}
		for c := range row {
			row[c] /= sum
		}
	}
	return mat.NewDense(rows, cols, data)
}
