// loopy.go — synchronous (Jacobi-style) loopy belief propagation for
// networks graph.Levels cannot level-order (graphs with an undirected
// cycle), ported from original_source/src/graph/graph.c's
// init_previous_edge/loopy_propagate_one_iteration/
// loopy_propagate_until.
package infer

import (
	"gonum.org/v1/gonum/floats"

	"github.com/arlenvance/beliefprop/graph"
)

// InitPreviousEdge resets every edge in both parity buffers to the
// uniform distribution, discarding any message state left by a prior
// Tree or Loopy run. Loopy calls this itself before iterating, so
// callers only need it to reset a graph they intend to reuse.
func InitPreviousEdge(g *graph.Graph) {
	for _, buf := range [][]*graph.Edge{g.Edges, g.PrevEdges} {
		for _, e := range buf {
			p := 1.0 / float64(e.YDim)
			for i := range e.Message {
				e.Message[i] = p
			}
		}
	}
}

// Loopy runs synchronous sum-product message passing to approximate
// marginals on a graph that may contain cycles. Every round reads
// g.Previous(), writes g.Current(), then swaps: every edge updates
// from the same snapshot of the prior round, matching
// loopy_propagate_one_iteration's read-old/write-new discipline rather
// than an asynchronous in-place update.
//
// A round's progress is measured as the summed L1 distance between
// each edge's previous and current message. The run reports
// StatusConverged once that delta drops below opts.Epsilon,
// StatusStalled if a round's delta exactly equals the previous
// round's delta (a fixed point above Epsilon), and StatusExhausted if
// opts.MaxIterations elapses first.
func Loopy(g *graph.Graph, opts Options) (LoopyResult, error) {
	if g.TotalNumVertices == 0 {
		return LoopyResult{}, ErrEmptyGraph
	}
	if len(g.Edges) == 0 {
		return LoopyResult{Iterations: 0, Status: StatusConverged}, nil
	}

	InitPreviousEdge(g)

	incomingTo := make([][]int, g.TotalNumVertices)
	outgoingOf := make([][]int, g.TotalNumVertices)
	for i, e := range g.Edges {
		incomingTo[e.DestIndex] = append(incomingTo[e.DestIndex], i)
		outgoingOf[e.SrcIndex] = append(outgoingOf[e.SrcIndex], i)
	}

	combine := Combine
	if opts.Strict {
		combine = StrictCombine
	}

	status := StatusExhausted
	iterations := opts.MaxIterations
	delta := 0.0
	prevDelta := -1.0

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		prev := g.Previous()
		cur := g.Current()

		for v, node := range g.Nodes {
			factors := [][]float64{node.States}
			for _, ei := range incomingTo[v] {
				factors = append(factors, prev[ei].Message)
			}
			belief := Marginalize(combine(factors...))

			for _, ei := range outgoingOf[v] {
				cur[ei].Message = Send(cur[ei], belief)
			}
		}

		delta = 0.0
		for i := range cur {
			delta += floats.Distance(prev[i].Message, cur[i].Message, 1)
		}

		g.Swap()
		iterations = iter

		if delta < opts.Epsilon {
			status = StatusConverged
			break
		}
		if prevDelta >= 0 && delta == prevDelta {
			status = StatusStalled
			break
		}
		prevDelta = delta
	}

	finalizeBeliefs(g, incomingTo, combine)

	return LoopyResult{Iterations: iterations, Delta: delta, Status: status}, nil
}

// finalizeBeliefs writes each node's current-round marginal into
// node.States, combining its prior with every incoming edge's latest
// message. Unlike Tree's per-edge leave-one-out, Loopy only needs one
// combined belief per node since no further message is derived from
// it.
func finalizeBeliefs(g *graph.Graph, incomingTo [][]int, combine func(...[]float64) []float64) {
	latest := g.Previous()
	for v, node := range g.Nodes {
		factors := [][]float64{node.States}
		for _, ei := range incomingTo[v] {
			factors = append(factors, latest[ei].Message)
		}
		node.States = Marginalize(combine(factors...))
	}
}
