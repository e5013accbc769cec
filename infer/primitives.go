// primitives.go — combine/send/marginalize, the three operations tree
// and loopy propagation are both built out of, ported from
// original_source/src/graph/graph.c's combine_message/send_message/
// marginalize_node.
package infer

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/arlenvance/beliefprop/graph"
)

// Combine multiplies any number of same-length factor vectors
// elementwise, skipping factors that are <= 0 at a given index instead
// of letting one zero collapse the whole product there — the default,
// zero-collapse-avoidance behavior. An index where every factor is <= 0
// combines to 0, and a call with no factors at all returns nil.
func Combine(factors ...[]float64) []float64 {
	if len(factors) == 0 {
		return nil
	}
	n := len(factors[0])
	result := make([]float64, n)
	for i := 0; i < n; i++ {
		acc := 1.0
		any := false
		for _, f := range factors {
			if f[i] <= 0 {
				continue
			}
			acc *= f[i]
			any = true
		}
		if !any {
			acc = 0
		}
		result[i] = acc
	}
	return result
}

// StrictCombine is Combine without the zero-skip: a single zero factor
// at an index collapses the product there. Selected by Options.Strict.
func StrictCombine(factors ...[]float64) []float64 {
	if len(factors) == 0 {
		return nil
	}
	n := len(factors[0])
	result := make([]float64, n)
	for i := range result {
		result[i] = 1
	}
	for _, f := range factors {
		for i, v := range f {
			result[i] *= v
		}
	}
	return result
}

// Send propagates source (length edge.XDim, living on edge's source
// node) across edge's conditional probability table, producing a new
// message of length edge.YDim: message[y] = sum_x edge.Joint[x][y] *
// source[x], expressed as a transposed matrix-vector product.
func Send(edge *graph.Edge, source []float64) []float64 {
	srcVec := mat.NewVecDense(edge.XDim, source)
	var dst mat.VecDense
	dst.MulVec(edge.Joint.T(), srcVec)

	out := make([]float64, edge.YDim)
	for i := 0; i < edge.YDim; i++ {
		out[i] = dst.AtVec(i)
	}
	return out
}

// SendBackward propagates a message the opposite way Send does: dest
// (length edge.YDim, living on edge's destination node) across edge's
// CPT, producing a message of length edge.XDim living on the source
// node: message[x] = sum_y edge.Joint[x][y] * dest[y]. Tree
// propagation's backward pass needs this to push information against
// the direction a conditional probability table was written in.
func SendBackward(edge *graph.Edge, dest []float64) []float64 {
	destVec := mat.NewVecDense(edge.YDim, dest)
	var out mat.VecDense
	out.MulVec(edge.Joint, destVec)

	result := make([]float64, edge.XDim)
	for i := 0; i < edge.XDim; i++ {
		result[i] = out.AtVec(i)
	}
	return result
}

// Marginalize normalizes v to sum to 1, in place semantics aside
// (returns a new slice). A v that sums to <= 0 (every combined factor
// underflowed) divides by 1 instead of by the sum, per
// marginalize_node: this leaves v unchanged rather than inventing a
// uniform belief or dividing by zero.
func Marginalize(v []float64) []float64 {
	out := append([]float64(nil), v...)
	total := floats.Sum(out)
	if total <= 0 {
		total = 1
	}
	floats.Scale(1/total, out)
	return out
}
