package infer_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/arlenvance/beliefprop/bif"
	"github.com/arlenvance/beliefprop/graph"
	"github.com/arlenvance/beliefprop/infer"
)

func readTestdata(t *testing.T, name string) *bytes.Reader {
	t.Helper()
	data, err := os.ReadFile("../testdata/" + name)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

// S1: end-to-end dog-problem network, tree propagation, sanity-check
// the posterior stays a valid distribution on every node.
func TestTree_DogProblem(t *testing.T) {
	g, names, err := bif.Parse(readTestdata(t, "dog_problem.bif"))
	require.NoError(t, err)

	result, err := infer.Tree(g)
	require.NoError(t, err)
	require.Len(t, result.Levels, 5)

	for _, n := range g.Nodes {
		sum := 0.0
		for _, p := range n.States {
			require.GreaterOrEqual(t, p, 0.0)
			sum += p
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	}
	_ = names
}

// S2: chain.bif's identity CPTs mean every node's posterior must equal
// A's prior exactly, since B|A and C|B are both the identity map.
func TestTree_ChainPropagatesIdentityExactly(t *testing.T) {
	g, names, err := bif.Parse(readTestdata(t, "chain.bif"))
	require.NoError(t, err)

	_, err = infer.Tree(g)
	require.NoError(t, err)

	a := names.NodeIndex["A"]
	b := names.NodeIndex["B"]
	c := names.NodeIndex["C"]
	require.InDeltaSlice(t, []float64{0.7, 0.3}, g.Nodes[a].States, 1e-9)
	require.InDeltaSlice(t, []float64{0.7, 0.3}, g.Nodes[b].States, 1e-9)
	require.InDeltaSlice(t, []float64{0.7, 0.3}, g.Nodes[c].States, 1e-9)
}

// S4: a depth-4 binary tree built directly through the graph API (no
// BIF fixture). Every leaf carries the same deterministic CPT wired to
// a biased root, so every node's final belief should match the root's
// prior exactly, the same identity-propagation property as the S2
// chain but over a branching topology.
func TestTree_BinaryTreeDepthFour(t *testing.T) {
	const depth = 4
	numNodes := 1<<depth - 1 // 15 nodes in a complete binary tree of depth 4
	numEdges := numNodes - 1

	g := graph.New(numNodes, numEdges)
	indices := make([]int, numNodes)
	for i := 0; i < numNodes; i++ {
		idx, err := g.AddNode(string(rune('A'+i)), 2)
		require.NoError(t, err)
		indices[i] = idx
	}
	require.NoError(t, g.SetNodeState(indices[0], []float64{0.9, 0.1}))

	identity := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	for i := 0; i < numNodes; i++ {
		left, right := 2*i+1, 2*i+2
		if left < numNodes {
			_, err := g.AddEdge(indices[i], indices[left], identity)
			require.NoError(t, err)
		}
		if right < numNodes {
			_, err := g.AddEdge(indices[i], indices[right], identity)
			require.NoError(t, err)
		}
	}
	require.NoError(t, g.BuildSrcIncidence())
	require.NoError(t, g.BuildDestIncidence())

	result, err := infer.Tree(g)
	require.NoError(t, err)
	require.Len(t, result.Levels, numNodes)

	for _, n := range g.Nodes {
		require.InDeltaSlice(t, []float64{0.9, 0.1}, n.States, 1e-9)
	}
}

// S5: a 2-cycle is not acyclic, so Levels cannot converge and Tree must
// refuse it.
func TestTree_CycleReturnsErrCycleDetected(t *testing.T) {
	g := graph.New(2, 2)
	a, _ := g.AddNode("A", 2)
	b, _ := g.AddNode("B", 2)
	joint := mat.NewDense(2, 2, []float64{0.5, 0.5, 0.5, 0.5})
	_, err := g.AddEdge(a, b, joint)
	require.NoError(t, err)
	_, err = g.AddEdge(b, a, joint)
	require.NoError(t, err)
	require.NoError(t, g.BuildSrcIncidence())
	require.NoError(t, g.BuildDestIncidence())

	_, err = infer.Tree(g)
	require.ErrorIs(t, err, infer.ErrCycleDetected)
}

// S5 (Loopy variant): the same 2-cycle, but run through Loopy instead
// of Tree. A symmetric, non-informative CPT on both edges leaves every
// message at its uniform start, so the run should report convergence
// immediately rather than stalling or exhausting — a degenerate but
// valid loopy fixed point.
func TestLoopy_SymmetricCycleConvergesImmediately(t *testing.T) {
	g := graph.New(2, 2)
	a, _ := g.AddNode("A", 2)
	b, _ := g.AddNode("B", 2)
	joint := mat.NewDense(2, 2, []float64{0.5, 0.5, 0.5, 0.5})
	_, err := g.AddEdge(a, b, joint)
	require.NoError(t, err)
	_, err = g.AddEdge(b, a, joint)
	require.NoError(t, err)
	require.NoError(t, g.BuildSrcIncidence())
	require.NoError(t, g.BuildDestIncidence())

	result, err := infer.Loopy(g, infer.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, infer.StatusConverged, result.Status)
}

// S5 (stall variant): a two-node cycle wired with pure swap CPTs and a
// skewed prior on A never settles — each round's message keeps
// flipping between the same two vectors rather than converging toward
// Epsilon, so the run should report a stall rather than a false
// convergence. The run uses strict combine so A's zero entry takes part
// in the product; the default Combine skips zero factors, which would
// leave A's belief uniform and let the run converge instead.
func TestLoopy_SwappingCycleStalls(t *testing.T) {
	g := graph.New(2, 2)
	a, _ := g.AddNode("A", 2)
	b, _ := g.AddNode("B", 2)
	require.NoError(t, g.SetNodeState(a, []float64{1, 0}))
	swap := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	_, err := g.AddEdge(a, b, swap)
	require.NoError(t, err)
	_, err = g.AddEdge(b, a, swap)
	require.NoError(t, err)
	require.NoError(t, g.BuildSrcIncidence())
	require.NoError(t, g.BuildDestIncidence())

	opts := infer.Options{Epsilon: 1e-12, MaxIterations: 10, Strict: true}
	result, err := infer.Loopy(g, opts)
	require.NoError(t, err)
	require.Equal(t, infer.StatusStalled, result.Status)
	require.Equal(t, 2, result.Iterations)
}

// S6: the degenerate-CPT-row BIF fixture (bif falls back to uniform
// for an all-zero row) must still carry through Tree without error or
// NaNs, landing on a valid distribution.
func TestTree_DegenerateRowStillNormalizes(t *testing.T) {
	src := bytes.NewReader([]byte(`network N {}
variable A {
    type discrete [ 2 ] { a0 a1 } ;
}
variable B {
    type discrete [ 2 ] { b0 b1 } ;
}
probability ( A ) {
    table 0.5 0.5 ;
}
probability ( B | A ) {
    (a0) 0.0 0.0 ;
    (a1) 1.0 0.0 ;
}
`))
	g, _, err := bif.Parse(src)
	require.NoError(t, err)

	_, err = infer.Tree(g)
	require.NoError(t, err)

	for _, n := range g.Nodes {
		sum := 0.0
		for _, p := range n.States {
			require.False(t, p != p) // not NaN
			sum += p
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestTree_EmptyGraphReturnsErrEmptyGraph(t *testing.T) {
	g := graph.New(0, 0)
	_, err := infer.Tree(g)
	require.ErrorIs(t, err, infer.ErrEmptyGraph)
}

func TestLoopy_EmptyGraphReturnsErrEmptyGraph(t *testing.T) {
	g := graph.New(0, 0)
	_, err := infer.Loopy(g, infer.DefaultOptions())
	require.ErrorIs(t, err, infer.ErrEmptyGraph)
}

// A single node with no edges has nothing to propagate: Loopy should
// report it converged without running a single round.
func TestLoopy_SingleNodeNoEdgesConvergesInZeroIterations(t *testing.T) {
	g := graph.New(1, 0)
	_, err := g.AddNode("A", 2)
	require.NoError(t, err)
	require.NoError(t, g.BuildSrcIncidence())
	require.NoError(t, g.BuildDestIncidence())

	result, err := infer.Loopy(g, infer.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 0, result.Iterations)
	require.Equal(t, infer.StatusConverged, result.Status)
}
