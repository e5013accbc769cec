package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/arlenvance/beliefprop/graph"
)

func chainGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(3, 2)

	a, err := g.AddNode("A", 2)
	require.NoError(t, err)
	b, err := g.AddNode("B", 2)
	require.NoError(t, err)
	c, err := g.AddNode("C", 2)
	require.NoError(t, err)

	identity := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	_, err = g.AddEdge(a, b, identity)
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, identity)
	require.NoError(t, err)

	require.NoError(t, g.BuildSrcIncidence())
	require.NoError(t, g.BuildDestIncidence())
	return g
}

func TestAddNode_UniformInitialState(t *testing.T) {
	g := graph.New(1, 0)
	idx, err := g.AddNode("X", 4)
	require.NoError(t, err)
	require.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, g.Nodes[idx].States)
}

func TestAddNode_ArenaExhausted(t *testing.T) {
	g := graph.New(1, 0)
	_, err := g.AddNode("X", 2)
	require.NoError(t, err)
	_, err = g.AddNode("Y", 2)
	require.ErrorIs(t, err, graph.ErrTooManyVertices)
}

func TestAddNode_TooManyStates(t *testing.T) {
	g := graph.New(1, 0)
	orig := graph.MaxStates
	graph.MaxStates = 2
	defer func() { graph.MaxStates = orig }()

	_, err := g.AddNode("X", 3)
	require.ErrorIs(t, err, graph.ErrTooManyStates)
}

func TestAddEdge_DimensionMismatch(t *testing.T) {
	g := graph.New(2, 1)
	a, _ := g.AddNode("A", 2)
	_, _ = g.AddNode("B", 3)
	joint := mat.NewDense(2, 2, []float64{0.5, 0.5, 0.5, 0.5})
	_, err := g.AddEdge(a, 1, joint)
	require.ErrorIs(t, err, graph.ErrDimensionMismatch)
}

func TestAddEdge_PopulatesBothParityBuffers(t *testing.T) {
	g := chainGraph(t)
	require.Len(t, g.Edges, 2)
	require.Len(t, g.PrevEdges, 2)
	require.NotSame(t, g.Edges[0], g.PrevEdges[0])
	require.Same(t, g.Edges[0].Joint, g.PrevEdges[0].Joint)
}

func TestSwap_FlipsCurrentAndPrevious(t *testing.T) {
	g := chainGraph(t)
	cur, prev := g.Current(), g.Previous()
	require.Same(t, &g.Edges[0], &g.Edges[0])
	g.Swap()
	require.Same(t, cur[0], g.Previous()[0])
	require.Same(t, prev[0], g.Current()[0])
}

func TestBuildSrcIncidence_RequiresCompleteVertices(t *testing.T) {
	g := graph.New(3, 0)
	_, err := g.AddNode("A", 2)
	require.NoError(t, err)
	require.ErrorIs(t, g.BuildSrcIncidence(), graph.ErrVerticesIncomplete)
}

func TestSrcDestEdges_MatchEndpoints(t *testing.T) {
	g := chainGraph(t)

	srcOfA := g.SrcEdges(0)
	require.Equal(t, []int{0}, srcOfA)

	destOfC := g.DestEdges(2)
	require.Equal(t, []int{1}, destOfC)

	destOfA := g.DestEdges(0)
	require.Empty(t, destOfA)
}

func TestLevels_ChainEndpointsAreLeaves(t *testing.T) {
	g := chainGraph(t)
	levels, err := g.Levels()
	require.NoError(t, err)
	// A and C have total degree 1 (leaves); B has degree 2 and sits one
	// BFS hop away from either leaf.
	require.Equal(t, []int{0, 1, 0}, levels)
}

func TestLevels_CycleDoesNotConverge(t *testing.T) {
	g := graph.New(2, 2)
	a, _ := g.AddNode("A", 2)
	b, _ := g.AddNode("B", 2)
	joint := mat.NewDense(2, 2, []float64{0.5, 0.5, 0.5, 0.5})
	_, _ = g.AddEdge(a, b, joint)
	_, _ = g.AddEdge(b, a, joint)

	_, err := g.Levels()
	require.ErrorIs(t, err, graph.ErrLevelsDidNotConverge)
}

func TestDiameter_Chain(t *testing.T) {
	g := chainGraph(t)
	require.Equal(t, 2, g.Diameter())
}

func TestResetVisited(t *testing.T) {
	g := graph.New(2, 0)
	g.Visited[0] = true
	g.Visited[1] = true
	g.ResetVisited()
	require.Equal(t, []bool{false, false}, g.Visited)
}
