package gonumgraph_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gralgebra/algebra"
	"github.com/katalvlaran/gralgebra/gonumgraph"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

func mustGraph(t *testing.T, rows [][]int, directed bool) *algebra.Graph {
	t.Helper()
	g, err := algebra.FromMatrix(rows, algebra.WithDirected(directed))
	require.NoError(t, err)

	return g
}

func TestToUndirected(t *testing.T) {
	// Two components: {0,1,2} weighted path and the isolated vertex 3.
	g := mustGraph(t, [][]int{
		{0, 4, 0, 0},
		{4, 0, -2, 0},
		{0, -2, 0, 0},
		{0, 0, 0, 0},
	}, false)

	ug, err := gonumgraph.ToUndirected(g)
	require.NoError(t, err)
	require.Equal(t, 4, ug.Nodes().Len())
	require.Equal(t, 2, ug.Edges().Len())

	w, ok := ug.Weight(1, 0)
	require.True(t, ok)
	require.Equal(t, 4.0, w)
	w, ok = ug.Weight(0, 2)
	require.False(t, ok)
	require.True(t, math.IsInf(w, 1))

	require.Len(t, topo.ConnectedComponents(ug), 2)
}

func TestToUndirectedRejectsDirected(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1}, {0, 0}}, true)
	_, err := gonumgraph.ToUndirected(g)
	require.ErrorIs(t, err, gonumgraph.ErrDirected)
}

func TestToDirectedShortestPath(t *testing.T) {
	g := mustGraph(t, [][]int{
		{0, 1, 5},
		{0, 0, 2},
		{0, 0, 0},
	}, true)

	dg := gonumgraph.ToDirected(g)
	require.Equal(t, 3, dg.Edges().Len())
	require.False(t, dg.HasEdgeFromTo(2, 0))

	sp := path.DijkstraFrom(simple.Node(0), dg)
	require.Equal(t, 3.0, sp.WeightTo(2)) // 0→1→2 beats 0→2
}

func TestToDirectedFromUndirected(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 3}, {3, 0}}, false)
	dg := gonumgraph.ToDirected(g)
	require.True(t, dg.HasEdgeFromTo(0, 1))
	require.True(t, dg.HasEdgeFromTo(1, 0))
}

func TestRoundTrip(t *testing.T) {
	for _, directed := range []bool{false, true} {
		rows := [][]int{
			{0, 2, -3},
			{2, 0, 0},
			{-3, 0, 0},
		}
		if directed {
			rows[2][0] = 7
		}
		g := mustGraph(t, rows, directed)

		back, err := gonumgraph.FromGonum(gonumgraph.FromView(g))
		require.NoError(t, err)
		require.Equal(t, directed, back.Directed())
		require.Equal(t, g.Matrix(), back.Matrix())
	}
}

func TestFromGonumErrors(t *testing.T) {
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(0), simple.Node(5), 1))
	_, err := gonumgraph.FromGonum(g)
	require.ErrorIs(t, err, gonumgraph.ErrNodeID)

	h := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	h.SetWeightedEdge(h.NewWeightedEdge(simple.Node(0), simple.Node(1), 1.5))
	_, err = gonumgraph.FromGonum(h)
	require.ErrorIs(t, err, gonumgraph.ErrWeight)
}
