// Package algebra_test contains unit tests for Graph storage and validation.
package algebra_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gralgebra/algebra"
	"github.com/stretchr/testify/require"
)

// TestLoadTriangle checks counts and flags of the unit-weight K3.
func TestLoadTriangle(t *testing.T) {
	g := mustUndirected(t, triangle)

	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.False(t, g.Directed())
	require.False(t, g.Weighted())
	require.False(t, g.HasNegativeWeight())
	require.Equal(t, triangle, g.Matrix())
}

// TestNewIsEmpty ensures New yields a zero-vertex graph that renders and counts.
func TestNewIsEmpty(t *testing.T) {
	g := algebra.New()
	require.True(t, g.Empty())
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.EdgeCount())
	require.Equal(t, [][]int{}, g.Matrix())

	require.NoError(t, g.Load(nil)) // empty load is legal
	require.True(t, g.Empty())
}

// TestLoadNonSquare reports the offending row and its length.
func TestLoadNonSquare(t *testing.T) {
	g := algebra.New()
	err := g.Load([][]int{
		{0, 1, 1},
		{1, 0},
		{1, 1, 0},
	})
	require.ErrorIs(t, err, algebra.ErrNonSquare)
	require.ErrorIs(t, err, algebra.ErrValidation)

	var ce *algebra.CellError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, 1, ce.Row)
	require.Equal(t, 2, ce.Col) // row length
}

// TestLoadDiagonal rejects self-loops and names the vertex.
func TestLoadDiagonal(t *testing.T) {
	g := algebra.New(algebra.WithDirected(true))
	err := g.Load([][]int{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 5},
	})
	require.ErrorIs(t, err, algebra.ErrNonZeroDiagonal)

	var ce *algebra.CellError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, 2, ce.Row)
	require.Equal(t, 2, ce.Col)
	require.Equal(t, "Graph.Load(2,2): algebra: invalid adjacency matrix: diagonal must be NoEdge", err.Error())
}

// TestLoadAsymmetry rejects asymmetric undirected input but accepts it directed.
func TestLoadAsymmetry(t *testing.T) {
	rows := [][]int{
		{0, 1, 0},
		{1, 0, 2},
		{0, 3, 0},
	}
	_, err := algebra.FromMatrix(rows)
	require.ErrorIs(t, err, algebra.ErrAsymmetry)

	var ce *algebra.CellError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, 1, ce.Row)
	require.Equal(t, 2, ce.Col)

	g := mustGraph(t, rows, true)
	require.Equal(t, 4, g.EdgeCount()) // directed: never halved
	require.True(t, g.Weighted())
}

// TestLoadAllOrNothing keeps the previous state when a reload fails.
func TestLoadAllOrNothing(t *testing.T) {
	g := mustUndirected(t, triangle)

	err := g.Load([][]int{{0, -1}, {2, 0}})
	require.ErrorIs(t, err, algebra.ErrAsymmetry)

	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, triangle, g.Matrix())
	require.False(t, g.HasNegativeWeight())
}

// TestLoadCopiesInput ensures later edits to the source rows do not leak in.
func TestLoadCopiesInput(t *testing.T) {
	rows := [][]int{{0, 4}, {4, 0}}
	g := mustUndirected(t, rows)
	rows[0][1] = 9

	w, err := g.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 4, w)

	out := g.Matrix()
	out[1][0] = 7
	w, err = g.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 4, w)
}

// TestLoadPropertyUndirected enumerates every 2×2 matrix over {-1,0,1} and
// checks that Load succeeds iff square, empty diagonal and symmetric.
func TestLoadPropertyUndirected(t *testing.T) {
	vals := []int{-1, 0, 1}
	for _, a := range vals {
		for _, b := range vals {
			for _, c := range vals {
				for _, d := range vals {
					rows := [][]int{{a, b}, {c, d}}
					want := a == 0 && d == 0 && b == c
					_, err := algebra.FromMatrix(rows)
					require.Equal(t, want, err == nil, "rows=%v err=%v", rows, err)
				}
			}
		}
	}
}

// TestAtOutOfRange covers both coordinates and the error text.
func TestAtOutOfRange(t *testing.T) {
	g := mustUndirected(t, triangle)

	_, err := g.At(3, 0)
	require.ErrorIs(t, err, algebra.ErrOutOfRange)
	_, err = g.At(0, -1)
	require.ErrorIs(t, err, algebra.ErrOutOfRange)
	_, err = g.HasEdge(-1, 0)
	require.ErrorIs(t, err, algebra.ErrOutOfRange)

	ok, err := g.HasEdge(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestSetEdge covers mirroring, bounds, the diagonal and flag recomputation.
func TestSetEdge(t *testing.T) {
	g := mustUndirected(t, triangle)

	require.NoError(t, g.SetEdge(0, 1, -3))
	w, _ := g.At(1, 0)
	require.Equal(t, -3, w) // mirrored
	require.True(t, g.Weighted())
	require.True(t, g.HasNegativeWeight())

	// Removing the only negative edge must clear both flags.
	require.NoError(t, g.SetEdge(1, 0, algebra.NoEdge))
	require.False(t, g.HasNegativeWeight())
	require.False(t, g.Weighted())
	require.Equal(t, 2, g.EdgeCount())

	err := g.SetEdge(3, 0, 1)
	require.ErrorIs(t, err, algebra.ErrOutOfRange)
	err = g.SetEdge(1, 1, 1)
	require.ErrorIs(t, err, algebra.ErrNonZeroDiagonal)
	require.NoError(t, g.SetEdge(1, 1, algebra.NoEdge))
}

// TestSetEdgeDirected writes a single cell only.
func TestSetEdgeDirected(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 0}, {0, 0}}, true)
	require.NoError(t, g.SetEdge(0, 1, 2))

	w, _ := g.At(1, 0)
	require.Equal(t, algebra.NoEdge, w)
	require.Equal(t, 1, g.EdgeCount())
}

// TestCloneIndependence ensures Clone does not share storage.
func TestCloneIndependence(t *testing.T) {
	g := mustUndirected(t, triangle)
	c := g.Clone()
	require.NoError(t, c.SetEdge(0, 1, 5))

	w, _ := g.At(0, 1)
	require.Equal(t, 1, w)
	require.False(t, g.Weighted())
	require.True(t, c.Weighted())
}
