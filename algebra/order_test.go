// SPDX-License-Identifier: MIT
package algebra_test

import (
	"testing"

	"github.com/katalvlaran/gralgebra/algebra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOrderEmpty covers the empty-graph rules, nil included.
func TestOrderEmpty(t *testing.T) {
	e1, e2 := algebra.New(), algebra.New(algebra.WithDirected(true))
	tri := mustUndirected(t, triangle)

	assert.False(t, algebra.Less(e1, e2))
	assert.True(t, algebra.Equal(e1, e2))
	assert.True(t, algebra.Less(e1, tri))
	assert.False(t, algebra.Greater(e1, tri))
	assert.False(t, algebra.Less(tri, e1))

	assert.True(t, algebra.Equal(nil, e1))
	assert.True(t, algebra.Less(nil, tri))
}

// TestOrderIdentical treats cell-identical graphs as equal.
func TestOrderIdentical(t *testing.T) {
	a := mustUndirected(t, triangle)
	b := mustUndirected(t, triangle)

	assert.False(t, algebra.Less(a, b))
	assert.False(t, algebra.Less(b, a))
	assert.True(t, algebra.Equal(a, b))
	assert.True(t, algebra.LessOrEqual(a, b))
	assert.True(t, algebra.GreaterOrEqual(a, b))
	assert.Equal(t, 0, algebra.Compare(a, b))
}

// TestOrderContainment: the all-ones 2×2 block sits inside the all-ones 3×3.
func TestOrderContainment(t *testing.T) {
	a := mustUndirected(t, ones(2))
	b := mustUndirected(t, ones(3))

	require.True(t, algebra.Contains(b, a))
	require.False(t, algebra.Contains(a, b))
	assert.True(t, algebra.Less(a, b))
	assert.False(t, algebra.Less(b, a))
	assert.True(t, algebra.Greater(b, a))
	assert.True(t, algebra.NotEqual(a, b))
	assert.Equal(t, -1, algebra.Compare(a, b))
	assert.Equal(t, 1, algebra.Compare(b, a))
}

// TestContainsOffset finds a block away from the top-left corner.
func TestContainsOffset(t *testing.T) {
	small := mustGraph(t, [][]int{{0, 1}, {0, 0}}, true)
	big := mustGraph(t, [][]int{
		{0, 0, 0},
		{0, 0, 1},
		{0, 0, 0},
	}, true)

	assert.True(t, algebra.Contains(big, small)) // rows 1-2, cols 1-2
	assert.True(t, algebra.Less(small, big))

	other := mustGraph(t, [][]int{{0, 2}, {0, 0}}, true)
	assert.False(t, algebra.Contains(big, other))
	assert.True(t, algebra.Contains(big, algebra.New()))
}

// TestOrderByEdgeCount: same size, no containment, fewer edges is less.
func TestOrderByEdgeCount(t *testing.T) {
	path := mustUndirected(t, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
	tri := mustUndirected(t, triangle)

	assert.True(t, algebra.Less(path, tri))
	assert.False(t, algebra.Less(tri, path))
}

// TestOrderByVertexCount: equal edge counts, no containment, fewer vertices is less.
func TestOrderByVertexCount(t *testing.T) {
	a := mustUndirected(t, [][]int{{0, 5, 0}, {5, 0, 0}, {0, 0, 0}})
	b := mustUndirected(t, [][]int{
		{0, 0, 0, 7},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{7, 0, 0, 0},
	})
	require.False(t, algebra.Contains(b, a))
	require.Equal(t, a.EdgeCount(), b.EdgeCount())

	assert.True(t, algebra.Less(a, b))
	assert.False(t, algebra.Less(b, a))
}

// TestOrderIncomparableIsEqual: different cells that no rule separates compare equal.
func TestOrderIncomparableIsEqual(t *testing.T) {
	a := mustUndirected(t, [][]int{{0, 2, 0}, {2, 0, 0}, {0, 0, 0}})
	b := mustUndirected(t, [][]int{{0, 0, 2}, {0, 0, 0}, {2, 0, 0}})

	require.NotEqual(t, a.Matrix(), b.Matrix())
	assert.True(t, algebra.Equal(a, b))
	assert.False(t, algebra.NotEqual(a, b))
}

// TestOrderAntisymmetric checks that no pair is both less and greater.
func TestOrderAntisymmetric(t *testing.T) {
	gs := []*algebra.Graph{
		algebra.New(),
		mustUndirected(t, ones(2)),
		mustUndirected(t, ones(3)),
		mustUndirected(t, triangle),
		mustUndirected(t, [][]int{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}),
		mustUndirected(t, [][]int{{0, -4}, {-4, 0}}),
	}
	for i, a := range gs {
		for j, b := range gs {
			assert.False(t, algebra.Less(a, b) && algebra.Less(b, a), "pair %d,%d", i, j)
			assert.Equal(t, algebra.Equal(a, b), algebra.Equal(b, a), "pair %d,%d", i, j)
		}
	}
}
