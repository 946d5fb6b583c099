// SPDX-License-Identifier: MIT
// Package algebra_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by the graph, operator and ordering tests.

package algebra_test

import (
	"testing"

	"github.com/katalvlaran/gralgebra/algebra"
	"github.com/stretchr/testify/require"
)

// triangle is K3 with unit weights.
var triangle = [][]int{
	{0, 1, 1},
	{1, 0, 1},
	{1, 1, 0},
}

// mustGraph loads rows into a new graph or fails the test.
func mustGraph(t *testing.T, rows [][]int, directed bool) *algebra.Graph {
	t.Helper()
	g, err := algebra.FromMatrix(rows, algebra.WithDirected(directed))
	require.NoError(t, err)

	return g
}

// mustUndirected is mustGraph(t, rows, false).
func mustUndirected(t *testing.T, rows [][]int) *algebra.Graph {
	t.Helper()

	return mustGraph(t, rows, false)
}

// ones returns the n×n undirected all-ones matrix with an empty diagonal.
func ones(n int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = 1
			}
		}
	}

	return rows
}
