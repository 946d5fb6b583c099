// SPDX-License-Identifier: MIT
package algebra_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/gralgebra/algebra"
	"github.com/stretchr/testify/require"
)

func TestRenderTriangle(t *testing.T) {
	g := mustUndirected(t, triangle)
	want := "Undirected graph with 3 vertices and 3 edges.\n" +
		"0: X 1 1\n" +
		"1: 1 X 1\n" +
		"2: 1 1 X\n"

	require.Equal(t, want, algebra.Render(g))
	require.Equal(t, want, g.String())
}

func TestRenderDirectedPlaceholder(t *testing.T) {
	g := mustGraph(t, [][]int{{0, -2}, {0, 0}}, true)

	require.Equal(t, "Directed graph with 2 vertices and 1 edges.\n0: . -2\n1: . .\n",
		algebra.Render(g, algebra.WithPlaceholder(".")))
	// An empty token falls back to the default.
	require.Equal(t, "Directed graph with 2 vertices and 1 edges.\n0: X -2\n1: X X\n",
		algebra.Render(g, algebra.WithPlaceholder("")))
}

func TestRenderEmpty(t *testing.T) {
	require.Equal(t, "Undirected graph with 0 vertices and 0 edges.\n", algebra.Render(algebra.New()))
	require.Equal(t, "Undirected graph with 0 vertices and 0 edges.", algebra.Summary(algebra.New()))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, algebra.Fprint(&buf, mustUndirected(t, ones(2)), algebra.WithPlaceholder("-")))
	require.Equal(t, "Undirected graph with 2 vertices and 1 edges.\n0: - 1\n1: 1 -\n", buf.String())
}
