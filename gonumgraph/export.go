// SPDX-License-Identifier: MIT

package gonumgraph

import (
	"math"

	"github.com/katalvlaran/gralgebra/algebra"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

const selfWeight = 0

// absentWeight is reported by Weight for missing edges.
var absentWeight = math.Inf(1)

// ErrDirected is returned by ToUndirected for a directed view.
var ErrDirected = errors.New("gonumgraph: view is directed")

// ToDirected exports v as a weighted directed graph. An undirected edge
// {u,v} becomes the two arcs u→v and v→u. Every vertex is added, isolated
// ones included.
// Complexity: O(n^2).
func ToDirected(v algebra.View) *simple.WeightedDirectedGraph {
	g := simple.NewWeightedDirectedGraph(selfWeight, absentWeight)
	n := v.VertexCount()
	addNodes(g, n)
	eachEdge(v, false, func(u, w int, weight float64) {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(u), simple.Node(w), weight))
	})

	return g
}

// ToUndirected exports an undirected v; each symmetric pair is one gonum edge.
//
// Errors:
//   - ErrDirected when v.Directed() is true.
func ToUndirected(v algebra.View) (*simple.WeightedUndirectedGraph, error) {
	if v.Directed() {
		return nil, ErrDirected
	}
	g := simple.NewWeightedUndirectedGraph(selfWeight, absentWeight)
	addNodes(g, v.VertexCount())
	eachEdge(v, true, func(u, w int, weight float64) {
		g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(u), simple.Node(w), weight))
	})

	return g, nil
}

// FromView exports v keeping its directedness.
func FromView(v algebra.View) graph.Weighted {
	if v.Directed() {
		return ToDirected(v)
	}
	g, _ := ToUndirected(v) // cannot fail: v is undirected

	return g
}

func addNodes(g graph.NodeAdder, n int) {
	for u := 0; u < n; u++ {
		g.AddNode(simple.Node(u))
	}
}

// eachEdge calls fn for every present cell in row-major order.
// upper restricts the scan to u < w.
func eachEdge(v algebra.View, upper bool, fn func(u, w int, weight float64)) {
	n := v.VertexCount()
	var u, w int
	for u = 0; u < n; u++ {
		start := 0
		if upper {
			start = u + 1
		}
		for w = start; w < n; w++ {
			cell, err := v.At(u, w)
			if err != nil || cell == algebra.NoEdge {
				continue
			}
			fn(u, w, float64(cell))
		}
	}
}
