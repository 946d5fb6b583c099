// SPDX-License-Identifier: MIT

package gonumgraph

import (
	"math"

	"github.com/katalvlaran/gralgebra/algebra"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
)

var (
	// ErrNodeID is returned when a node ID falls outside [0, number of nodes).
	ErrNodeID = errors.New("gonumgraph: node ids must be 0..n-1")

	// ErrWeight is returned for a weight that is not a finite integer.
	ErrWeight = errors.New("gonumgraph: weight is not integral")
)

// FromGonum builds an *algebra.Graph from g. The result is directed when g
// implements graph.Directed, undirected otherwise. Weights must be integral;
// a weight of 0 maps to algebra.NoEdge.
//
// Errors:
//   - ErrNodeID, ErrWeight (wrapped with the offending ids).
//   - algebra validation errors from Load (e.g. an asymmetric undirected input).
//
// Complexity: O(V + E) to scan, O(V^2) to allocate the matrix.
func FromGonum(g graph.Weighted) (*algebra.Graph, error) {
	_, directed := g.(graph.Directed)

	nodes := graph.NodesOf(g.Nodes())
	n := len(nodes)
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
	}
	for _, node := range nodes {
		if id := node.ID(); id < 0 || id >= int64(n) {
			return nil, errors.Wrapf(ErrNodeID, "node %d of %d", id, n)
		}
	}

	for _, node := range nodes {
		uid := node.ID()
		to := g.From(uid)
		for to.Next() {
			vid := to.Node().ID()
			w, _ := g.Weight(uid, vid)
			if math.IsInf(w, 0) || math.IsNaN(w) || w != math.Trunc(w) {
				return nil, errors.Wrapf(ErrWeight, "edge %d-%d weight %v", uid, vid, w)
			}
			rows[uid][vid] = int(w)
		}
	}

	out, err := algebra.FromMatrix(rows, algebra.WithDirected(directed))
	if err != nil {
		return nil, errors.Wrap(err, "gonumgraph: import")
	}

	return out, nil
}
