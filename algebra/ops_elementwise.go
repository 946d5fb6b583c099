// SPDX-License-Identifier: MIT
// Package: algebra
//
// Purpose:
//   - Provide the two private cell kernels every operator is built on:
//     mapPresent (unary, present cells only) and combine (binary, cell by cell).
//   - Keep all loops deterministic over the flat row-major buffer.
//
// Design:
//   - Kernels ALWAYS allocate a fresh result; operands are read-only.
//   - A computed weight of 0 becomes NoEdge (settle), so no zero-weight edge is stored.
//   - The result's flags are recomputed once by refresh after the whole batch.

package algebra

// settle maps a computed weight onto the cell encoding: 0 means the edge is removed.
func settle(w int) int {
	if w == 0 {
		return NoEdge
	}

	return w
}

// mapPresent returns a copy of g with f applied to every present cell.
// Absent cells stay absent; f results of 0 remove the edge. A nil g maps to nil.
// Time: O(n^2). Space: O(n^2).
func mapPresent(g *Graph, f func(w int) int) *Graph {
	if g == nil {
		return nil
	}
	out := newSized(g.n, g.directed)
	for i, w := range g.data {
		if w == NoEdge {
			continue
		}
		out.data[i] = settle(f(w))
	}
	out.refresh()

	return out
}

// combine computes out[u][v] = f(a[u][v], b[u][v]) under the per-cell rule:
//   - both absent → absent;
//   - one absent → that side contributes NoEdge, the identity of + and -,
//     so a+∅ = a, ∅+b = b, a-∅ = a, ∅-b = -b;
//   - result 0 → absent.
//
// Operands must already be validated with validateBinary.
// Symmetric f-inputs stay symmetric, so undirected results need no re-check.
// Time: O(n^2). Space: O(n^2).
func combine(a, b *Graph, f func(x, y int) int) *Graph {
	out := newSized(a.n, a.directed)
	for i := range out.data {
		x, y := a.data[i], b.data[i]
		if x == NoEdge && y == NoEdge {
			continue
		}
		out.data[i] = settle(f(x, y))
	}
	out.refresh()

	return out
}

func plus(x, y int) int  { return x + y }
func minus(x, y int) int { return x - y }
