// SPDX-License-Identifier: MIT
// Package algebra: binary, scalar and compound operators.
//
// Purpose:
//   - Element-wise Add/Sub, the matrix product Mul, scalar Scale/Div.
//   - Compound forms (AddAssign, ...) that compute the binary result first and
//     only then replace the receiver, so a failure leaves the receiver intact.
//
// Determinism:
//   - Fixed loop orders (flat 0..n*n-1 for element-wise; i→j→k for Mul).
//   - Every result is freshly allocated; operands are never written.

package algebra

// Add returns a + b under the per-cell rule (see combine).
// A cell summing to 0 is removed.
//
// Errors:
//   - ErrNilGraph, ErrVertexCountMismatch, ErrDirectednessMismatch (wrapped with "Add").
//
// Complexity: Time O(n^2), Space O(n^2).
func Add(a, b *Graph) (*Graph, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, algebraErrorf(opAdd, err)
	}

	return combine(a, b, plus), nil
}

// Sub returns a - b under the per-cell rule (see combine).
// An edge present only in b appears negated; a cell differencing to 0 is removed.
//
// Errors:
//   - ErrNilGraph, ErrVertexCountMismatch, ErrDirectednessMismatch (wrapped with "Sub").
//
// Complexity: Time O(n^2), Space O(n^2).
func Sub(a, b *Graph) (*Graph, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, algebraErrorf(opSub, err)
	}

	return combine(a, b, minus), nil
}

// Mul returns the matrix product a × b:
//
//	out[i][j] = Σ_k a[i][k] * b[k][j]   over k where both cells are present
//
// Absent terms contribute nothing; a zero sum is NoEdge.
//
// Implementation:
//   - Stage 1: validate operands (vertex count and directedness must match).
//   - Stage 2: accumulate into a fresh buffer reading only a.data and b.data,
//     so Mul(g, g) is safe: no write can feed back into a source cell.
//   - Stage 3: clear the diagonal (closed walks would be self-loops).
//   - Stage 4: undirected operands must yield a symmetric product.
//
// Errors:
//   - ErrNilGraph, ErrVertexCountMismatch, ErrDirectednessMismatch (wrapped with "Mul").
//   - *CellError{Op: "Mul"} wrapping ErrAsymmetry when two undirected operands
//     do not commute (the product of symmetric matrices is symmetric iff ab = ba).
//
// Complexity: Time O(n^3), Space O(n^2).
func Mul(a, b *Graph) (*Graph, error) {
	if err := validateBinary(a, b); err != nil {
		return nil, algebraErrorf(opMul, err)
	}
	n := a.n
	out := newSized(n, a.directed)

	var i, j, k, sum int
	var x, y int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal stays NoEdge
			}
			sum = 0
			for k = 0; k < n; k++ {
				x = a.data[i*n+k]
				if x == NoEdge {
					continue
				}
				y = b.data[k*n+j]
				if y == NoEdge {
					continue
				}
				sum += x * y
			}
			out.data[i*n+j] = settle(sum)
		}
	}
	if !out.directed {
		if row, col, ok := firstAsymmetry(n, out.data); !ok {
			return nil, cellErrorf(opMul, row, col, ErrAsymmetry)
		}
	}
	out.refresh()

	return out, nil
}

// Scale returns g with every present weight multiplied by k.
// Products of 0 (every edge when k == 0) are removed.
// Complexity: O(n^2).
func Scale(g *Graph, k int) *Graph {
	return mapPresent(g, func(w int) int { return w * k })
}

// Div returns g with every present weight divided by k, truncating toward zero
// (Go integer division). Quotients of 0 are removed.
//
// Errors:
//   - ErrDivideByZero (wrapped with "Div") when k == 0.
//
// Complexity: O(n^2).
func Div(g *Graph, k int) (*Graph, error) {
	if k == 0 {
		return nil, algebraErrorf(opDiv, ErrDivideByZero)
	}
	if err := validateOperand(g); err != nil {
		return nil, algebraErrorf(opDiv, err)
	}

	return mapPresent(g, func(w int) int { return w / k }), nil
}

// ---------- Compound forms (receiver is replaced only on success) ----------

// AddAssign sets g = g + other.
func (g *Graph) AddAssign(other *Graph) error {
	if err := validateBinary(g, other); err != nil {
		return algebraErrorf(opAddAssign, err)
	}
	g.replaceWith(combine(g, other, plus))

	return nil
}

// SubAssign sets g = g - other. SubAssign(g) empties every edge.
func (g *Graph) SubAssign(other *Graph) error {
	if err := validateBinary(g, other); err != nil {
		return algebraErrorf(opSubAssign, err)
	}
	g.replaceWith(combine(g, other, minus))

	return nil
}

// MulAssign sets g = g × other. MulAssign(g) squares g safely.
func (g *Graph) MulAssign(other *Graph) error {
	res, err := Mul(g, other)
	if err != nil {
		return algebraErrorf(opMulAssign, err)
	}
	g.replaceWith(res)

	return nil
}

// ScaleAssign sets g = g * k.
func (g *Graph) ScaleAssign(k int) *Graph {
	if g == nil {
		return nil
	}
	g.replaceWith(Scale(g, k))

	return g
}

// DivAssign sets g = g / k; on ErrDivideByZero g is unchanged.
func (g *Graph) DivAssign(k int) error {
	res, err := Div(g, k)
	if err != nil {
		return algebraErrorf(opDivAssign, err)
	}
	g.replaceWith(res)

	return nil
}
