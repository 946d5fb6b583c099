// SPDX-License-Identifier: MIT
// Package algebra: ordering over graphs.
//
// Less(a, b) is decided by the first rule that applies:
//  1. both empty (0 vertices)                → false (equal)
//  2. a empty / b empty                      → true / false
//  3. identical matrices                     → false (equal)
//  4. a contained in b / b contained in a    → true / false
//  5. fewer edges                            → less
//  6. equal edges, fewer vertices            → less
//  7. otherwise                              → false (equal)
//
// Equal is derived: !Less(a, b) && !Less(b, a). Two graphs that no rule
// separates (same size, same edge count, different cells) are therefore Equal
// even though their matrices differ.
//
// Nil graphs compare as empty graphs.
//
// Complexity: Contains is a brute-force block search, O((N-n+1)^2 * n^2);
// acceptable for the small matrices this package targets and a known ceiling
// for large ones.

package algebra

// isEmpty treats nil as the empty graph.
func isEmpty(g *Graph) bool { return g == nil || g.n == 0 }

// sameCells reports cell-for-cell equality of two matrices of equal size.
func sameCells(a, b *Graph) bool {
	if a.n != b.n {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Contains reports whether small's full matrix appears as a contiguous,
// aligned block of big at some offset (i, j). The block must match cell for
// cell, absent cells included. An empty small is contained in anything.
func Contains(big, small *Graph) bool {
	if isEmpty(small) {
		return true
	}
	if isEmpty(big) || small.n > big.n {
		return false
	}
	N, n := big.n, small.n
	var i, j, r, c int
	for i = 0; i <= N-n; i++ {
		for j = 0; j <= N-n; j++ {
			match := true
			for r = 0; r < n && match; r++ {
				for c = 0; c < n; c++ {
					if small.data[r*n+c] != big.data[(i+r)*N+(j+c)] {
						match = false
						break
					}
				}
			}
			if match {
				return true
			}
		}
	}

	return false
}

// Less reports a < b (see the rule table above).
func Less(a, b *Graph) bool {
	ae, be := isEmpty(a), isEmpty(b)
	switch {
	case ae && be:
		return false
	case ae:
		return true
	case be:
		return false
	}
	if sameCells(a, b) {
		return false
	}
	if a.n <= b.n && Contains(b, a) {
		return true
	}
	if b.n <= a.n && Contains(a, b) {
		return false
	}
	if ea, eb := a.EdgeCount(), b.EdgeCount(); ea != eb {
		return ea < eb
	}

	return a.n < b.n
}

// Greater reports a > b, i.e. b < a.
func Greater(a, b *Graph) bool { return Less(b, a) }

// Equal reports !(a < b) && !(b < a).
func Equal(a, b *Graph) bool { return !Less(a, b) && !Less(b, a) }

// NotEqual is !Equal(a, b).
func NotEqual(a, b *Graph) bool { return !Equal(a, b) }

// LessOrEqual reports a < b || a == b.
func LessOrEqual(a, b *Graph) bool { return Less(a, b) || Equal(a, b) }

// GreaterOrEqual reports a > b || a == b.
func GreaterOrEqual(a, b *Graph) bool { return Greater(a, b) || Equal(a, b) }

// Compare returns -1, 0 or +1 following Less and Equal.
func Compare(a, b *Graph) int {
	switch {
	case Less(a, b):
		return -1
	case Less(b, a):
		return 1
	default:
		return 0
	}
}
