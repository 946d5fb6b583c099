// SPDX-License-Identifier: MIT

package algebra

// Identity returns an independent copy of g (unary +).
// Mutating the copy never affects g.
//
// The operators without an error return (Identity, Negate, PostInc, PostDec,
// Scale and the in-place Inc, Dec, ScaleAssign) map a nil graph to nil.
// Complexity: O(n^2).
func Identity(g *Graph) *Graph { return g.Clone() }

// Negate returns a graph whose present edges carry the negated weight (unary -).
// Absent edges stay absent; flags are recomputed over the full result.
// Complexity: O(n^2).
func Negate(g *Graph) *Graph {
	return mapPresent(g, func(w int) int { return -w })
}

// PostInc returns a copy of g with every present weight moved by +1; g is left
// unmutated. An edge of weight -1 becomes 0 and is removed.
func PostInc(g *Graph) *Graph {
	return mapPresent(g, func(w int) int { return w + 1 })
}

// PostDec returns a copy of g with every present weight moved by -1; g is left
// unmutated. An edge of weight 1 becomes 0 and is removed.
func PostDec(g *Graph) *Graph {
	return mapPresent(g, func(w int) int { return w - 1 })
}

// Increment is the pure form of the increment operator; alias of PostInc.
func Increment(g *Graph) *Graph { return PostInc(g) }

// Decrement is the pure form of the decrement operator; alias of PostDec.
func Decrement(g *Graph) *Graph { return PostDec(g) }

// Inc is prefix increment: it moves every present weight of g by +1 in place
// and returns g for chaining.
func (g *Graph) Inc() *Graph {
	if g == nil {
		return nil
	}
	g.replaceWith(PostInc(g))

	return g
}

// Dec is prefix decrement: it moves every present weight of g by -1 in place
// and returns g for chaining.
func (g *Graph) Dec() *Graph {
	if g == nil {
		return nil
	}
	g.replaceWith(PostDec(g))

	return g
}
