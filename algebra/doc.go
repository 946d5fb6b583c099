// Package algebra implements a value-semantics algebra over weighted graphs
// stored as dense integer adjacency matrices.
//
// The package provides:
//
//   - Graph: a validated square matrix with fixed directedness. Load is
//     all-or-nothing and enforces squareness, an empty (NoEdge) diagonal and,
//     for undirected graphs, symmetry. Weighted/HasNegativeWeight are derived
//     from the cells and recomputed after every mutation.
//   - Operators that return NEW graphs: Identity, Negate, Add, Sub, Mul
//     (matrix product), Scale, Div, PostInc/PostDec; plus in-place forms on the
//     receiver: Inc/Dec (prefix) and AddAssign, SubAssign, MulAssign,
//     ScaleAssign, DivAssign.
//   - An ordering: Less/Greater/Equal/... built on submatrix containment,
//     then edge count, then vertex count. Equal is derived from Less.
//   - Rendering through the read-only View interface (Summary, Render, Fprint).
//
// NoEdge is 0. A weight that becomes 0 under any operator removes the edge.
//
// Quick example:
//
//	g, _ := algebra.FromMatrix([][]int{
//		{0, 1, 1},
//		{1, 0, 1},
//		{1, 1, 0},
//	})
//	h, _ := algebra.Add(g, g) // every weight is 2
//	fmt.Print(h)
//
// Graphs are not safe for concurrent mutation; share them read-only or guard
// them externally.
package algebra
