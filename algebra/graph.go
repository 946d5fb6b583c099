// SPDX-License-Identifier: MIT

// Package algebra - Graph storage (row-major dense adjacency) & safe accessors.
//
// Purpose:
//   - Hold a validated square integer matrix in a flat row-major buffer (offset = u*n + v).
//   - Guarantee safety at the public surface: At/SetEdge return errors instead of panicking.
//   - Keep the derived flags (weighted, negativeWeight) consistent with the cells at all times.
//
// Flag discipline:
//   - weighted/negativeWeight are ALWAYS recomputed by a full scan (refresh) after
//     any batch of edits: Load, SetEdge, every operator result and every compound
//     form. There is no incremental path, so a removed edge can never leave a
//     stale true flag behind.
//
// Complexity quicksheet:
//   - New: O(1); Load: O(n^2); At: O(1); SetEdge: O(n^2) (refresh); Clone/Matrix: O(n^2).

package algebra

// Graph is a weighted graph stored as a dense adjacency matrix.
//   - n is the vertex count; vertices are 0..n-1.
//   - data holds n*n cells in row-major order; NoEdge marks absence.
//   - directed is fixed at construction; undirected graphs keep data symmetric.
//   - weighted/negative are derived from data by refresh().
//
// The zero value is an empty undirected graph ready for Load.
type Graph struct {
	n        int   // vertex count
	data     []int // row-major cells, len == n*n
	directed bool  // fixed by WithDirected

	weighted bool // any present edge with weight != 1
	negative bool // any present edge with weight < 0
}

// New creates an empty graph (zero vertices) with the given options.
// By default the graph is undirected.
// Complexity: O(len(opts)).
func New(opts ...GraphOption) *Graph {
	g := &Graph{directed: DefaultDirected}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromMatrix is New followed by Load; it returns the loaded graph or the
// validation error.
func FromMatrix(rows [][]int, opts ...GraphOption) (*Graph, error) {
	g := New(opts...)
	if err := g.Load(rows); err != nil {
		return nil, err
	}

	return g, nil
}

// newSized allocates a graph with n vertices and an all-NoEdge matrix.
// Internal factory for operator results; flags start false, which matches
// an edgeless matrix.
func newSized(n int, directed bool) *Graph {
	return &Graph{n: n, data: make([]int, n*n), directed: directed}
}

// Load replaces the matrix with rows after validating every invariant.
//
// Implementation:
//   - Stage 1: check squareness and the NoEdge diagonal row by row, copying into a fresh buffer.
//   - Stage 2: for undirected graphs, check symmetry on the upper triangle.
//   - Stage 3: commit the buffer and recompute the derived flags.
//
// Behavior highlights:
//   - All-or-nothing: on any error the previous matrix and flags are untouched.
//   - rows is deep-copied; later edits to rows never reach the graph.
//   - A nil or empty rows slice loads the empty graph.
//
// Errors (wrapped in *CellError with the offending coordinates):
//   - ErrNonSquare, ErrNonZeroDiagonal, ErrAsymmetry.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func (g *Graph) Load(rows [][]int) error {
	data, err := validateRows(rows)
	if err != nil {
		return err
	}
	n := len(rows)
	if !g.directed {
		if row, col, ok := firstAsymmetry(n, data); !ok {
			return cellErrorf(opLoad, row, col, ErrAsymmetry)
		}
	}

	g.n, g.data = n, data
	g.refresh()

	return nil
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns |E|: the number of present cells, halved for undirected
// graphs because each undirected edge is stored twice. Directed graphs are
// never halved.
// Complexity: O(n^2).
func (g *Graph) EdgeCount() int {
	count := 0
	for _, w := range g.data {
		if w != NoEdge {
			count++
		}
	}
	if !g.directed {
		count /= 2 // symmetric storage with an empty diagonal: always even
	}

	return count
}

// Directed reports the construction-time directedness.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether any present edge has a weight other than 1.
func (g *Graph) Weighted() bool { return g.weighted }

// HasNegativeWeight reports whether any present edge has a negative weight.
func (g *Graph) HasNegativeWeight() bool { return g.negative }

// Empty reports whether the graph has no vertices.
func (g *Graph) Empty() bool { return g.n == 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (g *Graph) indexOf(u, v int) (int, error) {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return 0, ErrOutOfRange
	}

	return u*g.n + v, nil
}

// At returns the weight of the edge u→v, or NoEdge when absent.
//
// Errors:
//   - *CellError wrapping ErrOutOfRange when u or v is outside [0, VertexCount()).
//
// Complexity: O(1).
func (g *Graph) At(u, v int) (int, error) {
	off, err := g.indexOf(u, v)
	if err != nil {
		return NoEdge, cellErrorf(opAt, u, v, err)
	}

	return g.data[off], nil
}

// HasEdge reports whether u→v is present.
func (g *Graph) HasEdge(u, v int) (bool, error) {
	w, err := g.At(u, v)
	if err != nil {
		return false, err
	}

	return w != NoEdge, nil
}

// SetEdge stores weight w on u→v (NoEdge removes the edge).
//
// Behavior highlights:
//   - Undirected graphs also write v→u so symmetry is preserved.
//   - A self-loop (u == v, w != NoEdge) is rejected; writing NoEdge on the diagonal is a no-op.
//   - Flags are recomputed from scratch, so removing the only negative edge clears HasNegativeWeight.
//
// Errors:
//   - *CellError wrapping ErrOutOfRange or ErrNonZeroDiagonal.
//
// Complexity: O(n^2) because of the full flag refresh.
func (g *Graph) SetEdge(u, v, w int) error {
	off, err := g.indexOf(u, v)
	if err != nil {
		return cellErrorf(opSetEdge, u, v, err)
	}
	if u == v && w != NoEdge {
		return cellErrorf(opSetEdge, u, v, ErrNonZeroDiagonal)
	}
	g.data[off] = w
	if !g.directed {
		g.data[v*g.n+u] = w // mirror cell
	}
	g.refresh()

	return nil
}

// Matrix returns a deep copy of the adjacency matrix as rows.
// The empty graph yields a non-nil empty slice.
// Complexity: O(n^2).
func (g *Graph) Matrix() [][]int {
	rows := make([][]int, g.n)
	for u := 0; u < g.n; u++ {
		row := make([]int, g.n)
		copy(row, g.data[u*g.n:(u+1)*g.n])
		rows[u] = row
	}

	return rows
}

// Clone returns an independent copy: same cells and flags, no shared storage.
// Clone of nil is nil.
// Complexity: O(n^2).
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	cp := make([]int, len(g.data))
	copy(cp, g.data)

	return &Graph{
		n:        g.n,
		data:     cp,
		directed: g.directed,
		weighted: g.weighted,
		negative: g.negative,
	}
}

// replaceWith installs a freshly computed result as the receiver's state.
// res must not be shared with any other holder (operators always allocate it).
func (g *Graph) replaceWith(res *Graph) {
	g.n = res.n
	g.data = res.data
	g.weighted = res.weighted
	g.negative = res.negative
}

// refresh recomputes weighted and negative from every present cell.
func (g *Graph) refresh() {
	g.weighted, g.negative = false, false
	for _, w := range g.data {
		if w == NoEdge {
			continue
		}
		if w != 1 {
			g.weighted = true
		}
		if w < 0 {
			g.negative = true
		}
	}
}
