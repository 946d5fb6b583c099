// SPDX-License-Identifier: MIT

// Package algebra: functional configuration and documented defaults.
// This file defines:
//   - the NoEdge sentinel and defaults (single source of truth),
//   - GraphOption for construction (directedness is fixed at New),
//   - FormatOption for text rendering,
//   - operation tags used by algebraErrorf.
package algebra

// NoEdge marks an absent edge. It is 0, which also satisfies the diagonal
// requirement and acts as the additive identity for absent cells in the
// element-wise operators. A zero-weight edge therefore cannot exist: any
// operator whose result is 0 removes the edge.
const NoEdge = 0

// ---------- Defaults ----------

const (
	// DefaultDirected: graphs are undirected unless WithDirected(true) is given.
	DefaultDirected = false

	// DefaultPlaceholder is the token rendered for absent cells.
	DefaultPlaceholder = "X"
)

// ---------- Operation tags (no magic strings) ----------

const (
	opLoad      = "Graph.Load"
	opAt        = "Graph.At"
	opSetEdge   = "Graph.SetEdge"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opDiv       = "Div"
	opAddAssign = "AddAssign"
	opSubAssign = "SubAssign"
	opMulAssign = "MulAssign"
	opDivAssign = "DivAssign"
)

// GraphOption configures a Graph before its first Load.
type GraphOption func(g *Graph)

// WithDirected fixes the directedness of the graph.
// Undirected graphs require a symmetric matrix.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// FormatOption configures Fprint/Render.
type FormatOption func(o *formatOptions)

type formatOptions struct {
	placeholder string // token for NoEdge cells
}

// WithPlaceholder overrides the token printed for absent edges.
// An empty token falls back to DefaultPlaceholder so rows stay aligned.
func WithPlaceholder(token string) FormatOption {
	return func(o *formatOptions) {
		if token == "" {
			token = DefaultPlaceholder
		}
		o.placeholder = token
	}
}

// gatherFormatOptions resolves opts over the defaults.
func gatherFormatOptions(opts []FormatOption) formatOptions {
	o := formatOptions{placeholder: DefaultPlaceholder}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
