// SPDX-License-Identifier: MIT
// Package algebra: text rendering.
//
// Rendering is decoupled from *Graph through the read-only View interface,
// so any adjacency provider can be printed the same way. Output:
//
//	Undirected graph with 3 vertices and 3 edges.
//	0: X 1 1
//	1: 1 X 1
//	2: 1 1 X

package algebra

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtDirected   = "Directed"
	_fmtUndirected = "Undirected"
	_fmtSummary    = "%s graph with %d vertices and %d edges."
	_fmtRowPrefix  = "%d:"
)

// View is the read-only surface needed to render or export a graph.
type View interface {
	VertexCount() int
	EdgeCount() int
	Directed() bool
	At(u, v int) (int, error)
}

var (
	_ View         = (*Graph)(nil)
	_ fmt.Stringer = (*Graph)(nil)
)

// Summary returns the one-line "<Directed|Undirected> graph with V vertices and E edges.".
func Summary(v View) string {
	kind := _fmtUndirected
	if v.Directed() {
		kind = _fmtDirected
	}

	return fmt.Sprintf(_fmtSummary, kind, v.VertexCount(), v.EdgeCount())
}

// Render returns the summary line followed by one line per vertex:
// "u: c0 c1 ...", where each cell is its weight or the placeholder token.
//
// Errors from v.At are not expected for in-range indices; a failing View
// renders the placeholder for that cell.
// Complexity: O(n^2).
func Render(v View, opts ...FormatOption) string {
	o := gatherFormatOptions(opts)
	var b strings.Builder
	b.WriteString(Summary(v))
	b.WriteByte('\n')

	n := v.VertexCount()
	var u, w int
	for u = 0; u < n; u++ {
		fmt.Fprintf(&b, _fmtRowPrefix, u)
		for w = 0; w < n; w++ {
			b.WriteByte(' ')
			cell, err := v.At(u, w)
			if err != nil || cell == NoEdge {
				b.WriteString(o.placeholder)
				continue
			}
			b.WriteString(strconv.Itoa(cell))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// Fprint writes Render(v, opts...) to w.
func Fprint(w io.Writer, v View, opts ...FormatOption) error {
	_, err := io.WriteString(w, Render(v, opts...))

	return err
}

// String renders g with the default placeholder.
func (g *Graph) String() string { return Render(g) }
