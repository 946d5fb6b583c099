// Package gralgebra is an algebra over weighted graphs stored as dense
// integer adjacency matrices.
//
// Graphs behave like values: they add, subtract, multiply (matrix product),
// scale, divide, negate, increment and compare, with every result validated
// against the same invariants as a freshly loaded graph.
//
//	algebra/      Graph storage, operators, ordering and text rendering
//	gonumgraph/   export to / import from gonum graph/simple
//	expr/         statement language: C = A + B * 2, A < B, ++A
//	workspace/    YAML file of named graphs with hot reload
//	cmd/gralg/    CLI and HTTP server
//
// Quick example:
//
//	    0───1
//	     \ /
//	      2
//
//	g, _ := algebra.FromMatrix([][]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}})
//	h, _ := algebra.Add(g, g) // every edge now weighs 2
//	fmt.Print(h)
//
//	go get github.com/katalvlaran/gralgebra
package gralgebra
