// Package expr evaluates a small statement language over named graphs.
//
// A statement is an optional assignment followed by an expression:
//
//	C = A + B * 2
//	A *= B
//	A < B
//	++A
//	A--
//
// Precedence, lowest first: comparison (< <= > >= == !=, at most one per
// expression), additive (+ -), multiplicative (* /), prefix (+ - ++ --),
// postfix (++ --), then identifiers, integers and parentheses.
//
// Values are graphs, integers or booleans. Graph operands map onto the
// algebra package: graph*graph is the matrix product, graph*int scales,
// graph/int divides, comparisons use the algebra ordering. Prefix ++/-- on
// an identifier mutates the bound graph; postfix ++/-- yields a modified
// copy. Names are resolved through an Env.
package expr
