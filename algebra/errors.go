// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set.
// This file defines ONLY package-level sentinel errors and the CellError
// carrier. Every operation returns these sentinels (possibly wrapped) and
// tests MUST check them via errors.Is / errors.As. No operation panics on
// user-triggered error conditions.

package algebra

import (
	"errors"
	"fmt"
)

// NOTE ON KINDS
// -------------
// Two umbrella kinds exist: ErrValidation (a matrix breaks a structural
// invariant) and ErrShapeMismatch (two operands cannot be combined). Each
// refinement wraps its umbrella, so errors.Is(err, ErrValidation) holds for
// ErrNonSquare, ErrNonZeroDiagonal and ErrAsymmetry alike.

var (
	// ErrValidation is the umbrella for invariant violations on load or mutation.
	ErrValidation = errors.New("algebra: invalid adjacency matrix")

	// ErrNonSquare signals a row whose length differs from the row count.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrValidation)

	// ErrNonZeroDiagonal signals a self-loop (diagonal cell other than NoEdge).
	ErrNonZeroDiagonal = fmt.Errorf("%w: diagonal must be NoEdge", ErrValidation)

	// ErrAsymmetry signals m[u][v] != m[v][u] in an undirected graph.
	ErrAsymmetry = fmt.Errorf("%w: undirected matrix is not symmetric", ErrValidation)

	// ErrShapeMismatch is the umbrella for incompatible binary operands.
	ErrShapeMismatch = errors.New("algebra: operand shape mismatch")

	// ErrVertexCountMismatch signals operands with different vertex counts.
	ErrVertexCountMismatch = fmt.Errorf("%w: vertex counts differ", ErrShapeMismatch)

	// ErrDirectednessMismatch signals a directed operand combined with an undirected one.
	ErrDirectednessMismatch = fmt.Errorf("%w: directedness differs", ErrShapeMismatch)

	// ErrOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrOutOfRange = errors.New("algebra: vertex index out of range")

	// ErrDivideByZero is returned by Div and DivAssign for a zero factor.
	ErrDivideByZero = errors.New("algebra: division by zero")

	// ErrNilGraph indicates that a nil *Graph was passed as an operand.
	ErrNilGraph = errors.New("algebra: graph is nil")
)

// CellError attaches the offending cell to a sentinel.
// For ErrNonSquare, Col holds the length of the offending row.
type CellError struct {
	Op  string // method tag, e.g. "Graph.Load"
	Row int
	Col int
	Err error
}

// Error renders "Op(row,col): cause", mirroring Dense.At/Set diagnostics.
func (e *CellError) Error() string {
	return fmt.Sprintf("%s(%d,%d): %v", e.Op, e.Row, e.Col, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *CellError) Unwrap() error { return e.Err }

// cellErrorf builds a *CellError; kept as a helper so call sites stay one-liners.
func cellErrorf(op string, row, col int, err error) error {
	return &CellError{Op: op, Row: row, Col: col, Err: err}
}

// algebraErrorf wraps err with an operation tag, preserving the cause via %w.
// Use only when err != nil.
func algebraErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
