// SPDX-License-Identifier: MIT
// Package: algebra
//
// Purpose:
//  - Single source of truth for structural checks shared by Load and the operators.
//  - Return *CellError / sentinels; callers add their operation tag.
//
// Determinism & Performance:
//  - Fixed row-major scan order, so the reported cell is always the first violation.
//  - Symmetry check runs on the upper triangle only.

package algebra

// validateRows checks squareness and the diagonal, copying rows into a flat buffer.
// Rows are checked in order; within a row, length is checked before the diagonal.
// Complexity: O(n^2).
func validateRows(rows [][]int) ([]int, error) {
	n := len(rows)
	data := make([]int, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, cellErrorf(opLoad, i, len(row), ErrNonSquare)
		}
		if row[i] != NoEdge {
			return nil, cellErrorf(opLoad, i, i, ErrNonZeroDiagonal)
		}
		copy(data[i*n:(i+1)*n], row)
	}

	return data, nil
}

// firstAsymmetry returns the first (row, col) with row < col and
// data[row][col] != data[col][row]; ok is true when the buffer is symmetric.
// Complexity: O(n^2/2).
func firstAsymmetry(n int, data []int) (row, col int, ok bool) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if data[i*n+j] != data[j*n+i] {
				return i, j, false
			}
		}
	}

	return 0, 0, true
}

// validateOperand rejects a nil graph.
func validateOperand(g *Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	return nil
}

// validateBinary composes: NotNil(a) → NotNil(b) → same vertex count → same directedness.
func validateBinary(a, b *Graph) error {
	if err := validateOperand(a); err != nil {
		return err
	}
	if err := validateOperand(b); err != nil {
		return err
	}
	if a.n != b.n {
		return ErrVertexCountMismatch
	}
	if a.directed != b.directed {
		return ErrDirectednessMismatch
	}

	return nil
}
