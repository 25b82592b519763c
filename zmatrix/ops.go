// SPDX-License-Identifier: MIT
// Package zmatrix: elementary operations.
//
// Purpose:
//   - Provide the unimodular building blocks used by elimination and Smith
//     normal form: "add f times line src to line dst" for rows and columns.
//   - Provide clearing of whole lines, used when a line is known to be zero in
//     a changed basis (or has been accounted for as a pivot).
//
// Notes:
//   - A zero factor is a no-op (no allocation, no error beyond validation).
//   - Operations touch only the support of the source line: O(nnz(src)).

package zmatrix

import "math/big"

// AddRowMultiple performs row_dst += f·row_src.
// Returns ErrOutOfRange for invalid rows and ErrAliasedOperands when dst == src.
// Complexity: O(nnz(row_src)).
func (m *Matrix) AddRowMultiple(dst, src int, f *big.Int) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r {
		return zmatrixErrorf(opAddRow, ErrOutOfRange)
	}
	if dst == src {
		return zmatrixErrorf(opAddRow, ErrAliasedOperands)
	}
	if f.Sign() == 0 {
		return nil
	}

	// rows[src] is not written below (dst != src), so ranging over it is safe.
	for j, v := range m.rows[src] {
		sum := new(big.Int).Mul(f, v)
		if cur, ok := m.rows[dst][j]; ok {
			sum.Add(sum, cur)
		}
		m.put(dst, j, sum)
	}

	return nil
}

// AddColMultiple performs col_dst += f·col_src.
// Returns ErrOutOfRange for invalid columns and ErrAliasedOperands when dst == src.
// Complexity: O(nnz(col_src)).
func (m *Matrix) AddColMultiple(dst, src int, f *big.Int) error {
	if dst < 0 || dst >= m.c || src < 0 || src >= m.c {
		return zmatrixErrorf(opAddCol, ErrOutOfRange)
	}
	if dst == src {
		return zmatrixErrorf(opAddCol, ErrAliasedOperands)
	}
	if f.Sign() == 0 {
		return nil
	}

	for i := range m.cols[src] {
		sum := new(big.Int).Mul(f, m.rows[i][src])
		if cur, ok := m.rows[i][dst]; ok {
			sum.Add(sum, cur)
		}
		m.put(i, dst, sum)
	}

	return nil
}

// ClearRow sets every entry of row i to zero. Out-of-range rows are ignored.
func (m *Matrix) ClearRow(i int) {
	if i < 0 || i >= m.r {
		return
	}
	for j := range m.rows[i] {
		delete(m.cols[j], i)
	}
	m.rows[i] = make(map[int]*big.Int)
}

// ClearCol sets every entry of column j to zero. Out-of-range columns are ignored.
func (m *Matrix) ClearCol(j int) {
	if j < 0 || j >= m.c {
		return
	}
	for i := range m.cols[j] {
		delete(m.rows[i], j)
	}
	m.cols[j] = make(map[int]struct{})
}

// ClearRows clears every listed row.
// Returns ErrOutOfRange (and clears nothing) if any index is invalid.
func (m *Matrix) ClearRows(idx []int) error {
	for _, i := range idx {
		if i < 0 || i >= m.r {
			return zmatrixErrorf(opClearRows, ErrOutOfRange)
		}
	}
	for _, i := range idx {
		m.ClearRow(i)
	}

	return nil
}

// ClearCols clears every listed column.
// Returns ErrOutOfRange (and clears nothing) if any index is invalid.
func (m *Matrix) ClearCols(idx []int) error {
	for _, j := range idx {
		if j < 0 || j >= m.c {
			return zmatrixErrorf(opClearCols, ErrOutOfRange)
		}
	}
	for _, j := range idx {
		m.ClearCol(j)
	}

	return nil
}
