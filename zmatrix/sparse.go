// SPDX-License-Identifier: MIT
// Package zmatrix: the sparse exact-integer matrix and its accessors.
//
// Purpose:
//   - Hold only non-zero entries, row-major, with a column support index so
//     that both RowSupport and ColSupport are O(nnz of the line).
//   - Own every stored *big.Int: values are copied on the way in (Set) and on
//     the way out (At). Peek is the explicit zero-copy exception.

package zmatrix

import (
	"math/big"
	"slices"
)

// Entry is one non-zero cell of a matrix line. Index is the column index for
// Row and the row index for Col.
type Entry struct {
	Index int
	Value *big.Int
}

// Matrix is a rows×cols sparse matrix over the integers.
// Zero-sized shapes (0×n, n×0) are legal and common: they are the boundary
// maps at the two ends of a chain complex.
type Matrix struct {
	r, c int
	rows []map[int]*big.Int  // rows[i][j] = entry (i,j), never zero
	cols []map[int]struct{} // cols[j] = set of i with entry (i,j) != 0
}

// New allocates an all-zero rows×cols matrix.
// Returns ErrBadShape when rows or cols is negative.
// Complexity: O(rows + cols).
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, zmatrixErrorf(opNew, ErrBadShape)
	}

	return alloc(rows, cols), nil
}

// alloc is New without validation, for internal callers that already hold a
// valid shape.
func alloc(rows, cols int) *Matrix {
	m := &Matrix{
		r:    rows,
		c:    cols,
		rows: make([]map[int]*big.Int, rows),
		cols: make([]map[int]struct{}, cols),
	}
	var i int
	for i = 0; i < rows; i++ {
		m.rows[i] = make(map[int]*big.Int)
	}
	for i = 0; i < cols; i++ {
		m.cols[i] = make(map[int]struct{})
	}

	return m
}

// Identity returns the n×n identity matrix.
// Panics if n < 0 (programmer error: a size is never user input here).
// Complexity: O(n).
func Identity(n int) *Matrix {
	if n < 0 {
		panic("zmatrix: Identity: negative size")
	}
	m := alloc(n, n)
	for i := 0; i < n; i++ {
		m.put(i, i, big.NewInt(1))
	}

	return m
}

// FromRows builds a matrix from row-major int64 data.
// All rows must have equal length; an empty slice yields a 0×0 matrix.
// Use New for shapes like 0×n that cannot be expressed by row data.
// Complexity: O(rows·cols).
func FromRows(data [][]int64) (*Matrix, error) {
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}
	m := alloc(rows, cols)
	for i, row := range data {
		if len(row) != cols {
			return nil, zmatrixErrorf(opFromRows, ErrBadShape)
		}
		for j, v := range row {
			if v != 0 {
				m.put(i, j, big.NewInt(v))
			}
		}
	}

	return m, nil
}

// FromBigRows is FromRows for entries of any size. Values are copied and a
// nil entry reads as zero.
func FromBigRows(data [][]*big.Int) (*Matrix, error) {
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}
	m := alloc(rows, cols)
	for i, row := range data {
		if len(row) != cols {
			return nil, zmatrixErrorf(opFromBig, ErrBadShape)
		}
		for j, v := range row {
			if v != nil && v.Sign() != 0 {
				m.put(i, j, new(big.Int).Set(v))
			}
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// NNZ returns the number of stored (non-zero) entries.
// Complexity: O(rows).
func (m *Matrix) NNZ() int {
	n := 0
	for _, row := range m.rows {
		n += len(row)
	}

	return n
}

// inRange reports whether (i,j) addresses a cell of m.
func (m *Matrix) inRange(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At returns a copy of entry (i,j).
// Returns ErrOutOfRange for invalid indices.
func (m *Matrix) At(i, j int) (*big.Int, error) {
	if !m.inRange(i, j) {
		return nil, zmatrixErrorf(opAt, ErrOutOfRange)
	}
	if v, ok := m.rows[i][j]; ok {
		return new(big.Int).Set(v), nil
	}

	return new(big.Int), nil
}

// Peek returns entry (i,j) without copying, or nil when the entry is zero or
// (i,j) is out of range. The caller must not mutate the returned value; it is
// the matrix's own storage and stays valid only until the next mutation.
func (m *Matrix) Peek(i, j int) *big.Int {
	if !m.inRange(i, j) {
		return nil
	}

	return m.rows[i][j]
}

// Set stores a copy of v at (i,j). A zero v removes the entry.
// Returns ErrOutOfRange for invalid indices.
func (m *Matrix) Set(i, j int, v *big.Int) error {
	if !m.inRange(i, j) {
		return zmatrixErrorf(opSet, ErrOutOfRange)
	}
	m.put(i, j, new(big.Int).Set(v))

	return nil
}

// SetInt64 is Set for a machine integer.
func (m *Matrix) SetInt64(i, j int, v int64) error {
	if !m.inRange(i, j) {
		return zmatrixErrorf(opSet, ErrOutOfRange)
	}
	m.put(i, j, big.NewInt(v))

	return nil
}

// put stores v (taking ownership) at (i,j), or deletes the cell when v is zero.
// Indices are assumed valid.
func (m *Matrix) put(i, j int, v *big.Int) {
	if v.Sign() == 0 {
		delete(m.rows[i], j)
		delete(m.cols[j], i)
		return
	}
	m.rows[i][j] = v
	m.cols[j][i] = struct{}{}
}

// RowSupport returns the column indices of the non-zero entries of row i in
// ascending order. Out-of-range rows have empty support.
func (m *Matrix) RowSupport(i int) []int {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]int, 0, len(m.rows[i]))
	for j := range m.rows[i] {
		out = append(out, j)
	}
	slices.Sort(out)

	return out
}

// ColSupport returns the row indices of the non-zero entries of column j in
// ascending order. Out-of-range columns have empty support.
func (m *Matrix) ColSupport(j int) []int {
	if j < 0 || j >= m.c {
		return nil
	}
	out := make([]int, 0, len(m.cols[j]))
	for i := range m.cols[j] {
		out = append(out, i)
	}
	slices.Sort(out)

	return out
}

// Row returns copies of the non-zero entries of row i, ascending by column.
func (m *Matrix) Row(i int) []Entry {
	support := m.RowSupport(i)
	out := make([]Entry, len(support))
	for k, j := range support {
		out[k] = Entry{Index: j, Value: new(big.Int).Set(m.rows[i][j])}
	}

	return out
}

// Col returns copies of the non-zero entries of column j, ascending by row.
func (m *Matrix) Col(j int) []Entry {
	support := m.ColSupport(j)
	out := make([]Entry, len(support))
	for k, i := range support {
		out[k] = Entry{Index: i, Value: new(big.Int).Set(m.rows[i][j])}
	}

	return out
}

// RowIsZero reports whether row i has no non-zero entry.
func (m *Matrix) RowIsZero(i int) bool {
	return i < 0 || i >= m.r || len(m.rows[i]) == 0
}

// ColIsZero reports whether column j has no non-zero entry.
func (m *Matrix) ColIsZero(j int) bool {
	return j < 0 || j >= m.c || len(m.cols[j]) == 0
}

// IsZero reports whether every entry is zero.
func (m *Matrix) IsZero() bool {
	for _, row := range m.rows {
		if len(row) != 0 {
			return false
		}
	}

	return true
}

// Clone returns a deep copy.
// Complexity: O(rows + cols + nnz).
func (m *Matrix) Clone() *Matrix {
	out := alloc(m.r, m.c)
	for i, row := range m.rows {
		for j, v := range row {
			out.put(i, j, new(big.Int).Set(v))
		}
	}

	return out
}
