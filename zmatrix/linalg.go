// SPDX-License-Identifier: MIT
// Package zmatrix: exact linear-algebra kernels.
//
// Purpose:
//   - Transpose / Mul / Equal / SelectRows on sparse operands.
//   - Determinant via fraction-free Bareiss elimination (exact, no rationals).
//
// Notes:
//   - Kernels never mutate their operands and always allocate a fresh result.
//   - Validation failures are wrapped with the op* tag of the kernel.

package zmatrix

import (
	"fmt"
	"math/big"
	"strings"
)

// Transpose returns mᵀ.
// Complexity: O(rows + cols + nnz).
func (m *Matrix) Transpose() *Matrix {
	out := alloc(m.c, m.r)
	for i, row := range m.rows {
		for j, v := range row {
			out.put(j, i, new(big.Int).Set(v))
		}
	}

	return out
}

// Mul returns a·b.
//
// Errors:
//   - ErrNilMatrix when an operand is nil.
//   - ErrDimensionMismatch when a.Cols() != b.Rows().
//
// Complexity: O(Σ_i Σ_{k∈row_i(a)} nnz(row_k(b))).
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, zmatrixErrorf(opMul, err)
	}

	out := alloc(a.r, b.c)
	acc := new(big.Int)
	for i, arow := range a.rows {
		sums := make(map[int]*big.Int)
		for k, av := range arow {
			for j, bv := range b.rows[k] {
				s, ok := sums[j]
				if !ok {
					s = new(big.Int)
					sums[j] = s
				}
				s.Add(s, acc.Mul(av, bv))
			}
		}
		for j, s := range sums {
			out.put(i, j, s)
		}
	}

	return out, nil
}

// Equal reports whether a and b have the same shape and entries.
// Two nil matrices are equal.
func (m *Matrix) Equal(b *Matrix) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for i, row := range m.rows {
		if len(row) != len(b.rows[i]) {
			return false
		}
		for j, v := range row {
			w, ok := b.rows[i][j]
			if !ok || v.Cmp(w) != 0 {
				return false
			}
		}
	}

	return true
}

// SelectRows returns a len(idx)×Cols() matrix whose k-th row is a copy of row
// idx[k] of m. Indices may repeat.
// Returns ErrOutOfRange for an invalid index.
func (m *Matrix) SelectRows(idx []int) (*Matrix, error) {
	out := alloc(len(idx), m.c)
	for k, i := range idx {
		if i < 0 || i >= m.r {
			return nil, zmatrixErrorf(opSelectRows, ErrOutOfRange)
		}
		for j, v := range m.rows[i] {
			out.put(k, j, new(big.Int).Set(v))
		}
	}

	return out, nil
}

// dense expands m into a freshly allocated [][]*big.Int.
func (m *Matrix) dense() [][]*big.Int {
	out := make([][]*big.Int, m.r)
	for i := range out {
		out[i] = make([]*big.Int, m.c)
		for j := range out[i] {
			out[i][j] = new(big.Int)
		}
		for j, v := range m.rows[i] {
			out[i][j].Set(v)
		}
	}

	return out
}

// Determinant computes det(m) exactly with the Bareiss fraction-free scheme.
// Every division in the scheme is exact, so intermediate values stay integral.
//
// Errors:
//   - ErrNonSquare when Rows() != Cols().
//
// Complexity: O(n³) big-integer operations. Intended for verification of
// companion matrices in tests and debug tooling, not for hot paths.
func (m *Matrix) Determinant() (*big.Int, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, zmatrixErrorf(opDet, err)
	}
	n := m.r
	if n == 0 {
		return big.NewInt(1), nil
	}

	a := m.dense()
	sign := 1
	prev := big.NewInt(1)
	tmp := new(big.Int)
	var i, j, k int
	for k = 0; k < n-1; k++ {
		// Pivot: first non-zero at or below the diagonal.
		if a[k][k].Sign() == 0 {
			swap := -1
			for i = k + 1; i < n; i++ {
				if a[i][k].Sign() != 0 {
					swap = i
					break
				}
			}
			if swap < 0 {
				return new(big.Int), nil
			}
			a[k], a[swap] = a[swap], a[k]
			sign = -sign
		}
		for i = k + 1; i < n; i++ {
			for j = k + 1; j < n; j++ {
				// a[i][j] = (a[i][j]·a[k][k] − a[i][k]·a[k][j]) / prev
				a[i][j].Mul(a[i][j], a[k][k])
				tmp.Mul(a[i][k], a[k][j])
				a[i][j].Sub(a[i][j], tmp)
				a[i][j].Quo(a[i][j], prev)
			}
		}
		prev = a[k][k]
	}

	det := new(big.Int).Set(a[n-1][n-1])
	if sign < 0 {
		det.Neg(det)
	}

	return det, nil
}

// IsUnimodular reports whether m is square with determinant ±1.
func (m *Matrix) IsUnimodular() bool {
	det, err := m.Determinant()
	if err != nil {
		return false
	}

	return det.CmpAbs(big.NewInt(1)) == 0
}

// Int64Rows exports m as row-major int64 data.
// Returns ErrOverflow if an entry does not fit into int64.
func (m *Matrix) Int64Rows() ([][]int64, error) {
	out := make([][]int64, m.r)
	for i := range out {
		out[i] = make([]int64, m.c)
		for j, v := range m.rows[i] {
			if !v.IsInt64() {
				return nil, zmatrixErrorf(opInt64Rows, ErrOverflow)
			}
			out[i][j] = v.Int64()
		}
	}

	return out, nil
}

// String renders m row by row, e.g. "[1 0 -1]\n[0 2 0]\n".
// An empty shape renders as "(r×c)".
func (m *Matrix) String() string {
	if m.r == 0 || m.c == 0 {
		return fmt.Sprintf("(%d×%d)", m.r, m.c)
	}
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if v, ok := m.rows[i][j]; ok {
				sb.WriteString(v.String())
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
