// SPDX-License-Identifier: MIT
// Package snf: unit-pivot elimination pre-pass.
//
// Contract:
//   • Columns are scanned in ascending order; in each column the first entry
//     (lowest row) with |v| = 1 becomes the pivot.
//   • The pivot column is cancelled with row_i += f·row_pivot, then the pivot
//     row with col_j += f·col_pivot. No division, no swaps.
//   • The pivot row and column are cleared afterwards; the pivot itself is
//     reported in Elimination.Pivots and counted in Rank.
//
// Invariant after return (with L, R tracking the reported operations):
//
//	L·M₀·R = M + Σ pivots
//
// i.e. the reduced matrix with the eliminated pivots put back.
//
// Only the pivot lines are ever used as a source. The homology iterator relies
// on this: the inverse of such an operation modifies pivot lines of the
// neighbouring matrix only, and those lines are known to vanish there.

package snf

import (
	"math/big"

	"github.com/katalvlaran/lvhom/zmatrix"
)

// Elimination summarises a unit-pivot pass.
type Elimination struct {
	// Rank is the number of pivots eliminated (a lower bound of the rank).
	Rank int
	// Rows and Cols list the pivot rows and columns in elimination order.
	Rows []int
	Cols []int
	// Pivots holds the eliminated ±1 entries with their positions.
	Pivots []Pivot
}

// isUnit reports |v| == 1.
func isUnit(v *big.Int) bool {
	return v != nil && v.IsInt64() && (v.Int64() == 1 || v.Int64() == -1)
}

// EliminateUnits cancels every ±1 pivot it can find in a single column sweep,
// mutating m in place and reporting the operations to t (nil means Nop).
//
// The pass is an optimisation: SmithNormalForm on the result yields the same
// invariants as SmithNormalForm on the original matrix, once Rank is added.
//
// Complexity: O(Σ over pivots of nnz(pivot column) · nnz(pivot row)) big
// integer operations; for {0,±1} boundary matrices this is close to O(nnz).
func EliminateUnits(m *zmatrix.Matrix, t Tracker) (Elimination, error) {
	var out Elimination
	if m == nil {
		return out, snfErrorf(opEliminate, ErrNilMatrix)
	}
	if t == nil {
		t = Nop{}
	}

	for c := 0; c < m.Cols(); c++ {
		r := -1
		for _, i := range m.ColSupport(c) {
			if isUnit(m.Peek(i, c)) {
				r = i
				break
			}
		}
		if r < 0 {
			continue
		}
		// s = pivot value (±1) so that s·s = 1 and f = -v·s cancels v.
		s := new(big.Int).Set(m.Peek(r, c))

		for _, i := range m.ColSupport(c) {
			if i == r {
				continue
			}
			f := new(big.Int).Mul(m.Peek(i, c), s)
			f.Neg(f)
			if err := m.AddRowMultiple(i, r, f); err != nil {
				return out, snfErrorf(opEliminate, err)
			}
			if err := t.RowOp(Op{Dst: i, Src: r, Factor: f}); err != nil {
				return out, snfErrorf(opEliminate, err)
			}
		}

		// Column c now holds only the pivot, so these touch row r alone.
		for _, j := range m.RowSupport(r) {
			if j == c {
				continue
			}
			f := new(big.Int).Mul(m.Peek(r, j), s)
			f.Neg(f)
			if err := m.AddColMultiple(j, c, f); err != nil {
				return out, snfErrorf(opEliminate, err)
			}
			if err := t.ColOp(Op{Dst: j, Src: c, Factor: f}); err != nil {
				return out, snfErrorf(opEliminate, err)
			}
		}

		m.ClearRow(r)
		m.ClearCol(c)
		out.Rank++
		out.Rows = append(out.Rows, r)
		out.Cols = append(out.Cols, c)
		out.Pivots = append(out.Pivots, Pivot{Row: r, Col: c, Value: s})
	}

	return out, nil
}
