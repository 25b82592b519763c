// SPDX-License-Identifier: MIT
// Package snf: general Smith normal form reduction.
//
// Implementation:
//   - Stage 1: choose the active entry of minimal |v| (ties: lowest row, then
//     lowest column) as pivot.
//   - Stage 2: Euclidean clean-up. Cancel the pivot column with row operations
//     and the pivot row with column operations using truncated quotients. Any
//     remainder is strictly smaller than the pivot and becomes the new pivot.
//   - Stage 3: divisibility repair. If an active entry is not a multiple of
//     the pivot, add its row to the pivot row and go back to Stage 2; the
//     pivot strictly shrinks each time, so this terminates.
//   - Stage 4: retire the pivot row and column, record the pivot.
//
// Behavior highlights:
//   - Pivots are extracted in divisibility order d1 | d2 | … .
//   - No swaps; pivots are left in place, so the result is a "scattered"
//     diagonal (one non-zero per retired row and column).
//   - Zero rows/columns are never used, neither as source nor as target.
//
// Complexity:
//   - Pivot search is O(nnz) per pivot; the Euclidean loop is bounded by the
//     bit length of the entries. Adequate for boundary matrices, which are
//     very sparse once EliminateUnits has run.

package snf

import (
	"math/big"

	"github.com/katalvlaran/lvhom/zmatrix"
)

// Pivot is a retired diagonal entry of the reduced matrix.
type Pivot struct {
	Row, Col int
	Value    *big.Int
}

// Torsion is an uncompressed torsion entry: a pivot with |Value| > 1.
// Index is the pivot column; the homology iterator uses it to pick the
// torsion generator out of the column companion.
type Torsion struct {
	Coefficient *big.Int
	Index       int
}

// Result summarises a Smith normal form run.
type Result struct {
	// Rank counts the pivots found by this run only. Callers continuing from
	// an EliminateUnits pass add Elimination.Rank themselves.
	Rank int
	// Pivots in extraction (divisibility) order.
	Pivots []Pivot
	// Torsion lists pivots with |value| > 1, in extraction order.
	Torsion []Torsion
}

// smith holds the working state of one reduction.
type smith struct {
	m       *zmatrix.Matrix
	t       Tracker
	rowDone []bool
	colDone []bool
}

// SmithNormalForm reduces m in place to a scattered diagonal whose non-zero
// entries form a divisibility chain, reporting every operation to t (nil
// means Nop). m may already be partially reduced (e.g. by EliminateUnits).
//
// Degenerate inputs: a zero matrix yields Rank 0 and no torsion; a
// unimodular matrix yields full rank and no torsion.
func SmithNormalForm(m *zmatrix.Matrix, t Tracker) (Result, error) {
	var res Result
	if m == nil {
		return res, snfErrorf(opSmith, ErrNilMatrix)
	}
	if t == nil {
		t = Nop{}
	}
	s := &smith{
		m:       m,
		t:       t,
		rowDone: make([]bool, m.Rows()),
		colDone: make([]bool, m.Cols()),
	}

	for {
		i, j, ok := s.minEntry()
		if !ok {
			break
		}
		i, j, err := s.settle(i, j)
		if err != nil {
			return res, snfErrorf(opSmith, err)
		}
		s.rowDone[i] = true
		s.colDone[j] = true

		v := new(big.Int).Set(m.Peek(i, j))
		res.Rank++
		res.Pivots = append(res.Pivots, Pivot{Row: i, Col: j, Value: v})
		if v.CmpAbs(big.NewInt(1)) > 0 {
			res.Torsion = append(res.Torsion, Torsion{Coefficient: new(big.Int).Abs(v), Index: j})
		}
	}

	return res, nil
}

// minEntry returns the active entry of minimal absolute value.
func (s *smith) minEntry() (int, int, bool) {
	var best *big.Int
	bi, bj := -1, -1
	for i := 0; i < s.m.Rows(); i++ {
		if s.rowDone[i] {
			continue
		}
		for _, j := range s.m.RowSupport(i) {
			if s.colDone[j] {
				continue
			}
			v := s.m.Peek(i, j)
			if best == nil || v.CmpAbs(best) < 0 {
				best, bi, bj = v, i, j
			}
		}
	}

	return bi, bj, best != nil
}

// settle runs the Euclidean clean-up and divisibility repair around the pivot
// (i,j) until row i and column j hold nothing but a pivot that divides every
// remaining active entry. It returns the final pivot position.
func (s *smith) settle(i, j int) (int, int, error) {
	for {
		var err error
		if i, j, err = s.clean(i, j); err != nil {
			return i, j, err
		}
		r, found := s.indivisibleRow(i, j)
		if !found {
			return i, j, nil
		}
		// Row i is zero outside column j and row r is zero in column j, so
		// row i picks up a non-multiple of the pivot; clean will shrink it.
		one := big.NewInt(1)
		if err = s.m.AddRowMultiple(i, r, one); err != nil {
			return i, j, err
		}
		if err = s.t.RowOp(Op{Dst: i, Src: r, Factor: one}); err != nil {
			return i, j, err
		}
	}
}

// clean cancels column j and row i against the pivot (i,j), moving the pivot
// to a smaller remainder until both lines are clear.
func (s *smith) clean(i, j int) (int, int, error) {
	for {
		pv := new(big.Int).Set(s.m.Peek(i, j))

		for _, r := range s.m.ColSupport(j) {
			if r == i {
				continue
			}
			q := new(big.Int).Quo(s.m.Peek(r, j), pv)
			if q.Sign() == 0 {
				continue
			}
			q.Neg(q)
			if err := s.m.AddRowMultiple(r, i, q); err != nil {
				return i, j, err
			}
			if err := s.t.RowOp(Op{Dst: r, Src: i, Factor: q}); err != nil {
				return i, j, err
			}
		}

		for _, c := range s.m.RowSupport(i) {
			if c == j {
				continue
			}
			q := new(big.Int).Quo(s.m.Peek(i, c), pv)
			if q.Sign() == 0 {
				continue
			}
			q.Neg(q)
			if err := s.m.AddColMultiple(c, j, q); err != nil {
				return i, j, err
			}
			if err := s.t.ColOp(Op{Dst: c, Src: j, Factor: q}); err != nil {
				return i, j, err
			}
		}

		// Remainders left in the pivot lines are all smaller than pv.
		var best *big.Int
		ni, nj := -1, -1
		for _, r := range s.m.ColSupport(j) {
			if v := s.m.Peek(r, j); r != i && (best == nil || v.CmpAbs(best) < 0) {
				best, ni, nj = v, r, j
			}
		}
		for _, c := range s.m.RowSupport(i) {
			if v := s.m.Peek(i, c); c != j && (best == nil || v.CmpAbs(best) < 0) {
				best, ni, nj = v, i, c
			}
		}
		if best == nil {
			return i, j, nil
		}
		i, j = ni, nj
	}
}

// indivisibleRow looks for an active row holding an entry that the pivot
// (i,j) does not divide.
func (s *smith) indivisibleRow(i, j int) (int, bool) {
	pv := s.m.Peek(i, j)
	if pv.CmpAbs(big.NewInt(1)) == 0 {
		return -1, false
	}
	rem := new(big.Int)
	for r := 0; r < s.m.Rows(); r++ {
		if r == i || s.rowDone[r] {
			continue
		}
		for _, c := range s.m.RowSupport(r) {
			if s.colDone[c] {
				continue
			}
			if rem.Rem(s.m.Peek(r, c), pv).Sign() != 0 {
				return r, true
			}
		}
	}

	return -1, false
}
