// SPDX-License-Identifier: MIT
// Package snf: stand-alone decomposition L·M·R = D.
//
// Decompose runs the same pipeline the homology iterator uses on a single
// matrix (optional unit elimination, then Smith normal form) while tracking
// both companions explicitly. It is the entry point for the "snf" command and
// the reference against which the kernels are tested.

package snf

import (
	"math/big"

	"github.com/katalvlaran/lvhom/zmatrix"
)

// Decomposition is the result of Decompose.
//
// Invariants:
//
//	L·M·R = D,  R·RInv = RInv·R = I,  |det L| = |det R| = 1
//
// D has exactly Rank non-zero entries, one per pivot row and column.
type Decomposition struct {
	D    *zmatrix.Matrix
	L    *zmatrix.Matrix
	R    *zmatrix.Matrix
	RInv *zmatrix.Matrix

	Rank int
	// Pivots lists every pivot (elimination first, then Smith) with its value.
	Pivots  []Pivot
	Torsion []TorsionClass
}

// Option configures Decompose.
type Option func(*options)

type options struct {
	eliminate bool
}

// WithoutElimination skips the unit-pivot pre-pass. The resulting rank and
// torsion are identical; only D's pivot positions (and the companions) differ.
func WithoutElimination() Option {
	return func(o *options) { o.eliminate = false }
}

// Decompose computes D = L·M·R for a copy of m; m itself is not modified.
//
// Errors:
//   - ErrNilMatrix when m is nil.
func Decompose(m *zmatrix.Matrix, opts ...Option) (*Decomposition, error) {
	if m == nil {
		return nil, snfErrorf(opDecompose, ErrNilMatrix)
	}
	o := options{eliminate: true}
	for _, fn := range opts {
		fn(&o)
	}

	out := &Decomposition{
		D:    m.Clone(),
		L:    zmatrix.Identity(m.Rows()),
		R:    zmatrix.Identity(m.Cols()),
		RInv: zmatrix.Identity(m.Cols()),
	}
	t := Fanout{
		LeftCompanion{M: out.L},
		RightCompanion{M: out.R},
		InverseRightCompanion{M: out.RInv},
	}

	var elim Elimination
	if o.eliminate {
		var err error
		if elim, err = EliminateUnits(out.D, t); err != nil {
			return nil, snfErrorf(opDecompose, err)
		}
	}
	res, err := SmithNormalForm(out.D, t)
	if err != nil {
		return nil, snfErrorf(opDecompose, err)
	}

	// Put the eliminated ±1 pivots back so that L·M·R = D holds literally.
	for _, p := range elim.Pivots {
		if err = out.D.Set(p.Row, p.Col, p.Value); err != nil {
			return nil, snfErrorf(opDecompose, err)
		}
	}

	out.Rank = elim.Rank + res.Rank
	out.Pivots = append(append(out.Pivots, elim.Pivots...), res.Pivots...)
	out.Torsion = CompressTorsion(res.Torsion)

	return out, nil
}

// InvariantFactors returns the absolute pivot values in ascending order,
// i.e. the diagonal of the canonical Smith form d1 | d2 | … | d_rank.
func (d *Decomposition) InvariantFactors() []*big.Int {
	out := make([]*big.Int, 0, len(d.Pivots))
	// Elimination pivots are units; Smith pivots already come in
	// divisibility order, so a stable prefix of ones keeps the chain sorted.
	for _, p := range d.Pivots {
		out = append(out, new(big.Int).Abs(p.Value))
	}
	ones := 0
	for _, v := range out {
		if v.IsInt64() && v.Int64() == 1 {
			ones++
		}
	}
	sorted := make([]*big.Int, 0, len(out))
	for i := 0; i < ones; i++ {
		sorted = append(sorted, big.NewInt(1))
	}
	for _, v := range out {
		if !(v.IsInt64() && v.Int64() == 1) {
			sorted = append(sorted, v)
		}
	}

	return sorted
}
