// SPDX-License-Identifier: MIT
// Package snf: operation trackers (companion accumulators).

package snf

import (
	"math/big"

	"github.com/katalvlaran/lvhom/zmatrix"
)

// Op is the elementary operation "line Dst += Factor · line Src".
// For a row operation the lines are rows, for a column operation columns.
// Factor is never mutated by the kernels after the Op is emitted.
type Op struct {
	Dst, Src int
	Factor   *big.Int
}

// Tracker receives every elementary operation a kernel applies.
// A returned error aborts the reduction and is passed to the caller.
type Tracker interface {
	RowOp(op Op) error
	ColOp(op Op) error
}

// Nop ignores all operations.
type Nop struct{}

func (Nop) RowOp(Op) error { return nil }
func (Nop) ColOp(Op) error { return nil }

// LeftCompanion accumulates row operations: M ← E·M.
// M must be square with size equal to the reduced matrix's row count.
type LeftCompanion struct{ M *zmatrix.Matrix }

func (c LeftCompanion) RowOp(op Op) error { return c.M.AddRowMultiple(op.Dst, op.Src, op.Factor) }
func (LeftCompanion) ColOp(Op) error      { return nil }

// RightCompanion accumulates column operations: M ← M·E.
type RightCompanion struct{ M *zmatrix.Matrix }

func (RightCompanion) RowOp(Op) error      { return nil }
func (c RightCompanion) ColOp(op Op) error { return c.M.AddColMultiple(op.Dst, op.Src, op.Factor) }

// InverseRightCompanion accumulates the inverses of column operations as row
// operations: M ← E⁻¹·M. For E = "col_dst += f·col_src", E⁻¹·M is
// "row_src -= f·row_dst".
//
// Besides keeping R⁻¹, the same action re-expresses a neighbouring matrix N
// (with M·N = 0 in the chain sense) in the new basis: (M·E)·(E⁻¹·N) = M·N.
type InverseRightCompanion struct{ M *zmatrix.Matrix }

func (InverseRightCompanion) RowOp(Op) error { return nil }
func (c InverseRightCompanion) ColOp(op Op) error {
	return c.M.AddRowMultiple(op.Src, op.Dst, new(big.Int).Neg(op.Factor))
}

// Fanout forwards each operation to every tracker in order, stopping at the
// first error. Nil entries are skipped.
type Fanout []Tracker

func (f Fanout) RowOp(op Op) error {
	for _, t := range f {
		if t == nil {
			continue
		}
		if err := t.RowOp(op); err != nil {
			return err
		}
	}

	return nil
}

func (f Fanout) ColOp(op Op) error {
	for _, t := range f {
		if t == nil {
			continue
		}
		if err := t.ColOp(op); err != nil {
			return err
		}
	}

	return nil
}
