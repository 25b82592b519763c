// SPDX-License-Identifier: MIT

// Package snf reduces integer matrices to Smith normal form with exact
// arithmetic and records every elementary operation it performs.
//
// Two kernels are provided and are meant to be chained:
//
//   - EliminateUnits: a cheap pre-pass that cancels pivots of absolute value 1
//     using only "add a multiple of the pivot row/column" operations. Boundary
//     matrices of simplicial complexes (entries in {0,±1}) are usually reduced
//     almost entirely by this pass.
//   - SmithNormalForm: the general gcd-based reduction. It continues from any
//     partially eliminated matrix and produces a divisibility chain of pivots
//     d1 | d2 | … together with the torsion coefficients (pivots > 1).
//
// Neither kernel swaps lines and neither ever touches a zero row or column.
// Pivots stay where they are found. Callers that keep several matrices in
// lock-step (the homology iterator does) rely on both properties.
//
// Operations are reported to a Tracker. Ready-made trackers maintain companion
// matrices:
//
//	L    ← E·L        (LeftCompanion, row operations)
//	R    ← R·E        (RightCompanion, column operations)
//	RInv ← E⁻¹·RInv   (InverseRightCompanion, column operations)
//
// so that after a reduction L·M·R = D and RInv = R⁻¹. Fanout broadcasts to
// several trackers, Nop discards everything.
//
// Torsion coefficients come out uncompressed, one per pivot, tagged with the
// pivot column. CompressTorsion groups them into (coefficient, multiplicity)
// classes in ascending order, independent of the order they were found in.
package snf
