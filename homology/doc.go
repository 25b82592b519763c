// SPDX-License-Identifier: MIT

// Package homology computes integral homology and cohomology groups of a
// finite chain complex one dimension at a time.
//
// A Sequence pulls boundary matrices from a Source on demand, reduces each
// with the unit-elimination pass and the Smith normal form kernel of package
// snf, and carries the resulting change of basis into the next dimension.
// Every call to Next yields exactly one Group; the groups are produced in
// traversal order:
//
//	homology:    dim high, high-1, …, low   (∂ fetched in descending order)
//	cohomology:  dim low, low+1, …, high    (∂ fetched in ascending order)
//
// # Traversal matrices
//
// Internally the sequence works on "row convention" matrices D_0 … D_m with
// m = high-low+1 and D_k·D_{k+1} = 0:
//
//	homology:    D_k = ∂_{high+1-k}ᵀ
//	cohomology:  D_k = ∂_{low+k}
//
// so that in both modes the group at step k ≥ 1 is the left kernel of D_k
// modulo the row space of D_{k-1}:
//
//	betti_k   = rows(D_k) - rank(D_{k-1}) - rank(D_k)
//	torsion_k = invariant factors > 1 of D_{k-1}
//
// # Lag
//
// A group depends on two adjacent matrices, and a step also fetches the next
// matrix to keep the basis substitution exact. After j ≥ 1 groups have been
// yielded exactly min(j+2, m+1) boundary matrices have been requested from
// the source; New requests none.
//
// # Cycles
//
// With WithCycles the sequence keeps the companion matrices and Cycles
// returns an explicit generator per summand: torsion generators first (one
// per uncompressed torsion entry) followed by the free generators. Without
// it no companion is ever allocated.
//
// # Errors
//
//   - ErrNilSource, ErrRange: returned by New before any work is done.
//   - ErrSource: the source failed; the sequence is aborted.
//   - ErrInconsistent: adjacent matrices do not compose, or (with
//     WithVerify) do not square to zero.
//
// A failed sequence stays failed: Next keeps returning false and Err keeps
// returning the first error.
package homology
