// SPDX-License-Identifier: MIT

// Package zmatrix provides a sparse matrix over the integers with exact,
// arbitrary-precision entries (math/big).
//
// The package is the numeric substrate of lvhom: boundary matrices, companion
// (change-of-basis) matrices and Smith normal forms are all *Matrix values.
//
// What it offers:
//
//   - Construction: New, Identity, FromRows.
//   - Safe accessors (At/Set) that copy values in and out, and a zero-copy Peek
//     for hot loops that promise not to mutate what they read.
//   - Row and column supports in ascending index order (deterministic walks).
//   - Elementary operations AddRowMultiple / AddColMultiple (dst += f·src) and
//     row/column clearing. These are the only mutations the reduction kernels
//     need, and each one is unimodular.
//   - Exact algebra: Transpose, Mul, Equal, SelectRows, Determinant (Bareiss),
//     IsUnimodular.
//
// Storage is row-major sparse (one map per row) plus a column support index,
// so both row and column walks cost O(nnz of that line). Zero entries are never
// stored.
//
// Errors are package sentinels (errors.go); kernels wrap them with an operation
// tag, so callers branch with errors.Is.
//
// A Matrix is not safe for concurrent mutation. Concurrent readers are fine.
package zmatrix
