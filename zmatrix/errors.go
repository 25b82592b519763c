// SPDX-License-Identifier: MIT
// Package zmatrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation tag
// via zmatrixErrorf) and tests match them with errors.Is.

package zmatrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (negative sizes
	// or ragged row data).
	ErrBadShape = errors.New("zmatrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("zmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Mul where
	// a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("zmatrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("zmatrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Matrix was used as an operand.
	ErrNilMatrix = errors.New("zmatrix: nil matrix")

	// ErrAliasedOperands is returned by elementary operations whose source and
	// destination line coincide; dst += f·dst is a scaling, not a unimodular
	// elementary operation.
	ErrAliasedOperands = errors.New("zmatrix: source and destination coincide")

	// ErrOverflow is returned by Int64Rows when an entry does not fit in int64.
	ErrOverflow = errors.New("zmatrix: entry overflows int64")
)

// Operation tags for uniform error wrapping.
const (
	opNew        = "New"
	opFromRows   = "FromRows"
	opFromBig    = "FromBigRows"
	opAt         = "At"
	opSet        = "Set"
	opAddRow     = "AddRowMultiple"
	opAddCol     = "AddColMultiple"
	opClearRows  = "ClearRows"
	opClearCols  = "ClearCols"
	opMul        = "Mul"
	opSelectRows = "SelectRows"
	opDet        = "Determinant"
	opInt64Rows  = "Int64Rows"
)

// zmatrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func zmatrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
