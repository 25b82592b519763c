// SPDX-License-Identifier: MIT
// Package zmatrix: shared validators.
// Validators return plain sentinels; callers add their own operation tag.

package zmatrix

// ValidateNotNil returns ErrNilMatrix if m is nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateMulCompatible checks that a·b is defined: both non-nil and
// a.Cols() == b.Rows().
//
// Errors (in priority order):
//   - ErrNilMatrix
//   - ErrDimensionMismatch
func ValidateMulCompatible(a, b *Matrix) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare returns ErrNilMatrix or ErrNonSquare as appropriate.
func ValidateSquare(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}
