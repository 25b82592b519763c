// SPDX-License-Identifier: MIT

package homology

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSource is returned by New when the source is nil.
	ErrNilSource = errors.New("homology: nil source")

	// ErrRange is returned by New when the requested window violates
	// 0 ≤ low ≤ high ≤ Dim().
	ErrRange = errors.New("homology: invalid dimension range")

	// ErrSource wraps any failure reported by the boundary source.
	ErrSource = errors.New("homology: boundary source failed")

	// ErrInconsistent reports a source that is not a chain complex:
	// mismatched shapes, ∂∘∂ ≠ 0, or a negative Betti number.
	ErrInconsistent = errors.New("homology: inconsistent chain complex")

	// ErrCyclesDisabled is returned by Cycles on a sequence built without
	// WithCycles.
	ErrCyclesDisabled = errors.New("homology: cycle tracking disabled")

	// ErrNoGroup is returned by Cycles before the first group or after the end.
	ErrNoGroup = errors.New("homology: sequence not positioned at a group")
)

// sourceErrorf wraps a source failure for dimension d.
func sourceErrorf(d int, err error) error {
	return fmt.Errorf("%w: dimension %d: %w", ErrSource, d, err)
}

// inconsistentf formats an ErrInconsistent with details.
func inconsistentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInconsistent, fmt.Sprintf(format, args...))
}
