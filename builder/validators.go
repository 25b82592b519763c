// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// validators.go - shared parameter checks for constructors.

package builder

import "math"

// validateMin ensures got ≥ min, returning ErrTooFewVertices otherwise.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "%s=%d < min=%d", param, got, min)
	}

	return nil
}

// validateProbability ensures p ∈ [MinProbability, MaxProbability]. NaN is
// rejected.
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability, "p=%.6f not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}

	return nil
}
