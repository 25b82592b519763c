// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// impl_random.go - implementation of RandomComplex(n, dim, p).
//
// Canonical model:
//   - Every vertex 0..n-1 is always present (as a 0-facet).
//   - Each (dim+1)-subset of the vertices becomes a facet independently with
//     probability p. The complex is the closure of the chosen facets.
//
// Contract:
//   - n ≥ 1, 0 ≤ dim ≤ n-1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0, 1} is deterministic and needs no RNG.
//
// Complexity:
//   - Time: O(C(n, dim+1)) Bernoulli trials.
//
// Determinism:
//   - Trials run over the subsets in lexicographic order, so a fixed seed
//     yields a fixed complex.

package builder

// RandomComplex returns a Constructor that samples a random pure complex.
func RandomComplex(n, dim int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(methodRandomComplex, "n", n, 1); err != nil {
			return err
		}
		if err := validateMin(methodRandomComplex, "dim", dim, 0); err != nil {
			return err
		}
		if err := validateMin(methodRandomComplex, "n-dim", n-dim, 1); err != nil {
			return err
		}
		if err := validateProbability(methodRandomComplex, p); err != nil {
			return err
		}
		rng := cfg.rng
		if rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(methodRandomComplex, ErrNeedRandSource, "p=%.6f", p)
		}

		// 2) All vertices, so isolated ones still count in H_0.
		for v := 0; v < n; v++ {
			d.add(v)
		}

		// 3) Bernoulli trial per subset in lexicographic order.
		combinations(n, dim+1, func(f []int) {
			switch {
			case p == MaxProbability:
				d.add(f...)
			case rng == nil:
				// p == 0: nothing to draw.
			case rng.Float64() < p:
				d.add(f...)
			}
		})

		return nil
	}
}
