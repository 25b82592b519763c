// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// impl_cycle.go - implementation of Cycle(n) and Path(n).
//
// Contract:
//   - Cycle: n ≥ 3 (else ErrTooFewVertices); edges {i, (i+1)%n}. A circle:
//     H_0 = H_1 = Z.
//   - Path: n ≥ 2 (else ErrTooFewVertices); edges {i, i+1}. Contractible.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) facets.
//
// Determinism:
//   - Edges are emitted by increasing i.

package builder

// Cycle returns a Constructor that builds the n-vertex circle C_n.
func Cycle(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if err := validateMin(methodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		// Emit edges in ascending i; for i==n-1, connect to 0 to close the ring.
		for i := 0; i < n; i++ {
			d.add(i, (i+1)%n)
		}

		return nil
	}
}

// Path returns a Constructor that builds the n-vertex path P_n.
func Path(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(methodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			d.add(i, i+1)
		}

		return nil
	}
}
