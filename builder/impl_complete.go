// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// impl_complete.go - implementation of Complete(n) and CompleteBipartite(n1, n2).
//
// Contract:
//   - Complete: n ≥ 1 (else ErrTooFewVertices); the 1-skeleton of the
//     (n-1)-simplex, i.e. the graph K_n. H_1 has rank (n-1)(n-2)/2.
//     Complete(1) is a single vertex.
//   - CompleteBipartite: n1, n2 ≥ 1 (else ErrTooFewVertices); left side
//     0..n1-1, right side n1..n1+n2-1, every cross edge. H_1 has rank
//     (n1-1)(n2-1).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Complete: O(n²) facets. CompleteBipartite: O(n1·n2) facets.
//
// Determinism:
//   - Edges are emitted for i asc, then j asc.

package builder

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(methodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		if n == 1 {
			d.add(0)
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.add(i, j)
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(methodCompleteBipartite, "n1", n1, MinPartition); err != nil {
			return err
		}
		if err := validateMin(methodCompleteBipartite, "n2", n2, MinPartition); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				d.add(i, n1+j)
			}
		}

		return nil
	}
}
