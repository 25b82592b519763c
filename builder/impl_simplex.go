// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// impl_simplex.go - implementation of Simplex(n) and Sphere(n).
//
// Contract:
//   - Simplex(n): the full n-simplex on vertices 0..n (n ≥ 0). Contractible.
//   - Sphere(n): the boundary of the (n+1)-simplex on vertices 0..n+1 (n ≥ 0),
//     a triangulated S^n. Sphere(0) is two points.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Simplex: O(n) to emit; the closure in complex.NewSimplicial is O(2^n).
//   - Sphere: n+2 facets of n+1 vertices each.
//
// Determinism:
//   - Sphere emits facets by omitting vertex n+1, n, …, 0 in that order.

package builder

// Simplex returns a Constructor for the full n-simplex.
func Simplex(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(methodSimplex, "n", n, MinSimplexDim); err != nil {
			return err
		}
		f := make([]int, n+1)
		for i := range f {
			f[i] = i
		}
		d.add(f...)

		return nil
	}
}

// Sphere returns a Constructor for the boundary of the (n+1)-simplex.
func Sphere(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(methodSphere, "n", n, MinSphereDim); err != nil {
			return err
		}
		// Every (n+1)-subset of {0..n+1}: drop one vertex at a time.
		f := make([]int, 0, n+1)
		for skip := n + 1; skip >= 0; skip-- {
			f = f[:0]
			for v := 0; v <= n+1; v++ {
				if v != skip {
					f = append(f, v)
				}
			}
			d.add(f...)
		}

		return nil
	}
}
