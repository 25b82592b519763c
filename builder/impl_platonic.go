// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// impl_platonic.go - implementation of PlatonicSolid(name, filled).
//
// Contract:
//   - name must be one of the PlatonicName constants (else ErrOptionViolation).
//   - The shell is the triangulated surface of the solid, a 2-sphere; square
//     and pentagon faces are fanned from their first corner.
//   - filled cones every shell triangle to an extra center vertex (index V),
//     giving a contractible 3-ball.
//
// Complexity:
//   - O(F) facets for the shell; the same again for the cone.

package builder

import "fmt"

// PlatonicSolid returns a Constructor for the surface (or the solid ball)
// of a Platonic solid.
func PlatonicSolid(name PlatonicName, filled bool) Constructor {
	return func(d *draft, _ builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		faces := platonicFaces[name]

		if !filled {
			for _, poly := range faces {
				d.addPolygon(poly...)
			}
			return nil
		}

		// Cone each shell triangle to the center.
		shell := &draft{}
		for _, poly := range faces {
			shell.addPolygon(poly...)
		}
		center := n
		for _, tri := range shell.facets {
			d.add(tri[0], tri[1], tri[2], center)
		}

		return nil
	}
}
