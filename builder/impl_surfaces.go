// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// impl_surfaces.go - small fixed triangulations with known homology.
//
//	ProjectivePlane  6 vertices  H_0=Z  H_1=Z/2      H_2=0
//	Torus            7 vertices  H_0=Z  H_1=Z^2      H_2=Z
//	KleinBottle      9 vertices  H_0=Z  H_1=Z ⊕ Z/2  H_2=0
//	DunceHat        13 vertices  contractible, but not collapsible
//
// All of them take no parameters and cannot fail.

package builder

// projectivePlaneFaces is the 6-vertex RP² (half of the icosahedron
// under the antipodal map).
var projectivePlaneFaces = [][]int{
	{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 1},
	{1, 2, 4}, {2, 3, 5}, {3, 4, 1}, {4, 5, 2}, {5, 1, 3},
}

// ProjectivePlane returns a Constructor for the 6-vertex real projective plane.
func ProjectivePlane() Constructor {
	return func(d *draft, _ builderConfig) error {
		for _, f := range projectivePlaneFaces {
			d.add(f...)
		}

		return nil
	}
}

// Torus returns a Constructor for the 7-vertex (Möbius) torus: triangles
// {i, i+1, i+3} and {i, i+2, i+3} mod 7.
func Torus() Constructor {
	return func(d *draft, _ builderConfig) error {
		const n = 7
		for i := 0; i < n; i++ {
			d.add(i, (i+1)%n, (i+3)%n)
			d.add(i, (i+2)%n, (i+3)%n)
		}

		return nil
	}
}

// KleinBottle returns a Constructor for the Klein bottle as the 3×3
// KleinGrid.
func KleinBottle() Constructor {
	return KleinGrid(MinPeriodicGridDim, MinPeriodicGridDim)
}

// dunceSide is the number of segments per side of the dunce hat triangle.
const dunceSide = 3

// DunceHat returns a Constructor for the dunce hat: a triangle whose three
// sides are glued as a, a, a⁻¹.
//
// The glued boundary is the loop s_0 … s_{k-1} (k = 3, all corners become
// s_0). Walking around the triangle visits side AB as s_0..s_{k-1}, side BC
// the same way, and side CA backwards. Inside, a ring of 3k fresh vertices
// and one center separate the boundary so that no triangle touches two
// identified points.
func DunceHat() Constructor {
	return func(d *draft, _ builderConfig) error {
		k := dunceSide
		boundary := make([]int, 0, 3*k)
		for side := 0; side < 2; side++ {
			for i := 0; i < k; i++ {
				boundary = append(boundary, i)
			}
		}
		boundary = append(boundary, 0)
		for i := k - 1; i > 0; i-- {
			boundary = append(boundary, i)
		}

		n := len(boundary)
		ring := func(i int) int { return k + i%n }
		center := k + n
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			d.add(boundary[i], boundary[j], ring(i))
			d.add(boundary[j], ring(j), ring(i))
			d.add(ring(i), ring(j), center)
		}

		return nil
	}
}
