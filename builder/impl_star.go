// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// impl_star.go - implementation of Star(n) and Wheel(n).
//
// Contract:
//   - Star: n ≥ 2 (else ErrTooFewVertices); center 0, leaves 1..n-1, one edge
//     per leaf. Contractible.
//   - Wheel: n ≥ 4 (else ErrTooFewVertices); center 0 coned over the rim
//     cycle 1..n-1, emitted as triangles {0, i, i+1}. A disk, so contractible,
//     while its 1-skeleton has H_1 of rank n-1.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) facets.

package builder

// centerVertex is the index of the hub in Star and Wheel.
const centerVertex = 0

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(methodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			d.add(centerVertex, leaf)
		}

		return nil
	}
}

// Wheel returns a Constructor for the cone over an (n-1)-cycle.
func Wheel(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if err := validateMin(methodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			// Rim vertices are 1..rim; wrap the last spoke back to 1.
			d.add(centerVertex, 1+i, 1+(i+1)%rim)
		}

		return nil
	}
}
