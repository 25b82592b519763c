// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// registry.go - named fixtures for command-line use.

package builder

import (
	"fmt"
	"slices"
	"strings"
)

// Fixture is a named, parameterless complex.
type Fixture struct {
	Name        string
	Description string
	Constructor Constructor
}

var fixtures = []Fixture{
	{"point", "a single vertex", Simplex(0)},
	{"circle", "boundary of a triangle", Cycle(3)},
	{"triangle", "filled 2-simplex", Simplex(2)},
	{"sphere", "boundary of the tetrahedron", Sphere(2)},
	{"sphere3", "boundary of the 4-simplex", Sphere(3)},
	{"two-spheres", "disjoint union of two 2-spheres", composite(Sphere(2), Disjoint(Sphere(2)))},
	{"k33", "complete bipartite graph K_{3,3}", CompleteBipartite(3, 3)},
	{"k5", "complete graph K_5", Complete(5)},
	{"wheel", "cone over a 6-cycle", Wheel(7)},
	{"octahedron", "octahedron surface", PlatonicSolid(Octahedron, false)},
	{"icosahedron", "icosahedron surface", PlatonicSolid(Icosahedron, false)},
	{"ball", "filled cube", PlatonicSolid(Cube, true)},
	{"rp2", "6-vertex projective plane", ProjectivePlane()},
	{"torus", "7-vertex torus", Torus()},
	{"klein", "3×3 Klein bottle", KleinBottle()},
	{"dunce", "dunce hat", DunceHat()},
}

// composite chains constructors into one.
func composite(cons ...Constructor) Constructor {
	return func(d *draft, cfg builderConfig) error {
		for _, fn := range cons {
			if err := fn(d, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

// Fixtures returns the registered fixtures sorted by name.
func Fixtures() []Fixture {
	out := slices.Clone(fixtures)
	slices.SortFunc(out, func(a, b Fixture) int { return strings.Compare(a.Name, b.Name) })

	return out
}

// Named returns the constructor registered under name.
// Returns ErrUnknownFixture for an unregistered name.
func Named(name string) (Constructor, error) {
	for _, f := range fixtures {
		if f.Name == name {
			return f.Constructor, nil
		}
	}

	return nil, fmt.Errorf("%s: %q: %w", methodNamed, name, ErrUnknownFixture)
}
