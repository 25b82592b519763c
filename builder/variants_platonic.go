// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// variants_platonic.go - face tables of the Platonic solids.

package builder

// PlatonicName enumerates the supported Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  F=4 triangles
	Cube                             // V=8,  F=6 squares
	Octahedron                       // V=6,  F=8 triangles
	Dodecahedron                     // V=20, F=12 pentagons
	Icosahedron                      // V=12, F=20 triangles
)

// String implements fmt.Stringer.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// platonicVertexCounts gives the shell size; a filled solid uses one more
// vertex as the cone point.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicFaces lists every face as a cyclically ordered polygon.
// Square and pentagon faces are fanned into triangles on emission.
var platonicFaces = map[PlatonicName][][]int{
	Tetrahedron: {
		{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3},
	},

	// Bottom square 0-1-2-3, top square 4-5-6-7, verticals i→i+4.
	Cube: {
		{0, 1, 2, 3}, {4, 5, 6, 7},
		{0, 1, 5, 4}, {1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	},

	// Poles ±x = 0,1; ±y = 2,3; ±z = 4,5. One face per octant.
	Octahedron: {
		{0, 2, 4}, {0, 2, 5}, {0, 3, 4}, {0, 3, 5},
		{1, 2, 4}, {1, 2, 5}, {1, 3, 4}, {1, 3, 5},
	},

	// Inner rings 0-4 and 5-9, outer 10-cycle 10..19.
	Dodecahedron: {
		{0, 1, 2, 3, 4}, {5, 6, 7, 8, 9},
		{0, 1, 12, 11, 10}, {1, 2, 14, 13, 12}, {2, 3, 16, 15, 14},
		{3, 4, 18, 17, 16}, {4, 0, 10, 19, 18},
		{5, 6, 13, 12, 11}, {6, 7, 15, 14, 13}, {7, 8, 17, 16, 15},
		{8, 9, 19, 18, 17}, {9, 5, 11, 10, 19},
	},

	// Apex 0, upper ring 1-5, lower ring 6-10, apex 11.
	Icosahedron: {
		{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 1},
		{1, 2, 7}, {2, 3, 8}, {3, 4, 9}, {4, 5, 10}, {5, 1, 6},
		{1, 6, 7}, {2, 7, 8}, {3, 8, 9}, {4, 9, 10}, {5, 10, 6},
		{11, 6, 7}, {11, 7, 8}, {11, 8, 9}, {11, 9, 10}, {11, 10, 6},
	},
}
