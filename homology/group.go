// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvhom/snf"
	"github.com/katalvlaran/lvhom/zmatrix"
)

// Group is one (co)homology group Z^Betti ⊕ Z/c1^m1 ⊕ … .
type Group struct {
	Dim   int `json:"dim" yaml:"dim"`
	Betti int `json:"betti" yaml:"betti"`
	// Torsion is sorted by ascending coefficient, equal coefficients merged.
	Torsion []snf.TorsionClass `json:"torsion,omitempty" yaml:"torsion,omitempty"`
}

// String renders the group as e.g. "Z^2 ⊕ Z/2", "Z", or "0".
func (g Group) String() string {
	var parts []string
	switch {
	case g.Betti == 1:
		parts = append(parts, "Z")
	case g.Betti > 1:
		parts = append(parts, fmt.Sprintf("Z^%d", g.Betti))
	}
	if t := snf.FormatTorsion(g.Torsion); t != "" {
		parts = append(parts, t)
	}
	if len(parts) == 0 {
		return "0"
	}

	return strings.Join(parts, " ⊕ ")
}

// IsTrivial reports whether the group is 0.
func (g Group) IsTrivial() bool { return g.Betti == 0 && len(g.Torsion) == 0 }

// TorsionCount returns the number of uncompressed torsion summands.
func (g Group) TorsionCount() int {
	n := 0
	for _, t := range g.Torsion {
		n += t.Multiplicity
	}

	return n
}

// CycleGroup holds explicit generators for one Group.
//
// Coeffs has one row per generator and one column per basis element of C_Dim;
// the first Group.TorsionCount() rows are torsion generators (in reduction
// order), the remaining Group.Betti rows generate the free part.
type CycleGroup struct {
	Dim    int
	Coeffs *zmatrix.Matrix
	Faces  []string
}
