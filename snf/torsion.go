// SPDX-License-Identifier: MIT
// Package snf: torsion compression.

package snf

import (
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// TorsionClass is a cyclic summand Z/Coefficient repeated Multiplicity times.
type TorsionClass struct {
	Coefficient  *big.Int `json:"coefficient" yaml:"coefficient"`
	Multiplicity int      `json:"multiplicity" yaml:"multiplicity"`
}

// String renders the class as "Z/2" or "(Z/2)^3".
func (c TorsionClass) String() string {
	if c.Multiplicity == 1 {
		return fmt.Sprintf("Z/%s", c.Coefficient)
	}

	return fmt.Sprintf("(Z/%s)^%d", c.Coefficient, c.Multiplicity)
}

// CompressTorsion sorts entries by ascending coefficient and merges equal
// coefficients into (coefficient, multiplicity) pairs. Index information is
// dropped. The input slice is not modified.
func CompressTorsion(entries []Torsion) []TorsionClass {
	if len(entries) == 0 {
		return nil
	}
	coeffs := make([]*big.Int, len(entries))
	for i, e := range entries {
		coeffs[i] = new(big.Int).Abs(e.Coefficient)
	}
	slices.SortStableFunc(coeffs, func(a, b *big.Int) int { return a.Cmp(b) })

	out := make([]TorsionClass, 0, len(coeffs))
	for _, c := range coeffs {
		if n := len(out); n > 0 && out[n-1].Coefficient.Cmp(c) == 0 {
			out[n-1].Multiplicity++
			continue
		}
		out = append(out, TorsionClass{Coefficient: c, Multiplicity: 1})
	}

	return out
}

// FormatTorsion joins classes with " ⊕ ", e.g. "Z/2 ⊕ (Z/4)^2".
// An empty list renders as "".
func FormatTorsion(classes []TorsionClass) string {
	parts := make([]string, len(classes))
	for i, c := range classes {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ⊕ ")
}
