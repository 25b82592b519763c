// SPDX-License-Identifier: MIT

package homology

import (
	"slices"

	"github.com/katalvlaran/lvhom/zmatrix"
)

// Homology returns a sequence of homology groups H_high … H_low.
func Homology(src Source, opts ...Option) (*Sequence, error) {
	return New(src, opts...)
}

// HomologyAndCycles is Homology with cycle generators.
func HomologyAndCycles(src Source, opts ...Option) (*Sequence, error) {
	return New(src, slices.Concat(opts, []Option{WithCycles()})...)
}

// Cohomology returns a sequence of cohomology groups H^low … H^high.
func Cohomology(src Source, opts ...Option) (*Sequence, error) {
	return New(src, slices.Concat(opts, []Option{WithCohomology()})...)
}

// CohomologyAndCocycles is Cohomology with cocycle generators.
func CohomologyAndCocycles(src Source, opts ...Option) (*Sequence, error) {
	return New(src, slices.Concat(opts, []Option{WithCohomology(), WithCycles()})...)
}

// Compute drains a new Sequence into a slice, in traversal order.
func Compute(src Source, opts ...Option) ([]Group, error) {
	seq, err := New(src, opts...)
	if err != nil {
		return nil, err
	}
	groups := make([]Group, 0, seq.Len())
	for g, err := range seq.All() {
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}

	return groups, nil
}

// EulerCharacteristic returns Σ (-1)^dim · betti over groups.
func EulerCharacteristic(groups []Group) int {
	chi := 0
	for _, g := range groups {
		if g.Dim%2 == 0 {
			chi += g.Betti
		} else {
			chi -= g.Betti
		}
	}

	return chi
}

// ChainEuler returns Σ (-1)^d · rank C_d for d = 0..Dim(), reading the chain
// ranks from the column counts of the boundary maps.
func ChainEuler(src Source) (int, error) {
	if src == nil {
		return 0, ErrNilSource
	}
	chi := 0
	for d := 0; d <= src.Dim(); d++ {
		m, err := src.BoundaryMatrix(d)
		if err != nil {
			return 0, sourceErrorf(d, err)
		}
		if m == nil {
			return 0, sourceErrorf(d, zmatrix.ErrNilMatrix)
		}
		if d%2 == 0 {
			chi += m.Cols()
		} else {
			chi -= m.Cols()
		}
	}

	return chi, nil
}
