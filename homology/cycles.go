// SPDX-License-Identifier: MIT

package homology

import (
	"strconv"

	"github.com/katalvlaran/lvhom/zmatrix"
)

// extractCycles assembles the generators of the group finalized from the
// reduced D_k.
//
// Torsion generators are the retained rows of R_{k-1}⁻¹ at the torsion pivot
// columns, in pivot order. Free generators are the rows of L_k at every row
// of D_k that is zero after reduction and not spent, in ascending order.
func (s *Sequence) extractCycles(dim int, d *zmatrix.Matrix, in *stepResult, betti int) (*CycleGroup, error) {
	n := d.Rows()
	var free []int
	for i := 0; i < n; i++ {
		if !in.spent[i] && d.RowIsZero(i) {
			free = append(free, i)
		}
	}
	if len(free) != betti {
		return nil, inconsistentf("dimension %d: %d free generators for betti number %d", dim, len(free), betti)
	}
	if s.opts.verify && !in.left.IsUnimodular() {
		return nil, inconsistentf("dimension %d: companion lost unimodularity", dim)
	}

	nt := in.torsionRows.Rows()
	coeffs, err := zmatrix.New(nt+len(free), n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < nt; i++ {
		for _, e := range in.torsionRows.Row(i) {
			if err = coeffs.Set(i, e.Index, e.Value); err != nil {
				return nil, err
			}
		}
	}
	for g, i := range free {
		for _, e := range in.left.Row(i) {
			if err = coeffs.Set(nt+g, e.Index, e.Value); err != nil {
				return nil, err
			}
		}
	}

	faces, err := s.faceLabels(dim, n)
	if err != nil {
		return nil, err
	}

	return &CycleGroup{Dim: dim, Coeffs: coeffs, Faces: faces}, nil
}

// faceLabels asks a FaceLabeler source for names, falling back to indices.
func (s *Sequence) faceLabels(dim, n int) ([]string, error) {
	if fl, ok := s.src.(FaceLabeler); ok {
		labels, err := fl.FaceLabels(dim)
		if err != nil {
			return nil, sourceErrorf(dim, err)
		}
		if len(labels) != n {
			return nil, inconsistentf("dimension %d: %d labels for %d faces", dim, len(labels), n)
		}

		return labels, nil
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	return labels, nil
}
