// SPDX-License-Identifier: MIT

package homology

import "github.com/katalvlaran/lvhom/zmatrix"

// Source supplies the boundary maps of a finite chain complex.
//
// BoundaryMatrix(d) is the matrix of ∂_d: C_d → C_{d-1}, with rows indexed
// by the basis of C_{d-1} and columns by the basis of C_d. It must accept
// every d in [0, Dim()+1]: ∂_0 is the 0×n_0 matrix and ∂_{Dim()+1} the
// n_Dim×0 matrix. Consecutive maps must compose to zero.
//
// A Sequence calls Dim once (in New) and BoundaryMatrix at most once per
// dimension, in monotonic order. The returned matrix is owned by the
// sequence afterwards and is modified in place.
type Source interface {
	Dim() int
	BoundaryMatrix(d int) (*zmatrix.Matrix, error)
}

// FaceLabeler is optionally implemented by a Source to name the basis
// elements of C_d. Labels are used for CycleGroup.Faces.
type FaceLabeler interface {
	FaceLabels(d int) ([]string, error)
}
