// SPDX-License-Identifier: MIT
// Package complex: abstract simplicial complexes.
//
// Contract:
//   - Facets are vertex lists; order inside a facet is irrelevant, repeats
//     are rejected (ErrDuplicateVertex), empty facets too (ErrEmptyFacet).
//   - The closure under taking faces is generated once, in NewSimplicial.
//   - Faces of dimension d are sorted lexicographically on their sorted
//     vertex lists; that order indexes the rows and columns of the boundary
//     matrices.
//
// Complexity:
//   - Construction: O(Σ 2^|facet|) faces, each keyed in a map.
//   - BoundaryMatrix(d): O((d+1)·n_d) lookups.

package complex

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvhom/zmatrix"
)

// maxFacetVertices bounds the 2^k face enumeration of a single facet.
const maxFacetVertices = 24

// Complex is a finite chain complex with ranks n_0 … n_Dim().
type Complex interface {
	Dim() int
	BoundaryMatrix(d int) (*zmatrix.Matrix, error)
	FVector() []int
}

// Simplicial is an immutable abstract simplicial complex.
type Simplicial struct {
	faces  [][][]int        // faces[d] in lexicographic order
	index  []map[string]int // faceKey → position in faces[d]
	labels map[int]string
}

// SimplicialOption customizes a Simplicial at construction.
type SimplicialOption func(*Simplicial)

// WithVertexLabels names vertices in FaceLabels. Vertices without an entry
// keep their decimal number. Panics on nil.
func WithVertexLabels(labels map[int]string) SimplicialOption {
	if labels == nil {
		panic("complex: WithVertexLabels(nil)")
	}
	cp := make(map[int]string, len(labels))
	for v, l := range labels {
		cp[v] = l
	}

	return func(s *Simplicial) { s.labels = cp }
}

// NewSimplicial builds the simplicial complex generated by facets.
//
// Errors:
//   - ErrEmptyComplex when facets is empty.
//   - ErrEmptyFacet, ErrDuplicateVertex for malformed facets.
//   - ErrDimension when a facet has more than 24 vertices.
func NewSimplicial(facets [][]int, opts ...SimplicialOption) (*Simplicial, error) {
	if len(facets) == 0 {
		return nil, complexErrorf(opNewSimplicial, ErrEmptyComplex, "")
	}

	// Validate every facet and find the top dimension.
	sorted := make([][]int, len(facets))
	top := 0
	for i, f := range facets {
		if len(f) == 0 {
			return nil, complexErrorf(opNewSimplicial, ErrEmptyFacet, "facet %d", i)
		}
		if len(f) > maxFacetVertices {
			return nil, complexErrorf(opNewSimplicial, ErrDimension, "facet %d has %d vertices", i, len(f))
		}
		s := slices.Clone(f)
		slices.Sort(s)
		for j := 1; j < len(s); j++ {
			if s[j] == s[j-1] {
				return nil, complexErrorf(opNewSimplicial, ErrDuplicateVertex, "facet %d repeats %d", i, s[j])
			}
		}
		sorted[i] = s
		top = max(top, len(s)-1)
	}

	// Close under faces: every non-empty subset of every facet.
	sc := &Simplicial{
		faces: make([][][]int, top+1),
		index: make([]map[string]int, top+1),
	}
	for d := range sc.index {
		sc.index[d] = make(map[string]int)
	}
	for _, f := range sorted {
		k := len(f)
		for mask := 1; mask < 1<<k; mask++ {
			face := make([]int, 0, k)
			for b := 0; b < k; b++ {
				if mask&(1<<b) != 0 {
					face = append(face, f[b])
				}
			}
			d := len(face) - 1
			key := faceKey(face)
			if _, ok := sc.index[d][key]; ok {
				continue
			}
			sc.index[d][key] = 0
			sc.faces[d] = append(sc.faces[d], face)
		}
	}

	// Lexicographic order per dimension, then final indices.
	for d := range sc.faces {
		slices.SortFunc(sc.faces[d], func(a, b []int) int { return slices.Compare(a, b) })
		for i, face := range sc.faces[d] {
			sc.index[d][faceKey(face)] = i
		}
	}

	for _, opt := range opts {
		opt(sc)
	}

	return sc, nil
}

// faceKey renders a sorted vertex list as "v0,v1,…".
func faceKey(face []int) string {
	var sb strings.Builder
	for i, v := range face {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// Dim returns the largest facet dimension.
func (s *Simplicial) Dim() int { return len(s.faces) - 1 }

// FaceCount returns n_d, or 0 outside [0, Dim()].
func (s *Simplicial) FaceCount(d int) int {
	if d < 0 || d > s.Dim() {
		return 0
	}

	return len(s.faces[d])
}

// FVector returns (n_0, …, n_Dim()).
func (s *Simplicial) FVector() []int {
	out := make([]int, len(s.faces))
	for d := range s.faces {
		out[d] = len(s.faces[d])
	}

	return out
}

// Faces returns a copy of the d-faces in boundary-matrix order.
// Returns nil outside [0, Dim()].
func (s *Simplicial) Faces(d int) [][]int {
	if d < 0 || d > s.Dim() {
		return nil
	}
	out := make([][]int, len(s.faces[d]))
	for i, f := range s.faces[d] {
		out[i] = slices.Clone(f)
	}

	return out
}

// FaceLabels names the d-faces, e.g. "[0,1,2]" or "[a,b,c]" with vertex
// labels.
func (s *Simplicial) FaceLabels(d int) ([]string, error) {
	if d < 0 || d > s.Dim() {
		return nil, complexErrorf(opBoundary, ErrDimension, "d=%d", d)
	}
	out := make([]string, len(s.faces[d]))
	var sb strings.Builder
	for i, f := range s.faces[d] {
		sb.Reset()
		sb.WriteByte('[')
		for j, v := range f {
			if j > 0 {
				sb.WriteByte(',')
			}
			if l, ok := s.labels[v]; ok {
				sb.WriteString(l)
			} else {
				sb.WriteString(strconv.Itoa(v))
			}
		}
		sb.WriteByte(']')
		out[i] = sb.String()
	}

	return out, nil
}

// BoundaryMatrix returns ∂_d as an n_{d-1}×n_d matrix with entries
// (-1)^i for the face obtained by dropping the i-th vertex.
// ∂_0 is 0×n_0 and ∂_{Dim()+1} is n_Dim×0.
func (s *Simplicial) BoundaryMatrix(d int) (*zmatrix.Matrix, error) {
	top := s.Dim()
	switch {
	case d < 0 || d > top+1:
		return nil, complexErrorf(opBoundary, ErrDimension, "d=%d not in [0,%d]", d, top+1)
	case d == 0:
		return zmatrix.New(0, len(s.faces[0]))
	case d == top+1:
		return zmatrix.New(len(s.faces[top]), 0)
	}

	m, err := zmatrix.New(len(s.faces[d-1]), len(s.faces[d]))
	if err != nil {
		return nil, err
	}
	sub := make([]int, 0, d)
	for j, face := range s.faces[d] {
		for i := range face {
			sub = append(sub[:0], face[:i]...)
			sub = append(sub, face[i+1:]...)
			sign := int64(1)
			if i%2 == 1 {
				sign = -1
			}
			if err = m.SetInt64(s.index[d-1][faceKey(sub)], j, sign); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
