// SPDX-License-Identifier: MIT

package complex_test

import (
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhom/complex"
	"github.com/katalvlaran/lvhom/zmatrix"
)

func mustRows(t *testing.T, data [][]int64) *zmatrix.Matrix {
	t.Helper()
	m, err := zmatrix.FromRows(data)
	require.NoError(t, err)

	return m
}

func ints(t *testing.T, m *zmatrix.Matrix) [][]int64 {
	t.Helper()
	rows, err := m.Int64Rows()
	require.NoError(t, err)

	return rows
}

// checkSquaresToZero asserts ∂_d·∂_{d+1} = 0 for every d.
func checkSquaresToZero(t *testing.T, c complex.Complex) {
	t.Helper()
	for d := 0; d <= c.Dim(); d++ {
		a, err := c.BoundaryMatrix(d)
		require.NoError(t, err)
		b, err := c.BoundaryMatrix(d + 1)
		require.NoError(t, err)
		p, err := zmatrix.Mul(a, b)
		require.NoError(t, err, "d=%d", d)
		require.True(t, p.IsZero(), "∂_%d·∂_%d ≠ 0", d, d+1)
	}
}

func TestNewSimplicial_Faces(t *testing.T) {
	s, err := complex.NewSimplicial([][]int{{2, 0, 1}, {3, 1}})
	require.NoError(t, err)

	require.Equal(t, 2, s.Dim())
	require.Equal(t, []int{4, 4, 1}, s.FVector())
	require.Equal(t, [][]int{{0, 1}, {0, 2}, {1, 2}, {1, 3}}, s.Faces(1))
	require.Equal(t, [][]int{{0, 1, 2}}, s.Faces(2))
	require.Nil(t, s.Faces(3))
	require.Equal(t, 0, s.FaceCount(-1))
	require.Equal(t, 4, s.FaceCount(0))

	// Faces returns a copy.
	f := s.Faces(0)
	f[0][0] = 99
	require.Equal(t, []int{0}, s.Faces(0)[0])
}

func TestSimplicial_BoundarySigns(t *testing.T) {
	s, err := complex.NewSimplicial([][]int{{0, 1, 2}})
	require.NoError(t, err)

	d1, err := s.BoundaryMatrix(1)
	require.NoError(t, err)
	// columns [0,1] [0,2] [1,2]; rows [0] [1] [2]
	require.Equal(t, [][]int64{
		{-1, -1, 0},
		{1, 0, -1},
		{0, 1, 1},
	}, ints(t, d1))

	d2, err := s.BoundaryMatrix(2)
	require.NoError(t, err)
	// ∂[0,1,2] = [1,2] - [0,2] + [0,1]
	require.Equal(t, [][]int64{{1}, {-1}, {1}}, ints(t, d2))

	d0, err := s.BoundaryMatrix(0)
	require.NoError(t, err)
	require.Equal(t, 0, d0.Rows())
	require.Equal(t, 3, d0.Cols())

	d3, err := s.BoundaryMatrix(3)
	require.NoError(t, err)
	require.Equal(t, 1, d3.Rows())
	require.Equal(t, 0, d3.Cols())

	_, err = s.BoundaryMatrix(4)
	require.ErrorIs(t, err, complex.ErrDimension)
	_, err = s.BoundaryMatrix(-1)
	require.ErrorIs(t, err, complex.ErrDimension)

	checkSquaresToZero(t, s)
}

func TestSimplicial_SquaresToZero(t *testing.T) {
	for _, facets := range [][][]int{
		{{0, 1, 2, 3}},
		{{0, 1, 2, 3, 4}},
		{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}},
		{{0, 1}, {1, 2, 3}, {3, 4, 5, 6}},
	} {
		s, err := complex.NewSimplicial(facets)
		require.NoError(t, err)
		checkSquaresToZero(t, s)
	}
}

func TestNewSimplicial_Errors(t *testing.T) {
	_, err := complex.NewSimplicial(nil)
	require.ErrorIs(t, err, complex.ErrEmptyComplex)

	_, err = complex.NewSimplicial([][]int{{0, 1}, {}})
	require.ErrorIs(t, err, complex.ErrEmptyFacet)

	_, err = complex.NewSimplicial([][]int{{0, 1, 0}})
	require.ErrorIs(t, err, complex.ErrDuplicateVertex)

	big := make([]int, 25)
	for i := range big {
		big[i] = i
	}
	_, err = complex.NewSimplicial([][]int{big})
	require.ErrorIs(t, err, complex.ErrDimension)
}

func TestSimplicial_FaceLabels(t *testing.T) {
	s, err := complex.NewSimplicial([][]int{{0, 1}, {1, 2}},
		complex.WithVertexLabels(map[int]string{0: "a", 2: "c"}))
	require.NoError(t, err)

	labels, err := s.FaceLabels(1)
	require.NoError(t, err)
	require.Equal(t, []string{"[a,1]", "[1,c]"}, labels)

	labels, err = s.FaceLabels(0)
	require.NoError(t, err)
	require.Equal(t, []string{"[a]", "[1]", "[c]"}, labels)

	_, err = s.FaceLabels(2)
	require.ErrorIs(t, err, complex.ErrDimension)

	require.Panics(t, func() { complex.WithVertexLabels(nil) })
}

func TestNewChain(t *testing.T) {
	c, err := complex.NewChain([]*zmatrix.Matrix{
		mustRows(t, [][]int64{{1, 1}}),
		mustRows(t, [][]int64{{1}, {-1}}),
	})
	require.NoError(t, err)
	require.Equal(t, 2, c.Dim())
	require.Equal(t, []int{1, 2, 1}, c.FVector())
	checkSquaresToZero(t, c)

	// BoundaryMatrix hands out copies.
	d1, err := c.BoundaryMatrix(1)
	require.NoError(t, err)
	require.NoError(t, d1.SetInt64(0, 0, 7))
	again, err := c.BoundaryMatrix(1)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{1, 1}}, ints(t, again))

	d0, err := c.BoundaryMatrix(0)
	require.NoError(t, err)
	require.Equal(t, 0, d0.Rows())
	require.Equal(t, 1, d0.Cols())

	d3, err := c.BoundaryMatrix(3)
	require.NoError(t, err)
	require.Equal(t, 1, d3.Rows())
	require.Equal(t, 0, d3.Cols())

	_, err = c.BoundaryMatrix(4)
	require.ErrorIs(t, err, complex.ErrDimension)
}

func TestNewChain_Errors(t *testing.T) {
	_, err := complex.NewChain(nil)
	require.ErrorIs(t, err, complex.ErrEmptyComplex)

	_, err = complex.NewChain([]*zmatrix.Matrix{nil})
	require.ErrorIs(t, err, zmatrix.ErrNilMatrix)

	_, err = complex.NewChain([]*zmatrix.Matrix{
		mustRows(t, [][]int64{{1, 1}}),
		mustRows(t, [][]int64{{1}, {-1}, {0}}),
	})
	require.ErrorIs(t, err, complex.ErrShape)

	_, err = complex.NewChain([]*zmatrix.Matrix{
		mustRows(t, [][]int64{{1, 1}}),
		mustRows(t, [][]int64{{1}, {0}}),
	})
	require.ErrorIs(t, err, complex.ErrNotChain)
}

func TestLoad(t *testing.T) {
	c, err := complex.Load(strings.NewReader(`
name: hollow triangle
facets:
  - [0, 1]
  - [0, 2]
  - [1, 2]
labels:
  0: a
`))
	require.NoError(t, err)
	s, ok := c.(*complex.Simplicial)
	require.True(t, ok)
	require.Equal(t, []int{3, 3}, s.FVector())
	labels, err := s.FaceLabels(1)
	require.NoError(t, err)
	require.Equal(t, "[a,1]", labels[0])

	c, err = complex.Load(strings.NewReader(`
boundaries:
  - [[2]]
`))
	require.NoError(t, err)
	require.IsType(t, &complex.Chain{}, c)
	require.Equal(t, []int{1, 1}, c.FVector())
}

func TestLoad_Errors(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":   ``,
		"neither": "name: nothing\n",
		"both":    "facets: [[0]]\nboundaries: [[[1]]]\n",
		"unknown": "vertices: [0, 1]\n",
		"syntax":  "facets: [[0, 1]\n",
		"float":   "boundaries: [[[1.5]]]\n",
		"mapping": "matrix: [[{a: 1}]]\n",
		"null":    "boundaries: [[[~]]]\n",
	} {
		_, err := complex.Load(strings.NewReader(doc))
		require.ErrorIs(t, err, complex.ErrDocument, name)
	}

	// Errors from the constructors pass through.
	_, err := complex.Load(strings.NewReader("facets: [[0, 0]]\n"))
	require.ErrorIs(t, err, complex.ErrDuplicateVertex)
	_, err = complex.Load(strings.NewReader("boundaries: [[[1, 1]], [[1], [0]]]\n"))
	require.ErrorIs(t, err, complex.ErrNotChain)
	_, err = complex.Load(strings.NewReader("boundaries: [[[1, 1], [1]]]\n"))
	require.ErrorIs(t, err, zmatrix.ErrBadShape)
}

func TestLoad_BigEntries(t *testing.T) {
	const huge = "123456789012345678901234567890"
	c, err := complex.Load(strings.NewReader("boundaries:\n  - [[" + huge + ", -" + huge + "]]\n"))
	require.NoError(t, err)
	b, err := c.BoundaryMatrix(1)
	require.NoError(t, err)
	v, err := b.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, huge, v.String())
	v, err = b.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, "-"+huge, v.String())

	doc, err := complex.Decode(strings.NewReader("matrix: [[\"" + huge + "\", 0], [+2, 3]]\n"))
	require.NoError(t, err)
	m, err := complex.IntegerMatrix(doc.Matrix)
	require.NoError(t, err)
	require.Equal(t, 3, m.NNZ())
	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, huge, v.String())
	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(2), v.Int64())

	_, err = complex.IntegerMatrix([][]complex.Integer{{{Int: big.NewInt(1)}}, {}})
	require.ErrorIs(t, err, zmatrix.ErrBadShape)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphere.yaml")
	require.NoError(t, os.WriteFile(path, []byte("facets: [[0,1,2],[0,1,3],[0,2,3],[1,2,3]]\n"), 0o600))

	c, err := complex.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, []int{4, 6, 4}, c.FVector())

	_, err = complex.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSimplicial_Components(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		facets [][]int
		want   [][]int
	}{
		{"point", [][]int{{4}}, [][]int{{4}}},
		{"isolated vertices", [][]int{{2}, {0}, {1}}, [][]int{{0}, {1}, {2}}},
		{"path and triangle", [][]int{{5, 6}, {0, 1, 2}, {6, 7}}, [][]int{{0, 1, 2}, {5, 6, 7}}},
		{"edge and vertex", [][]int{{3, 1}, {2}}, [][]int{{1, 3}, {2}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := complex.NewSimplicial(tc.facets)
			require.NoError(t, err)
			require.Equal(t, tc.want, s.Components())
		})
	}
}
