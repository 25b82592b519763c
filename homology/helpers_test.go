// SPDX-License-Identifier: MIT
// Package homology_test contains fixtures and assertion helpers shared by the
// homology tests.
//
// Purpose:
//   - Provide small, well-known complexes with textbook homology.
//   - Check generators against the boundary maps instead of fixed vectors,
//     so the tests do not depend on the pivot order of the reduction.

package homology_test

import (
	"math/big"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhom/complex"
	"github.com/katalvlaran/lvhom/homology"
	"github.com/katalvlaran/lvhom/snf"
	"github.com/katalvlaran/lvhom/zmatrix"
)

// bigComparer lets cmp look inside snf.TorsionClass.
var bigComparer = cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 })

// group builds an expected Group; torsion is given as (coefficient, multiplicity) pairs.
func group(dim, betti int, torsion ...[2]int64) homology.Group {
	g := homology.Group{Dim: dim, Betti: betti}
	for _, t := range torsion {
		g.Torsion = append(g.Torsion, snf.TorsionClass{
			Coefficient:  big.NewInt(t[0]),
			Multiplicity: int(t[1]),
		})
	}

	return g
}

func simplicial(t *testing.T, facets [][]int) *complex.Simplicial {
	t.Helper()
	s, err := complex.NewSimplicial(facets)
	require.NoError(t, err)

	return s
}

func chain(t *testing.T, boundaries ...[][]int64) *complex.Chain {
	t.Helper()
	bs := make([]*zmatrix.Matrix, len(boundaries))
	for i, rows := range boundaries {
		m, err := zmatrix.FromRows(rows)
		require.NoError(t, err)
		bs[i] = m
	}
	c, err := complex.NewChain(bs)
	require.NoError(t, err)

	return c
}

// Fixture facets.
var (
	hollowTriangle = [][]int{{0, 1}, {0, 2}, {1, 2}}
	filledTriangle = [][]int{{0, 1, 2}}
	sphere         = [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}
	twoPoints      = [][]int{{0}, {1}}

	// 6-vertex projective plane.
	projectivePlane = [][]int{
		{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 1},
		{1, 2, 4}, {2, 3, 5}, {3, 4, 1}, {4, 5, 2}, {5, 1, 3},
	}
)

// torus7 is the 7-vertex Möbius torus.
func torus7() [][]int {
	var fs [][]int
	for i := 0; i < 7; i++ {
		fs = append(fs,
			[]int{i, (i + 1) % 7, (i + 3) % 7},
			[]int{i, (i + 2) % 7, (i + 3) % 7})
	}

	return fs
}

// kleinBottle triangulates the 3×3 square grid with one twisted side.
func kleinBottle() [][]int {
	const a = 3
	v := func(i, j int) int {
		if i == a {
			i, j = 0, (a-j)%a
		}

		return i*a + j%a
	}
	var fs [][]int
	for i := 0; i < a; i++ {
		for j := 0; j < a; j++ {
			p00, p10, p01, p11 := v(i, j), v(i+1, j), v(i, j+1), v(i+1, j+1)
			fs = append(fs, []int{p00, p10, p11}, []int{p00, p01, p11})
		}
	}

	return fs
}

// compute drains a sequence and fails the test on error.
func compute(t *testing.T, src homology.Source, opts ...homology.Option) []homology.Group {
	t.Helper()
	groups, err := homology.Compute(src, opts...)
	require.NoError(t, err)

	return groups
}

// stack returns the rows of ms stacked on top of each other.
func stack(t *testing.T, cols int, ms ...*zmatrix.Matrix) *zmatrix.Matrix {
	t.Helper()
	rows := 0
	for _, m := range ms {
		require.Equal(t, cols, m.Cols())
		rows += m.Rows()
	}
	out, err := zmatrix.New(rows, cols)
	require.NoError(t, err)
	base := 0
	for _, m := range ms {
		for i := 0; i < m.Rows(); i++ {
			for _, e := range m.Row(i) {
				require.NoError(t, out.Set(base+i, e.Index, e.Value))
			}
		}
		base += m.Rows()
	}

	return out
}

func rank(t *testing.T, m *zmatrix.Matrix) int {
	t.Helper()
	d, err := snf.Decompose(m)
	require.NoError(t, err)

	return d.Rank
}

// covolume returns the product of the invariant factors of m, the index of
// the row lattice of m in its saturation.
func covolume(t *testing.T, m *zmatrix.Matrix) *big.Int {
	t.Helper()
	d, err := snf.Decompose(m)
	require.NoError(t, err)
	out := big.NewInt(1)
	for _, f := range d.InvariantFactors() {
		out.Mul(out, f)
	}

	return out
}

// order returns the order of the rows of extra in the quotient of their
// span with the row lattice of image, which must already contain them
// rationally.
func order(t *testing.T, image, extra *zmatrix.Matrix) *big.Int {
	t.Helper()
	q, r := new(big.Int).QuoRem(covolume(t, image), covolume(t, stack(t, image.Cols(), image, extra)), new(big.Int))
	require.Zero(t, r.Sign(), "index is not an integer")

	return q
}

// expandTorsion lists every torsion coefficient of g once per multiplicity,
// ascending.
func expandTorsion(g homology.Group) []*big.Int {
	var out []*big.Int
	for _, c := range g.Torsion {
		for k := 0; k < c.Multiplicity; k++ {
			out = append(out, c.Coefficient)
		}
	}
	slices.SortFunc(out, (*big.Int).Cmp)

	return out
}

// checkCycles asserts that cg generates g:
//   - one row per summand, one column per labelled face;
//   - every row is a cycle (homology) or a cocycle (cohomology);
//   - torsion row i has order exactly its coefficient modulo boundaries,
//     and the torsion rows together span a subgroup of order |T|;
//   - free rows are independent modulo boundaries, none of them torsion;
//   - boundaries and generators together span every (co)cycle.
func checkCycles(t *testing.T, src homology.Source, cohomology bool, g homology.Group, cg homology.CycleGroup) {
	t.Helper()
	require.Equal(t, g.Dim, cg.Dim)
	require.Equal(t, g.Betti+g.TorsionCount(), cg.Coeffs.Rows(), "generator count for %v", g)
	require.Len(t, cg.Faces, cg.Coeffs.Cols())

	// image holds the boundaries (or coboundaries) as rows; cycles spans
	// the (co)cycle lattice over Q.
	var image, cycles *zmatrix.Matrix
	if cohomology {
		next, err := src.BoundaryMatrix(g.Dim + 1)
		require.NoError(t, err)
		p, err := zmatrix.Mul(cg.Coeffs, next)
		require.NoError(t, err)
		require.True(t, p.IsZero(), "dimension %d: generator is not a cocycle", g.Dim)

		image, err = src.BoundaryMatrix(g.Dim)
		require.NoError(t, err)
		cycles = next.Transpose()
	} else {
		cur, err := src.BoundaryMatrix(g.Dim)
		require.NoError(t, err)
		p, err := zmatrix.Mul(cur, cg.Coeffs.Transpose())
		require.NoError(t, err)
		require.True(t, p.IsZero(), "dimension %d: generator is not a cycle", g.Dim)

		next, err := src.BoundaryMatrix(g.Dim + 1)
		require.NoError(t, err)
		image = next.Transpose()
		cycles = cur
	}

	base := rank(t, image)
	nt := g.TorsionCount()
	want := expandTorsion(g)
	var got []*big.Int
	for i := 0; i < nt; i++ {
		row, err := cg.Coeffs.SelectRows([]int{i})
		require.NoError(t, err)
		require.Equal(t, base, rank(t, stack(t, cg.Coeffs.Cols(), image, row)),
			"dimension %d: torsion generator %d is not rationally a boundary", g.Dim, i)
		ord := order(t, image, row)
		require.NotZero(t, ord.Cmp(big.NewInt(1)), "dimension %d: torsion generator %d is a boundary", g.Dim, i)
		got = append(got, ord)
	}
	slices.SortFunc(got, (*big.Int).Cmp)
	require.Empty(t, cmp.Diff(want, got, bigComparer), "dimension %d: torsion generator orders", g.Dim)

	if nt > 0 {
		tors := make([]int, nt)
		for i := range tors {
			tors[i] = i
		}
		rows, err := cg.Coeffs.SelectRows(tors)
		require.NoError(t, err)
		total := big.NewInt(1)
		for _, c := range want {
			total.Mul(total, c)
		}
		require.Zero(t, total.Cmp(order(t, image, rows)),
			"dimension %d: torsion generators do not span the torsion subgroup", g.Dim)
	}

	for i := nt; i < cg.Coeffs.Rows(); i++ {
		row, err := cg.Coeffs.SelectRows([]int{i})
		require.NoError(t, err)
		require.Equal(t, base+1, rank(t, stack(t, cg.Coeffs.Cols(), image, row)),
			"dimension %d: free generator %d is torsion", g.Dim, i)
	}
	all := stack(t, cg.Coeffs.Cols(), image, cg.Coeffs)
	require.Equal(t, base+g.Betti, rank(t, all),
		"dimension %d: free generators are dependent modulo boundaries", g.Dim)

	// A saturated lattice of full cycle rank is the whole cycle lattice.
	nullity := cg.Coeffs.Cols() - rank(t, cycles)
	require.Equal(t, nullity, rank(t, all), "dimension %d: generators miss part of the cycles", g.Dim)
	require.Zero(t, covolume(t, all).Cmp(big.NewInt(1)),
		"dimension %d: boundaries and generators span a proper sublattice of the cycles", g.Dim)
}
