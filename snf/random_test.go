// SPDX-License-Identifier: MIT

package snf_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhom/snf"
	"github.com/katalvlaran/lvhom/zmatrix"
)

// randomMatrix draws a rows×cols matrix. Half of the draws are products
// A·B through a random inner dimension so that low ranks and non-trivial
// invariant factors show up often.
func randomMatrix(t *testing.T, rng *rand.Rand, rows, cols int) *zmatrix.Matrix {
	t.Helper()
	entries := func(r, c, span int) *zmatrix.Matrix {
		m, err := zmatrix.New(r, c)
		require.NoError(t, err)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if rng.Intn(3) == 0 {
					continue
				}
				require.NoError(t, m.SetInt64(i, j, int64(rng.Intn(2*span+1)-span)))
			}
		}

		return m
	}
	if rng.Intn(2) == 0 {
		return entries(rows, cols, 4)
	}
	a := entries(rows, 1+rng.Intn(3), 3)
	b := entries(a.Cols(), cols, 3)
	m, err := zmatrix.Mul(a, b)
	require.NoError(t, err)

	return m
}

// subsets lists the k-subsets of {0, …, n-1} in lexicographic order.
func subsets(n, k int) [][]int {
	var out [][]int
	var rec func(start int, cur []int)
	rec = func(start int, cur []int) {
		if len(cur) == k {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for i := start; i < n; i++ {
			rec(i+1, append(cur, i))
		}
	}
	rec(0, nil)

	return out
}

// determinantalDivisor returns the gcd of all k×k minors of m. The empty
// minor is 1.
func determinantalDivisor(t *testing.T, m *zmatrix.Matrix, k int) *big.Int {
	t.Helper()
	if k == 0 {
		return big.NewInt(1)
	}
	g := new(big.Int)
	for _, rs := range subsets(m.Rows(), k) {
		sub, err := m.SelectRows(rs)
		require.NoError(t, err)
		sub = sub.Transpose()
		for _, cs := range subsets(m.Cols(), k) {
			minor, err := sub.SelectRows(cs)
			require.NoError(t, err)
			det, err := minor.Determinant()
			require.NoError(t, err)
			g.GCD(nil, nil, g, det)
		}
	}

	return g
}

// The product of the first k invariant factors is the k-th determinantal
// divisor, and the rank is the largest k with a non-zero minor.
func TestDecompose_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(20261018))
	for trial := 0; trial < 120; trial++ {
		m := randomMatrix(t, rng, rng.Intn(6), rng.Intn(6))
		before := m.Clone()

		var first *snf.Decomposition
		for _, opts := range [][]snf.Option{nil, {snf.WithoutElimination()}} {
			d, err := snf.Decompose(m, opts...)
			require.NoError(t, err)
			require.True(t, before.Equal(m), "trial %d: input mutated", trial)
			checkDecomposition(t, m, d)

			if first == nil {
				first = d
				continue
			}
			require.Equal(t, first.Rank, d.Rank, "trial %d: rank depends on elimination\n%v", trial, m)
			require.Equal(t, snf.FormatTorsion(first.Torsion), snf.FormatTorsion(d.Torsion), "trial %d", trial)
			require.Len(t, d.InvariantFactors(), len(first.InvariantFactors()))
			for k, f := range d.InvariantFactors() {
				require.Zero(t, f.Cmp(first.InvariantFactors()[k]), "trial %d: factor %d", trial, k)
			}
		}

		inv := first.InvariantFactors()
		prod := big.NewInt(1)
		limit := min(m.Rows(), m.Cols())
		for k := 1; k <= limit; k++ {
			dk := determinantalDivisor(t, m, k)
			if k > first.Rank {
				require.Zero(t, dk.Sign(), "trial %d: non-zero %d-minor beyond rank %d\n%v", trial, k, first.Rank, m)
				continue
			}
			prod.Mul(prod, inv[k-1])
			require.Zero(t, dk.Cmp(prod), "trial %d: d_1…d_%d = %v, gcd of minors = %v\n%v", trial, k, prod, dk, m)
		}
	}
}
