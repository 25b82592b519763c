// SPDX-License-Identifier: MIT

package homology_test

import (
	"fmt"
	"math/big"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvhom/builder"
	"github.com/katalvlaran/lvhom/complex"
	"github.com/katalvlaran/lvhom/homology"
	"github.com/katalvlaran/lvhom/snf"
	"github.com/katalvlaran/lvhom/zmatrix"
)

// kernelBasis returns an n×k matrix whose columns are a basis of the integer
// kernel of m (n = m.Cols()): the columns of R at D's non-pivot columns.
func kernelBasis(t *testing.T, m *zmatrix.Matrix) *zmatrix.Matrix {
	t.Helper()
	d, err := snf.Decompose(m)
	require.NoError(t, err)
	pivot := make([]bool, m.Cols())
	for _, p := range d.Pivots {
		pivot[p.Col] = true
	}
	var free []int
	for j, ok := range pivot {
		if !ok {
			free = append(free, j)
		}
	}
	k, err := zmatrix.New(m.Cols(), len(free))
	require.NoError(t, err)
	for c, j := range free {
		for _, e := range d.R.Col(j) {
			require.NoError(t, k.Set(e.Index, c, e.Value))
		}
	}

	return k
}

// randomEntries draws a rows×cols matrix with roughly a third of its entries
// zero and the rest in [-span, span].
func randomEntries(t *testing.T, rng *rand.Rand, rows, cols, span int) *zmatrix.Matrix {
	t.Helper()
	m, err := zmatrix.New(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Intn(3) == 0 {
				continue
			}
			require.NoError(t, m.SetInt64(i, j, int64(rng.Intn(2*span+1)-span)))
		}
	}

	return m
}

// randomChain builds a chain complex with general integer entries:
// ∂_1 is random and ∂_{d+1} = K·Z for an integer kernel basis K of ∂_d and a
// random Z, so ∂_d·∂_{d+1} = 0 holds by construction.
func randomChain(t *testing.T, rng *rand.Rand) *complex.Chain {
	t.Helper()
	n := 1 + rng.Intn(4)
	ranks := make([]int, n+1)
	for d := range ranks {
		ranks[d] = 1 + rng.Intn(5)
	}

	bs := make([]*zmatrix.Matrix, n)
	bs[0] = randomEntries(t, rng, ranks[0], ranks[1], 3)
	for d := 1; d < n; d++ {
		k := kernelBasis(t, bs[d-1])
		z := randomEntries(t, rng, k.Cols(), ranks[d+1], 3)
		b, err := zmatrix.Mul(k, z)
		require.NoError(t, err)
		bs[d] = b
	}
	c, err := complex.NewChain(bs)
	require.NoError(t, err)

	return c
}

// expectedGroups computes every group of src from the ranks and invariant
// factors of each boundary map on its own:
//
//	β_d = n_d - rank ∂_d - rank ∂_{d+1}
//	T(H_d) = torsion of coker ∂_{d+1},  T(H^d) = torsion of coker ∂_d
//
// It returns the homology groups descending and the cohomology groups
// ascending, the traversal orders of a Sequence.
func expectedGroups(t *testing.T, src homology.Source) (hom, coh []homology.Group) {
	t.Helper()
	top := src.Dim()
	ranks := make([]int, top+2)
	torsion := make([][]snf.TorsionClass, top+2)
	sizes := make([]int, top+2)
	for d := 0; d <= top+1; d++ {
		b, err := src.BoundaryMatrix(d)
		require.NoError(t, err)
		sizes[d] = b.Cols()
		dec, err := snf.Decompose(b)
		require.NoError(t, err)
		ranks[d] = dec.Rank
		var ts []snf.Torsion
		for _, f := range dec.InvariantFactors() {
			if f.Cmp(big.NewInt(1)) > 0 {
				ts = append(ts, snf.Torsion{Coefficient: f})
			}
		}
		torsion[d] = snf.CompressTorsion(ts)
	}

	for d := 0; d <= top; d++ {
		betti := sizes[d] - ranks[d] - ranks[d+1]
		hom = append(hom, homology.Group{Dim: d, Betti: betti, Torsion: torsion[d+1]})
		coh = append(coh, homology.Group{Dim: d, Betti: betti, Torsion: torsion[d]})
	}
	slices.Reverse(hom)

	return hom, coh
}

var optionSets = []struct {
	name string
	opts []homology.Option
}{
	{"default", nil},
	{"no elimination", []homology.Option{homology.WithoutElimination()}},
	{"verify", []homology.Option{homology.WithVerify()}},
	{"cycles", []homology.Option{homology.WithCycles(), homology.WithVerify()}},
	{"no elimination cycles", []homology.Option{homology.WithoutElimination(), homology.WithCycles(), homology.WithVerify()}},
}

// checkAgainstBoundaries runs src through every option set, then through
// every window with cycles in both elimination modes, comparing each group with expectedGroups and each
// generator set with checkCycles.
func checkAgainstBoundaries(t *testing.T, src homology.Source) {
	t.Helper()
	hom, coh := expectedGroups(t, src)
	top := src.Dim()

	for _, cohomology := range []bool{false, true} {
		want := hom
		base := []homology.Option{}
		if cohomology {
			want = coh
			base = append(base, homology.WithCohomology())
		}

		for _, set := range optionSets {
			got := compute(t, src, slices.Concat(base, set.opts)...)
			require.Empty(t, cmp.Diff(want, got, bigComparer), "%s, cohomology=%v", set.name, cohomology)
		}

		for low := 0; low <= top; low++ {
			for high := low; high <= top; high++ {
				var window []homology.Group
				for _, g := range want {
					if g.Dim >= low && g.Dim <= high {
						window = append(window, g)
					}
				}
				for _, elim := range []bool{true, false} {
					opts := slices.Concat(base, []homology.Option{
						homology.WithRange(low, high),
						homology.WithCycles(),
						homology.WithVerify(),
					})
					if !elim {
						opts = append(opts, homology.WithoutElimination())
					}
					seq, err := homology.New(src, opts...)
					require.NoError(t, err)
					var got []homology.Group
					for seq.Next() {
						cg, err := seq.Cycles()
						require.NoError(t, err)
						checkCycles(t, src, cohomology, seq.Group(), cg)
						got = append(got, seq.Group())
					}
					require.NoError(t, seq.Err())
					require.Empty(t, cmp.Diff(window, got, bigComparer),
						"window [%d,%d], elimination=%v, cohomology=%v", low, high, elim, cohomology)
				}
			}
		}
	}
}

func TestHomology_RandomChains(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 40; trial++ {
		src := randomChain(t, rng)
		t.Run(fmtTrial(trial, src.FVector()), func(t *testing.T) {
			checkAgainstBoundaries(t, src)
		})
	}
}

func TestHomology_RandomComplexes(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		src, err := builder.Build([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomComplex(7, 2, 0.3))
		require.NoError(t, err)
		t.Run(fmtTrial(int(seed), src.FVector()), func(t *testing.T) {
			checkAgainstBoundaries(t, src)
			hom, _ := expectedGroups(t, src)
			require.Equal(t, len(src.Components()), hom[len(hom)-1].Betti, "H_0 counts components")
		})
	}
}

// fmtTrial names a subtest by trial number and f-vector.
func fmtTrial(trial int, f []int) string {
	return fmt.Sprintf("trial %d f=%v", trial, f)
}
