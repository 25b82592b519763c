// SPDX-License-Identifier: MIT
// Package homology: one reduction step of the sequence.
//
// Step k receives the carry of step k-1 and
//  1. fetches D_{k+1}, clears its rows at D_k's eliminated columns and
//     eliminates it; the row operations change the basis shared with D_k
//     and are recorded into R_k⁻¹ (the next L), after which D_k's columns
//     at D_{k+1}'s eliminated rows are known to vanish and are cleared;
//  2. runs Smith normal form on D_k, replaying its column operations on
//     D_{k+1} and R_k⁻¹ as inverse row operations, and its row operations
//     on L_k;
//  3. for k ≥ 1, finalizes the group whose chain basis indexes D_k's rows;
//  4. hands D_{k+1}, R_k⁻¹ and the rank/torsion of D_k to step k+1.
//
// Clearing instead of replaying is exact because both kernels only ever add
// multiples of a pivot line: the inverse operation on the neighbouring
// matrix touches exactly the lines that D_k·D_{k+1} = 0 forces to zero.

package homology

import (
	"github.com/katalvlaran/lvhom/snf"
	"github.com/katalvlaran/lvhom/zmatrix"
)

// stepResult is the bundle step k hands to step k+1. It is consumed exactly
// once and every matrix in it changes owner with it.
type stepResult struct {
	// cur is D_{k+1}, already eliminated and expressed in the basis left by
	// D_k's reduction.
	cur     *zmatrix.Matrix
	curElim snf.Elimination
	// raw is the untouched D_{k+1}, kept only for WithVerify.
	raw *zmatrix.Matrix

	// rank and torsion of D_k (elimination plus Smith pivots).
	rank    int
	torsion []snf.Torsion

	// Cycle tracking only; nil otherwise.
	//
	// rinv is R_{k+1}⁻¹ seeded with curElim's column operations; left is
	// R_k⁻¹, which becomes L_{k+1}. torsionRows holds the rows of R_k⁻¹ at
	// the torsion pivot columns. spent marks the rows of D_{k+1} that cannot
	// carry a free generator: pivot columns of D_k and eliminated rows of
	// D_{k+1}.
	rinv        *zmatrix.Matrix
	left        *zmatrix.Matrix
	torsionRows *zmatrix.Matrix
	spent       []bool
}

// inverseCompanion and leftCompanion return nil for an untracked matrix,
// which Fanout skips.
func inverseCompanion(m *zmatrix.Matrix) snf.Tracker {
	if m == nil {
		return nil
	}

	return snf.InverseRightCompanion{M: m}
}

func leftCompanion(m *zmatrix.Matrix) snf.Tracker {
	if m == nil {
		return nil
	}

	return snf.LeftCompanion{M: m}
}

// bootstrap fetches and eliminates D_0. It produces no group.
func (s *Sequence) bootstrap() error {
	d0, err := s.fetch(0)
	if err != nil {
		return err
	}
	carry := &stepResult{cur: d0}
	if s.opts.verify {
		carry.raw = d0.Clone()
	}
	if s.opts.cycles {
		carry.rinv = zmatrix.Identity(d0.Cols())
	}
	if s.opts.eliminate {
		t := snf.Fanout{inverseCompanion(carry.rinv)}
		if carry.curElim, err = snf.EliminateUnits(d0, t); err != nil {
			return err
		}
	}
	s.carry = carry

	return nil
}

// step runs step s.k on s.carry. It reports whether a group was produced.
func (s *Sequence) step() (bool, error) {
	k, in := s.k, s.carry
	s.carry = nil
	d := in.cur

	var (
		next     *zmatrix.Matrix
		nextRaw  *zmatrix.Matrix
		nextRInv *zmatrix.Matrix
		nextElim snf.Elimination
		err      error
	)
	if k < s.m {
		if next, err = s.fetch(k + 1); err != nil {
			return false, err
		}
		if next.Rows() != d.Cols() {
			return false, inconsistentf("boundary %d has %d rows, expected %d",
				s.boundaryDim(k+1), next.Rows(), d.Cols())
		}
		if s.opts.verify {
			nextRaw = next.Clone()
			if err = verifyComposition(in.raw, nextRaw); err != nil {
				return false, err
			}
		}
		if err = next.ClearRows(in.curElim.Cols); err != nil {
			return false, err
		}
		if s.opts.cycles && k+1 < s.m {
			nextRInv = zmatrix.Identity(next.Cols())
		}
		if s.opts.eliminate {
			t := snf.Fanout{leftCompanion(in.rinv), inverseCompanion(nextRInv)}
			if nextElim, err = snf.EliminateUnits(next, t); err != nil {
				return false, err
			}
			if err = d.ClearCols(nextElim.Rows); err != nil {
				return false, err
			}
		}
	}

	t := snf.Fanout{inverseCompanion(next)}
	if s.opts.cycles {
		t = append(t, leftCompanion(in.left), inverseCompanion(in.rinv))
	}
	res, err := snf.SmithNormalForm(d, t)
	if err != nil {
		return false, err
	}
	rank := in.curElim.Rank + res.Rank
	s.opts.logger.Debug("reduced",
		"step", k,
		"boundary", s.boundaryDim(k),
		"rows", d.Rows(),
		"cols", d.Cols(),
		"elim", in.curElim.Rank,
		"rank", rank,
		"torsion", len(res.Torsion))

	yielded := false
	if k >= 1 {
		if err = s.finalize(k, d, in, rank); err != nil {
			return false, err
		}
		yielded = true
	}

	if next != nil {
		out := &stepResult{
			cur:     next,
			curElim: nextElim,
			raw:     nextRaw,
			rank:    rank,
			torsion: res.Torsion,
		}
		if s.opts.cycles {
			if out.torsionRows, err = in.rinv.SelectRows(torsionIndices(res.Torsion)); err != nil {
				return false, err
			}
			out.spent = make([]bool, next.Rows())
			for _, c := range in.curElim.Cols {
				out.spent[c] = true
			}
			for _, p := range res.Pivots {
				out.spent[p.Col] = true
			}
			for _, r := range nextElim.Rows {
				out.spent[r] = true
			}
			out.left = in.rinv
			out.rinv = nextRInv
		}
		s.carry = out
	}
	s.k++

	return yielded, nil
}

// finalize builds the group of step k from the reduced D_k and the carry of
// step k-1.
func (s *Sequence) finalize(k int, d *zmatrix.Matrix, in *stepResult, rank int) error {
	dim := s.groupDim(k)
	betti := d.Rows() - in.rank - rank
	if betti < 0 {
		return inconsistentf("dimension %d: %d rows, ranks %d and %d", dim, d.Rows(), in.rank, rank)
	}
	s.group = Group{Dim: dim, Betti: betti, Torsion: snf.CompressTorsion(in.torsion)}
	s.cycles = nil
	s.opts.logger.Debug("group", "dim", dim, "betti", betti, "torsion", snf.FormatTorsion(s.group.Torsion))

	if !s.opts.cycles {
		return nil
	}
	cg, err := s.extractCycles(dim, d, in, betti)
	if err != nil {
		return err
	}
	s.cycles = cg

	return nil
}

func torsionIndices(ts []snf.Torsion) []int {
	idx := make([]int, len(ts))
	for i, t := range ts {
		idx[i] = t.Index
	}

	return idx
}

// verifyComposition checks a·b = 0 for consecutive traversal matrices.
func verifyComposition(a, b *zmatrix.Matrix) error {
	p, err := zmatrix.Mul(a, b)
	if err != nil {
		return inconsistentf("%v", err)
	}
	if !p.IsZero() {
		return inconsistentf("consecutive boundary maps do not compose to zero")
	}

	return nil
}
