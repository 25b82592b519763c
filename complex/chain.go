// SPDX-License-Identifier: MIT

package complex

import "github.com/katalvlaran/lvhom/zmatrix"

// Chain is an explicit chain complex 0 → C_n → … → C_0 → 0 given by its
// boundary matrices.
type Chain struct {
	bounds []*zmatrix.Matrix // bounds[d-1] is ∂_d
	ranks  []int             // ranks[d] is n_d
}

// NewChain validates and copies boundaries = (∂_1, …, ∂_n). The ranks are
// read off the shapes: n_0 = rows(∂_1) and n_d = cols(∂_d).
//
// Errors:
//   - ErrEmptyComplex when boundaries is empty.
//   - zmatrix.ErrNilMatrix for a nil entry.
//   - ErrShape when rows(∂_{d+1}) ≠ cols(∂_d).
//   - ErrNotChain when ∂_d·∂_{d+1} ≠ 0.
func NewChain(boundaries []*zmatrix.Matrix) (*Chain, error) {
	if len(boundaries) == 0 {
		return nil, complexErrorf(opNewChain, ErrEmptyComplex, "")
	}
	c := &Chain{
		bounds: make([]*zmatrix.Matrix, len(boundaries)),
		ranks:  make([]int, len(boundaries)+1),
	}
	for i, b := range boundaries {
		if b == nil {
			return nil, complexErrorf(opNewChain, zmatrix.ErrNilMatrix, "∂_%d", i+1)
		}
		if i == 0 {
			c.ranks[0] = b.Rows()
		} else {
			prev := boundaries[i-1]
			if b.Rows() != prev.Cols() {
				return nil, complexErrorf(opNewChain, ErrShape, "∂_%d is %d×%d, ∂_%d is %d×%d",
					i, prev.Rows(), prev.Cols(), i+1, b.Rows(), b.Cols())
			}
			p, err := zmatrix.Mul(prev, b)
			if err != nil {
				return nil, complexErrorf(opNewChain, err, "")
			}
			if !p.IsZero() {
				return nil, complexErrorf(opNewChain, ErrNotChain, "∂_%d·∂_%d", i, i+1)
			}
		}
		c.bounds[i] = b.Clone()
		c.ranks[i+1] = b.Cols()
	}

	return c, nil
}

// Dim returns n, the index of the last boundary.
func (c *Chain) Dim() int { return len(c.bounds) }

// FVector returns (n_0, …, n_Dim()).
func (c *Chain) FVector() []int {
	out := make([]int, len(c.ranks))
	copy(out, c.ranks)

	return out
}

// BoundaryMatrix returns a copy of ∂_d; ∂_0 and ∂_{Dim()+1} are the empty
// maps at the ends of the complex.
func (c *Chain) BoundaryMatrix(d int) (*zmatrix.Matrix, error) {
	n := c.Dim()
	switch {
	case d < 0 || d > n+1:
		return nil, complexErrorf(opBoundary, ErrDimension, "d=%d not in [0,%d]", d, n+1)
	case d == 0:
		return zmatrix.New(0, c.ranks[0])
	case d == n+1:
		return zmatrix.New(c.ranks[n], 0)
	}

	return c.bounds[d-1].Clone(), nil
}
