// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvhom/zmatrix"
)

// state of a Sequence.
type state int

const (
	notStarted state = iota
	active
	finished
	failed
)

// Sequence is a forward-only, lazily computed sequence of (co)homology
// groups over one Source. It is not safe for concurrent use and cannot be
// restarted; build a new Sequence to traverse again.
type Sequence struct {
	src  Source
	opts options

	low, high int
	m         int // number of groups; traversal matrices are D_0 … D_m

	state state
	err   error
	k     int         // next step to run
	carry *stepResult // output of step k-1

	group  Group
	cycles *CycleGroup

	fetched int
}

// New validates the window against src.Dim() and returns a Sequence
// positioned before the first group. No boundary matrix is requested.
//
// Errors:
//   - ErrNilSource when src is nil.
//   - ErrRange when the window is not 0 ≤ low ≤ high ≤ Dim().
func New(src Source, opts ...Option) (*Sequence, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	top := src.Dim()
	low, high := 0, top
	if o.ranged {
		low, high = o.low, o.high
	}
	if low < 0 || high < low || high > top {
		return nil, fmt.Errorf("%w: [%d, %d] outside [0, %d]", ErrRange, low, high, top)
	}

	return &Sequence{
		src:  src,
		opts: o,
		low:  low,
		high: high,
		m:    high - low + 1,
	}, nil
}

// Next advances to the next group. It returns false once the window is
// exhausted or the sequence has failed; check Err to tell the two apart.
func (s *Sequence) Next() bool {
	switch s.state {
	case finished, failed:
		return false
	case notStarted:
		if err := s.bootstrap(); err != nil {
			s.fail(err)
			return false
		}
		s.state = active
	}

	for s.k <= s.m {
		yielded, err := s.step()
		if err != nil {
			s.fail(err)
			return false
		}
		if yielded {
			return true
		}
	}
	s.state = finished
	s.group = Group{}
	s.cycles = nil

	return false
}

// fail records err for Err. The error is the caller's to report, so it is
// only traced at debug level.
func (s *Sequence) fail(err error) {
	s.state = failed
	s.err = err
	s.carry = nil
	s.group = Group{}
	s.cycles = nil
	s.opts.logger.Debug("homology sequence aborted", "err", err)
}

// Group returns the current group. Valid after Next returned true.
func (s *Sequence) Group() Group { return s.group }

// Dim returns the dimension of the current group.
func (s *Sequence) Dim() int { return s.group.Dim }

// Len returns the number of groups the sequence yields when it succeeds.
func (s *Sequence) Len() int { return s.m }

// Err returns the error that stopped the sequence, or nil.
func (s *Sequence) Err() error { return s.err }

// Cycles returns generators for the current group. The result is valid
// until the next call to Next.
//
// Errors:
//   - ErrCyclesDisabled without WithCycles.
//   - ErrNoGroup when the sequence is not positioned at a group.
func (s *Sequence) Cycles() (CycleGroup, error) {
	if !s.opts.cycles {
		return CycleGroup{}, ErrCyclesDisabled
	}
	if s.state != active || s.cycles == nil {
		return CycleGroup{}, ErrNoGroup
	}

	return *s.cycles, nil
}

// All returns an iterator over the remaining groups. A failure is reported
// as a final (Group{}, err) pair.
func (s *Sequence) All() iter.Seq2[Group, error] {
	return func(yield func(Group, error) bool) {
		for s.Next() {
			if !yield(s.Group(), nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield(Group{}, err)
		}
	}
}

// boundaryDim maps traversal index k to the d of the ∂_d behind D_k.
func (s *Sequence) boundaryDim(k int) int {
	if s.opts.cohomology {
		return s.low + k
	}

	return s.high + 1 - k
}

// groupDim maps step k ≥ 1 to the dimension of the group it finalizes.
func (s *Sequence) groupDim(k int) int {
	if s.opts.cohomology {
		return s.low + k - 1
	}

	return s.high + 1 - k
}

// fetch requests ∂ for traversal index k and converts it to D_k.
func (s *Sequence) fetch(k int) (*zmatrix.Matrix, error) {
	d := s.boundaryDim(k)
	m, err := s.src.BoundaryMatrix(d)
	s.fetched++
	if err != nil {
		return nil, sourceErrorf(d, err)
	}
	if m == nil {
		return nil, sourceErrorf(d, zmatrix.ErrNilMatrix)
	}
	if !s.opts.cohomology {
		m = m.Transpose()
	}

	return m, nil
}
