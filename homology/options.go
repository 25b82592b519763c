// SPDX-License-Identifier: MIT

package homology

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Option configures a Sequence. Invalid options are recorded and surfaced by
// New as ErrRange.
type Option func(*options)

type options struct {
	low, high int
	ranged    bool

	cohomology bool
	cycles     bool
	eliminate  bool
	verify     bool
	logger     *log.Logger

	err error
}

func defaultOptions() options {
	return options{
		eliminate: true,
		logger:    log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithRange restricts the sequence to dimensions low..high (inclusive).
// Without it the full range 0..Dim() is used.
func WithRange(low, high int) Option {
	return func(o *options) {
		if low < 0 || high < low {
			o.err = fmt.Errorf("%w: [%d, %d]", ErrRange, low, high)
			return
		}
		o.low, o.high, o.ranged = low, high, true
	}
}

// WithCohomology switches to the dual traversal (ascending dimensions,
// coboundary maps).
func WithCohomology() Option {
	return func(o *options) { o.cohomology = true }
}

// WithCycles enables companion tracking so that Cycles can return explicit
// (co)cycle generators.
func WithCycles() Option {
	return func(o *options) { o.cycles = true }
}

// WithoutElimination skips the unit-pivot pre-pass. Results are identical.
func WithoutElimination() Option {
	return func(o *options) { o.eliminate = false }
}

// WithVerify checks ∂_{d}·∂_{d+1} = 0 for every fetched pair and, with
// cycles enabled, that the left companion stays unimodular. Expensive.
func WithVerify() Option {
	return func(o *options) { o.verify = true }
}

// WithLogger attaches a logger for per-step debug output. Nil is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
