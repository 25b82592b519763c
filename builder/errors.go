// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with `%w`:
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
//   - Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, dim)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed: a nil
// constructor, or a Build call that produced no facets.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a parameter outside a closed enumeration, such
// as an unknown PlatonicName.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrUnknownFixture is returned by Named for a name that is not registered.
var ErrUnknownFixture = errors.New("builder: unknown fixture")

// builderErrorf wraps err with the given method context and message.
// It returns an error of the form "<Method>: <formatted message>: <err>".
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
