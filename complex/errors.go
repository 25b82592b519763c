// SPDX-License-Identifier: MIT

package complex

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyComplex is returned when no facet or boundary is supplied.
	ErrEmptyComplex = errors.New("complex: empty complex")

	// ErrEmptyFacet is returned for a facet without vertices.
	ErrEmptyFacet = errors.New("complex: empty facet")

	// ErrDuplicateVertex is returned when a facet repeats a vertex.
	ErrDuplicateVertex = errors.New("complex: duplicate vertex in facet")

	// ErrShape is returned when consecutive boundary matrices do not compose.
	ErrShape = errors.New("complex: boundary shape mismatch")

	// ErrNotChain is returned when ∂_{d}·∂_{d+1} ≠ 0.
	ErrNotChain = errors.New("complex: boundary maps do not square to zero")

	// ErrDimension is returned for a dimension outside [0, Dim()+1].
	ErrDimension = errors.New("complex: dimension out of range")

	// ErrDocument is returned for a YAML document that is neither a facet
	// list nor a boundary list.
	ErrDocument = errors.New("complex: malformed document")
)

const (
	opNewSimplicial = "NewSimplicial"
	opNewChain      = "NewChain"
	opBoundary      = "BoundaryMatrix"
	opLoad          = "Load"
)

// complexErrorf prefixes err with the operation name, keeping it matchable.
func complexErrorf(op string, err error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
