// SPDX-License-Identifier: MIT

package snf

import (
	"errors"
	"fmt"
)

// ErrNilMatrix is returned when a kernel receives a nil matrix.
var ErrNilMatrix = errors.New("snf: nil matrix")

const (
	opEliminate = "EliminateUnits"
	opSmith     = "SmithNormalForm"
	opDecompose = "Decompose"
)

// snfErrorf tags err with the kernel name. err must be non-nil.
func snfErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
