// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// id_fn.go - vertex label schemes for WithIDScheme.
//
// Contract:
//   - An IDFn maps a vertex index (0, 1, …) to a label.
//   - Schemes are pure and deterministic; they panic on indices they cannot
//     represent, which only happens through a misconfigured Build.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a vertex index to its label.
type IDFn func(idx int) string

// DefaultIDFn renders the index in decimal ("0", "1", …).
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn renders indices 0..25 as "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string(rune('A' + idx))
}

// ExcelColumnIDFn renders spreadsheet column names: "A".."Z", "AA", "AB", ….
// Panics on negative indices.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var out []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		out = append(out, byte('A'+i%26))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}

// PrefixIDFn returns a scheme rendering prefix+decimal index, e.g. "v0", "v1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs labels vertices "A".."Z".
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs labels vertices "A", …, "Z", "AA", ….
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithPrefixIDs labels vertices prefix0, prefix1, ….
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }
