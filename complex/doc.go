// SPDX-License-Identifier: MIT

// Package complex provides concrete chain complexes that can feed the
// homology engine.
//
//   - Simplicial: an abstract simplicial complex given by its facets. All
//     faces are generated, ordered lexicographically per dimension, and the
//     boundary maps use the alternating-sign convention
//     ∂[v0,…,vd] = Σ (-1)^i [v0,…,v̂i,…,vd].
//   - Chain: an explicit chain complex given by its boundary matrices
//     ∂_1 … ∂_n, validated for shape and ∂∘∂ = 0.
//
// Both types satisfy the Complex interface, which is a superset of the
// homology source contract: BoundaryMatrix(d) accepts 0 ≤ d ≤ Dim()+1 and
// always returns a fresh matrix the caller may modify.
//
// Load and LoadFile read either kind from a YAML document:
//
//	name: hollow triangle
//	facets:
//	  - [0, 1]
//	  - [0, 2]
//	  - [1, 2]
//
//	name: Z/2 in degree 0
//	boundaries:
//	  - [[2]]
//
// Simplicial.Components walks the 1-skeleton breadth-first; the number of
// components is the rank of H_0 and serves as a cheap cross-check.
//
// Values are immutable after construction and safe for concurrent readers.
package complex
