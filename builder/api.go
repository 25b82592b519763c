// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order
//     against one facet draft, then closes the draft into a complex.Simplicial.
//   - All public factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical complexes.
//   - Safety: never panic; return sentinel errors from constructors.
//
// Composition:
//   - Constructors share vertex indices: Cycle(4) followed by Path(3) glues the
//     path onto vertices 0..2 of the cycle.
//   - Disjoint(...) runs its constructors on fresh vertices past every vertex
//     used so far, so Build(nil, Sphere(2), Disjoint(Sphere(2))) is two spheres.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvhom/complex"
)

// Constructor appends facets to the draft using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit facets in a stable, documented order.
//   - Preserve determinism for the same config and call order.
type Constructor func(d *draft, cfg builderConfig) error

// Build resolves the builder configuration from bopts, applies all
// constructors in order and returns the simplicial complex generated by the
// collected facets. Vertex labels come from WithIDScheme when given.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//   - Closing: see complex.NewSimplicial.
//
// Errors:
//   - ErrConstructFailed for a nil constructor or an empty draft.
//   - Constructor sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - complex.NewSimplicial errors.
func Build(bopts []BuilderOption, cons ...Constructor) (*complex.Simplicial, error) {
	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(bopts...)
	d := &draft{}

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuild, i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuild, err)
		}
	}
	if len(d.facets) == 0 {
		return nil, fmt.Errorf("%s: no facets: %w", methodBuild, ErrConstructFailed)
	}

	// Labels only when a scheme was chosen; the complex prints indices otherwise.
	var opts []complex.SimplicialOption
	if cfg.labelFn != nil {
		labels := make(map[int]string, d.next)
		for v := 0; v < d.next; v++ {
			labels[v] = cfg.labelFn(v)
		}
		opts = append(opts, complex.WithVertexLabels(labels))
	}

	s, err := complex.NewSimplicial(d.facets, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}

	return s, nil
}

// Disjoint returns a Constructor that applies cons to a fresh draft and
// appends the result shifted past every vertex used so far.
func Disjoint(cons ...Constructor) Constructor {
	return func(d *draft, cfg builderConfig) error {
		inner := &draft{}
		for i, fn := range cons {
			if fn == nil {
				return fmt.Errorf("%s: nil constructor at index %d: %w", methodDisjoint, i, ErrConstructFailed)
			}
			if err := fn(inner, cfg); err != nil {
				return fmt.Errorf("%s: %w", methodDisjoint, err)
			}
		}

		// Shift by the current vertex bound; inner.next is relative to 0.
		base := d.next
		for _, f := range inner.facets {
			shifted := make([]int, len(f))
			for i, v := range f {
				shifted[i] = v + base
			}
			d.add(shifted...)
		}

		return nil
	}
}
