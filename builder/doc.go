// SPDX-License-Identifier: MIT

// Package builder provides reusable "functional-options"-style constructors
// for simplicial complexes with well-known homology. It sits on top of
// package complex and is what tests, examples and the lvhom CLI use to get
// fixtures without writing facet lists by hand.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build(opts, cons...): run constructors against one facet draft and
//     close it with complex.NewSimplicial.
//     – Disjoint(cons...): place constructors on fresh vertices.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: RNG for RandomComplex.
//     – WithIDScheme and the IDFn schemes (DefaultIDFn, SymbolIDFn,
//     ExcelColumnIDFn, PrefixIDFn): vertex labels for face names.
//   - Constructors:
//     – Simplices and spheres: Simplex, Sphere.
//     – Graphs (1-complexes): Cycle, Path, Star, Complete, CompleteBipartite.
//     – Disks and solids: Wheel, Grid, PlatonicSolid(name, filled).
//     – Closed surfaces: TorusGrid, KleinGrid, Torus, KleinBottle,
//     ProjectivePlane; and the DunceHat.
//     – RandomComplex(n, dim, p).
//   - Registry: Fixtures and Named for command-line use.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed, ErrOptionViolation,
// ErrUnknownFixture) wrapped with the constructor name; match them with
// errors.Is.
package builder
