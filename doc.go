// Package lvhom computes integer homology and cohomology of finite chain
// complexes, exactly, with optional explicit (co)cycle generators.
//
// 🚀 What is lvhom?
//
//	A pure-Go library and CLI built from small, single-purpose packages:
//		• Sparse exact-integer matrices with elementary row/column operations
//		• Smith normal form with companion-matrix tracking
//		• Lazy, incremental (co)homology sequences over a boundary source
//		• Simplicial complexes, explicit chain complexes and YAML loading
//		• Fixture builders: spheres, surfaces, graphs, solids, random complexes
//
// ✨ Why choose lvhom?
//
//   - Exact - every entry is a *big.Int, no overflow and no rounding
//   - Incremental - boundary maps are requested one at a time, in order
//   - Explicit - torsion and free generators on request
//   - Deterministic - same input, same groups, same generators
//
// Packages:
//
//	zmatrix/  - sparse *big.Int matrices, elementary operations, products
//	snf/      - unit elimination, Smith normal form, companions, torsion
//	homology/ - Sequence (New/Next/Group/Cycles), Compute, Euler checks
//	complex/  - Simplicial, Chain, YAML documents, 1-skeleton components
//	builder/  - functional-options constructors and named fixtures
//	cmd/lvhom - command-line front end (homology, cohomology, snf, builtins)
//
// Quick example, the real projective plane:
//
//	H_2 = 0
//	H_1 = Z/2
//	H_0 = Z
//
//	go get github.com/katalvlaran/lvhom
package lvhom
