// SPDX-License-Identifier: MIT
// Package: lvhom/builder
//
// constants.go - method tags and parameter minima shared by the constructors.

package builder

// Method tags used as error prefixes.
const (
	methodBuild             = "Build"
	methodDisjoint          = "Disjoint"
	methodSimplex           = "Simplex"
	methodSphere            = "Sphere"
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodTorusGrid         = "TorusGrid"
	methodKleinGrid         = "KleinGrid"
	methodPlatonicSolid     = "PlatonicSolid"
	methodRandomComplex     = "RandomComplex"
	methodNamed             = "Named"
)

// MinSimplexDim is the smallest simplex dimension (a point).
const MinSimplexDim = 0

// MinSphereDim is the smallest sphere dimension (S^0, two points).
const MinSphereDim = 0

// MinCycleNodes is the smallest cycle that is a simplicial circle.
const MinCycleNodes = 3

// MinPathNodes is the smallest path (one edge).
const MinPathNodes = 2

// MinStarNodes is the smallest star (center plus one leaf).
const MinStarNodes = 2

// MinWheelNodes is the smallest wheel (center plus a triangle).
const MinWheelNodes = 4

// MinCompleteNodes is the smallest complete graph (a point).
const MinCompleteNodes = 1

// MinPartition is the smallest side of a complete bipartite graph.
const MinPartition = 1

// MinGridDim is the smallest number of squares per side of a flat grid.
const MinGridDim = 1

// MinPeriodicGridDim is the smallest side of a wrapped grid that is still a
// simplicial complex.
const MinPeriodicGridDim = 3

// MinProbability and MaxProbability bound RandomComplex's p.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
