// SPDX-License-Identifier: MIT

package cli

import (
	"math/big"
	"strings"

	"github.com/katalvlaran/lvhom/homology"
	"github.com/katalvlaran/lvhom/snf"
	"github.com/katalvlaran/lvhom/zmatrix"
)

// Reports are the serialisable results of each command. Integers of
// arbitrary size travel as decimal strings so that JSON and YAML agree.

// report is one homology or cohomology run. Components counts the connected
// components of a simplicial input and is zero for explicit chain complexes.
type report struct {
	Source     string        `json:"source" yaml:"source"`
	Kind       string        `json:"kind" yaml:"kind"`
	FVector    []int         `json:"f_vector" yaml:"f_vector"`
	Euler      int           `json:"euler" yaml:"euler"`
	Components int           `json:"components,omitempty" yaml:"components,omitempty"`
	Groups     []groupReport `json:"groups" yaml:"groups"`
}

type groupReport struct {
	Dim        int               `json:"dim" yaml:"dim"`
	Group      string            `json:"group" yaml:"group"`
	Betti      int               `json:"betti" yaml:"betti"`
	Torsion    []torsionReport   `json:"torsion,omitempty" yaml:"torsion,omitempty"`
	Generators []generatorReport `json:"generators,omitempty" yaml:"generators,omitempty"`
}

type torsionReport struct {
	Coefficient  string `json:"coefficient" yaml:"coefficient"`
	Multiplicity int    `json:"multiplicity" yaml:"multiplicity"`
}

type generatorReport struct {
	Kind  string `json:"kind" yaml:"kind"`
	Chain string `json:"chain" yaml:"chain"`
}

type snfReport struct {
	Source           string   `json:"source" yaml:"source"`
	Rows             int      `json:"rows" yaml:"rows"`
	Cols             int      `json:"cols" yaml:"cols"`
	Rank             int      `json:"rank" yaml:"rank"`
	InvariantFactors []string `json:"invariant_factors" yaml:"invariant_factors"`
	Torsion          string   `json:"torsion,omitempty" yaml:"torsion,omitempty"`
}

type fixtureReport struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	FVector     []int  `json:"f_vector" yaml:"f_vector"`
}

// Generator kinds.
const (
	kindTorsion = "torsion"
	kindFree    = "free"
)

func newGroupReport(g homology.Group) groupReport {
	out := groupReport{Dim: g.Dim, Group: g.String(), Betti: g.Betti}
	for _, c := range g.Torsion {
		out.Torsion = append(out.Torsion, torsionReport{
			Coefficient:  c.Coefficient.String(),
			Multiplicity: c.Multiplicity,
		})
	}

	return out
}

// attachGenerators fills r.Generators from cg; torsion rows come first.
func (r *groupReport) attachGenerators(g homology.Group, cg homology.CycleGroup) {
	nt := g.TorsionCount()
	for i := range cg.Coeffs.Rows() {
		kind := kindFree
		if i < nt {
			kind = kindTorsion
		}
		r.Generators = append(r.Generators, generatorReport{
			Kind:  kind,
			Chain: formatChain(cg.Coeffs.Row(i), cg.Faces),
		})
	}
}

// formatChain renders a coefficient row as a signed sum of faces, e.g.
// "[0,1] - [0,2] + 2·[1,2]". The zero chain renders as "0".
func formatChain(row []zmatrix.Entry, faces []string) string {
	if len(row) == 0 {
		return "0"
	}
	var b strings.Builder
	abs := new(big.Int)
	for k, e := range row {
		neg := e.Value.Sign() < 0
		switch {
		case k == 0 && neg:
			b.WriteString("-")
		case k > 0 && neg:
			b.WriteString(" - ")
		case k > 0:
			b.WriteString(" + ")
		}
		abs.Abs(e.Value)
		if !abs.IsInt64() || abs.Int64() != 1 {
			b.WriteString(abs.String())
			b.WriteString("·")
		}
		b.WriteString(faces[e.Index])
	}

	return b.String()
}

func newSNFReport(source string, m *zmatrix.Matrix, dec *snf.Decomposition) snfReport {
	out := snfReport{
		Source: source,
		Rows:   m.Rows(),
		Cols:   m.Cols(),
		Rank:   dec.Rank,
		// Non-nil so that an empty list encodes as [] rather than null.
		InvariantFactors: []string{},
		Torsion:          snf.FormatTorsion(dec.Torsion),
	}
	for _, f := range dec.InvariantFactors() {
		out.InvariantFactors = append(out.InvariantFactors, f.String())
	}

	return out
}

// alternatingSum returns Σ (-1)^d · f[d].
func alternatingSum(f []int) int {
	chi := 0
	for d, n := range f {
		if d%2 == 0 {
			chi += n
		} else {
			chi -= n
		}
	}

	return chi
}
