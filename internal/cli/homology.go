// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvhom/builder"
	"github.com/katalvlaran/lvhom/complex"
	"github.com/katalvlaran/lvhom/homology"
)

const (
	kindHomology   = "homology"
	kindCohomology = "cohomology"
)

var errSourceConflict = errors.New("give either a file or --builtin, not both")

type homologyFlags struct {
	low, high int
	cycles    bool
	noElim    bool
	verify    bool
	format    string
	builtin   string
}

// settings is the result of layering flags over the configuration.
type settings struct {
	cohomology bool
	low, high  int
	lowSet     bool
	highSet    bool
	cycles     bool
	noElim     bool
	verify     bool
}

func newHomologyCmd(a *app, cohomology bool) *cobra.Command {
	var f homologyFlags
	kind, short := kindHomology, "Compute homology groups H_d"
	if cohomology {
		kind, short = kindCohomology, "Compute cohomology groups H^d"
	}

	cmd := &cobra.Command{
		Use:   kind + " [file]",
		Short: short,
		Long: `Reads a YAML document with either "facets:" (a simplicial complex) or
"boundaries:" (explicit boundary matrices ∂_1..∂_n) and prints one group per
dimension. Without a file the document is read from standard input.`,
		Example: fmt.Sprintf(`  lvhom %[1]s --builtin rp2
  lvhom %[1]s torus.yaml --cycles --format json
  lvhom %[1]s --builtin dunce --low 1 --high 2`, kind),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.format(cmd, f.format)
			if err != nil {
				return err
			}
			s := settings{
				cohomology: cohomology,
				low:        f.low,
				high:       f.high,
				lowSet:     cmd.Flags().Changed("low"),
				highSet:    cmd.Flags().Changed("high"),
				cycles:     boolSetting(cmd, "cycles", f.cycles, a.cfg.Cycles),
				noElim:     boolSetting(cmd, "no-elim", f.noElim, a.cfg.NoElim),
				verify:     boolSetting(cmd, "verify", f.verify, a.cfg.Verify),
			}

			name, src, err := loadComplex(cmd.InOrStdin(), args, f.builtin)
			if err != nil {
				return err
			}
			r, err := computeReport(cmd.Context(), name, src, s)
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), format, r)
		},
	}

	cmd.Flags().IntVar(&f.low, "low", 0, "lowest dimension (default 0)")
	cmd.Flags().IntVar(&f.high, "high", 0, "highest dimension (default the complex dimension)")
	cmd.Flags().BoolVar(&f.cycles, "cycles", false, "print explicit generators")
	cmd.Flags().BoolVar(&f.noElim, "no-elim", false, "skip the unit-pivot elimination pass")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "check ∂∂ = 0 and companion invariants")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "output format: text, json or yaml")
	cmd.Flags().StringVarP(&f.builtin, "builtin", "b", "", "use a built-in fixture (see lvhom builtins)")

	return cmd
}

// loadComplex resolves the input: a named fixture, a YAML file, or stdin
// when no file (or "-") is given.
func loadComplex(stdin io.Reader, args []string, builtin string) (string, complex.Complex, error) {
	if builtin != "" {
		if len(args) > 0 {
			return "", nil, errSourceConflict
		}
		cons, err := builder.Named(builtin)
		if err != nil {
			return "", nil, err
		}
		s, err := builder.Build(nil, cons)
		if err != nil {
			return "", nil, err
		}

		return builtin, s, nil
	}
	if len(args) == 0 || args[0] == "-" {
		c, err := complex.Load(stdin)

		return "stdin", c, err
	}
	c, err := complex.LoadFile(args[0])

	return filepath.Base(args[0]), c, err
}

// computeReport walks the (co)homology sequence of src and collects one
// groupReport per yielded group.
func computeReport(ctx context.Context, name string, src complex.Complex, s settings) (report, error) {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	opts := []homology.Option{homology.WithLogger(logger)}
	if s.cohomology {
		opts = append(opts, homology.WithCohomology())
	}
	if s.lowSet || s.highSet {
		low, high := 0, src.Dim()
		if s.lowSet {
			low = s.low
		}
		if s.highSet {
			high = s.high
		}
		opts = append(opts, homology.WithRange(low, high))
	}
	if s.cycles {
		opts = append(opts, homology.WithCycles())
	}
	if s.noElim {
		opts = append(opts, homology.WithoutElimination())
	}
	if s.verify {
		opts = append(opts, homology.WithVerify())
	}

	seq, err := homology.New(src, opts...)
	if err != nil {
		return report{}, err
	}

	r := report{
		Source:  name,
		Kind:    kindHomology,
		FVector: src.FVector(),
		Euler:   alternatingSum(src.FVector()),
		Groups:  make([]groupReport, 0, seq.Len()),
	}
	if s.cohomology {
		r.Kind = kindCohomology
	}
	if simp, ok := src.(*complex.Simplicial); ok {
		r.Components = len(simp.Components())
	}
	for seq.Next() {
		if err := ctx.Err(); err != nil {
			return report{}, err
		}
		g := seq.Group()
		gr := newGroupReport(g)
		if s.cycles {
			cg, err := seq.Cycles()
			if err != nil {
				return report{}, err
			}
			gr.attachGenerators(g, cg)
		}
		r.Groups = append(r.Groups, gr)
	}
	if err := seq.Err(); err != nil {
		return report{}, err
	}
	p.done("computed "+r.Kind, "source", name, "groups", len(r.Groups))

	return r, nil
}
