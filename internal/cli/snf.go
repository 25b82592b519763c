// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvhom/complex"
	"github.com/katalvlaran/lvhom/snf"
)

var errNoMatrix = errors.New(`document has no "matrix:"`)

func newSNFCmd(a *app) *cobra.Command {
	var (
		formatFlag string
		noElim     bool
	)

	cmd := &cobra.Command{
		Use:   "snf [file]",
		Short: "Smith normal form of an integer matrix",
		Long: `Reads a YAML document with a "matrix:" key (a list of integer rows) and
prints the rank, the invariant factors and the torsion of its cokernel.`,
		Example: `  lvhom snf m.yaml
  echo 'matrix: [[2, 4], [6, 8]]' | lvhom snf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.format(cmd, formatFlag)
			if err != nil {
				return err
			}

			var doc *complex.Document
			name := "stdin"
			if len(args) == 0 || args[0] == "-" {
				doc, err = complex.Decode(cmd.InOrStdin())
			} else {
				name = filepath.Base(args[0])
				doc, err = decodeFile(args[0])
			}
			if err != nil {
				return err
			}
			if len(doc.Matrix) == 0 {
				return fmt.Errorf("%s: %w", name, errNoMatrix)
			}
			m, err := complex.IntegerMatrix(doc.Matrix)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			var opts []snf.Option
			if boolSetting(cmd, "no-elim", noElim, a.cfg.NoElim) {
				opts = append(opts, snf.WithoutElimination())
			}
			p := newProgress(loggerFromContext(cmd.Context()))
			dec, err := snf.Decompose(m, opts...)
			if err != nil {
				return err
			}
			p.done("decomposed", "source", name, "rank", dec.Rank)

			return writeSNF(cmd.OutOrStdout(), format, newSNFReport(name, m, dec))
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "output format: text, json or yaml")
	cmd.Flags().BoolVar(&noElim, "no-elim", false, "skip the unit-pivot elimination pass")

	return cmd
}

func decodeFile(path string) (*complex.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return complex.Decode(f)
}
