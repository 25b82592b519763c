// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvhom/builder"
)

func newBuiltinsCmd(a *app) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "builtins",
		Short: "List the built-in fixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := a.format(cmd, formatFlag)
			if err != nil {
				return err
			}

			fixtures := builder.Fixtures()
			out := make([]fixtureReport, 0, len(fixtures))
			for _, f := range fixtures {
				s, err := builder.Build(nil, f.Constructor)
				if err != nil {
					return fmt.Errorf("fixture %s: %w", f.Name, err)
				}
				out = append(out, fixtureReport{Name: f.Name, Description: f.Description, FVector: s.FVector()})
			}

			return writeFixtures(cmd.OutOrStdout(), format, out)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "output format: text, json or yaml")

	return cmd
}
