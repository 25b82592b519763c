// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvhom/internal/config"
)

// encode writes v as JSON or YAML. It reports false for the text format so
// that the caller renders instead.
func encode(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return true, enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}

		return true, enc.Close()
	}

	return false, nil
}

func writeReport(w io.Writer, format string, r report) error {
	if ok, err := encode(w, format, r); ok {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleTitle.Render(r.Source), StyleDim.Render(r.Kind))
	fmt.Fprintf(&b, "%s %s  %s %s\n",
		StyleDim.Render("f-vector"), StyleNumber.Render(fmt.Sprint(r.FVector)),
		StyleDim.Render("euler"), StyleNumber.Render(fmt.Sprint(r.Euler)))
	prefix := "H_"
	if r.Kind == kindCohomology {
		prefix = "H^"
	}
	for _, g := range r.Groups {
		label := fmt.Sprintf("%s%d", prefix, g.Dim)
		fmt.Fprintf(&b, "  %s%s\n", styleLabel.Render(label), StyleGroup.Render(g.Group))
		for _, gen := range g.Generators {
			fmt.Fprintf(&b, "  %s%s%s\n", styleLabel.Render(""), styleKind.Render(gen.Kind), StyleValue.Render(gen.Chain))
		}
	}
	_, err := io.WriteString(w, b.String())

	return err
}

func writeSNF(w io.Writer, format string, r snfReport) error {
	if ok, err := encode(w, format, r); ok {
		return err
	}

	torsion := r.Torsion
	if torsion == "" {
		torsion = "0"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleTitle.Render(r.Source), StyleDim.Render(fmt.Sprintf("%d×%d", r.Rows, r.Cols)))
	fmt.Fprintf(&b, "  %s%s\n", styleName.Render("rank"), StyleNumber.Render(fmt.Sprint(r.Rank)))
	fmt.Fprintf(&b, "  %s%s\n", styleName.Render("invariants"), StyleValue.Render(strings.Join(r.InvariantFactors, " ")))
	fmt.Fprintf(&b, "  %s%s\n", styleName.Render("torsion"), StyleGroup.Render(torsion))
	_, err := io.WriteString(w, b.String())

	return err
}

func writeFixtures(w io.Writer, format string, rs []fixtureReport) error {
	if ok, err := encode(w, format, rs); ok {
		return err
	}

	var b strings.Builder
	for _, r := range rs {
		fmt.Fprintf(&b, "%s%s %s\n",
			StyleTitle.Render(styleName.Render(r.Name)),
			StyleNumber.Render(fmt.Sprint(r.FVector)),
			StyleDim.Render(r.Description))
	}
	_, err := io.WriteString(w, b.String())

	return err
}
