// SPDX-License-Identifier: MIT

package complex

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvhom/zmatrix"
)

// Document is the YAML form of a complex or a single matrix. Exactly one of
// Facets, Boundaries or Matrix is expected.
type Document struct {
	Name       string         `yaml:"name,omitempty"`
	Facets     [][]int        `yaml:"facets,omitempty"`
	Labels     map[int]string `yaml:"labels,omitempty"`
	Boundaries [][][]Integer  `yaml:"boundaries,omitempty"`
	Matrix     [][]Integer    `yaml:"matrix,omitempty"`
}

// Integer is a matrix entry of any size. It decodes from a plain or quoted
// decimal scalar, so 7, -3 and 123456789012345678901234567890 all load
// exactly.
type Integer struct{ *big.Int }

// UnmarshalYAML implements yaml.Unmarshaler.
func (z *Integer) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected an integer", n.Line)
	}
	v, ok := new(big.Int).SetString(n.Value, 10)
	if !ok {
		return fmt.Errorf("line %d: %q is not a decimal integer", n.Line, n.Value)
	}
	z.Int = v

	return nil
}

// IntegerMatrix builds a matrix from decoded rows.
//
// Errors:
//   - ErrDocument for a null entry, which YAML decodes without a value.
//   - zmatrix.ErrBadShape for ragged rows.
func IntegerMatrix(rows [][]Integer) (*zmatrix.Matrix, error) {
	data := make([][]*big.Int, len(rows))
	for i, row := range rows {
		data[i] = make([]*big.Int, len(row))
		for j, z := range row {
			if z.Int == nil {
				return nil, complexErrorf(opLoad, ErrDocument, "row %d, column %d: missing entry", i, j)
			}
			data[i][j] = z.Int
		}
	}

	return zmatrix.FromBigRows(data)
}

// Decode reads one YAML document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, complexErrorf(opLoad, ErrDocument, "empty input")
		}

		return nil, complexErrorf(opLoad, ErrDocument, "%v", err)
	}

	return &doc, nil
}

// Complex builds the complex described by the document.
//
// Errors:
//   - ErrDocument when the document has neither facets nor boundaries, or both.
//   - any NewSimplicial / NewChain error.
func (doc *Document) Complex() (Complex, error) {
	hasFacets, hasBounds := len(doc.Facets) > 0, len(doc.Boundaries) > 0
	switch {
	case hasFacets && hasBounds:
		return nil, complexErrorf(opLoad, ErrDocument, "both facets and boundaries given")
	case hasFacets:
		var opts []SimplicialOption
		if doc.Labels != nil {
			opts = append(opts, WithVertexLabels(doc.Labels))
		}

		return NewSimplicial(doc.Facets, opts...)
	case hasBounds:
		bs := make([]*zmatrix.Matrix, len(doc.Boundaries))
		for i, rows := range doc.Boundaries {
			m, err := IntegerMatrix(rows)
			if err != nil {
				return nil, complexErrorf(opLoad, err, "boundary %d", i+1)
			}
			bs[i] = m
		}

		return NewChain(bs)
	}

	return nil, complexErrorf(opLoad, ErrDocument, "no facets or boundaries")
}

// Load decodes a YAML document from r and builds its complex.
func Load(r io.Reader) (Complex, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}

	return doc.Complex()
}

// LoadFile is Load on the named file.
func LoadFile(path string) (Complex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, complexErrorf(opLoad, err, "")
	}
	defer f.Close()

	return Load(f)
}
