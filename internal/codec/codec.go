// SPDX-License-Identifier: MIT

// Package codec reads and writes matrix and vector documents in YAML (and
// therefore JSON, which yaml.v3 accepts as a subset).
//
// A document is either a mapping
//
//	kind: integer        # optional; omitted means "infer from the first element"
//	rows: [[1, 2], [3, 4]]
//
// with `values: [...]` in place of `rows` for vectors, or a bare sequence of
// rows. Scalars are resolved by yaml.v3 into bool, int, float64 or string
// and handed unchanged to the library's runtime type checks, so `[1, 2.0]`
// is a type mismatch rather than a silent widening.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mytrix/matrix"
	"github.com/katalvlaran/mytrix/scalar"
	"github.com/katalvlaran/mytrix/vector"
)

// ErrEmptyDocument is returned when the input holds no YAML node at all.
var ErrEmptyDocument = errors.New("codec: empty document")

// Document is the decoded form of one input file.
type Document struct {
	Kind   string  `yaml:"kind,omitempty"`
	Rows   [][]any `yaml:"rows,omitempty"`
	Values []any   `yaml:"values,omitempty"`
}

// Decode reads one document from r.
func Decode(r io.Reader) (*Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("codec: decode: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	body := root.Content[0]
	doc := &Document{}
	switch body.Kind {
	case yaml.SequenceNode:
		if err := body.Decode(&doc.Rows); err != nil {
			return nil, fmt.Errorf("codec: rows: %w", err)
		}
	case yaml.MappingNode:
		if err := body.Decode(doc); err != nil {
			return nil, fmt.Errorf("codec: document: %w", err)
		}
	default:
		return nil, fmt.Errorf("codec: line %d: expected a mapping or a sequence of rows: %w",
			body.Line, scalar.ErrTypeMismatch)
	}

	return doc, nil
}

// DecodeBytes decodes a document held in memory.
func DecodeBytes(b []byte) (*Document, error) {
	return Decode(bytes.NewReader(b))
}

// DecodeFile decodes the document stored at path.
func DecodeFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ResolveKind parses the document kind; an empty kind means "infer".
func (d *Document) ResolveKind() (scalar.Kind, error) {
	if strings.TrimSpace(d.Kind) == "" {
		return scalar.Invalid, nil
	}
	return scalar.ParseKind(d.Kind)
}

// Matrix builds the matrix described by d, using fallback as the domain
// when the document names none. With neither, the domain is inferred.
func (d *Document) Matrix(fallback scalar.Kind) (matrix.Matrix, error) {
	kind, err := d.ResolveKind()
	if err != nil {
		return nil, err
	}
	if kind == scalar.Invalid {
		kind = fallback
	}
	if kind == scalar.Invalid {
		return matrix.Infer(d.Rows)
	}
	return matrix.FromRowsOf(kind, d.Rows)
}

// Vector builds the vector described by d; see Matrix for kind resolution.
func (d *Document) Vector(fallback scalar.Kind) (vector.Vector, error) {
	kind, err := d.ResolveKind()
	if err != nil {
		return nil, err
	}
	if kind == scalar.Invalid {
		kind = fallback
	}
	if kind == scalar.Invalid {
		return vector.Infer(d.Values)
	}
	return vector.FromSliceOf(kind, d.Values)
}

// IsVector reports whether d carries values rather than rows.
func (d *Document) IsVector() bool {
	return len(d.Values) > 0 && len(d.Rows) == 0
}

// EncodeMatrix writes m as a document with an explicit kind, so that
// decoding it again yields an equal matrix.
func EncodeMatrix(w io.Writer, m matrix.Matrix) error {
	if m == nil {
		return fmt.Errorf("codec: encode: %w", scalar.ErrNilMatrix)
	}
	rows := &yaml.Node{Kind: yaml.SequenceNode}
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		row := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for j := 0; j < c; j++ {
			v, err := m.Get(matrix.Key{Row: i, Col: j})
			if err != nil {
				return fmt.Errorf("codec: encode: %w", err)
			}
			row.Content = append(row.Content, scalarNode(v))
		}
		rows.Content = append(rows.Content, row)
	}

	return encodeDocument(w, m.Kind(), "rows", rows)
}

// EncodeVector writes v as a document with an explicit kind.
func EncodeVector(w io.Writer, v vector.Vector) error {
	if v == nil {
		return fmt.Errorf("codec: encode: %w", scalar.ErrNilMatrix)
	}
	values := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for i := 0; i < v.Len(); i++ {
		x, err := v.Get(i)
		if err != nil {
			return fmt.Errorf("codec: encode: %w", err)
		}
		values.Content = append(values.Content, scalarNode(x))
	}

	return encodeDocument(w, v.Kind(), "values", values)
}

func encodeDocument(w io.Writer, kind scalar.Kind, field string, body *yaml.Node) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "kind"},
		&yaml.Node{Kind: yaml.ScalarNode, Value: kind.String()},
		&yaml.Node{Kind: yaml.ScalarNode, Value: field},
		body,
	)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("codec: encode: %w", err)
	}
	return enc.Close()
}

// scalarNode renders one element so that yaml.v3 resolves it back to the
// same Go type: floats always carry a fraction or exponent.
func scalarNode(v any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	switch x := v.(type) {
	case bool:
		n.Value = strconv.FormatBool(x)
	case int:
		n.Value = strconv.Itoa(x)
	case float64:
		n.Value = formatFloat(x)
	default:
		n.Value = fmt.Sprint(x)
	}
	return n
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
