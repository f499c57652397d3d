// Package matrixio reads and writes matrix documents and the matscale
// configuration file.
//
// A document is {rows, cols, data} with data in row-major order. JSON is
// handled by goccy/go-json and YAML by yaml.v3.
package matrixio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-matrix/matrix"
)

var (
	// ErrShape reports a document whose data length disagrees with rows*cols.
	ErrShape = errors.New("matrixio: data length does not match shape")
	// ErrFormat reports an unsupported document format.
	ErrFormat = errors.New("matrixio: unsupported format")
	// ErrNonFinite reports NaN or Inf data in a format that cannot carry it.
	ErrNonFinite = errors.New("matrixio: non-finite value")
)

// Format selects the document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, s)
	}
}

// Document is the serialized form of a float32 matrix.
type Document struct {
	Rows int       `json:"rows" yaml:"rows"`
	Cols int       `json:"cols" yaml:"cols"`
	Data []float32 `json:"data" yaml:"data"`
}

// Validate checks that the shape is non-negative and matches the data length.
func (d Document) Validate() error {
	if d.Rows < 0 || d.Cols < 0 {
		return fmt.Errorf("%w: negative shape %dx%d", ErrShape, d.Rows, d.Cols)
	}
	if len(d.Data) != d.Rows*d.Cols {
		return fmt.Errorf("%w: %dx%d needs %d values, got %d", ErrShape, d.Rows, d.Cols, d.Rows*d.Cols, len(d.Data))
	}
	return nil
}

// Matrix wraps the document data without copying.
func (d Document) Matrix() (*matrix.F32, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return matrix.WrapF32(d.Rows, d.Cols, d.Data), nil
}

// FromMatrix builds a document over the first m.Len() values of m.Data.
func FromMatrix(m *matrix.F32) Document {
	return Document{Rows: m.Rows, Cols: m.Cols, Data: m.Data[:m.Len()]}
}

// Decode reads one document from r.
func Decode(r io.Reader, f Format) (Document, error) {
	var doc Document

	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("matrixio: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("matrixio: decode yaml: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrFormat, string(f))
	}

	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Encode writes doc to w.
func Encode(w io.Writer, f Format, doc Document) error {
	switch f {
	case FormatJSON:
		// JSON has no literal for NaN or Inf.
		if i, ok := firstNonFinite(doc.Data); ok {
			return fmt.Errorf("%w: data[%d] = %v cannot be encoded as json", ErrNonFinite, i, doc.Data[i])
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("matrixio: encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("matrixio: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("matrixio: encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrFormat, string(f))
	}
	return nil
}

func firstNonFinite(data []float32) (int, bool) {
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return i, true
		}
	}
	return 0, false
}
