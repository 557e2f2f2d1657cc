// SPDX-License-Identifier: MIT

// Package gridfile decodes a numeric grid from a YAML or TOML document into a
// *matrix.Dense.
//
// Both formats carry a single key, rows, holding a list of numeric lists:
//
//	rows:                      rows = [
//	  - [1, 2]                   [1, 2],
//	  - [3, 4.5]                 [3, 4.5],
//	                           ]
//
// Integers and floats are coerced to float64 here; every other element type is
// rejected with ErrBadElement. Shape checks (ragged rows, empty grid) are left
// to matrix.New and surface as matrix.ErrBadShape.
package gridfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cofactor/matrix"
)

// Format identifies the document syntax.
type Format int

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = iota
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "auto"
	}
}

var (
	// ErrUnsupportedFormat is returned for an extension other than .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("gridfile: unsupported format")

	// ErrBadElement is returned when a cell is not an integer or a float.
	ErrBadElement = errors.New("gridfile: element is not a number")
)

// document is the on-disk schema shared by both formats.
type document struct {
	Rows [][]any `yaml:"rows" toml:"rows"`
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return FormatAuto, fmt.Errorf("gridfile: %q: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads path and decodes it according to its extension.
func Load(path string, opts ...matrix.Option) (*matrix.Dense, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: read %q: %w", path, err)
	}
	m, err := Decode(content, format, opts...)
	if err != nil {
		return nil, fmt.Errorf("gridfile: %s: %w", filepath.Base(path), err)
	}

	return m, nil
}

// Decode parses content in the given format. FormatAuto is not accepted here
// because there is no extension to inspect.
func Decode(content []byte, format Format, opts ...matrix.Option) (*matrix.Dense, error) {
	var doc document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("gridfile: parse yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(content), &doc); err != nil {
			return nil, fmt.Errorf("gridfile: parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("gridfile: format %s: %w", format, ErrUnsupportedFormat)
	}

	grid, err := coerce(doc.Rows)
	if err != nil {
		return nil, err
	}

	return matrix.New(grid, opts...)
}

// coerce converts decoded cells to float64. yaml.v3 yields int for integer
// literals, toml yields int64; both yield float64 for floats.
func coerce(rows [][]any) ([][]float64, error) {
	if rows == nil {
		return nil, nil
	}
	grid := make([][]float64, len(rows))
	for i, row := range rows {
		grid[i] = make([]float64, len(row))
		for j, cell := range row {
			switch v := cell.(type) {
			case int:
				grid[i][j] = float64(v)
			case int64:
				grid[i][j] = float64(v)
			case uint64:
				grid[i][j] = float64(v)
			case float64:
				grid[i][j] = v
			default:
				return nil, fmt.Errorf("gridfile: rows[%d][%d] = %v (%T): %w", i, j, cell, cell, ErrBadElement)
			}
		}
	}

	return grid, nil
}
