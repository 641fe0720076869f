// SPDX-License-Identifier: MIT

// Package problem reads problem definitions: which operation to trace, over
// which matrix, with which constants. Sources are YAML documents (one problem
// per document) and the compact inline form "1,2;3,4" used by CLI flags.
package problem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rowtrace"
	"github.com/katalvlaran/rowtrace/matrix"
)

// Sentinel errors.
var (
	// ErrSyntax indicates an inline matrix or vector that cannot be parsed.
	ErrSyntax = errors.New("problem: malformed input")
	// ErrEmpty indicates a problem without a matrix.
	ErrEmpty = errors.New("problem: empty matrix")
	// ErrTooLarge indicates a matrix dimension above the configured limit.
	ErrTooLarge = errors.New("problem: matrix too large")
)

// Grid is a matrix as written in a document. It decodes from a YAML sequence
// of rows or from an inline string such as "1,2;3,4".
type Grid [][]float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *Grid) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		rows, err := ParseMatrix(n.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		*g = rows
		return nil
	}
	var rows [][]float64
	if err := n.Decode(&rows); err != nil {
		return err
	}
	*g = rows

	return nil
}

// UnmarshalJSON accepts an array of rows or the inline string form.
func (g *Grid) UnmarshalJSON(b []byte) error {
	var inline string
	if err := json.Unmarshal(b, &inline); err == nil {
		rows, err := ParseMatrix(inline)
		if err != nil {
			return err
		}
		*g = rows
		return nil
	}
	var rows [][]float64
	if err := json.Unmarshal(b, &rows); err != nil {
		return err
	}
	*g = rows

	return nil
}

// Problem is one traced computation.
type Problem struct {
	Name      string    `yaml:"name,omitempty" json:"name,omitempty"`
	Operation string    `yaml:"operation" json:"operation"`
	Matrix    Grid      `yaml:"matrix" json:"matrix"`
	Constants []float64 `yaml:"constants,omitempty" json:"constants,omitempty"`
}

// Build validates p against maxDim (0 disables the limit) and returns the
// parsed operation and matrix. The matrix is a fresh copy.
func (p Problem) Build(maxDim int) (rowtrace.Operation, *matrix.Dense, error) {
	op, err := rowtrace.ParseOperation(p.Operation)
	if err != nil {
		return 0, nil, err
	}
	if err = CheckSize(p.Matrix, maxDim); err != nil {
		return 0, nil, err
	}
	m, err := matrix.New(p.Matrix)
	if err != nil {
		return 0, nil, fmt.Errorf("problem %q: %w", p.Name, err)
	}
	if p.Constants != nil {
		if err = matrix.ValidateConstants(p.Constants, m.Rows()); err != nil {
			return 0, nil, fmt.Errorf("problem %q: %w", p.Name, err)
		}
	}

	return op, m, nil
}

// CheckSize rejects empty grids and grids with more than maxDim rows or
// columns. maxDim <= 0 means unlimited.
func CheckSize(g [][]float64, maxDim int) error {
	if len(g) == 0 || len(g[0]) == 0 {
		return ErrEmpty
	}
	if maxDim <= 0 {
		return nil
	}
	if len(g) > maxDim || len(g[0]) > maxDim {
		return fmt.Errorf("%dx%d exceeds %d: %w", len(g), len(g[0]), maxDim, ErrTooLarge)
	}

	return nil
}

// Decode reads every YAML document from r. Empty documents are skipped.
func Decode(r io.Reader) ([]Problem, error) {
	dec := yaml.NewDecoder(r)
	var out []Problem
	for i := 0; ; i++ {
		var p Problem
		err := dec.Decode(&p)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("problem: document %d: %w", i, err)
		}
		if p.Operation == "" && p.Matrix == nil {
			continue
		}
		if p.Name == "" {
			p.Name = fmt.Sprintf("problem-%d", len(out)+1)
		}
		out = append(out, p)
	}

	return out, nil
}

// ParseMatrix parses rows separated by ';' or newlines with entries separated
// by ',' or whitespace: "1,2;3,4" or "1 2\n3 4".
func ParseMatrix(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' })
	rows := make([][]float64, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := ParseVector(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), len(rows[0]), ErrSyntax)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	return rows, nil
}

// ParseVector parses entries separated by ',' or whitespace.
func ParseVector(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no entries in %q: %w", s, ErrSyntax)
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", f, ErrSyntax)
		}
		out[i] = v
	}

	return out, nil
}
