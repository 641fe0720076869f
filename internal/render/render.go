// SPDX-License-Identifier: MIT

// Package render turns steps into terminal text. It is the only place where
// numbers are rounded and indices become one-based; the engines never format.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/rowtrace/matrix"
	"github.com/katalvlaran/rowtrace/step"
)

// Renderer writes steps to an output. Headings are bold and pivots are
// highlighted when the output supports it.
type Renderer struct {
	out *termenv.Output
}

// New returns a Renderer writing to w. With color false every style is
// dropped; otherwise the terminal profile of w is detected.
func New(w io.Writer, color bool) *Renderer {
	if !color {
		return &Renderer{out: termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))}
	}

	return &Renderer{out: termenv.NewOutput(w)}
}

// Heading styles s as a bold heading.
func (r *Renderer) Heading(s string) string { return r.out.String(s).Bold().String() }

// Trace writes every step of tr.
func (r *Renderer) Trace(tr *step.Trace) error {
	for i, s := range tr.All() {
		if err := r.Step(i, s); err != nil {
			return err
		}
	}

	return nil
}

// Step writes one step: heading, description, matrix and results.
func (r *Renderer) Step(index int, s step.Step) error {
	var b strings.Builder
	heading := fmt.Sprintf("Step %d · %s/%s", index+1, s.Phase, s.Action)
	b.WriteString(r.Heading(heading))
	b.WriteByte('\n')
	b.WriteString(Describe(s))
	b.WriteByte('\n')

	if len(s.Matrix) > 0 {
		b.WriteString(r.Grid(s))
	}
	r.results(&b, s)
	b.WriteByte('\n')

	_, err := io.WriteString(r.out, b.String())

	return err
}

// Grid lays out s.Matrix in aligned columns. The augmented vector, or the
// identity half of [A|I], is separated by a bar. Pivot entries are bold.
func (r *Renderer) Grid(s step.Step) string {
	bar := -1
	if s.Augmented && len(s.Matrix) > 0 && len(s.Matrix[0]) == 2*len(s.Matrix) {
		bar = len(s.Matrix)
	}
	withVec := len(s.AugmentedVector) == len(s.Matrix)

	cells := make([][]string, len(s.Matrix))
	width := 1
	for i, row := range s.Matrix {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = FormatNumber(v)
			width = max(width, len(cells[i][j]))
		}
		if withVec {
			width = max(width, len(FormatNumber(s.AugmentedVector[i])))
		}
	}

	var b strings.Builder
	for i, row := range cells {
		b.WriteString("  ")
		for j, c := range row {
			if j == bar {
				b.WriteString(" |")
			}
			if j > 0 {
				b.WriteByte(' ')
			}
			cell := fmt.Sprintf("%*s", width, c)
			if matrix.IsPivotElement(s.Matrix, i, j, s.PivotCols) {
				cell = r.out.String(cell).Bold().String()
			}
			b.WriteString(cell)
		}
		if withVec {
			fmt.Fprintf(&b, " | %*s", width, FormatNumber(s.AugmentedVector[i]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// results appends the solution artifacts carried by s.
func (r *Renderer) results(b *strings.Builder, s step.Step) {
	if s.Solution != nil {
		for j, v := range s.Solution {
			fmt.Fprintf(b, "  %s = %s\n", Variable(j), FormatNumber(v))
		}
	}
	if s.Equation != nil {
		fmt.Fprintf(b, "  %s\n", Equation(*s.Equation))
	}
	if s.ParticularSolution != nil {
		fmt.Fprintf(b, "  x = %s", FormatVector(s.ParticularSolution))
		for k, v := range s.BasisVectors {
			t := "t"
			if k < len(s.FreeCols) {
				t = Variable(s.FreeCols[k])
			}
			fmt.Fprintf(b, " + %s·%s", t, FormatVector(v))
		}
		b.WriteByte('\n')
	}
	if s.ZeroRows != nil {
		for _, z := range s.ZeroRows {
			mark := ""
			if z.Contradiction {
				mark = "  (contradiction)"
			}
			fmt.Fprintf(b, "  row %d: 0 = %s%s\n", z.Row+1, FormatNumber(z.Constant), mark)
		}
	}
	if s.InverseMatrix != nil {
		b.WriteString(r.out.String("  A^-1:").Bold().String())
		b.WriteByte('\n')
		b.WriteString(r.Grid(step.Step{Matrix: s.InverseMatrix}))
	}
}

// Equation prints "x1 = c + k·x3 - m·x4" with zero coefficients dropped.
func Equation(eq step.Equation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s = %s", Variable(eq.PivotVar), FormatNumber(eq.Constant))
	for _, t := range eq.Terms {
		c := FormatNumber(t.Coeff)
		if c == "0" {
			continue
		}
		sign := "+"
		if strings.HasPrefix(c, "-") {
			sign, c = "-", c[1:]
		}
		fmt.Fprintf(&b, " %s %s·%s", sign, c, Variable(t.FreeVar))
	}

	return b.String()
}
