// SPDX-License-Identifier: MIT
package rowtrace_test

import (
	"fmt"

	"github.com/katalvlaran/rowtrace"
	"github.com/katalvlaran/rowtrace/matrix"
	"github.com/katalvlaran/rowtrace/step"
)

// ExampleRun solves a diagonal system and reads the verdict off the last step.
func ExampleRun() {
	m, _ := matrix.New([][]float64{{2, 0}, {0, 3}})
	tr, _ := rowtrace.Run(rowtrace.Full, m, []float64{4, 9})

	last, _ := tr.Last()
	fmt.Println(last.Action, last.SolutionType, last.Solution)
	// Output: unique_solution_values unique [2 3]
}

// ExampleRun_inverse walks an inversion trace with a cursor.
func ExampleRun_inverse() {
	m, _ := matrix.New([][]float64{{2, 1}, {7, 4}})
	tr, _ := rowtrace.Run(rowtrace.Inverse, m, nil)

	c := step.NewCursor(tr)
	c.End()
	s, _ := c.Current()
	for _, row := range s.InverseMatrix {
		fmt.Printf("%.0f %.0f\n", row[0], row[1])
	}
	// Output:
	// 4 -1
	// -7 2
}

// ExampleParseOperation shows the accepted aliases.
func ExampleParseOperation() {
	for _, s := range []string{"ref", "RREF", "solve", "inverse"} {
		op, _ := rowtrace.ParseOperation(s)
		fmt.Println(op)
	}
	// Output:
	// ref
	// rref
	// full
	// inverse
}
