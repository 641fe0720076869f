// SPDX-License-Identifier: MIT

package step

// Clone returns a deep copy of s. nil slices stay nil and empty slices stay
// empty, so "no solution" and "empty solution" remain distinguishable.
func (s Step) Clone() Step {
	out := s
	out.Description = Description{Key: s.Description.Key, Operands: cloneSlice(s.Description.Operands)}

	out.Matrix = CloneGrid(s.Matrix)
	out.OriginalMatrix = CloneGrid(s.OriginalMatrix)
	out.InverseMatrix = CloneGrid(s.InverseMatrix)
	out.BasisVectors = CloneGrid(s.BasisVectors)

	out.PivotCols = cloneSlice(s.PivotCols)
	out.Pivots = cloneSlice(s.Pivots)
	out.AugmentedVector = cloneSlice(s.AugmentedVector)
	out.SearchDetails = cloneSlice(s.SearchDetails)
	out.ZeroRows = cloneSlice(s.ZeroRows)
	out.FreeCols = cloneSlice(s.FreeCols)
	out.Solution = cloneSlice(s.Solution)
	out.ParticularSolution = cloneSlice(s.ParticularSolution)

	out.PivotPosition = clonePtr(s.PivotPosition)
	out.TargetPosition = clonePtr(s.TargetPosition)
	out.CurrentPivot = clonePtr(s.CurrentPivot)
	out.CurrentColumn = clonePtr(s.CurrentColumn)
	out.SearchStart = clonePtr(s.SearchStart)
	out.Rank = clonePtr(s.Rank)
	out.FreeVariables = clonePtr(s.FreeVariables)
	out.Ranks = clonePtr(s.Ranks)
	out.Variables = clonePtr(s.Variables)
	out.HasInverse = clonePtr(s.HasInverse)
	out.IsValid = clonePtr(s.IsValid)

	if s.Equation != nil {
		eq := cloneEquation(*s.Equation)
		out.Equation = &eq
	}
	if s.Equations != nil {
		out.Equations = make([]Equation, len(s.Equations))
		for i, eq := range s.Equations {
			out.Equations[i] = cloneEquation(eq)
		}
	}

	return out
}

// CloneGrid deep-copies a row grid; nil stays nil.
func CloneGrid(g [][]float64) [][]float64 {
	if g == nil {
		return nil
	}
	out := make([][]float64, len(g))
	for i, row := range g {
		out[i] = cloneSlice(row)
	}

	return out
}

func cloneEquation(eq Equation) Equation {
	eq.Terms = cloneSlice(eq.Terms)

	return eq
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)

	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
