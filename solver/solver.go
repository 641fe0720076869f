// SPDX-License-Identifier: MIT

// Package solver traces the solution of a linear system A·x = b.
//
// SolveSystemSteps replays the full RREF trace of [A|b], then recomputes the
// RREF silently through the same engine and emits the analysis: rank(A),
// rank([A|b]), the Rouché–Capelli case and either the unique solution, the
// parametric general solution (particular solution + null-space basis) or the
// inconsistency verdict.
//
// Unsolvable and underdetermined systems are outcomes, not errors: they end
// the trace with no_solution or infinite_solutions_general.
package solver

import (
	"fmt"

	"github.com/katalvlaran/rowtrace/elimination"
	"github.com/katalvlaran/rowtrace/matrix"
	"github.com/katalvlaran/rowtrace/step"
)

// SolveSystemSteps traces the solution of m·x = b. A nil b solves the
// homogeneous system.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNonFinite.
//   - context errors and OnStep hook errors.
func SolveSystemSteps(m *matrix.Dense, b []float64, opts ...step.Option) (*step.Trace, error) {
	b, err := constantsFor(m, b)
	if err != nil {
		return nil, err
	}

	rec := step.NewRecorder(opts...)
	if _, err = elimination.Record(rec, m, b, true); err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	res, err := elimination.Reduce(m, b)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}

	a := analyze(res, m.Cols())
	if err = emitAnalysis(rec, a); err != nil {
		return nil, err
	}

	rec.Options().Logger.Debug("system solved",
		"type", string(a.Type),
		"rankA", a.RankA,
		"rankAb", a.RankAb,
		"steps", rec.Len(),
	)

	return rec.Trace(), nil
}

// emitAnalysis records the analysis and solution steps for a.
func emitAnalysis(rec *step.Recorder, a *Analysis) error {
	reduced := a.Reduced.Data()
	base := func(phase step.Phase, action step.Action, ops ...step.Operand) step.Step {
		return step.Step{
			Phase:           phase,
			Action:          action,
			Description:     step.Describe(string(action), ops...),
			Matrix:          reduced,
			PivotCols:       a.PivotCols,
			AugmentedVector: a.Constants,
		}
	}
	ranks := &step.Ranks{
		RankA:            a.RankA,
		RankAb:           a.RankAb,
		HasContradiction: a.ContradictionRow >= 0,
		ContradictionRow: a.ContradictionRow,
	}
	rankOps := []step.Operand{
		step.Op(step.OpRank, float64(a.RankA)),
		step.Op(step.OpRankAb, float64(a.RankAb)),
		step.Op(step.OpVars, float64(a.Variables)),
	}

	if err := rec.Emit(base(step.PhaseAnalysis, step.ActionReadyToSolve)); err != nil {
		return err
	}
	if err := rec.Emit(base(step.PhaseAnalysis, step.ActionRankExplanation, rankOps[0])); err != nil {
		return err
	}

	s := base(step.PhaseAnalysis, step.ActionRankAbCalculation, rankOps...)
	s.Ranks = ranks
	s.ZeroRows = a.ZeroRows
	if err := rec.Emit(s); err != nil {
		return err
	}
	if err := rec.Emit(base(step.PhaseAnalysis, step.ActionTheoremExplanation, rankOps...)); err != nil {
		return err
	}

	switch a.Type {
	case Unique:
		s = base(step.PhaseAnalysis, step.ActionSolutionTypeDetermined, rankOps...)
		s.SolutionType = a.Type
		if err := rec.Emit(s); err != nil {
			return err
		}
		s = base(step.PhaseSolution, step.ActionUniqueSolutionValues, rankOps...)
		s.SolutionType = a.Type
		s.Solution = a.Solution
		return rec.Emit(s)

	case Infinite:
		freeOps := append(append([]step.Operand{}, rankOps...), step.Op(step.OpFree, float64(len(a.FreeCols))))
		s = base(step.PhaseAnalysis, step.ActionSolutionTypeDetermined, freeOps...)
		s.SolutionType = a.Type
		s.FreeCols = a.FreeCols
		if err := rec.Emit(s); err != nil {
			return err
		}
		s = base(step.PhaseSolution, step.ActionExtractingEquations, freeOps...)
		s.FreeCols = a.FreeCols
		if err := rec.Emit(s); err != nil {
			return err
		}
		for i := range a.Equations {
			eq := a.Equations[i]
			s = base(step.PhaseSolution, step.ActionEquationExtracted,
				step.Op(step.OpRow, float64(eq.Row)),
				step.Op(step.OpCol, float64(eq.PivotVar)))
			s.Equation = &eq
			if err := rec.Emit(s); err != nil {
				return err
			}
		}
		s = base(step.PhaseSolution, step.ActionInfiniteSolutionsGeneral, freeOps...)
		s.SolutionType = a.Type
		s.Rank = step.Int(a.RankA)
		s.FreeCols = a.FreeCols
		s.Variables = step.Int(a.Variables)
		s.ParticularSolution = a.ParticularSolution
		s.BasisVectors = a.BasisVectors
		s.Equations = a.Equations
		return rec.Emit(s)

	default:
		s = base(step.PhaseAnalysis, step.ActionNoSolution, rankOps...)
		s.SolutionType = a.Type
		s.Ranks = ranks
		return rec.Emit(s)
	}
}

// Verify reports whether x solves m·x = b within tol (max-norm of the residual).
func Verify(m *matrix.Dense, x, b []float64, tol float64) (bool, error) {
	y, err := matrix.MatVec(m, x)
	if err != nil {
		return false, fmt.Errorf("solver: %w", err)
	}
	if err = matrix.ValidateVecLen(b, len(y)); err != nil {
		return false, fmt.Errorf("solver: %w", err)
	}
	for i := range y {
		d := y[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > tol {
			return false, nil
		}
	}

	return true, nil
}
