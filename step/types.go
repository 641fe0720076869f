// SPDX-License-Identifier: MIT

// Package step defines the trace record shared by the elimination, solver and
// inversion engines, the read interface over a finished trace (Trace, Cursor)
// and the Recorder the engines emit into.
package step

import "errors"

// ErrStepOutOfRange is returned when a trace index or cursor seek falls
// outside [0, Len()).
var ErrStepOutOfRange = errors.New("step: index out of range")

// Phase groups steps by the stage of the computation that produced them.
type Phase string

// Phases.
const (
	PhaseRREF     Phase = "rref"
	PhaseAnalysis Phase = "analysis"
	PhaseSolution Phase = "solution"
	PhaseInverse  Phase = "inverse"
)

// Action tags one decision point inside a phase.
type Action string

// Elimination actions (phase rref), in emission order.
const (
	ActionStart                    Action = "start"
	ActionGaussStart               Action = "gauss_start"
	ActionNoMoreRows               Action = "no_more_rows"
	ActionSearchPivot              Action = "search_pivot"
	ActionPerfectPivotFound        Action = "perfect_pivot_found"
	ActionNegativePivotFound       Action = "negative_pivot_found"
	ActionPivotFound               Action = "pivot_found"
	ActionNoPivotDetailed          Action = "no_pivot_detailed"
	ActionSwapNeeded               Action = "swap_needed"
	ActionSwap                     Action = "swap"
	ActionPivotCorrectPosition     Action = "pivot_correct_position"
	ActionScaleExplanation         Action = "scale_explanation"
	ActionScale                    Action = "scale"
	ActionPivotAlreadyOne          Action = "pivot_already_one"
	ActionEliminateExplanation     Action = "eliminate_explanation"
	ActionEliminate                Action = "eliminate"
	ActionNoEliminationNeeded      Action = "no_elimination_needed"
	ActionPivotForwardComplete     Action = "pivot_forward_complete"
	ActionGaussJordanStart         Action = "gauss_jordan_start"
	ActionBackSubstituteStart      Action = "back_substitute_start"
	ActionEliminateAboveExpl       Action = "eliminate_above_explanation"
	ActionEliminateAbove           Action = "eliminate_above"
	ActionNoEliminationAboveNeeded Action = "no_elimination_above_needed"
	ActionPivotPhase2Complete      Action = "pivot_phase2_complete"
	ActionFinal                    Action = "final"
)

// Solver actions (phases analysis and solution).
const (
	ActionReadyToSolve             Action = "ready_to_solve"
	ActionRankExplanation          Action = "rank_explanation"
	ActionRankAbCalculation        Action = "rank_ab_calculation"
	ActionTheoremExplanation       Action = "theorem_explanation"
	ActionSolutionTypeDetermined   Action = "solution_type_determined"
	ActionUniqueSolutionValues     Action = "unique_solution_values"
	ActionExtractingEquations      Action = "extracting_equations"
	ActionEquationExtracted        Action = "equation_extracted"
	ActionInfiniteSolutionsGeneral Action = "infinite_solutions_general"
	ActionNoSolution               Action = "no_solution"
)

// Inversion actions (phase inverse). search_pivot, pivot_found,
// scale_explanation and eliminate_explanation are shared with elimination.
const (
	ActionError            Action = "error"
	ActionCreateAugmented  Action = "create_augmented"
	ActionAugmentedCreated Action = "augmented_created"
	ActionEliminationStart Action = "elimination_start"
	ActionSingularDetected Action = "singular_detected"
	ActionSwapExplanation  Action = "swap_explanation"
	ActionSwapped          Action = "swapped"
	ActionScaled           Action = "scaled"
	ActionEliminateRow     Action = "eliminate_row"
	ActionRowEliminated    Action = "row_eliminated"
	ActionColumnComplete   Action = "column_complete"
	ActionNoInverse        Action = "no_inverse"
	ActionExtractInverse   Action = "extract_inverse"
	ActionComplete         Action = "complete"
)

// SolutionType is the classification of a linear system.
type SolutionType string

// Classifications.
const (
	SolutionUnique   SolutionType = "unique"
	SolutionInfinite SolutionType = "infinite"
	SolutionNone     SolutionType = "none"
)

// Position is a zero-based (row, col) coordinate.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Operand is one named numeric value referenced by a Description.
type Operand struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Description is structured explanation data: a template key plus the
// numbers the template needs. Rendering to text happens outside the engines.
type Description struct {
	Key      string    `json:"key"`
	Operands []Operand `json:"operands,omitempty"`
}

// Operand returns the value of the operand called name.
func (d Description) Operand(name string) (float64, bool) {
	for _, op := range d.Operands {
		if op.Name == name {
			return op.Value, true
		}
	}

	return 0, false
}

// Describe builds a Description from a template key and its operands.
func Describe(key string, ops ...Operand) Description {
	return Description{Key: key, Operands: ops}
}

// Operand names used by the engines. Index operands are zero-based; the
// presentation layer decides how to number them.
const (
	OpRow         = "row"         // index
	OpCol         = "col"         // index
	OpFrom        = "from"        // index
	OpTo          = "to"          // index
	OpPivotRow    = "pivotRow"    // index
	OpSearchStart = "searchStart" // index
	OpValue       = "value"
	OpFactor      = "factor"
	OpJordan      = "jordan" // 1 for RREF, 0 for REF
	OpRank        = "rank"
	OpRankAb      = "rankAb"
	OpFree        = "free"
	OpVars        = "vars"
	OpN           = "n"
	OpRows        = "rows"
	OpCols        = "cols"
)

// Op is shorthand for an Operand.
func Op(name string, v float64) Operand { return Operand{Name: name, Value: v} }

// SearchEntry is one row inspected during a pivot search.
type SearchEntry struct {
	Row   int     `json:"row"`
	Value float64 `json:"value"`
}

// Ranks reports rank(A) and rank([A|b]). ContradictionRow is -1 when the
// system is consistent.
type Ranks struct {
	RankA            int  `json:"rankA"`
	RankAb           int  `json:"rankAb"`
	HasContradiction bool `json:"hasContradiction"`
	ContradictionRow int  `json:"contradictionRow"`
}

// ZeroRow is the analysis of one row at index >= rank(A): the coefficient part
// is zero, so the row reads 0 = Constant.
type ZeroRow struct {
	Row           int     `json:"row"`
	Constant      float64 `json:"constant"`
	Contradiction bool    `json:"contradiction"`
}

// Term is Coeff·x[FreeVar].
type Term struct {
	FreeVar int     `json:"freeVar"`
	Coeff   float64 `json:"coeff"`
}

// Equation expresses a pivot variable through the free variables:
// x[PivotVar] = Constant + Σ Terms.
type Equation struct {
	PivotVar int     `json:"pivotVar"`
	Row      int     `json:"row"`
	Constant float64 `json:"constant"`
	Terms    []Term  `json:"terms,omitempty"`
}

// Step is one snapshot of a computation. Every slice it holds is owned by
// the step: nothing the engines do afterwards can change it.
type Step struct {
	Phase       Phase       `json:"phase"`
	Action      Action      `json:"action"`
	Description Description `json:"description"`

	Matrix         [][]float64 `json:"matrix,omitempty"`
	OriginalMatrix [][]float64 `json:"originalMatrix,omitempty"`
	InverseMatrix  [][]float64 `json:"inverseMatrix,omitempty"`
	// Augmented marks Matrix as [A|I]; the identity block starts at column Rows.
	Augmented bool `json:"augmented,omitempty"`

	PivotCols       []int      `json:"pivotCols,omitempty"`
	Pivots          []Position `json:"pivots,omitempty"`
	AugmentedVector []float64  `json:"augmentedVector,omitempty"`

	PivotPosition  *Position     `json:"pivotPosition,omitempty"`
	TargetPosition *Position     `json:"targetPosition,omitempty"`
	CurrentPivot   *Position     `json:"currentPivot,omitempty"`
	CurrentColumn  *int          `json:"currentColumn,omitempty"`
	SearchStart    *int          `json:"searchStart,omitempty"`
	SearchDetails  []SearchEntry `json:"searchDetails,omitempty"`

	Rank          *int         `json:"rank,omitempty"`
	FreeVariables *int         `json:"freeVariables,omitempty"`
	Ranks         *Ranks       `json:"ranks,omitempty"`
	ZeroRows      []ZeroRow    `json:"zeroRows,omitempty"`
	SolutionType  SolutionType `json:"solutionType,omitempty"`
	FreeCols      []int        `json:"freeCols,omitempty"`
	Equation      *Equation    `json:"equation,omitempty"`
	Equations     []Equation   `json:"equations,omitempty"`
	Variables     *int         `json:"variables,omitempty"`

	Solution           []float64   `json:"solution,omitempty"`
	ParticularSolution []float64   `json:"particularSolution,omitempty"`
	BasisVectors       [][]float64 `json:"basisVectors,omitempty"`

	HasInverse *bool `json:"hasInverse,omitempty"`
	IsValid    *bool `json:"isValid,omitempty"`
}

// Int returns a pointer to v, for the optional integer fields of Step.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for the optional boolean fields of Step.
func Bool(v bool) *bool { return &v }

// At returns a pointer to a Position, for the optional position fields of Step.
func At(row, col int) *Position { return &Position{Row: row, Col: col} }
