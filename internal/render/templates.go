// SPDX-License-Identifier: MIT

package render

import (
	"strings"

	"github.com/katalvlaran/rowtrace/step"
)

// indexOperands are zero-based in steps and printed one-based.
var indexOperands = map[string]bool{
	step.OpRow:         true,
	step.OpCol:         true,
	step.OpFrom:        true,
	step.OpTo:          true,
	step.OpPivotRow:    true,
	step.OpSearchStart: true,
}

// templates maps a description key to its text. {name} is replaced by the
// operand of that name; {mode}, {form} and {solution} are derived from the step.
var templates = map[string]string{
	string(step.ActionStart):                    "Starting {mode}.",
	string(step.ActionGaussStart):               "Phase 1: forward elimination, creating zeros below each pivot.",
	string(step.ActionNoMoreRows):               "No rows left for a pivot in column {col}; forward elimination stops.",
	string(step.ActionSearchPivot):              "Searching column {col} for a pivot, starting at row {searchStart}.",
	string(step.ActionPerfectPivotFound):        "Found a perfect pivot 1 at ({row}, {col}).",
	string(step.ActionNegativePivotFound):       "Found pivot -1 at ({row}, {col}); a sign flip makes it 1.",
	string(step.ActionPivotFound):               "Pivot {value} found at ({row}, {col}).",
	string(step.ActionNoPivotDetailed):          "Column {col} has no nonzero entry from row {searchStart} down, so it is a free column.",
	string(step.ActionSwapNeeded):               "The pivot sits in row {from} but belongs in row {to}.",
	string(step.ActionSwap):                     "R{from} <-> R{to}",
	string(step.ActionPivotCorrectPosition):     "The pivot at ({row}, {col}) is already in place.",
	string(step.ActionScaleExplanation):         "Scale row {row} by {factor} to turn the pivot {value} into 1.",
	string(step.ActionScale):                    "R{row} -> {factor}·R{row}",
	string(step.ActionPivotAlreadyOne):          "The pivot at ({row}, {col}) is already 1.",
	string(step.ActionEliminateExplanation):     "Entry {value} at ({row}, {col}) must become 0: add {factor} times row {pivotRow} to row {row}.",
	string(step.ActionEliminate):                "R{row} -> R{row} + ({factor})·R{pivotRow}",
	string(step.ActionNoEliminationNeeded):      "Column {col} is already zero below row {row}.",
	string(step.ActionPivotForwardComplete):     "Pivot at ({row}, {col}) done.",
	string(step.ActionGaussJordanStart):         "Phase 2: back substitution over {rank} pivot(s), creating zeros above each pivot.",
	string(step.ActionBackSubstituteStart):      "Clearing the column above the pivot at ({row}, {col}).",
	string(step.ActionEliminateAboveExpl):       "Entry {value} at ({row}, {col}) must become 0: add {factor} times row {pivotRow} to row {row}.",
	string(step.ActionEliminateAbove):           "R{row} -> R{row} + ({factor})·R{pivotRow}",
	string(step.ActionNoEliminationAboveNeeded): "Column {col} is already zero above row {row}.",
	string(step.ActionPivotPhase2Complete):      "Pivot at ({row}, {col}) cleared above.",
	string(step.ActionFinal):                    "Done: {form} with rank {rank} and {free} free variable(s).",

	string(step.ActionReadyToSolve):             "The system is in reduced row echelon form and ready to solve.",
	string(step.ActionRankExplanation):          "rank(A) = {rank}: the number of pivots in the coefficient part.",
	string(step.ActionRankAbCalculation):        "rank([A|b]) = {rankAb}: rank(A) plus one if some zero row has a nonzero constant.",
	string(step.ActionTheoremExplanation):       "Rouché-Capelli: compare rank(A) = {rank}, rank([A|b]) = {rankAb} and n = {vars}.",
	string(step.ActionSolutionTypeDetermined):   "{solution}",
	string(step.ActionUniqueSolutionValues):     "Each pivot row gives one variable directly.",
	string(step.ActionExtractingEquations):      "Expressing the pivot variables through {free} free variable(s).",
	string(step.ActionEquationExtracted):        "Row {row} gives x{col}.",
	string(step.ActionInfiniteSolutionsGeneral): "General solution: a particular solution plus any combination of {free} basis vector(s).",
	string(step.ActionNoSolution):               "rank(A) = {rank} < rank([A|b]) = {rankAb}: the system is inconsistent.",

	string(step.ActionError):            "Only square matrices have an inverse; this one is {rows}x{cols}.",
	string(step.ActionCreateAugmented):  "Building [A|I] by appending the {n}x{n} identity.",
	string(step.ActionAugmentedCreated): "[A|I] is ready: reducing the left half to I turns the right half into the inverse.",
	string(step.ActionEliminationStart): "Starting Gauss-Jordan elimination on [A|I].",
	string(step.ActionSingularDetected): "Column {col} has no pivot: the matrix is singular.",
	string(step.ActionSwapExplanation):  "Swap rows {from} and {to} to bring the pivot up.",
	string(step.ActionSwapped):          "R{from} <-> R{to}",
	string(step.ActionScaled):           "R{row} -> {factor}·R{row}",
	string(step.ActionEliminateRow):     "Row {row} has a nonzero in column {col}: add {factor} times row {pivotRow}.",
	string(step.ActionRowEliminated):    "R{row} -> R{row} + ({factor})·R{pivotRow}",
	string(step.ActionColumnComplete):   "Column {col} is now a unit column.",
	string(step.ActionNoInverse):        "rank {rank} < {n}: no inverse exists.",
	string(step.ActionExtractInverse):   "The right half of [I|A^-1] is the inverse.",
	string(step.ActionComplete):         "Inverse found.",
}

// phaseTemplates override templates for keys shared between phases.
var phaseTemplates = map[step.Phase]map[string]string{
	step.PhaseInverse: {
		string(step.ActionStart):                "Starting inversion of a {n}x{n} matrix.",
		string(step.ActionEliminateExplanation): "Clearing column {col} in every row except pivot row {pivotRow}.",
	},
}

var solutionTexts = map[step.SolutionType]string{
	step.SolutionUnique:   "rank(A) = rank([A|b]) = n: the system has a unique solution.",
	step.SolutionInfinite: "rank(A) = rank([A|b]) < n: the system has infinitely many solutions.",
	step.SolutionNone:     "rank(A) < rank([A|b]): the system has no solution.",
}

// Describe renders the description of s as plain text. Unknown keys fall
// back to the key itself.
func Describe(s step.Step) string {
	tmpl, ok := phaseTemplates[s.Phase][s.Description.Key]
	if !ok {
		tmpl, ok = templates[s.Description.Key]
	}
	if !ok {
		return s.Description.Key
	}

	pairs := make([]string, 0, 2*len(s.Description.Operands)+6)
	for _, op := range s.Description.Operands {
		v := op.Value
		if indexOperands[op.Name] {
			v++
		}
		pairs = append(pairs, "{"+op.Name+"}", FormatNumber(v))
	}
	jordan, _ := s.Description.Operand(step.OpJordan)
	mode, form := "Gaussian elimination to row echelon form", "REF"
	if jordan == 1 {
		mode, form = "Gauss-Jordan elimination to reduced row echelon form", "RREF"
	}
	pairs = append(pairs, "{mode}", mode, "{form}", form, "{solution}", solutionTexts[s.SolutionType])

	return strings.NewReplacer(pairs...).Replace(tmpl)
}
