// SPDX-License-Identifier: MIT
package rowtrace_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/rowtrace"
	"github.com/katalvlaran/rowtrace/matrix"
	"github.com/katalvlaran/rowtrace/step"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want rowtrace.Operation
	}{
		{"ref", rowtrace.REF},
		{"RREF", rowtrace.RREF},
		{" full ", rowtrace.Full},
		{"solve", rowtrace.Full},
		{"inverse", rowtrace.Inverse},
	}
	for _, tc := range tests {
		got, err := rowtrace.ParseOperation(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := rowtrace.ParseOperation("lu")
	require.ErrorIs(t, err, rowtrace.ErrUnknownOperation)
	assert.Equal(t, "Operation(9)", rowtrace.Operation(9).String())
}

func TestOperationText(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(struct {
		Op rowtrace.Operation `json:"op"`
	}{rowtrace.Inverse})
	require.NoError(t, err)
	assert.JSONEq(t, `{"op":"inverse"}`, string(raw))

	var back struct {
		Op rowtrace.Operation `json:"op"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"op":"solve"}`), &back))
	assert.Equal(t, rowtrace.Full, back.Op)
}

func TestRunDispatch(t *testing.T) {
	t.Parallel()

	m, err := matrix.New([][]float64{{2, 0}, {0, 3}})
	require.NoError(t, err)

	terminal := map[rowtrace.Operation]step.Action{
		rowtrace.REF:     step.ActionFinal,
		rowtrace.RREF:    step.ActionFinal,
		rowtrace.Full:    step.ActionUniqueSolutionValues,
		rowtrace.Inverse: step.ActionComplete,
	}
	for _, op := range rowtrace.Operations() {
		tr, err := rowtrace.Run(op, m, []float64{4, 9})
		require.NoError(t, err, op.String())
		last, err := tr.Last()
		require.NoError(t, err)
		assert.Equal(t, terminal[op], last.Action, op.String())
	}

	_, err = rowtrace.Run(rowtrace.Operation(0), m, nil)
	require.ErrorIs(t, err, rowtrace.ErrUnknownOperation)
}
