// SPDX-License-Identifier: MIT

package rowtrace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/rowtrace/elimination"
	"github.com/katalvlaran/rowtrace/inverse"
	"github.com/katalvlaran/rowtrace/matrix"
	"github.com/katalvlaran/rowtrace/solver"
	"github.com/katalvlaran/rowtrace/step"
)

// Version is the release of the module.
const Version = "0.3.0"

// ErrUnknownOperation is returned for an operation selector outside the four
// supported values.
var ErrUnknownOperation = errors.New("rowtrace: unknown operation")

// Operation selects what Run computes.
type Operation int

// Operations.
const (
	REF Operation = iota + 1
	RREF
	Full
	Inverse
)

var operationNames = map[Operation]string{
	REF:     "ref",
	RREF:    "rref",
	Full:    "full",
	Inverse: "inverse",
}

// String returns the canonical lower-case name.
func (o Operation) String() string {
	if s, ok := operationNames[o]; ok {
		return s
	}

	return fmt.Sprintf("Operation(%d)", int(o))
}

// Operations lists every supported operation in a stable order.
func Operations() []Operation { return []Operation{REF, RREF, Full, Inverse} }

// ParseOperation accepts ref, rref, full (alias solve) and inverse,
// case-insensitively.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ref":
		return REF, nil
	case "rref":
		return RREF, nil
	case "full", "solve":
		return Full, nil
	case "inverse", "inv":
		return Inverse, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownOperation)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Operation) MarshalText() ([]byte, error) {
	if _, ok := operationNames[o]; !ok {
		return nil, fmt.Errorf("%d: %w", int(o), ErrUnknownOperation)
	}

	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseOperation.
func (o *Operation) UnmarshalText(b []byte) error {
	op, err := ParseOperation(string(b))
	if err != nil {
		return err
	}
	*o = op

	return nil
}

// Run produces the trace of op over m. constants is the optional right-hand
// side: REF and RREF carry it along as the augmented vector, Full solves
// against it (nil means the homogeneous system) and Inverse ignores it.
func Run(op Operation, m *matrix.Dense, constants []float64, opts ...step.Option) (*step.Trace, error) {
	switch op {
	case REF:
		return elimination.REF(m, constants, opts...)
	case RREF:
		return elimination.RREF(m, constants, opts...)
	case Full:
		return solver.SolveSystemSteps(m, constants, opts...)
	case Inverse:
		return inverse.InverseSteps(m, opts...)
	default:
		return nil, fmt.Errorf("%v: %w", op, ErrUnknownOperation)
	}
}
