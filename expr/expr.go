// Package expr builds and evaluates vectorized expressions over columns.
//
// An expression is selected once through Build, from a function identifier
// and the logical types of its operands, then evaluated repeatedly over
// column batches. Comparison and arithmetic functions widen mixed operand
// types through an explicit cast table; an unsupported pairing fails at
// build time, never per row. Evaluation propagates nulls: a null in any
// operand yields a null result at that position.
package expr

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/chaisql/matcha/column"
	"github.com/chaisql/matcha/types"
)

// Expression evaluates one function over input columns, producing one
// output column of the same length. Implementations declare a fixed arity
// and reject input sets of any other size.
type Expression interface {
	Eval(cols ...column.Column) (column.Column, error)
}

// Func identifies one scalar function of the closed expression set.
type Func uint8

const (
	FuncEq Func = iota
	FuncNeq
	FuncLt
	FuncLte
	FuncGt
	FuncGte
	FuncAdd
	FuncSub
	FuncMul
	FuncDiv
	FuncMod
	FuncContains
	FuncUpper
	FuncLower
	FuncNot
	FuncNeg
)

var funcNames = [...]string{
	FuncEq:       "=",
	FuncNeq:      "!=",
	FuncLt:       "<",
	FuncLte:      "<=",
	FuncGt:       ">",
	FuncGte:      ">=",
	FuncAdd:      "+",
	FuncSub:      "-",
	FuncMul:      "*",
	FuncDiv:      "/",
	FuncMod:      "%",
	FuncContains: "contains",
	FuncUpper:    "upper",
	FuncLower:    "lower",
	FuncNot:      "not",
	FuncNeg:      "neg",
}

func (f Func) String() string {
	if int(f) < len(funcNames) {
		return funcNames[f]
	}
	return fmt.Sprintf("Func(%d)", uint8(f))
}

func (f Func) isComparison() bool { return f <= FuncGte }

func (f Func) isArithmetic() bool { return f >= FuncAdd && f <= FuncMod }

// Build returns an expression evaluating fn over operands of the given
// logical types, or an error if fn does not support that combination. The
// returned expression can be reused across batches.
func Build(fn Func, operands ...types.DataType) (Expression, error) {
	switch {
	case fn.isComparison():
		if err := wantOperands(2, operands); err != nil {
			return nil, err
		}
		return buildComparison(fn, operands[0], operands[1])
	case fn.isArithmetic():
		if err := wantOperands(2, operands); err != nil {
			return nil, err
		}
		return buildArithmetic(fn, operands[0], operands[1])
	case fn == FuncContains:
		if err := wantOperands(2, operands); err != nil {
			return nil, err
		}
		return buildContains(operands[0], operands[1])
	case fn == FuncUpper, fn == FuncLower:
		if err := wantOperands(1, operands); err != nil {
			return nil, err
		}
		return buildCase(fn, operands[0])
	case fn == FuncNot:
		if err := wantOperands(1, operands); err != nil {
			return nil, err
		}
		return buildNot(operands[0])
	case fn == FuncNeg:
		if err := wantOperands(1, operands); err != nil {
			return nil, err
		}
		return buildNeg(operands[0])
	}
	return nil, errors.Errorf("unknown function %s", fn)
}

func wantOperands(want int, ops []types.DataType) error {
	if len(ops) != want {
		return &ArityMismatchError{Want: want, Got: len(ops)}
	}
	return nil
}

// ArityMismatchError reports a call with the wrong number of operand types
// or input columns.
type ArityMismatchError struct {
	Want, Got int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("arity mismatch: expected %d columns, got %d", e.Want, e.Got)
}

// UnsupportedError reports a function and operand-type combination with no
// supported cast rule. It is raised once at build time.
type UnsupportedError struct {
	Fn       Func
	Operands []types.DataType
}

func (e *UnsupportedError) Error() string {
	names := make([]string, len(e.Operands))
	for i, t := range e.Operands {
		names[i] = t.String()
	}
	return fmt.Sprintf("unsupported operand types for %s: %s", e.Fn, strings.Join(names, ", "))
}
