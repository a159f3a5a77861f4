package expr

import (
	"cmp"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/chaisql/matcha/types"
)

// number and integer restrict kernel type parameters to element types the
// cast rules produce.
type number interface {
	int16 | int32 | int64 | float32 | float64
}

type integer interface {
	int16 | int32 | int64
}

// decFromInt widens any integer operand to a decimal.
func decFromInt[T constraints.Integer](v T) decimal.Decimal {
	return decimal.NewFromInt(int64(v))
}

// comparisonRule designates the cast type for one ordered pair of operand
// kinds and builds the matching expression: both operands are converted to
// the cast type before the test.
type comparisonRule struct {
	left, right types.Kind
	build       func(fn Func) Expression
}

// comparisonRules is the static cast table for the comparison family.
// Pairings absent from the table are rejected at build time. Note the
// integer×real rows: only smallint fits float32 losslessly, so the wider
// integers compare through float64.
var comparisonRules = []comparisonRule{
	{types.KindSmallInt, types.KindSmallInt, numCmpRule[int16, int16, int16]},
	{types.KindInteger, types.KindInteger, numCmpRule[int32, int32, int32]},
	{types.KindBigInt, types.KindBigInt, numCmpRule[int64, int64, int64]},
	{types.KindReal, types.KindReal, numCmpRule[float32, float32, float32]},
	{types.KindDouble, types.KindDouble, numCmpRule[float64, float64, float64]},
	{types.KindBoolean, types.KindBoolean, boolCmpRule},
	{types.KindVarchar, types.KindVarchar, strCmpRule},
	{types.KindChar, types.KindChar, strCmpRule},
	{types.KindVarchar, types.KindChar, strCmpRule},
	{types.KindChar, types.KindVarchar, strCmpRule},
	{types.KindDecimal, types.KindDecimal, decDecCmpRule},

	{types.KindSmallInt, types.KindInteger, numCmpRule[int16, int32, int32]},
	{types.KindInteger, types.KindSmallInt, numCmpRule[int32, int16, int32]},
	{types.KindSmallInt, types.KindBigInt, numCmpRule[int16, int64, int64]},
	{types.KindBigInt, types.KindSmallInt, numCmpRule[int64, int16, int64]},
	{types.KindInteger, types.KindBigInt, numCmpRule[int32, int64, int64]},
	{types.KindBigInt, types.KindInteger, numCmpRule[int64, int32, int64]},

	{types.KindReal, types.KindDouble, numCmpRule[float32, float64, float64]},
	{types.KindDouble, types.KindReal, numCmpRule[float64, float32, float64]},

	{types.KindSmallInt, types.KindReal, numCmpRule[int16, float32, float32]},
	{types.KindReal, types.KindSmallInt, numCmpRule[float32, int16, float32]},
	{types.KindInteger, types.KindReal, numCmpRule[int32, float32, float64]},
	{types.KindReal, types.KindInteger, numCmpRule[float32, int32, float64]},
	{types.KindBigInt, types.KindReal, numCmpRule[int64, float32, float64]},
	{types.KindReal, types.KindBigInt, numCmpRule[float32, int64, float64]},

	{types.KindSmallInt, types.KindDouble, numCmpRule[int16, float64, float64]},
	{types.KindDouble, types.KindSmallInt, numCmpRule[float64, int16, float64]},
	{types.KindInteger, types.KindDouble, numCmpRule[int32, float64, float64]},
	{types.KindDouble, types.KindInteger, numCmpRule[float64, int32, float64]},
	{types.KindBigInt, types.KindDouble, numCmpRule[int64, float64, float64]},
	{types.KindDouble, types.KindBigInt, numCmpRule[float64, int64, float64]},

	{types.KindSmallInt, types.KindDecimal, intDecCmpRule[int16]},
	{types.KindDecimal, types.KindSmallInt, decIntCmpRule[int16]},
	{types.KindInteger, types.KindDecimal, intDecCmpRule[int32]},
	{types.KindDecimal, types.KindInteger, decIntCmpRule[int32]},
	{types.KindBigInt, types.KindDecimal, intDecCmpRule[int64]},
	{types.KindDecimal, types.KindBigInt, decIntCmpRule[int64]},
}

func buildComparison(fn Func, left, right types.DataType) (Expression, error) {
	for _, r := range comparisonRules {
		if r.left == left.Kind() && r.right == right.Kind() {
			return r.build(fn), nil
		}
	}
	return nil, &UnsupportedError{Fn: fn, Operands: []types.DataType{left, right}}
}

// cmpSatisfied translates a three-way comparison into the outcome of fn.
func cmpSatisfied(fn Func, c int) bool {
	switch fn {
	case FuncEq:
		return c == 0
	case FuncNeq:
		return c != 0
	case FuncLt:
		return c < 0
	case FuncLte:
		return c <= 0
	case FuncGt:
		return c > 0
	case FuncGte:
		return c >= 0
	}
	panic(fmt.Sprintf("expr: %s is not a comparison", fn))
}

func numCmpRule[L, R, C number](fn Func) Expression {
	return NewBinary(func(l L, r R) bool {
		return cmpSatisfied(fn, cmp.Compare(C(l), C(r)))
	})
}

func strCmpRule(fn Func) Expression {
	return NewBinary(func(l, r string) bool {
		return cmpSatisfied(fn, cmp.Compare(l, r))
	})
}

// boolCmpRule orders false before true.
func boolCmpRule(fn Func) Expression {
	return NewBinary(func(l, r bool) bool {
		return cmpSatisfied(fn, cmp.Compare(b2i(l), b2i(r)))
	})
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func decDecCmpRule(fn Func) Expression {
	return NewBinary(func(l, r decimal.Decimal) bool {
		return cmpSatisfied(fn, l.Cmp(r))
	})
}

func intDecCmpRule[L integer](fn Func) Expression {
	return NewBinary(func(l L, r decimal.Decimal) bool {
		return cmpSatisfied(fn, decFromInt(l).Cmp(r))
	})
}

func decIntCmpRule[R integer](fn Func) Expression {
	return NewBinary(func(l decimal.Decimal, r R) bool {
		return cmpSatisfied(fn, l.Cmp(decFromInt(r)))
	})
}
