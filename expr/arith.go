package expr

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/chaisql/matcha/types"
)

// arithmeticRule mirrors comparisonRule for the arithmetic family; the
// output column type is the designated cast type. A rule's build func
// returns nil when fn lies outside the kinds it supports (modulo is not
// defined over floats).
type arithmeticRule struct {
	left, right types.Kind
	build       func(fn Func) Expression
}

var arithmeticRules = []arithmeticRule{
	{types.KindSmallInt, types.KindSmallInt, intArithRule[int16, int16, int16]},
	{types.KindInteger, types.KindInteger, intArithRule[int32, int32, int32]},
	{types.KindBigInt, types.KindBigInt, intArithRule[int64, int64, int64]},
	{types.KindReal, types.KindReal, numArithRule[float32, float32, float32]},
	{types.KindDouble, types.KindDouble, numArithRule[float64, float64, float64]},
	{types.KindDecimal, types.KindDecimal, decArithRule},

	{types.KindSmallInt, types.KindInteger, intArithRule[int16, int32, int32]},
	{types.KindInteger, types.KindSmallInt, intArithRule[int32, int16, int32]},
	{types.KindSmallInt, types.KindBigInt, intArithRule[int16, int64, int64]},
	{types.KindBigInt, types.KindSmallInt, intArithRule[int64, int16, int64]},
	{types.KindInteger, types.KindBigInt, intArithRule[int32, int64, int64]},
	{types.KindBigInt, types.KindInteger, intArithRule[int64, int32, int64]},

	{types.KindReal, types.KindDouble, numArithRule[float32, float64, float64]},
	{types.KindDouble, types.KindReal, numArithRule[float64, float32, float64]},

	{types.KindSmallInt, types.KindReal, numArithRule[int16, float32, float32]},
	{types.KindReal, types.KindSmallInt, numArithRule[float32, int16, float32]},
	{types.KindInteger, types.KindReal, numArithRule[int32, float32, float64]},
	{types.KindReal, types.KindInteger, numArithRule[float32, int32, float64]},
	{types.KindBigInt, types.KindReal, numArithRule[int64, float32, float64]},
	{types.KindReal, types.KindBigInt, numArithRule[float32, int64, float64]},

	{types.KindSmallInt, types.KindDouble, numArithRule[int16, float64, float64]},
	{types.KindDouble, types.KindSmallInt, numArithRule[float64, int16, float64]},
	{types.KindInteger, types.KindDouble, numArithRule[int32, float64, float64]},
	{types.KindDouble, types.KindInteger, numArithRule[float64, int32, float64]},
	{types.KindBigInt, types.KindDouble, numArithRule[int64, float64, float64]},
	{types.KindDouble, types.KindBigInt, numArithRule[float64, int64, float64]},

	{types.KindSmallInt, types.KindDecimal, intDecArithRule[int16]},
	{types.KindDecimal, types.KindSmallInt, decIntArithRule[int16]},
	{types.KindInteger, types.KindDecimal, intDecArithRule[int32]},
	{types.KindDecimal, types.KindInteger, decIntArithRule[int32]},
	{types.KindBigInt, types.KindDecimal, intDecArithRule[int64]},
	{types.KindDecimal, types.KindBigInt, decIntArithRule[int64]},
}

func buildArithmetic(fn Func, left, right types.DataType) (Expression, error) {
	for _, r := range arithmeticRules {
		if r.left == left.Kind() && r.right == right.Kind() {
			if e := r.build(fn); e != nil {
				return e, nil
			}
			break
		}
	}
	return nil, &UnsupportedError{Fn: fn, Operands: []types.DataType{left, right}}
}

// numArithRule covers +, -, * and / with both operands widened to C.
// Division by zero yields null.
func numArithRule[L, R, C number](fn Func) Expression {
	switch fn {
	case FuncAdd:
		return NewBinary(func(l L, r R) C { return C(l) + C(r) })
	case FuncSub:
		return NewBinary(func(l L, r R) C { return C(l) - C(r) })
	case FuncMul:
		return NewBinary(func(l L, r R) C { return C(l) * C(r) })
	case FuncDiv:
		return NewBinaryNullable(func(l L, r R) (C, bool) {
			if C(r) == 0 {
				return 0, false
			}
			return C(l) / C(r), true
		})
	}
	return nil
}

// intArithRule additionally covers %, defined for integer kinds only.
// Modulo by zero yields null.
func intArithRule[L, R, C integer](fn Func) Expression {
	if fn == FuncMod {
		return NewBinaryNullable(func(l L, r R) (C, bool) {
			if r == 0 {
				return 0, false
			}
			return C(l) % C(r), true
		})
	}
	return numArithRule[L, R, C](fn)
}

// decApply evaluates one arithmetic function over widened decimal
// operands. Division and modulo by zero yield null.
func decApply(fn Func, l, r decimal.Decimal) (decimal.Decimal, bool) {
	switch fn {
	case FuncAdd:
		return l.Add(r), true
	case FuncSub:
		return l.Sub(r), true
	case FuncMul:
		return l.Mul(r), true
	case FuncDiv:
		if r.IsZero() {
			return decimal.Decimal{}, false
		}
		return l.Div(r), true
	case FuncMod:
		if r.IsZero() {
			return decimal.Decimal{}, false
		}
		return l.Mod(r), true
	}
	panic(fmt.Sprintf("expr: %s is not arithmetic", fn))
}

func decArithRule(fn Func) Expression {
	return NewBinaryNullable(func(l, r decimal.Decimal) (decimal.Decimal, bool) {
		return decApply(fn, l, r)
	})
}

func intDecArithRule[L integer](fn Func) Expression {
	return NewBinaryNullable(func(l L, r decimal.Decimal) (decimal.Decimal, bool) {
		return decApply(fn, decFromInt(l), r)
	})
}

func decIntArithRule[R integer](fn Func) Expression {
	return NewBinaryNullable(func(l decimal.Decimal, r R) (decimal.Decimal, bool) {
		return decApply(fn, l, decFromInt(r))
	})
}

// buildNeg negates one numeric column, keeping its type.
func buildNeg(op types.DataType) (Expression, error) {
	switch op.Kind() {
	case types.KindSmallInt:
		return NewUnary(func(v int16) int16 { return -v }), nil
	case types.KindInteger:
		return NewUnary(func(v int32) int32 { return -v }), nil
	case types.KindBigInt:
		return NewUnary(func(v int64) int64 { return -v }), nil
	case types.KindReal:
		return NewUnary(func(v float32) float32 { return -v }), nil
	case types.KindDouble:
		return NewUnary(func(v float64) float64 { return -v }), nil
	case types.KindDecimal:
		return NewUnary(decimal.Decimal.Neg), nil
	}
	return nil, &UnsupportedError{Fn: FuncNeg, Operands: []types.DataType{op}}
}
