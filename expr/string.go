package expr

import (
	"strings"

	"github.com/chaisql/matcha/column"
	"github.com/chaisql/matcha/types"
)

// isText reports whether t is backed by the string representation, which
// both varchar and char are.
func isText(t types.DataType) bool {
	return t.PhysicalType() == column.TypeString
}

// buildContains matches substrings: contains(s, sub) is true when sub
// occurs in s.
func buildContains(left, right types.DataType) (Expression, error) {
	if !isText(left) || !isText(right) {
		return nil, &UnsupportedError{Fn: FuncContains, Operands: []types.DataType{left, right}}
	}
	return NewBinary(strings.Contains), nil
}

func buildCase(fn Func, op types.DataType) (Expression, error) {
	if !isText(op) {
		return nil, &UnsupportedError{Fn: fn, Operands: []types.DataType{op}}
	}
	if fn == FuncUpper {
		return NewUnary(strings.ToUpper), nil
	}
	return NewUnary(strings.ToLower), nil
}
