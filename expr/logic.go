package expr

import "github.com/chaisql/matcha/types"

// buildNot inverts a boolean column. Nulls stay null, per the usual
// three-valued logic.
func buildNot(op types.DataType) (Expression, error) {
	if op.Kind() != types.KindBoolean {
		return nil, &UnsupportedError{Fn: FuncNot, Operands: []types.DataType{op}}
	}
	return NewUnary(func(v bool) bool { return !v }), nil
}
