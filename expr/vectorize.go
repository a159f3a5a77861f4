package expr

import (
	"fmt"

	"github.com/chaisql/matcha/column"
)

// BinaryExpression lifts a scalar function over two columns into a batch
// operator. A null in either operand yields a null result at that position
// without the function being invoked.
type BinaryExpression[L, R, O column.Element] struct {
	fn func(L, R) (O, bool)
}

// NewBinary wraps a total scalar function.
func NewBinary[L, R, O column.Element](fn func(L, R) O) *BinaryExpression[L, R, O] {
	return &BinaryExpression[L, R, O]{
		fn: func(l L, r R) (O, bool) { return fn(l, r), true },
	}
}

// NewBinaryNullable wraps a partial scalar function: returning false yields
// a null result at that position.
func NewBinaryNullable[L, R, O column.Element](fn func(L, R) (O, bool)) *BinaryExpression[L, R, O] {
	return &BinaryExpression[L, R, O]{fn: fn}
}

// Eval applies the function position-wise over exactly two columns of
// equal length. It panics if the lengths differ, since batches of uneven
// length indicate a planner bug rather than bad input data.
func (e *BinaryExpression[L, R, O]) Eval(cols ...column.Column) (column.Column, error) {
	if len(cols) != 2 {
		return nil, &ArityMismatchError{Want: 2, Got: len(cols)}
	}
	left, err := column.As[L](cols[0])
	if err != nil {
		return nil, err
	}
	right, err := column.As[R](cols[1])
	if err != nil {
		return nil, err
	}
	if left.Len() != right.Len() {
		panic(fmt.Sprintf("expr: input lengths differ: %d vs %d", left.Len(), right.Len()))
	}
	out := column.NewBuilderOf[O](left.Len())
	for i := 0; i < left.Len(); i++ {
		if left.IsNull(i) || right.IsNull(i) {
			out.AppendNull()
			continue
		}
		v, ok := e.fn(left.Value(i), right.Value(i))
		if !ok {
			out.AppendNull()
			continue
		}
		out.Append(v)
	}
	return out.Finish(), nil
}

// UnaryExpression lifts a scalar function over one column into a batch
// operator with the same null propagation as BinaryExpression.
type UnaryExpression[I, O column.Element] struct {
	fn func(I) O
}

// NewUnary wraps a total scalar function of one operand.
func NewUnary[I, O column.Element](fn func(I) O) *UnaryExpression[I, O] {
	return &UnaryExpression[I, O]{fn: fn}
}

// Eval applies the function position-wise over exactly one column.
func (e *UnaryExpression[I, O]) Eval(cols ...column.Column) (column.Column, error) {
	if len(cols) != 1 {
		return nil, &ArityMismatchError{Want: 1, Got: len(cols)}
	}
	in, err := column.As[I](cols[0])
	if err != nil {
		return nil, err
	}
	out := column.NewBuilderOf[O](in.Len())
	for i := 0; i < in.Len(); i++ {
		if in.IsNull(i) {
			out.AppendNull()
			continue
		}
		out.Append(e.fn(in.Value(i)))
	}
	return out.Finish(), nil
}
