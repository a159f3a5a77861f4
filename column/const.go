package column

import "fmt"

// ConstColumn broadcasts one value (or null) across n positions without
// materializing them. It satisfies the read side of the Column contract and
// takes part in expression evaluation like any other column; it is the one
// column kind not produced by a builder.
type ConstColumn[T Element] struct {
	val  T
	null bool
	n    int
}

// Const returns a column repeating v at each of n positions.
func Const[T Element](v T, n int) *ConstColumn[T] {
	return &ConstColumn[T]{val: v, n: n}
}

// ConstNull returns a column of element type T that is null at each of n
// positions.
func ConstNull[T Element](n int) *ConstColumn[T] {
	return &ConstColumn[T]{null: true, n: n}
}

func (c *ConstColumn[T]) PhysicalType() PhysicalType { return TypeOf[T]() }

func (c *ConstColumn[T]) Len() int { return c.n }

func (c *ConstColumn[T]) IsEmpty() bool { return c.n == 0 }

func (c *ConstColumn[T]) IsNull(i int) bool {
	c.checkBounds(i)
	return c.null
}

// Value returns the broadcast value; the placeholder zero value when the
// column is null.
func (c *ConstColumn[T]) Value(i int) T {
	c.checkBounds(i)
	return c.val
}

func (c *ConstColumn[T]) Get(i int) Value {
	if c.IsNull(i) {
		return Value{}
	}
	return valueOf(c.val)
}

func (c *ConstColumn[T]) NewBuilder(capacity int) Builder {
	return NewBuilderOf[T](capacity)
}

func (c *ConstColumn[T]) Values() *Iterator { return newIterator(c) }

func (c *ConstColumn[T]) String() string { return formatColumn(c) }

func (c *ConstColumn[T]) checkBounds(i int) {
	if i < 0 || i >= c.n {
		panic(fmt.Sprintf("column: index %d out of range [0, %d)", i, c.n))
	}
}

var _ Typed[int64] = (*ConstColumn[int64])(nil)
