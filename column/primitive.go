package column

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// primitive enumerates the element types stored inline as one []T payload
// slot per position.
type primitive interface {
	int16 | int32 | int64 | float32 | float64 | bool | decimal.Decimal
}

// PrimitiveColumn is the fixed-width column representation: a []T payload
// plus the validity bitmap. Absent positions hold the zero value of T and
// are never exposed as data.
type PrimitiveColumn[T primitive] struct {
	data     []T
	validity bitmap
}

type (
	Int16Column   = PrimitiveColumn[int16]
	Int32Column   = PrimitiveColumn[int32]
	Int64Column   = PrimitiveColumn[int64]
	Float32Column = PrimitiveColumn[float32]
	Float64Column = PrimitiveColumn[float64]
	BoolColumn    = PrimitiveColumn[bool]
	DecimalColumn = PrimitiveColumn[decimal.Decimal]
)

func (c *PrimitiveColumn[T]) PhysicalType() PhysicalType { return TypeOf[T]() }

func (c *PrimitiveColumn[T]) Len() int { return len(c.data) }

func (c *PrimitiveColumn[T]) IsEmpty() bool { return len(c.data) == 0 }

func (c *PrimitiveColumn[T]) IsNull(i int) bool { return !c.validity.get(i) }

// Value returns the element at position i without tagging overhead.
func (c *PrimitiveColumn[T]) Value(i int) T { return c.data[i] }

func (c *PrimitiveColumn[T]) Get(i int) Value {
	if c.IsNull(i) {
		return Value{}
	}
	switch v := any(&c.data[i]).(type) {
	case *int16:
		return NewInt16Value(*v)
	case *int32:
		return NewInt32Value(*v)
	case *int64:
		return NewInt64Value(*v)
	case *float32:
		return NewFloat32Value(*v)
	case *float64:
		return NewFloat64Value(*v)
	case *bool:
		return NewBoolValue(*v)
	case *decimal.Decimal:
		// The pointer targets the immutable payload, so the Value can
		// carry it without copying.
		return decimalRefValue(v)
	}
	panic(fmt.Sprintf("column: unhandled element type %T", c.data))
}

func (c *PrimitiveColumn[T]) NewBuilder(capacity int) Builder {
	return NewPrimitiveBuilder[T](capacity)
}

func (c *PrimitiveColumn[T]) Values() *Iterator { return newIterator(c) }

func (c *PrimitiveColumn[T]) String() string { return formatColumn(c) }

// builderState carries the single-use discipline shared by all builders.
type builderState struct {
	finished bool
}

func (s *builderState) assertMutable() {
	if s.finished {
		panic("column: builder used after Finish")
	}
}

func (s *builderState) finish() {
	s.assertMutable()
	s.finished = true
}

// PrimitiveBuilder accumulates fixed-width values.
type PrimitiveBuilder[T primitive] struct {
	builderState
	data     []T
	validity bitmap
}

// NewPrimitiveBuilder returns a builder for element type T with storage
// reserved for capacity elements.
func NewPrimitiveBuilder[T primitive](capacity int) *PrimitiveBuilder[T] {
	return &PrimitiveBuilder[T]{
		data:     make([]T, 0, capacity),
		validity: newBitmap(capacity),
	}
}

func NewInt16Builder(capacity int) *PrimitiveBuilder[int16] {
	return NewPrimitiveBuilder[int16](capacity)
}

func NewInt32Builder(capacity int) *PrimitiveBuilder[int32] {
	return NewPrimitiveBuilder[int32](capacity)
}

func NewInt64Builder(capacity int) *PrimitiveBuilder[int64] {
	return NewPrimitiveBuilder[int64](capacity)
}

func NewFloat32Builder(capacity int) *PrimitiveBuilder[float32] {
	return NewPrimitiveBuilder[float32](capacity)
}

func NewFloat64Builder(capacity int) *PrimitiveBuilder[float64] {
	return NewPrimitiveBuilder[float64](capacity)
}

func NewBoolBuilder(capacity int) *PrimitiveBuilder[bool] {
	return NewPrimitiveBuilder[bool](capacity)
}

func NewDecimalBuilder(capacity int) *PrimitiveBuilder[decimal.Decimal] {
	return NewPrimitiveBuilder[decimal.Decimal](capacity)
}

func (b *PrimitiveBuilder[T]) PhysicalType() PhysicalType { return TypeOf[T]() }

func (b *PrimitiveBuilder[T]) Len() int { return len(b.data) }

// Append appends a present value.
func (b *PrimitiveBuilder[T]) Append(v T) {
	b.assertMutable()
	b.data = append(b.data, v)
	b.validity.append(true)
}

func (b *PrimitiveBuilder[T]) AppendNull() {
	b.assertMutable()
	var zero T
	b.data = append(b.data, zero)
	b.validity.append(false)
}

func (b *PrimitiveBuilder[T]) AppendValue(v Value) {
	if v.IsNull() {
		b.AppendNull()
		return
	}
	b.Append(valueElem[T](v))
}

func (b *PrimitiveBuilder[T]) Finish() Column {
	b.finish()
	return &PrimitiveColumn[T]{data: b.data, validity: b.validity}
}

var (
	_ Typed[int32]        = (*PrimitiveColumn[int32])(nil)
	_ TypedBuilder[int32] = (*PrimitiveBuilder[int32])(nil)
)
