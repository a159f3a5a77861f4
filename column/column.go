// Package column implements typed, immutable, null-aware columns and the
// scalar values they are built from.
//
// A Column stores many values of one physical type together with a validity
// bitmap recording which positions hold a value. Columns are created through
// a Builder, are immutable once finished, and can be freely shared between
// readers. The Column interface is the type-erased surface used when the
// element type is known only at runtime; Typed is its statically typed
// refinement, recovered with As.
//
// A Value is the scalar counterpart: a small tagged union holding one
// optional value of any physical type. Values read from a column are
// zero-copy views into the column's storage; Owned detaches them.
//
// Each physical type pairs with exactly one column type and one Go element
// type:
//
//	TypeInt16    Int16Column    int16
//	TypeInt32    Int32Column    int32
//	TypeInt64    Int64Column    int64
//	TypeFloat32  Float32Column  float32
//	TypeFloat64  Float64Column  float64
//	TypeBool     BoolColumn     bool
//	TypeString   StringColumn   string
//	TypeDecimal  DecimalColumn  decimal.Decimal
//	TypeList     ListColumn     List
//
// The package is synchronization-free: builders belong to one goroutine
// until Finish, finished columns are read-only.
package column

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// A Column is an immutable sequence of optional values sharing one physical
// type.
type Column interface {
	// PhysicalType reports the representation tag of the column's elements.
	PhysicalType() PhysicalType

	// Len returns the number of positions in O(1).
	Len() int

	// IsEmpty reports whether the column has no positions.
	IsEmpty() bool

	// IsNull reports whether position i holds no value. It panics if i is
	// out of bounds.
	IsNull(i int) bool

	// Get returns the value at position i, or the null Value if the
	// position is absent. The result may alias the column's storage. It
	// panics if i is out of bounds.
	Get(i int) Value

	// NewBuilder returns a fresh builder producing columns of the same
	// physical type, with storage reserved for capacity elements. List
	// columns hand their element type down to the builder.
	NewBuilder(capacity int) Builder

	// Values returns an iterator over all positions. Each call starts a
	// fresh iteration.
	Values() *Iterator

	// String renders the column for debugging, e.g. [1, null, 3].
	String() string
}

// A Builder accumulates optional values and produces an immutable Column.
// Builders are single-use: any append after Finish, or a second Finish,
// panics.
type Builder interface {
	// PhysicalType reports the tag of the column under construction.
	PhysicalType() PhysicalType

	// Len returns the number of values appended so far.
	Len() int

	// AppendValue appends a tagged value. The null Value is legal for any
	// builder; a present value whose tag differs from the builder's panics,
	// since it indicates a caller bug rather than bad input data.
	AppendValue(v Value)

	// AppendNull appends an absent position.
	AppendNull()

	// Finish returns the accumulated column and marks the builder finished.
	Finish() Column
}

// Element enumerates the Go element types backed by a column
// representation.
type Element interface {
	int16 | int32 | int64 | float32 | float64 | bool | string | decimal.Decimal | List
}

// Typed is a Column with statically typed element access.
type Typed[T Element] interface {
	Column

	// Value returns the element at position i. Absent positions yield the
	// placeholder stored under the null; callers consult IsNull. It panics
	// if i is out of bounds.
	Value(i int) T
}

// TypedBuilder is a Builder with statically typed appends.
type TypedBuilder[T Element] interface {
	Builder

	// Append appends a present value.
	Append(v T)
}

// TypeOf returns the physical type tag pairing with element type T.
func TypeOf[T Element]() PhysicalType {
	var z T
	switch any(z).(type) {
	case int16:
		return TypeInt16
	case int32:
		return TypeInt32
	case int64:
		return TypeInt64
	case float32:
		return TypeFloat32
	case float64:
		return TypeFloat64
	case bool:
		return TypeBool
	case string:
		return TypeString
	case decimal.Decimal:
		return TypeDecimal
	case List:
		return TypeList
	}
	panic(fmt.Sprintf("column: no physical type for %T", z))
}

// As recovers the statically typed form of c, failing with a
// TypeMismatchError if c's element type is not T. It never coerces.
func As[T Element](c Column) (Typed[T], error) {
	tc, ok := c.(Typed[T])
	if !ok {
		return nil, &TypeMismatchError{Expected: TypeOf[T](), Actual: c.PhysicalType()}
	}
	return tc, nil
}

// NewBuilderOf returns a builder for element type T with storage reserved
// for capacity elements. List builders start with their element type
// unknown and infer it from the first appended value.
func NewBuilderOf[T Element](capacity int) TypedBuilder[T] {
	b := TypeOf[T]().NewBuilder(capacity)
	tb, ok := b.(TypedBuilder[T])
	if !ok {
		panic(fmt.Sprintf("column: descriptor for %s built %T", TypeOf[T](), b))
	}
	return tb
}
