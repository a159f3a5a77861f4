package column

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unsafe"

	"github.com/shopspring/decimal"
)

// Value is the scalar counterpart of a column position: one optional value
// of any physical type, packed to avoid allocation on read paths.
//
// The zero Value is null. Values produced by Column.Get may alias the
// column's storage (string payloads view the column buffer, list payloads
// reference the inner column); Owned returns a self-contained copy.
//
// The layout follows log/slog.Value: fixed-width payloads live in num with
// the tag in any; strings keep a pointer in any and their length in num;
// decimals carry a pointer; lists carry the inner column in any and their
// bounds in num and num2.
type Value struct {
	_ [0]func() // disallow ==

	num  uint64
	num2 uint64
	any  any
}

// NewNullValue returns the null Value. The zero Value is equivalent.
func NewNullValue() Value { return Value{} }

// NewInt16Value returns a Value holding v.
func NewInt16Value(v int16) Value { return Value{num: uint64(v), any: TypeInt16} }

// NewInt32Value returns a Value holding v.
func NewInt32Value(v int32) Value { return Value{num: uint64(v), any: TypeInt32} }

// NewInt64Value returns a Value holding v.
func NewInt64Value(v int64) Value { return Value{num: uint64(v), any: TypeInt64} }

// NewFloat32Value returns a Value holding v.
func NewFloat32Value(v float32) Value {
	return Value{num: uint64(math.Float32bits(v)), any: TypeFloat32}
}

// NewFloat64Value returns a Value holding v.
func NewFloat64Value(v float64) Value {
	return Value{num: math.Float64bits(v), any: TypeFloat64}
}

// NewBoolValue returns a Value holding v.
func NewBoolValue(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{num: n, any: TypeBool}
}

// NewStringValue returns a Value viewing v's bytes without copying them.
func NewStringValue(v string) Value {
	return Value{num: uint64(len(v)), any: unsafe.StringData(v)}
}

// NewDecimalValue returns a Value holding v.
func NewDecimalValue(v decimal.Decimal) Value { return Value{any: &v} }

// decimalRefValue wraps a pointer into immutable column storage, avoiding
// the copy NewDecimalValue makes.
func decimalRefValue(v *decimal.Decimal) Value { return Value{any: v} }

// NewListValue returns a Value viewing the same elements as v. The zero
// List maps to the null Value.
func NewListValue(v List) Value {
	if v.values == nil {
		return Value{}
	}
	return Value{num: uint64(v.off), num2: uint64(v.end), any: v.values}
}

// Type reports the payload's physical type tag, TypeInvalid for the null
// Value.
func (v Value) Type() PhysicalType {
	switch t := v.any.(type) {
	case PhysicalType:
		return t
	case *byte:
		return TypeString
	case *decimal.Decimal:
		return TypeDecimal
	case Column:
		return TypeList
	case nil:
		return TypeInvalid
	}
	panic(fmt.Sprintf("column: corrupt Value tag %T", v.any))
}

// IsNull reports whether v is the null Value.
func (v Value) IsNull() bool { return v.any == nil }

func (v Value) check(want PhysicalType) {
	if got := v.Type(); got != want {
		panic(fmt.Sprintf("column: value is %s, not %s", got, want))
	}
}

// Int16 returns the payload, panicking if the tag is not TypeInt16. The
// other accessors behave alike for their tags.
func (v Value) Int16() int16 { v.check(TypeInt16); return int16(v.num) }

func (v Value) Int32() int32 { v.check(TypeInt32); return int32(v.num) }

func (v Value) Int64() int64 { v.check(TypeInt64); return int64(v.num) }

func (v Value) Float32() float32 {
	v.check(TypeFloat32)
	return math.Float32frombits(uint32(v.num))
}

func (v Value) Float64() float64 {
	v.check(TypeFloat64)
	return math.Float64frombits(v.num)
}

func (v Value) Bool() bool { v.check(TypeBool); return v.num == 1 }

// Text returns the string payload. The result may view column storage; use
// Owned first to detach it.
func (v Value) Text() string {
	v.check(TypeString)
	if v.num == 0 {
		return ""
	}
	return unsafe.String(v.any.(*byte), int(v.num))
}

// Decimal returns the decimal payload.
func (v Value) Decimal() decimal.Decimal {
	v.check(TypeDecimal)
	return *v.any.(*decimal.Decimal)
}

// List returns the list payload.
func (v Value) List() List {
	v.check(TypeList)
	return List{values: v.any.(Column), off: int(v.num), end: int(v.num2)}
}

// Owned returns a Value that does not alias column storage: string bytes
// are cloned, list views are rebuilt into a detached column, fixed-width
// payloads are returned as is.
func (v Value) Owned() Value {
	switch v.Type() {
	case TypeString:
		return NewStringValue(strings.Clone(v.Text()))
	case TypeList:
		return NewListValue(v.List().Owned())
	default:
		return v
	}
}

// Equal reports whether v and o hold equal payloads of the same type.
// Lists compare elementwise; two null Values are equal.
func (v Value) Equal(o Value) bool {
	if v.Type() != o.Type() {
		return false
	}
	switch v.Type() {
	case TypeInvalid:
		return true
	case TypeFloat32:
		return v.Float32() == o.Float32()
	case TypeFloat64:
		return v.Float64() == o.Float64()
	case TypeString:
		return v.Text() == o.Text()
	case TypeDecimal:
		return v.Decimal().Equal(o.Decimal())
	case TypeList:
		return v.List().Equal(o.List())
	default:
		return v.num == o.num
	}
}

// String renders the value for debugging: 1, 1.5, true, "foo", [1, null].
func (v Value) String() string {
	switch v.Type() {
	case TypeInt16:
		return strconv.FormatInt(int64(v.Int16()), 10)
	case TypeInt32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case TypeInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case TypeFloat32:
		return strconv.FormatFloat(float64(v.Float32()), 'g', -1, 32)
	case TypeFloat64:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	case TypeBool:
		return strconv.FormatBool(v.Bool())
	case TypeString:
		return strconv.Quote(v.Text())
	case TypeDecimal:
		return v.Decimal().String()
	case TypeList:
		return v.List().String()
	default:
		return "null"
	}
}

// List is a view over a contiguous range of a column's values. The zero
// List is empty and typeless. Lists are element views of ListColumn and the
// payload of TypeList Values.
type List struct {
	values Column
	off    int
	end    int
}

// NewList returns a view over all of c's values.
func NewList(c Column) List { return List{values: c, end: c.Len()} }

// Len returns the number of elements in the view.
func (l List) Len() int { return l.end - l.off }

// ElemType reports the element tag, TypeInvalid for the zero List.
func (l List) ElemType() PhysicalType {
	if l.values == nil {
		return TypeInvalid
	}
	return l.values.PhysicalType()
}

// Get returns element i of the view as a tagged Value.
func (l List) Get(i int) Value {
	if i < 0 || i >= l.Len() {
		panic(fmt.Sprintf("column: list index %d out of range [0, %d)", i, l.Len()))
	}
	return l.values.Get(l.off + i)
}

// Slice narrows the view to [from, to) relative to the current bounds. The
// elements are not copied. It panics if the range exceeds the current
// bounds.
func (l List) Slice(from, to int) List {
	if from < 0 || to < from || l.off+to > l.end {
		panic(fmt.Sprintf("column: list slice [%d, %d) out of range [0, %d)", from, to, l.Len()))
	}
	return List{values: l.values, off: l.off + from, end: l.off + to}
}

// SliceFrom narrows the view to [from, Len()).
func (l List) SliceFrom(from int) List { return l.Slice(from, l.Len()) }

// Owned returns a List backed by its own column holding copies of the
// viewed elements.
func (l List) Owned() List {
	if l.values == nil {
		return l
	}
	b := l.values.NewBuilder(l.Len())
	for i := 0; i < l.Len(); i++ {
		b.AppendValue(l.Get(i))
	}
	return NewList(b.Finish())
}

// Equal compares two views elementwise.
func (l List) Equal(o List) bool {
	if l.Len() != o.Len() {
		return false
	}
	for i := 0; i < l.Len(); i++ {
		if !l.Get(i).Equal(o.Get(i)) {
			return false
		}
	}
	return true
}

// String renders the view for debugging, e.g. [1, null, 3].
func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < l.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(l.Get(i).String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// valueOf packs a typed element into a tagged Value.
func valueOf[T Element](v T) Value {
	switch p := any(&v).(type) {
	case *int16:
		return NewInt16Value(*p)
	case *int32:
		return NewInt32Value(*p)
	case *int64:
		return NewInt64Value(*p)
	case *float32:
		return NewFloat32Value(*p)
	case *float64:
		return NewFloat64Value(*p)
	case *bool:
		return NewBoolValue(*p)
	case *string:
		return NewStringValue(*p)
	case *decimal.Decimal:
		return NewDecimalValue(*p)
	case *List:
		return NewListValue(*p)
	}
	panic(fmt.Sprintf("column: no value representation for %T", v))
}

// valueElem unpacks a tagged Value into element type T, panicking on a tag
// mismatch.
func valueElem[T Element](v Value) T {
	var out T
	switch p := any(&out).(type) {
	case *int16:
		*p = v.Int16()
	case *int32:
		*p = v.Int32()
	case *int64:
		*p = v.Int64()
	case *float32:
		*p = v.Float32()
	case *float64:
		*p = v.Float64()
	case *bool:
		*p = v.Bool()
	case *string:
		*p = v.Text()
	case *decimal.Decimal:
		*p = v.Decimal()
	case *List:
		*p = v.List()
	default:
		panic(fmt.Sprintf("column: no value representation for %T", out))
	}
	return out
}

func formatColumn(c Column) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < c.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.Get(i).String())
	}
	sb.WriteByte(']')
	return sb.String()
}
