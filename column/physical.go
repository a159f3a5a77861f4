package column

import "fmt"

// PhysicalType identifies the concrete representation of a column or value.
type PhysicalType uint8

const (
	// TypeInvalid is the tag of the null Value. No column carries it.
	TypeInvalid PhysicalType = iota
	TypeInt16
	TypeInt32
	TypeInt64
	TypeFloat32
	TypeFloat64
	TypeBool
	TypeString
	TypeDecimal
	TypeList
)

// physicalTypeDesc describes one physical type. All per-type construction
// and naming funnels through the descriptor table so that generic dispatch
// stays free of hand-written per-type switches.
type physicalTypeDesc struct {
	name       string
	newBuilder func(capacity int) Builder
}

var physicalTypeDescs = [...]physicalTypeDesc{
	TypeInvalid: {name: "invalid"},
	TypeInt16:   {name: "int16", newBuilder: func(n int) Builder { return NewInt16Builder(n) }},
	TypeInt32:   {name: "int32", newBuilder: func(n int) Builder { return NewInt32Builder(n) }},
	TypeInt64:   {name: "int64", newBuilder: func(n int) Builder { return NewInt64Builder(n) }},
	TypeFloat32: {name: "float32", newBuilder: func(n int) Builder { return NewFloat32Builder(n) }},
	TypeFloat64: {name: "float64", newBuilder: func(n int) Builder { return NewFloat64Builder(n) }},
	TypeBool:    {name: "bool", newBuilder: func(n int) Builder { return NewBoolBuilder(n) }},
	TypeString:  {name: "string", newBuilder: func(n int) Builder { return NewStringBuilder(n) }},
	TypeDecimal: {name: "decimal", newBuilder: func(n int) Builder { return NewDecimalBuilder(n) }},
	TypeList:    {name: "list", newBuilder: func(n int) Builder { return NewListBuilder(n) }},
}

// String returns the lowercase name of the tag.
func (t PhysicalType) String() string {
	if int(t) < len(physicalTypeDescs) {
		return physicalTypeDescs[t].name
	}
	return fmt.Sprintf("PhysicalType(%d)", uint8(t))
}

// NewBuilder returns a builder producing columns of this physical type with
// storage reserved for capacity elements. It panics for TypeInvalid.
func (t PhysicalType) NewBuilder(capacity int) Builder {
	if int(t) >= len(physicalTypeDescs) || physicalTypeDescs[t].newBuilder == nil {
		panic(fmt.Sprintf("column: no builder for physical type %s", t))
	}
	return physicalTypeDescs[t].newBuilder(capacity)
}
