// Package types defines the logical type catalog: the SQL-level types a
// planner works with and their mapping to exactly one physical column
// representation each.
//
//	SmallInt  → TypeInt16      Real     → TypeFloat32
//	Integer   → TypeInt32      Double   → TypeFloat64
//	BigInt    → TypeInt64      Boolean  → TypeBool
//	Varchar   → TypeString     Char(n)  → TypeString
//	Decimal(p, s) → TypeDecimal
package types

import (
	"fmt"

	"github.com/chaisql/matcha/column"
)

// Kind enumerates the logical types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindSmallInt
	KindInteger
	KindBigInt
	KindReal
	KindDouble
	KindBoolean
	KindVarchar
	KindChar
	KindDecimal
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindSmallInt: "smallint",
	KindInteger:  "integer",
	KindBigInt:   "bigint",
	KindReal:     "real",
	KindDouble:   "double",
	KindBoolean:  "boolean",
	KindVarchar:  "varchar",
	KindChar:     "char",
	KindDecimal:  "decimal",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// DataType is one logical type, optionally parameterized. DataTypes are
// comparable with ==.
type DataType struct {
	kind      Kind
	width     int // char
	precision int // decimal
	scale     int // decimal
}

func SmallInt() DataType { return DataType{kind: KindSmallInt} }

func Integer() DataType { return DataType{kind: KindInteger} }

func BigInt() DataType { return DataType{kind: KindBigInt} }

func Real() DataType { return DataType{kind: KindReal} }

func Double() DataType { return DataType{kind: KindDouble} }

func Boolean() DataType { return DataType{kind: KindBoolean} }

func Varchar() DataType { return DataType{kind: KindVarchar} }

// Char returns the fixed-width character type. The width is a catalog
// annotation; the column layer neither pads nor truncates.
func Char(width int) DataType { return DataType{kind: KindChar, width: width} }

// Decimal returns the exact numeric type. Precision and scale are catalog
// annotations; stored values keep their exact digits.
func Decimal(precision, scale int) DataType {
	return DataType{kind: KindDecimal, precision: precision, scale: scale}
}

func (t DataType) Kind() Kind { return t.kind }

// Width returns the char width annotation.
func (t DataType) Width() int { return t.width }

// Precision returns the decimal precision annotation.
func (t DataType) Precision() int { return t.precision }

// Scale returns the decimal scale annotation.
func (t DataType) Scale() int { return t.scale }

// PhysicalType returns the column representation backing this logical
// type.
func (t DataType) PhysicalType() column.PhysicalType {
	switch t.kind {
	case KindSmallInt:
		return column.TypeInt16
	case KindInteger:
		return column.TypeInt32
	case KindBigInt:
		return column.TypeInt64
	case KindReal:
		return column.TypeFloat32
	case KindDouble:
		return column.TypeFloat64
	case KindBoolean:
		return column.TypeBool
	case KindVarchar, KindChar:
		return column.TypeString
	case KindDecimal:
		return column.TypeDecimal
	}
	return column.TypeInvalid
}

// NewBuilder returns a builder for columns of this logical type.
func (t DataType) NewBuilder(capacity int) column.Builder {
	return t.PhysicalType().NewBuilder(capacity)
}

// String renders the SQL spelling, e.g. varchar, char(8), decimal(10, 2).
func (t DataType) String() string {
	switch t.kind {
	case KindChar:
		if t.width > 0 {
			return fmt.Sprintf("char(%d)", t.width)
		}
	case KindDecimal:
		if t.precision > 0 {
			return fmt.Sprintf("decimal(%d, %d)", t.precision, t.scale)
		}
	}
	return t.kind.String()
}
