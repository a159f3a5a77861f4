package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaisql/matcha/column"
	"github.com/chaisql/matcha/types"
)

func TestPhysicalMapping(t *testing.T) {
	tests := []struct {
		dt   types.DataType
		want column.PhysicalType
	}{
		{types.SmallInt(), column.TypeInt16},
		{types.Integer(), column.TypeInt32},
		{types.BigInt(), column.TypeInt64},
		{types.Real(), column.TypeFloat32},
		{types.Double(), column.TypeFloat64},
		{types.Boolean(), column.TypeBool},
		{types.Varchar(), column.TypeString},
		{types.Char(8), column.TypeString},
		{types.Decimal(10, 2), column.TypeDecimal},
	}
	for _, tt := range tests {
		t.Run(tt.dt.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.dt.PhysicalType())

			b := tt.dt.NewBuilder(4)
			require.Equal(t, tt.want, b.PhysicalType())
		})
	}
}

func TestDataTypeString(t *testing.T) {
	require.Equal(t, "smallint", types.SmallInt().String())
	require.Equal(t, "double", types.Double().String())
	require.Equal(t, "varchar", types.Varchar().String())
	require.Equal(t, "char(8)", types.Char(8).String())
	require.Equal(t, "char", types.Char(0).String())
	require.Equal(t, "decimal(10, 2)", types.Decimal(10, 2).String())
	require.Equal(t, "decimal", types.Decimal(0, 0).String())
}

func TestDataTypeComparable(t *testing.T) {
	require.Equal(t, types.Char(8), types.Char(8))
	require.NotEqual(t, types.Char(8), types.Char(9))
	require.NotEqual(t, types.Char(8), types.Varchar())
	require.Equal(t, types.Decimal(10, 2), types.Decimal(10, 2))
	require.NotEqual(t, types.Decimal(10, 2), types.Decimal(10, 3))

	// usable as map keys
	m := map[types.DataType]int{types.Integer(): 1, types.Char(4): 2}
	require.Equal(t, 1, m[types.Integer()])
	require.Equal(t, 2, m[types.Char(4)])
}

func TestDataTypeAnnotations(t *testing.T) {
	require.Equal(t, 8, types.Char(8).Width())
	require.Equal(t, 10, types.Decimal(10, 2).Precision())
	require.Equal(t, 2, types.Decimal(10, 2).Scale())
	require.Equal(t, types.KindDecimal, types.Decimal(10, 2).Kind())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "integer", types.KindInteger.String())
	require.Equal(t, "invalid", types.KindInvalid.String())
	require.Equal(t, "Kind(99)", types.Kind(99).String())
}
