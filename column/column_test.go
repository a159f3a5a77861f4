package column_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaisql/matcha/column"
	"github.com/chaisql/matcha/internal/testutil"
)

func TestAsRoundTrip(t *testing.T) {
	b := column.NewInt32Builder(1)
	b.Append(7)
	orig := b.Finish()

	tc, err := column.As[int32](orig)
	require.NoError(t, err)
	require.Same(t, orig, tc)
	require.Equal(t, int32(7), tc.Value(0))

	// and back up to the erased interface without copying
	var back column.Column = tc
	require.Same(t, orig, back)
}

func TestAsTypeMismatch(t *testing.T) {
	c := testutil.ColumnFromJSON(t, column.TypeInt32, `[1]`)

	_, err := column.As[int64](c)
	require.Error(t, err)

	var tm *column.TypeMismatchError
	require.ErrorAs(t, err, &tm)
	require.Equal(t, column.TypeInt64, tm.Expected)
	require.Equal(t, column.TypeInt32, tm.Actual)
	require.EqualError(t, err, "type mismatch: expected int64, got int32")
}

func TestTypeOf(t *testing.T) {
	require.Equal(t, column.TypeInt16, column.TypeOf[int16]())
	require.Equal(t, column.TypeFloat64, column.TypeOf[float64]())
	require.Equal(t, column.TypeString, column.TypeOf[string]())
	require.Equal(t, column.TypeList, column.TypeOf[column.List]())
}

func TestNewBuilderOf(t *testing.T) {
	b := column.NewBuilderOf[string](2)
	b.Append("a")
	b.Append("b")
	c := b.Finish()

	require.Equal(t, column.TypeString, c.PhysicalType())
	testutil.RequireColumnEqual(t, []any{"a", "b"}, c)
}

func TestAppendValueChecksTag(t *testing.T) {
	b := column.NewInt32Builder(3)
	b.AppendValue(column.NewNullValue())
	b.AppendValue(column.NewInt32Value(5))
	require.Panics(t, func() { b.AppendValue(column.NewInt64Value(5)) })

	// the failed append left the builder untouched
	c := b.Finish()
	testutil.RequireColumnEqual(t, []any{nil, int32(5)}, c)
}

func TestPhysicalTypeNewBuilder(t *testing.T) {
	for _, pt := range []column.PhysicalType{
		column.TypeInt16,
		column.TypeInt32,
		column.TypeInt64,
		column.TypeFloat32,
		column.TypeFloat64,
		column.TypeBool,
		column.TypeString,
		column.TypeDecimal,
		column.TypeList,
	} {
		t.Run(pt.String(), func(t *testing.T) {
			b := pt.NewBuilder(4)
			require.Equal(t, pt, b.PhysicalType())
		})
	}

	require.Panics(t, func() { column.TypeInvalid.NewBuilder(0) })
}

func TestPhysicalTypeString(t *testing.T) {
	require.Equal(t, "invalid", column.TypeInvalid.String())
	require.Equal(t, "int32", column.TypeInt32.String())
	require.Equal(t, "decimal", column.TypeDecimal.String())
	require.Equal(t, "list", column.TypeList.String())
	require.Equal(t, "PhysicalType(99)", column.PhysicalType(99).String())
}
