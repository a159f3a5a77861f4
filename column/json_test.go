package column_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/chaisql/matcha/column"
	"github.com/chaisql/matcha/internal/testutil"
)

func TestFromJSON(t *testing.T) {
	tests := []struct {
		name string
		pt   column.PhysicalType
		src  string
		want []any
	}{
		{"int16", column.TypeInt16, `[1, null, -3]`, []any{int16(1), nil, int16(-3)}},
		{"int32", column.TypeInt32, `[2147483647, -2147483648]`, []any{int32(2147483647), int32(-2147483648)}},
		{"int64", column.TypeInt64, `[9007199254740993]`, []any{int64(9007199254740993)}},
		{"float32", column.TypeFloat32, `[1.5, null]`, []any{float32(1.5), nil}},
		{"float64", column.TypeFloat64, `[0.25, 2]`, []any{0.25, 2.0}},
		{"bool", column.TypeBool, `[true, false, null]`, []any{true, false, nil}},
		{"string", column.TypeString, `["a", "", null]`, []any{"a", "", nil}},
		{"string escapes", column.TypeString, `["a\"b", "tab\tend"]`, []any{`a"b`, "tab\tend"}},
		{"decimal number", column.TypeDecimal, `[1.23, null]`, []any{decimal.RequireFromString("1.23"), nil}},
		{
			// string tokens keep digits a float64 round trip would lose
			"decimal string",
			column.TypeDecimal,
			`["123456789012345678901234567890.1"]`,
			[]any{decimal.RequireFromString("123456789012345678901234567890.1")},
		},
		{"empty", column.TypeInt32, `[]`, []any{}},
		{"all null", column.TypeInt32, `[null, null]`, []any{nil, nil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := column.FromJSON(tt.pt, []byte(tt.src))
			require.NoError(t, err)
			require.Equal(t, tt.pt, c.PhysicalType())
			testutil.RequireColumnEqual(t, tt.want, c)
		})
	}
}

func TestFromJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		pt   column.PhysicalType
		src  string
	}{
		{"int16 overflow", column.TypeInt16, `[40000]`},
		{"int32 overflow", column.TypeInt32, `[3000000000]`},
		{"fraction as int", column.TypeInt32, `[1.5]`},
		{"number as bool", column.TypeBool, `[1]`},
		{"number as string", column.TypeString, `[1]`},
		{"string as float", column.TypeFloat64, `["1.5"]`},
		{"bad decimal literal", column.TypeDecimal, `["abc"]`},
		{"truncated array", column.TypeInt32, `[1, 2`},
		{"not an array", column.TypeInt32, `{"a": 1}`},
		{"list unsupported", column.TypeList, `[[1]]`},
		{"invalid type", column.TypeInvalid, `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := column.FromJSON(tt.pt, []byte(tt.src))
			require.Error(t, err)
		})
	}
}

func TestFromJSONOverflowMessage(t *testing.T) {
	_, err := column.FromJSON(column.TypeInt16, []byte(`[40000]`))
	require.ErrorContains(t, err, "40000 overflows int16")
}
