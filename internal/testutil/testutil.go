// Package testutil provides column fixtures and assertions shared by the
// package tests.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/chaisql/matcha/column"
)

// cmpOpts make go-cmp safe for element types with unexported fields.
var cmpOpts = cmp.Options{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b column.List) bool { return a.Equal(b) }),
}

// ColumnFromJSON builds a column from a JSON array, failing the test on
// any parse error.
func ColumnFromJSON(t testing.TB, pt column.PhysicalType, src string) column.Column {
	t.Helper()
	c, err := column.FromJSON(pt, []byte(src))
	require.NoError(t, err)
	return c
}

// ColumnValues flattens a column into []any: nil for absent positions,
// the Go element value otherwise.
func ColumnValues(t testing.TB, c column.Column) []any {
	t.Helper()
	out := make([]any, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			out = append(out, nil)
			continue
		}
		out = append(out, elem(t, c.Get(i)))
	}
	return out
}

func elem(t testing.TB, v column.Value) any {
	t.Helper()
	switch v.Type() {
	case column.TypeInt16:
		return v.Int16()
	case column.TypeInt32:
		return v.Int32()
	case column.TypeInt64:
		return v.Int64()
	case column.TypeFloat32:
		return v.Float32()
	case column.TypeFloat64:
		return v.Float64()
	case column.TypeBool:
		return v.Bool()
	case column.TypeString:
		return v.Text()
	case column.TypeDecimal:
		return v.Decimal()
	case column.TypeList:
		return v.List()
	}
	t.Fatalf("unexpected value type %s", v.Type())
	return nil
}

// RequireColumnEqual asserts that c holds exactly want, position by
// position, with nil standing for absent.
func RequireColumnEqual(t testing.TB, want []any, c column.Column) {
	t.Helper()
	require.Equal(t, len(want), c.Len(), "column length")
	got := ColumnValues(t, c)
	if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
		t.Fatalf("column mismatch (-want +got):\n%s", diff)
	}
}
