package expr_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/chaisql/matcha/column"
	"github.com/chaisql/matcha/expr"
	"github.com/chaisql/matcha/internal/testutil"
	"github.com/chaisql/matcha/types"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAddInt32(t *testing.T) {
	left := testutil.ColumnFromJSON(t, column.TypeInt32, `[1, 2, 3, null]`)
	right := testutil.ColumnFromJSON(t, column.TypeInt32, `[1, 2, null, 4]`)

	out := evalBinary(t, expr.FuncAdd, types.Integer(), types.Integer(), left, right)
	require.Equal(t, column.TypeInt32, out.PhysicalType())
	testutil.RequireColumnEqual(t, []any{int32(2), int32(4), nil, nil}, out)
}

func TestArithSameKind(t *testing.T) {
	left := testutil.ColumnFromJSON(t, column.TypeInt64, `[7, 7, 7]`)
	right := testutil.ColumnFromJSON(t, column.TypeInt64, `[2, -2, 0]`)

	tests := []struct {
		fn   expr.Func
		want []any
	}{
		{expr.FuncAdd, []any{int64(9), int64(5), int64(7)}},
		{expr.FuncSub, []any{int64(5), int64(9), int64(7)}},
		{expr.FuncMul, []any{int64(14), int64(-14), int64(0)}},
		{expr.FuncDiv, []any{int64(3), int64(-3), nil}},
		{expr.FuncMod, []any{int64(1), int64(1), nil}},
	}
	for _, tt := range tests {
		t.Run(tt.fn.String(), func(t *testing.T) {
			out := evalBinary(t, tt.fn, types.BigInt(), types.BigInt(), left, right)
			testutil.RequireColumnEqual(t, tt.want, out)
		})
	}
}

func TestArithWidening(t *testing.T) {
	tests := []struct {
		name        string
		fn          expr.Func
		lt, rt      types.DataType
		lpt, rpt    column.PhysicalType
		left, right string
		outPT       column.PhysicalType
		want        []any
	}{
		{
			name: "smallint plus double",
			fn:   expr.FuncAdd,
			lt:   types.SmallInt(), rt: types.Double(),
			lpt: column.TypeInt16, rpt: column.TypeFloat64,
			left: `[1, null]`, right: `[0.5, 2.0]`,
			outPT: column.TypeFloat64,
			want:  []any{1.5, nil},
		},
		{
			name: "integer times bigint",
			fn:   expr.FuncMul,
			lt:   types.Integer(), rt: types.BigInt(),
			lpt: column.TypeInt32, rpt: column.TypeInt64,
			left: `[3]`, right: `[4]`,
			outPT: column.TypeInt64,
			want:  []any{int64(12)},
		},
		{
			name: "smallint plus real",
			fn:   expr.FuncAdd,
			lt:   types.SmallInt(), rt: types.Real(),
			lpt: column.TypeInt16, rpt: column.TypeFloat32,
			left: `[1]`, right: `[0.5]`,
			outPT: column.TypeFloat32,
			want:  []any{float32(1.5)},
		},
		{
			name: "integer plus real widens to double",
			fn:   expr.FuncAdd,
			lt:   types.Integer(), rt: types.Real(),
			lpt: column.TypeInt32, rpt: column.TypeFloat32,
			left: `[1]`, right: `[0.5]`,
			outPT: column.TypeFloat64,
			want:  []any{1.5},
		},
		{
			name: "bigint minus decimal",
			fn:   expr.FuncSub,
			lt:   types.BigInt(), rt: types.Decimal(10, 2),
			lpt: column.TypeInt64, rpt: column.TypeDecimal,
			left: `[3, null]`, right: `["0.5", "1"]`,
			outPT: column.TypeDecimal,
			want:  []any{dec("2.5"), nil},
		},
		{
			name: "decimal times integer",
			fn:   expr.FuncMul,
			lt:   types.Decimal(10, 2), rt: types.Integer(),
			lpt: column.TypeDecimal, rpt: column.TypeInt32,
			left: `["1.5"]`, right: `[4]`,
			outPT: column.TypeDecimal,
			want:  []any{dec("6")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left := testutil.ColumnFromJSON(t, tt.lpt, tt.left)
			right := testutil.ColumnFromJSON(t, tt.rpt, tt.right)
			out := evalBinary(t, tt.fn, tt.lt, tt.rt, left, right)
			require.Equal(t, tt.outPT, out.PhysicalType())
			testutil.RequireColumnEqual(t, tt.want, out)
		})
	}
}

func TestDivisionByZeroIsNull(t *testing.T) {
	t.Run("integer", func(t *testing.T) {
		left := testutil.ColumnFromJSON(t, column.TypeInt32, `[6, 7]`)
		right := testutil.ColumnFromJSON(t, column.TypeInt32, `[3, 0]`)
		out := evalBinary(t, expr.FuncDiv, types.Integer(), types.Integer(), left, right)
		testutil.RequireColumnEqual(t, []any{int32(2), nil}, out)
	})

	t.Run("double", func(t *testing.T) {
		left := testutil.ColumnFromJSON(t, column.TypeFloat64, `[1.0]`)
		right := testutil.ColumnFromJSON(t, column.TypeFloat64, `[0.0]`)
		out := evalBinary(t, expr.FuncDiv, types.Double(), types.Double(), left, right)
		testutil.RequireColumnEqual(t, []any{nil}, out)
	})

	t.Run("decimal", func(t *testing.T) {
		left := testutil.ColumnFromJSON(t, column.TypeDecimal, `["1"]`)
		right := testutil.ColumnFromJSON(t, column.TypeDecimal, `["0"]`)
		out := evalBinary(t, expr.FuncDiv, types.Decimal(10, 2), types.Decimal(10, 2), left, right)
		testutil.RequireColumnEqual(t, []any{nil}, out)
	})
}

func TestModulo(t *testing.T) {
	t.Run("decimal", func(t *testing.T) {
		left := testutil.ColumnFromJSON(t, column.TypeDecimal, `["7.5", "7.5"]`)
		right := testutil.ColumnFromJSON(t, column.TypeDecimal, `["2", "0"]`)
		out := evalBinary(t, expr.FuncMod, types.Decimal(10, 2), types.Decimal(10, 2), left, right)
		testutil.RequireColumnEqual(t, []any{dec("1.5"), nil}, out)
	})

	t.Run("floats unsupported", func(t *testing.T) {
		_, err := expr.Build(expr.FuncMod, types.Double(), types.Double())
		var ue *expr.UnsupportedError
		require.ErrorAs(t, err, &ue)
		require.Equal(t, expr.FuncMod, ue.Fn)

		_, err = expr.Build(expr.FuncMod, types.Integer(), types.Real())
		require.ErrorAs(t, err, &ue)
	})
}

func TestArithUnsupported(t *testing.T) {
	_, err := expr.Build(expr.FuncAdd, types.Varchar(), types.Integer())
	var ue *expr.UnsupportedError
	require.ErrorAs(t, err, &ue)

	_, err = expr.Build(expr.FuncMul, types.Boolean(), types.Boolean())
	require.ErrorAs(t, err, &ue)

	_, err = expr.Build(expr.FuncDiv, types.Double(), types.Decimal(10, 2))
	require.ErrorAs(t, err, &ue)
}

func TestNegate(t *testing.T) {
	t.Run("integer", func(t *testing.T) {
		c := testutil.ColumnFromJSON(t, column.TypeInt32, `[1, null, -5]`)
		e, err := expr.Build(expr.FuncNeg, types.Integer())
		require.NoError(t, err)
		out, err := e.Eval(c)
		require.NoError(t, err)
		testutil.RequireColumnEqual(t, []any{int32(-1), nil, int32(5)}, out)
	})

	t.Run("double", func(t *testing.T) {
		c := testutil.ColumnFromJSON(t, column.TypeFloat64, `[1.5]`)
		e, err := expr.Build(expr.FuncNeg, types.Double())
		require.NoError(t, err)
		out, err := e.Eval(c)
		require.NoError(t, err)
		testutil.RequireColumnEqual(t, []any{-1.5}, out)
	})

	t.Run("decimal", func(t *testing.T) {
		c := testutil.ColumnFromJSON(t, column.TypeDecimal, `["1.5"]`)
		e, err := expr.Build(expr.FuncNeg, types.Decimal(10, 2))
		require.NoError(t, err)
		out, err := e.Eval(c)
		require.NoError(t, err)
		testutil.RequireColumnEqual(t, []any{dec("-1.5")}, out)
	})

	t.Run("varchar unsupported", func(t *testing.T) {
		_, err := expr.Build(expr.FuncNeg, types.Varchar())
		var ue *expr.UnsupportedError
		require.ErrorAs(t, err, &ue)
		require.Equal(t, expr.FuncNeg, ue.Fn)
	})
}

func TestArithConstOperand(t *testing.T) {
	left := testutil.ColumnFromJSON(t, column.TypeInt64, `[1, 2, 3]`)

	e, err := expr.Build(expr.FuncMul, types.BigInt(), types.BigInt())
	require.NoError(t, err)

	out, err := e.Eval(left, column.Const(int64(10), 3))
	require.NoError(t, err)
	testutil.RequireColumnEqual(t, []any{int64(10), int64(20), int64(30)}, out)

	out, err = e.Eval(left, column.ConstNull[int64](3))
	require.NoError(t, err)
	testutil.RequireColumnEqual(t, []any{nil, nil, nil}, out)
}

func benchColumns(n int) (column.Column, column.Column) {
	lb := column.NewInt64Builder(n)
	rb := column.NewInt64Builder(n)
	for i := 0; i < n; i++ {
		lb.Append(int64(i))
		rb.Append(int64(n - i))
	}
	return lb.Finish(), rb.Finish()
}

func BenchmarkAddInt64(b *testing.B) {
	e, err := expr.Build(expr.FuncAdd, types.BigInt(), types.BigInt())
	if err != nil {
		b.Fatal(err)
	}
	for _, size := range []int{128, 1024, 8192} {
		left, right := benchColumns(size)
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := e.Eval(left, right); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCompareInt64(b *testing.B) {
	e, err := expr.Build(expr.FuncLt, types.BigInt(), types.BigInt())
	if err != nil {
		b.Fatal(err)
	}
	for _, size := range []int{128, 1024, 8192} {
		left, right := benchColumns(size)
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := e.Eval(left, right); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
