package column

// Iterator walks a column's values in index order. Each call to
// Column.Values starts an independent iteration.
type Iterator struct {
	col Column
	i   int
}

func newIterator(c Column) *Iterator { return &Iterator{col: c} }

// Next returns the next value and true, or the zero Value and false once
// the column is exhausted. Absent positions yield the null Value and true.
func (it *Iterator) Next() (Value, bool) {
	if it.i >= it.col.Len() {
		return Value{}, false
	}
	v := it.col.Get(it.i)
	it.i++
	return v, true
}

// Remaining returns the exact number of values Next has yet to return, so
// paired outputs can be pre-allocated.
func (it *Iterator) Remaining() int { return it.col.Len() - it.i }
