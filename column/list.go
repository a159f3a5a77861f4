package column

// ListColumn stores list values as ranges over one shared inner column. The
// inner column is held type-erased, so one ListColumn type covers every
// element type, including nested lists.
type ListColumn struct {
	values   Column
	offsets  []int
	validity bitmap
}

func (c *ListColumn) PhysicalType() PhysicalType { return TypeList }

func (c *ListColumn) Len() int { return len(c.offsets) - 1 }

func (c *ListColumn) IsEmpty() bool { return c.Len() == 0 }

func (c *ListColumn) IsNull(i int) bool { return !c.validity.get(i) }

// ElemType reports the physical type of the list elements.
func (c *ListColumn) ElemType() PhysicalType { return c.values.PhysicalType() }

// Value returns the list at position i as a view over the shared inner
// column. Absent positions yield the empty view.
func (c *ListColumn) Value(i int) List {
	if c.IsNull(i) {
		return List{}
	}
	return List{values: c.values, off: c.offsets[i], end: c.offsets[i+1]}
}

func (c *ListColumn) Get(i int) Value {
	if c.IsNull(i) {
		return Value{}
	}
	return NewListValue(c.Value(i))
}

// NewBuilder returns a list builder that inherits the element type, so it
// does not need to re-infer it from appended values.
func (c *ListColumn) NewBuilder(capacity int) Builder {
	b := NewListBuilder(capacity)
	b.values = c.values.NewBuilder(capacity)
	return b
}

func (c *ListColumn) Values() *Iterator { return newIterator(c) }

func (c *ListColumn) String() string { return formatColumn(c) }

// ListBuilder accumulates list values. The inner builder is created when
// the first present value arrives, so the element type need not be known up
// front.
type ListBuilder struct {
	builderState
	values   Builder // nil until the element type is known
	offsets  []int
	validity bitmap
	capacity int
}

// NewListBuilder returns a list builder with storage reserved for capacity
// lists. Finish panics if the element type was never learned.
func NewListBuilder(capacity int) *ListBuilder {
	return &ListBuilder{
		offsets:  make([]int, 1, capacity+1),
		validity: newBitmap(capacity),
		capacity: capacity,
	}
}

func (b *ListBuilder) PhysicalType() PhysicalType { return TypeList }

func (b *ListBuilder) Len() int { return len(b.offsets) - 1 }

// ElemType reports the element type, or TypeInvalid while it is unknown.
func (b *ListBuilder) ElemType() PhysicalType {
	if b.values == nil {
		return TypeInvalid
	}
	return b.values.PhysicalType()
}

// Append appends a present list, copying the viewed elements into the
// shared inner builder.
func (b *ListBuilder) Append(v List) {
	b.assertMutable()
	if b.values == nil {
		if v.values == nil {
			panic("column: cannot infer the list element type from a zero List")
		}
		b.values = v.values.NewBuilder(b.capacity)
	}
	if v.values != nil {
		for i := v.off; i < v.end; i++ {
			b.values.AppendValue(v.values.Get(i))
		}
	}
	b.offsets = append(b.offsets, b.values.Len())
	b.validity.append(true)
}

func (b *ListBuilder) AppendNull() {
	b.assertMutable()
	b.offsets = append(b.offsets, b.innerLen())
	b.validity.append(false)
}

func (b *ListBuilder) AppendValue(v Value) {
	if v.IsNull() {
		b.AppendNull()
		return
	}
	b.Append(v.List())
}

// Finish panics if no present value was ever appended and the builder was
// not seeded by ListColumn.NewBuilder, since no element type could be
// inferred for the inner column.
func (b *ListBuilder) Finish() Column {
	b.finish()
	if b.values == nil {
		panic("column: cannot finish a list builder before the element type is known")
	}
	return &ListColumn{values: b.values.Finish(), offsets: b.offsets, validity: b.validity}
}

func (b *ListBuilder) innerLen() int {
	if b.values == nil {
		return 0
	}
	return b.values.Len()
}

var (
	_ Typed[List]        = (*ListColumn)(nil)
	_ TypedBuilder[List] = (*ListBuilder)(nil)
)
