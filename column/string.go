package column

import "unsafe"

// StringColumn stores UTF-8 values as ranges of one contiguous buffer.
// offsets has Len()+1 non-decreasing entries starting at 0; value i spans
// data[offsets[i]:offsets[i+1]]. The bytes are valid UTF-8 by construction
// and are never re-validated on read.
type StringColumn struct {
	data     string
	offsets  []int
	validity bitmap
}

func (c *StringColumn) PhysicalType() PhysicalType { return TypeString }

func (c *StringColumn) Len() int { return len(c.offsets) - 1 }

func (c *StringColumn) IsEmpty() bool { return c.Len() == 0 }

func (c *StringColumn) IsNull(i int) bool { return !c.validity.get(i) }

// Value returns the string at position i as a slice of the shared buffer,
// without copying. Absent positions yield "".
func (c *StringColumn) Value(i int) string {
	return c.data[c.offsets[i]:c.offsets[i+1]]
}

func (c *StringColumn) Get(i int) Value {
	if c.IsNull(i) {
		return Value{}
	}
	return NewStringValue(c.Value(i))
}

func (c *StringColumn) NewBuilder(capacity int) Builder {
	return NewStringBuilder(capacity)
}

func (c *StringColumn) Values() *Iterator { return newIterator(c) }

func (c *StringColumn) String() string { return formatColumn(c) }

// StringBuilder accumulates string values into one flat byte buffer.
type StringBuilder struct {
	builderState
	data     []byte
	offsets  []int
	validity bitmap
}

// NewStringBuilder returns a string builder with offset storage reserved
// for capacity elements. The byte buffer grows on demand.
func NewStringBuilder(capacity int) *StringBuilder {
	return &StringBuilder{
		data:     make([]byte, 0, capacity),
		offsets:  make([]int, 1, capacity+1),
		validity: newBitmap(capacity),
	}
}

func (b *StringBuilder) PhysicalType() PhysicalType { return TypeString }

func (b *StringBuilder) Len() int { return len(b.offsets) - 1 }

// Append appends a present value, copying its bytes into the flat buffer.
func (b *StringBuilder) Append(v string) {
	b.assertMutable()
	b.data = append(b.data, v...)
	b.offsets = append(b.offsets, len(b.data))
	b.validity.append(true)
}

func (b *StringBuilder) AppendNull() {
	b.assertMutable()
	b.offsets = append(b.offsets, len(b.data))
	b.validity.append(false)
}

func (b *StringBuilder) AppendValue(v Value) {
	if v.IsNull() {
		b.AppendNull()
		return
	}
	b.Append(v.Text())
}

// Finish transfers the byte buffer into the column without copying, the way
// strings.Builder does: the builder is finished, so nothing can append to
// the buffer after the conversion.
func (b *StringBuilder) Finish() Column {
	b.finish()
	var data string
	if len(b.data) > 0 {
		data = unsafe.String(unsafe.SliceData(b.data), len(b.data))
	}
	return &StringColumn{data: data, offsets: b.offsets, validity: b.validity}
}

var (
	_ Typed[string]        = (*StringColumn)(nil)
	_ TypedBuilder[string] = (*StringBuilder)(nil)
)
