package column

import "fmt"

// bitmap is a packed validity set: bit i set means position i holds a
// value.
type bitmap struct {
	words []uint64
	n     int
}

func newBitmap(capacity int) bitmap {
	return bitmap{words: make([]uint64, 0, (capacity+63)/64)}
}

func (b *bitmap) append(set bool) {
	if b.n%64 == 0 {
		b.words = append(b.words, 0)
	}
	if set {
		b.words[b.n/64] |= 1 << (b.n % 64)
	}
	b.n++
}

func (b *bitmap) get(i int) bool {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("column: index %d out of range [0, %d)", i, b.n))
	}
	return b.words[i/64]&(1<<(i%64)) != 0
}

func (b *bitmap) len() int { return b.n }
