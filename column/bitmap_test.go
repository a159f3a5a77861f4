package column

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitmapWordBoundaries(t *testing.T) {
	var b bitmap
	for i := 0; i < 130; i++ {
		b.append(i%3 == 0)
	}

	require.Equal(t, 130, b.len())
	for i := 0; i < 130; i++ {
		require.Equal(t, i%3 == 0, b.get(i), "bit %d", i)
	}
}

func TestBitmapBounds(t *testing.T) {
	b := newBitmap(4)
	b.append(true)

	require.Panics(t, func() { b.get(1) })
	require.Panics(t, func() { b.get(-1) })
}

func TestBitmapCapacityIsNotLength(t *testing.T) {
	b := newBitmap(128)
	require.Equal(t, 0, b.len())
	b.append(false)
	require.Equal(t, 1, b.len())
	require.False(t, b.get(0))
}
