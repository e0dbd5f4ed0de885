package align

import (
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadded_PassThrough(t *testing.T) {
	p := NewPadded(41)
	assert.Equal(t, 41, p.Load())

	*p.Get()++
	assert.Equal(t, 42, p.Load())

	p.Store(7)
	assert.Equal(t, 7, *p.Get())
}

func TestPadded_AdjacentValuesDoNotShareLine(t *testing.T) {
	require.Positive(t, CacheLineSize)

	cells := make([]Padded[atomic.Uint64], 4)
	for i := 1; i < len(cells); i++ {
		prev := uintptr(unsafe.Pointer(cells[i-1].Get()))
		next := uintptr(unsafe.Pointer(cells[i].Get()))
		assert.GreaterOrEqual(t, next-prev, uintptr(CacheLineSize),
			"cells %d and %d are closer than a cache line", i-1, i)
	}
}

func TestPadded_SizeIncludesFullLine(t *testing.T) {
	var p Padded[byte]
	assert.GreaterOrEqual(t, int(unsafe.Sizeof(p)), CacheLineSize+1)
}
