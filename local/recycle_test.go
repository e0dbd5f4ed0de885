package local

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecycler_ReusesAndZeroes(t *testing.T) {
	r := newRecycler[int](2)

	s := r.get()
	s.owner, s.value = 5, 42
	r.put(s)
	assert.Equal(t, 1, r.len())

	again := r.get()
	assert.Same(t, s, again)
	assert.Zero(t, again.owner)
	assert.Zero(t, again.value)
	assert.Zero(t, r.len())
}

func TestRecycler_Bounded(t *testing.T) {
	r := newRecycler[int](2)
	for i := 0; i < 5; i++ {
		r.put(new(slot[int]))
	}
	assert.Equal(t, 2, r.len())
}

func TestDynamic_ReleaseFeedsRecycler(t *testing.T) {
	reg := newDynamicRegistry[int]()
	_, err := reg.insert(1, 10)
	assert.NoError(t, err)
	assert.True(t, reg.remove(1, nil))
	assert.Equal(t, 1, reg.free.len())
	assert.Nil(t, reg.lookup(1))
}
