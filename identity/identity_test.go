package identity

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoroutine_StableWithinGoroutine(t *testing.T) {
	id := Goroutine()
	assert.True(t, Valid(id))
	assert.Equal(t, id, Goroutine())
}

func TestGoroutine_DistinctAcrossGoroutines(t *testing.T) {
	const n = 32
	ids := make([]uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = Goroutine()
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]struct{}, n)
	for _, id := range ids {
		require.True(t, Valid(id))
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestOSThread_StableWhileLocked(t *testing.T) {
	unlock, err := LockThread(-1)
	require.NoError(t, err)
	defer unlock()

	id := OSThread()
	assert.True(t, Valid(id))
	for i := 0; i < 10; i++ {
		assert.Equal(t, id, OSThread())
	}
}

func TestValid(t *testing.T) {
	assert.False(t, Valid(0))
	assert.False(t, Valid(Max+1))
	assert.True(t, Valid(Min))
	assert.True(t, Valid(Max))
}
