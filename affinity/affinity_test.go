package affinity

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAffinity_Negative(t *testing.T) {
	assert.Error(t, SetAffinity(-1))
}

func TestSetAffinity_LockedThread(t *testing.T) {
	cpus, err := AllowedCPUs()
	if errors.Is(err, ErrUnsupported) {
		t.Skip("affinity unsupported on this platform")
	}
	require.NoError(t, err)
	require.NotEmpty(t, cpus)

	// The goroutine exits while still locked, so the runtime retires the
	// pinned thread instead of returning it to the pool.
	done := make(chan error, 1)
	go func() {
		runtime.LockOSThread()
		done <- SetAffinity(cpus[0])
	}()
	require.NoError(t, <-done)
}

func TestNumCPU(t *testing.T) {
	assert.Equal(t, runtime.NumCPU(), NumCPU())
}
