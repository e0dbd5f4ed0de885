package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/momentics/lfkit/control"
	"github.com/momentics/lfkit/local"
)

func smallConfig(backoffMode, storage string) *control.Config {
	cfg := control.Default()
	cfg.Workers = 4
	cfg.Iterations = 2000
	cfg.Backoff = backoffMode
	cfg.Storage = storage
	if storage == control.StorageStatic {
		cfg.Capacity = 8
	}
	return cfg
}

func TestRunner_AllModes(t *testing.T) {
	for _, mode := range []string{control.BackoffNone, control.BackoffExp, control.BackoffJitter} {
		for _, storage := range []string{control.StorageDynamic, control.StorageStatic} {
			t.Run(mode+"/"+storage, func(t *testing.T) {
				metrics := control.NewMetricsRegistry()
				r, err := NewRunner(smallConfig(mode, storage), zaptest.NewLogger(t), metrics)
				require.NoError(t, err)
				require.NoError(t, r.Run(context.Background()))

				res := metrics.Results()
				require.Len(t, res, 2)
				assert.Equal(t, "cas-counter/"+mode, res[0].Name)
				assert.Equal(t, int64(8000), res[0].Ops)
				assert.GreaterOrEqual(t, res[0].Retries, int64(0))
				assert.Equal(t, "striped-counter/"+storage, res[1].Name)
				assert.Equal(t, int64(8000), res[1].Ops)

				probes := metrics.DumpProbes()
				stats, ok := probes["striped.cells"].(local.Stats)
				require.True(t, ok)
				assert.Equal(t, uint64(4), stats.Inits)
			})
		}
	}
}

func TestRunner_Pinned(t *testing.T) {
	cfg := smallConfig(control.BackoffJitter, control.StorageDynamic)
	cfg.PinThreads = true
	r, err := NewRunner(cfg, zaptest.NewLogger(t), control.NewMetricsRegistry())
	require.NoError(t, err)
	require.NoError(t, r.Run(context.Background()))
}

func TestRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r, err := NewRunner(smallConfig(control.BackoffExp, control.StorageDynamic), zaptest.NewLogger(t), control.NewMetricsRegistry())
	require.NoError(t, err)
	assert.ErrorIs(t, r.Run(ctx), context.Canceled)
}

func TestNewRunner_InvalidConfig(t *testing.T) {
	cfg := control.Default()
	cfg.Workers = 0
	_, err := NewRunner(cfg, zaptest.NewLogger(t), control.NewMetricsRegistry())
	assert.Error(t, err)
}

func TestNoBackoff(t *testing.T) {
	var b noBackoff
	b.Spin()
	b.Reset()
	assert.False(t, b.IsCompleted())
}
