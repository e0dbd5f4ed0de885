// File: internal/bench/bench.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package bench runs the lfbench contention workloads: a shared CAS counter
// driven through a back-off strategy, and a striped thread-local counter.

package bench

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/momentics/lfkit/affinity"
	"github.com/momentics/lfkit/api"
	"github.com/momentics/lfkit/backoff"
	"github.com/momentics/lfkit/control"
	"github.com/momentics/lfkit/identity"
	"github.com/momentics/lfkit/local"
)

// cancelCheckMask bounds how often workers poll the context.
const cancelCheckMask = 1<<10 - 1

// Runner executes workloads for one configuration.
type Runner struct {
	cfg     *control.Config
	log     *zap.Logger
	metrics *control.MetricsRegistry
	cpus    []int
}

// NewRunner validates cfg and prepares a runner.
func NewRunner(cfg *control.Config, log *zap.Logger, metrics *control.MetricsRegistry) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bench: %w", err)
	}
	r := &Runner{cfg: cfg, log: log, metrics: metrics}
	if cfg.PinThreads {
		cpus, err := affinity.AllowedCPUs()
		if err != nil {
			log.Warn("thread pinning unavailable, running unpinned", zap.Error(err))
		} else {
			r.cpus = cpus
		}
	}
	return r, nil
}

// Run executes every workload in order and records the results.
func (r *Runner) Run(ctx context.Context) error {
	workloads := []func(context.Context) (control.Result, error){
		r.CASCounter,
		r.StripedCounter,
	}
	for _, w := range workloads {
		res, err := w(ctx)
		if err != nil {
			return err
		}
		r.metrics.Record(res)
		r.log.Info("workload finished",
			zap.String("workload", res.Name),
			zap.Int64("ops", res.Ops),
			zap.Int64("retries", res.Retries),
			zap.Duration("elapsed", res.Elapsed),
			zap.Float64("ops_per_sec", res.OpsPerSec()))
	}
	return nil
}

// CASCounter increments one shared word from every worker with a
// compare-and-swap loop, backing off after each lost race.
func (r *Runner) CASCounter(ctx context.Context) (control.Result, error) {
	retries := local.NewCounter(r.localOptions()...)
	r.metrics.RegisterProbe("cas.retries", func() any { return retries.Stats() })

	var shared atomic.Uint64
	elapsed, err := r.fanOut(ctx, func(ctx context.Context, worker int) error {
		defer retries.Release()
		b := r.newBackoff()
		for i := 0; i < r.cfg.Iterations; i++ {
			if i&cancelCheckMask == 0 && ctx.Err() != nil {
				return ctx.Err()
			}
			for {
				cur := shared.Load()
				if shared.CompareAndSwap(cur, cur+1) {
					b.Reset()
					break
				}
				retries.Inc()
				b.Spin()
			}
		}
		return nil
	})
	if err != nil {
		return control.Result{}, fmt.Errorf("bench: cas counter: %w", err)
	}

	want := uint64(r.cfg.Workers) * uint64(r.cfg.Iterations)
	if got := shared.Load(); got != want {
		return control.Result{}, fmt.Errorf("bench: cas counter: got %d increments, want %d", got, want)
	}
	return control.Result{
		Name:    "cas-counter/" + r.cfg.Backoff,
		Ops:     int64(want),
		Retries: retries.Sum(),
		Elapsed: elapsed,
	}, nil
}

// StripedCounter increments a thread-local counter from every worker.
func (r *Runner) StripedCounter(ctx context.Context) (control.Result, error) {
	counter := local.NewCounter(r.localOptions()...)
	r.metrics.RegisterProbe("striped.cells", func() any { return counter.Stats() })

	elapsed, err := r.fanOut(ctx, func(ctx context.Context, worker int) error {
		for i := 0; i < r.cfg.Iterations; i++ {
			if i&cancelCheckMask == 0 && ctx.Err() != nil {
				return ctx.Err()
			}
			counter.Inc()
		}
		return nil
	})
	if err != nil {
		return control.Result{}, fmt.Errorf("bench: striped counter: %w", err)
	}

	want := int64(r.cfg.Workers) * int64(r.cfg.Iterations)
	if got := counter.Sum(); got != want {
		return control.Result{}, fmt.Errorf("bench: striped counter: got %d, want %d", got, want)
	}
	return control.Result{
		Name:    "striped-counter/" + r.cfg.Storage,
		Ops:     want,
		Elapsed: elapsed,
	}, nil
}

// fanOut runs fn on cfg.Workers goroutines and waits for all of them.
func (r *Runner) fanOut(ctx context.Context, fn func(context.Context, int) error) (time.Duration, error) {
	var (
		wg       sync.WaitGroup
		firstErr error
		errOnce  sync.Once
	)
	start := make(chan struct{})
	for w := 0; w < r.cfg.Workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r.pin(worker)
			<-start
			if err := fn(ctx, worker); err != nil {
				errOnce.Do(func() { firstErr = err })
			}
		}(w)
	}
	began := time.Now()
	close(start)
	wg.Wait()
	return time.Since(began), firstErr
}

// pin locks the worker to a CPU. The worker exits still locked so the
// runtime retires the pinned thread instead of reusing it.
func (r *Runner) pin(worker int) {
	if len(r.cpus) == 0 {
		return
	}
	cpu := r.cpus[worker%len(r.cpus)]
	if _, err := identity.LockThread(cpu); err != nil {
		r.log.Warn("pinning worker failed", zap.Int("worker", worker), zap.Int("cpu", cpu), zap.Error(err))
	}
}

func (r *Runner) localOptions() []local.Option {
	return append(r.cfg.LocalOptions(), local.WithLogger(r.log))
}

func (r *Runner) newBackoff() api.Backoff {
	switch r.cfg.Backoff {
	case control.BackoffExp:
		b := backoff.New()
		return &b
	case control.BackoffJitter:
		b := backoff.NewRandom()
		return &b
	default:
		return noBackoff{}
	}
}

// noBackoff retries immediately.
type noBackoff struct{}

func (noBackoff) Spin()             {}
func (noBackoff) Reset()            {}
func (noBackoff) IsCompleted() bool { return false }
