// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Result registry for benchmark workloads plus named probes that expose
// live primitive state (thread-local stats) at report time.

package control

import (
	"sync"
	"time"
)

// Result is the outcome of one workload.
type Result struct {
	Name    string
	Ops     int64
	Retries int64
	Elapsed time.Duration
}

// OpsPerSec returns throughput, or 0 for an empty run.
func (r Result) OpsPerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Ops) / r.Elapsed.Seconds()
}

// MetricsRegistry holds results in recording order and probe functions.
type MetricsRegistry struct {
	mu      sync.RWMutex
	results []Result
	probes  map[string]func() any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		probes: make(map[string]func() any),
	}
}

// Record appends a workload result.
func (mr *MetricsRegistry) Record(r Result) {
	mr.mu.Lock()
	mr.results = append(mr.results, r)
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// RegisterProbe inserts a named state hook.
func (mr *MetricsRegistry) RegisterProbe(name string, fn func() any) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	mr.probes[name] = fn
}

// Results returns a copy of the recorded results.
func (mr *MetricsRegistry) Results() []Result {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make([]Result, len(mr.results))
	copy(out, mr.results)
	return out
}

// DumpProbes evaluates every probe.
func (mr *MetricsRegistry) DumpProbes() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.probes))
	for k, fn := range mr.probes {
		out[k] = fn()
	}
	return out
}

// Updated returns the time of the last Record.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
