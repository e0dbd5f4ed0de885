// File: local/counter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Counter is a striped counter: every identity increments its own padded
// cell, and Sum aggregates the cells on demand.

package local

import (
	"sync/atomic"

	"github.com/momentics/lfkit/align"
)

type stripe = align.Padded[atomic.Int64]

// Counter is a wait-free per-identity counter with eventual aggregation.
type Counter struct {
	cells   *ThreadLocal[stripe]
	retired atomic.Int64
}

// NewCounter returns a Counter. Options are passed to the underlying
// ThreadLocal; a WithCleanup option is ignored.
func NewCounter(opts ...Option) *Counter {
	c := &Counter{}
	opts = append(opts, WithCleanup(func(s *stripe) {
		c.retired.Add(s.Get().Load())
	}))
	c.cells = New(func() stripe { return stripe{} }, opts...)
	return c
}

// Add adds delta to the calling identity's cell.
func (c *Counter) Add(delta int64) {
	c.cells.Get().Get().Add(delta)
}

// Inc adds one.
func (c *Counter) Inc() {
	c.Add(1)
}

// Sum returns the total across all cells, including released ones. Under
// concurrent Add it is a lower or upper bound, exact once writers stop.
func (c *Counter) Sum() int64 {
	sum := c.retired.Load()
	c.cells.Range(func(s *stripe) bool {
		sum += s.Get().Load()
		return true
	})
	return sum
}

// Reset zeroes every cell.
func (c *Counter) Reset() {
	c.retired.Store(0)
	c.cells.Range(func(s *stripe) bool {
		s.Get().Store(0)
		return true
	})
}

// Release folds the calling identity's cell into the total and frees it.
func (c *Counter) Release() {
	c.cells.Release()
}

// Stripes returns the number of live cells.
func (c *Counter) Stripes() int {
	return c.cells.Len()
}

// Stats exposes the underlying container's counters.
func (c *Counter) Stats() Stats {
	return c.cells.Stats()
}
