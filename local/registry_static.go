// File: local/registry_static.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity open-addressing table. Cells are claimed by CAS on the
// owner word and padded to separate cache lines. Owner words only move
// empty -> id -> tombstone while the registry is live, so a probe for id
// may stop at the first empty cell.

package local

import (
	"sync/atomic"

	"github.com/momentics/lfkit/align"
)

const (
	ownerEmpty     uint64 = 0
	ownerTombstone uint64 = ^uint64(0)
)

type cell[T any] struct {
	owner atomic.Uint64
	ready atomic.Bool
	slot  slot[T]
}

type staticRegistry[T any] struct {
	table []align.Padded[cell[T]]
	mask  uint64
	live  atomic.Int64
}

func newStaticRegistry[T any](capacity int) *staticRegistry[T] {
	size := uint64(1)
	for size < uint64(capacity) {
		size <<= 1
	}
	return &staticRegistry[T]{
		table: make([]align.Padded[cell[T]], size),
		mask:  size - 1,
	}
}

// home spreads sequential identities across the table.
func (r *staticRegistry[T]) home(id uint64) uint64 {
	h := id * 0x9E3779B97F4A7C15
	h ^= h >> 32
	return h & r.mask
}

func (r *staticRegistry[T]) cellAt(i uint64) *cell[T] {
	return r.table[i&r.mask].Get()
}

func (r *staticRegistry[T]) find(id uint64) *cell[T] {
	start := r.home(id)
	for i := uint64(0); i <= r.mask; i++ {
		c := r.cellAt(start + i)
		switch c.owner.Load() {
		case id:
			return c
		case ownerEmpty:
			return nil
		}
	}
	return nil
}

func (r *staticRegistry[T]) lookup(id uint64) *slot[T] {
	if c := r.find(id); c != nil && c.ready.Load() {
		return &c.slot
	}
	return nil
}

func (r *staticRegistry[T]) insert(id uint64, value T) (*slot[T], error) {
	start := r.home(id)
	for i := uint64(0); i <= r.mask; i++ {
		c := r.cellAt(start + i)
		o := c.owner.Load()
		if o != ownerEmpty && o != ownerTombstone {
			continue
		}
		if !c.owner.CompareAndSwap(o, id) {
			continue
		}
		c.slot.owner = id
		c.slot.value = value
		c.ready.Store(true)
		r.live.Add(1)
		return &c.slot, nil
	}
	return nil, ErrCapacityExceeded
}

func (r *staticRegistry[T]) remove(id uint64, destroy func(*T)) bool {
	c := r.find(id)
	if c == nil || !c.ready.Load() {
		return false
	}
	r.release(c, destroy, ownerTombstone)
	return true
}

func (r *staticRegistry[T]) release(c *cell[T], destroy func(*T), next uint64) {
	c.ready.Store(false)
	if destroy != nil {
		destroy(&c.slot.value)
	}
	c.slot = slot[T]{}
	c.owner.Store(next)
	r.live.Add(-1)
}

func (r *staticRegistry[T]) each(fn func(*T) bool) {
	for i := range r.table {
		c := r.table[i].Get()
		if c.ready.Load() && !fn(&c.slot.value) {
			return
		}
	}
}

func (r *staticRegistry[T]) drain(destroy func(*T)) int {
	n := 0
	for i := range r.table {
		c := r.table[i].Get()
		if c.ready.Load() {
			r.release(c, destroy, ownerEmpty)
			n++
			continue
		}
		c.owner.Store(ownerEmpty)
	}
	return n
}

func (r *staticRegistry[T]) size() int {
	return int(r.live.Load())
}

func (r *staticRegistry[T]) capacity() int {
	return len(r.table)
}
