// File: local/recycle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded FIFO of released slot structs, reused by later first accesses.
// Only touched on the registration and release paths.

package local

import (
	"sync"

	"github.com/eapache/queue"
)

const recycleLimit = 64

type recycler[T any] struct {
	mu    sync.Mutex
	q     *queue.Queue
	limit int
}

func newRecycler[T any](limit int) *recycler[T] {
	return &recycler[T]{q: queue.New(), limit: limit}
}

// get returns a zeroed slot, reusing a released one when available.
func (r *recycler[T]) get() *slot[T] {
	r.mu.Lock()
	if r.q.Length() > 0 {
		s := r.q.Remove().(*slot[T])
		r.mu.Unlock()
		return s
	}
	r.mu.Unlock()
	return new(slot[T])
}

// put zeroes s and keeps it unless the queue is full.
func (r *recycler[T]) put(s *slot[T]) {
	*s = slot[T]{}
	r.mu.Lock()
	if r.q.Length() < r.limit {
		r.q.Add(s)
	}
	r.mu.Unlock()
}

func (r *recycler[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.q.Length()
}
