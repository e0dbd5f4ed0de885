// File: local/registry_dynamic.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package local

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// dynamicRegistry grows with the number of identities. Reads go through
// the lock-free xsync map; slot structs of released identities are recycled.
type dynamicRegistry[T any] struct {
	slots *xsync.MapOf[uint64, *slot[T]]
	free  *recycler[T]
}

func newDynamicRegistry[T any]() *dynamicRegistry[T] {
	return &dynamicRegistry[T]{
		slots: xsync.NewMapOf[uint64, *slot[T]](),
		free:  newRecycler[T](recycleLimit),
	}
}

func (r *dynamicRegistry[T]) lookup(id uint64) *slot[T] {
	s, _ := r.slots.Load(id)
	return s
}

func (r *dynamicRegistry[T]) insert(id uint64, value T) (*slot[T], error) {
	s := r.free.get()
	s.owner = id
	s.value = value
	r.slots.Store(id, s)
	return s, nil
}

func (r *dynamicRegistry[T]) remove(id uint64, destroy func(*T)) bool {
	s, ok := r.slots.LoadAndDelete(id)
	if !ok {
		return false
	}
	if destroy != nil {
		destroy(&s.value)
	}
	r.free.put(s)
	return true
}

func (r *dynamicRegistry[T]) each(fn func(*T) bool) {
	r.slots.Range(func(_ uint64, s *slot[T]) bool {
		return fn(&s.value)
	})
}

func (r *dynamicRegistry[T]) drain(destroy func(*T)) int {
	n := 0
	r.slots.Range(func(id uint64, s *slot[T]) bool {
		r.slots.Delete(id)
		if destroy != nil {
			destroy(&s.value)
		}
		n++
		return true
	})
	return n
}

func (r *dynamicRegistry[T]) size() int {
	return r.slots.Size()
}

func (r *dynamicRegistry[T]) capacity() int {
	return 0
}
