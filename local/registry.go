// File: local/registry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// A registry maps execution identities to slots. Only the identity that
// owns a slot inserts or removes it; lookups are lock-free.

package local

type slot[T any] struct {
	owner uint64
	value T
}

type registry[T any] interface {
	// lookup returns the slot owned by id, or nil.
	lookup(id uint64) *slot[T]
	// insert publishes a slot for id holding value. Called at most once per
	// id between removals, and only by id itself.
	insert(id uint64, value T) (*slot[T], error)
	// remove destroys the slot of id, passing its value to destroy first.
	remove(id uint64, destroy func(*T)) bool
	// each visits live values until fn returns false.
	each(fn func(*T) bool)
	// drain destroys every live slot and returns how many there were.
	drain(destroy func(*T)) int
	size() int
	capacity() int
}

func newRegistry[T any](capacity int) registry[T] {
	if capacity > 0 {
		return newStaticRegistry[T](capacity)
	}
	return newDynamicRegistry[T]()
}
