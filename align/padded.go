// File: align/padded.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Padded wraps a value with a trailing cache line of padding so that
// neighbouring values in a slice or struct never share a cache line.

package align

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the padding width used by Padded on the target architecture.
const CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// Padded is a transparent wrapper placing value on its own cache line
// relative to whatever follows it in memory.
type Padded[T any] struct {
	value T
	_     cpu.CacheLinePad
}

// NewPadded returns a Padded holding v.
func NewPadded[T any](v T) Padded[T] {
	return Padded[T]{value: v}
}

// Get returns a pointer to the wrapped value.
func (p *Padded[T]) Get() *T {
	return &p.value
}

// Load returns a copy of the wrapped value.
func (p *Padded[T]) Load() T {
	return p.value
}

// Store replaces the wrapped value.
func (p *Padded[T]) Store(v T) {
	p.value = v
}
