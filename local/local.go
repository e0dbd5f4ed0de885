// File: local/local.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package local provides ThreadLocal, a container giving each execution
// identity (a goroutine by default) its own lazily constructed value.
//
// The first access from an identity runs the factory and registers the
// result; every later access from that identity is a lock-free lookup that
// returns the same pointer. Go has no goroutine exit hook, so a slot lives
// until its owner calls Release or the container is closed.

package local

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/momentics/lfkit/api"
	"github.com/momentics/lfkit/identity"
)

// Ensure compile-time interface compliance.
var _ api.Local[any] = (*ThreadLocal[any])(nil)

// ThreadLocal holds one T per execution identity. It must not be copied.
type ThreadLocal[T any] struct {
	init    func() (T, error)
	id      identity.Func
	reg     registry[T]
	cleanup func(*T)
	log     *zap.Logger
	stats   counters
	closed  atomic.Bool
}

// New returns a container whose slots are produced by init. init may run
// concurrently on different identities and at most once per identity
// unless it panics, in which case the next access retries.
func New[T any](init func() T, opts ...Option) *ThreadLocal[T] {
	if init == nil {
		panic("local: nil init function")
	}
	return NewFallible(func() (T, error) { return init(), nil }, opts...)
}

// NewFallible is New with a factory that may fail. A failed initialization
// stores nothing; the next access from the same identity retries.
func NewFallible[T any](init func() (T, error), opts ...Option) *ThreadLocal[T] {
	if init == nil {
		panic("local: nil init function")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	tl := &ThreadLocal[T]{
		init: init,
		id:   o.identity,
		reg:  newRegistry[T](o.capacity),
		log:  o.logger,
	}
	if o.cleanup != nil {
		fn, ok := o.cleanup.(func(*T))
		if !ok {
			panic(fmt.Sprintf("local: cleanup %T does not match element type %T", o.cleanup, (*T)(nil)))
		}
		tl.cleanup = fn
	}
	return tl
}

// Get returns the calling identity's value, initializing it on first use.
// It panics if initialization fails, the registry is exhausted, or the
// container is closed; use GetOrErr to handle those cases.
func (tl *ThreadLocal[T]) Get() *T {
	v, err := tl.GetOrErr()
	if err != nil {
		panic(err)
	}
	return v
}

// GetOrErr is Get returning failures instead of panicking.
func (tl *ThreadLocal[T]) GetOrErr() (*T, error) {
	id := tl.id()
	if s := tl.reg.lookup(id); s != nil {
		return &s.value, nil
	}
	return tl.initSlow(id)
}

func (tl *ThreadLocal[T]) initSlow(id uint64) (*T, error) {
	if tl.closed.Load() {
		return nil, ErrClosed
	}
	if !identity.Valid(id) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIdentity, id)
	}

	value, err := tl.init()
	if err != nil {
		tl.stats.failures.Add(1)
		tl.log.Warn("thread-local init failed", zap.Uint64("identity", id), zap.Error(err))
		return nil, fmt.Errorf("local: init: %w", err)
	}

	s, err := tl.reg.insert(id, value)
	if err != nil {
		tl.stats.exhausted.Add(1)
		tl.log.Error("thread-local registry exhausted",
			zap.Uint64("identity", id),
			zap.Int("capacity", tl.reg.capacity()),
			zap.Error(err))
		if tl.cleanup != nil {
			tl.cleanup(&value)
		}
		return nil, err
	}

	tl.stats.inits.Add(1)
	if ce := tl.log.Check(zap.DebugLevel, "thread-local slot registered"); ce != nil {
		ce.Write(zap.Uint64("identity", id), zap.Int("live", tl.reg.size()))
	}
	return &s.value, nil
}

// TryGet returns the calling identity's value without initializing it.
func (tl *ThreadLocal[T]) TryGet() (*T, bool) {
	if s := tl.reg.lookup(tl.id()); s != nil {
		return &s.value, true
	}
	return nil, false
}

// With runs fn against the calling identity's value.
func (tl *ThreadLocal[T]) With(fn func(*T)) {
	fn(tl.Get())
}

// Release destroys the calling identity's slot, running the cleanup option
// on it. Call it as the last action of a goroutine that will not return;
// pointers obtained earlier must not be used afterwards. It reports whether
// a slot existed.
func (tl *ThreadLocal[T]) Release() bool {
	if !tl.reg.remove(tl.id(), tl.cleanup) {
		return false
	}
	tl.stats.releases.Add(1)
	return true
}

// Range visits every live value until fn returns false. The caller must
// ensure no owner mutates its value concurrently, e.g. by ranging after the
// workers have been joined.
func (tl *ThreadLocal[T]) Range(fn func(*T) bool) {
	tl.reg.each(fn)
}

// Len returns the number of live slots.
func (tl *ThreadLocal[T]) Len() int {
	return tl.reg.size()
}

// Stats returns a snapshot of the container's counters.
func (tl *ThreadLocal[T]) Stats() Stats {
	mode := Dynamic
	if tl.reg.capacity() > 0 {
		mode = Static
	}
	return Stats{
		Mode:         mode,
		Capacity:     tl.reg.capacity(),
		Live:         tl.reg.size(),
		Inits:        tl.stats.inits.Load(),
		InitFailures: tl.stats.failures.Load(),
		Releases:     tl.stats.releases.Load(),
		Exhausted:    tl.stats.exhausted.Load(),
	}
}

// Close destroys every live slot, running the cleanup option on each.
// Later first accesses fail with ErrClosed. Close must not race with
// accessors. A second Close returns ErrClosed.
func (tl *ThreadLocal[T]) Close() error {
	if !tl.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	n := tl.reg.drain(tl.cleanup)
	tl.log.Debug("thread-local storage closed", zap.Int("destroyed", n))
	return nil
}
