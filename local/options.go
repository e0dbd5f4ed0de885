// File: local/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package local

import (
	"go.uber.org/zap"

	"github.com/momentics/lfkit/identity"
)

// DefaultStaticCapacity is the slot count used when the lfkit_static_local
// build tag selects the static registry and no capacity is given.
const DefaultStaticCapacity = 256

// Mode selects the registry storage policy.
type Mode int

const (
	// Dynamic grows without bound and allocates on first access per identity.
	Dynamic Mode = iota
	// Static preallocates a fixed table and never allocates afterwards.
	Static
)

func (m Mode) String() string {
	switch m {
	case Dynamic:
		return "dynamic"
	case Static:
		return "static"
	default:
		return "unknown"
	}
}

// Option configures a ThreadLocal.
type Option func(*options)

type options struct {
	capacity int
	identity identity.Func
	logger   *zap.Logger
	cleanup  any
}

func defaultOptions() options {
	return options{
		capacity: defaultCapacity,
		identity: identity.Goroutine,
		logger:   zap.NewNop(),
	}
}

// WithCapacity selects the static registry with room for at least n
// identities. The table is rounded up to a power of two. It panics if n < 1.
func WithCapacity(n int) Option {
	if n < 1 {
		panic("local: capacity must be greater than 0")
	}
	return func(o *options) {
		o.capacity = n
	}
}

// WithDynamic selects the growable registry regardless of build tags.
func WithDynamic() Option {
	return func(o *options) {
		o.capacity = 0
	}
}

// WithIdentity keys slots by fn instead of goroutine identity.
func WithIdentity(fn identity.Func) Option {
	return func(o *options) {
		if fn != nil {
			o.identity = fn
		}
	}
}

// WithLogger reports registry lifecycle events to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCleanup runs fn on every slot value destroyed by Release or Close.
// T must match the element type of the container; New panics otherwise.
func WithCleanup[T any](fn func(*T)) Option {
	return func(o *options) {
		o.cleanup = fn
	}
}
