// File: local/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package local

import "errors"

var (
	// ErrCapacityExceeded is returned when a static registry has no free slot
	// left for a new identity.
	ErrCapacityExceeded = errors.New("local: per-thread registry capacity exceeded")

	// ErrClosed is returned by accesses after Close.
	ErrClosed = errors.New("local: thread-local storage is closed")

	// ErrInvalidIdentity is returned when the identity function yields a
	// value outside [identity.Min, identity.Max].
	ErrInvalidIdentity = errors.New("local: invalid execution identity")
)
