// File: internal/fastrand/fastrand.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package fastrand provides small non-cryptographic random sources used to
// jitter spin counts. Sources are pluggable so callers can run the
// jitter path deterministically.

package fastrand

import "math/rand/v2"

// Source yields bounded pseudo-random numbers.
type Source interface {
	// Uint32n returns a value in [0, n). It returns 0 when n is 0.
	Uint32n(n uint32) uint32
}

// Runtime draws from the Go runtime generator. Its state lives per OS
// thread inside the runtime, so concurrent callers never contend on it.
type Runtime struct{}

// Uint32n implements Source.
func (Runtime) Uint32n(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	return rand.Uint32N(n)
}

// Constant always yields the same value, clamped to the requested bound.
type Constant uint32

// Uint32n implements Source.
func (c Constant) Uint32n(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	if uint32(c) >= n {
		return n - 1
	}
	return uint32(c)
}
