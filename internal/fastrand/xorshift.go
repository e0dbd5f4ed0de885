// File: internal/fastrand/xorshift.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fastrand

// defaultSeed replaces a zero seed, which would lock xorshift at zero.
const defaultSeed = 0x9E3779B97F4A7C15

// Xorshift is a xorshift64* generator. It is not safe for concurrent use;
// give each goroutine its own instance.
type Xorshift struct {
	state uint64
}

// NewXorshift returns a generator seeded with seed.
func NewXorshift(seed uint64) *Xorshift {
	if seed == 0 {
		seed = defaultSeed
	}
	return &Xorshift{state: seed}
}

// Uint64 advances the generator.
func (x *Xorshift) Uint64() uint64 {
	s := x.state
	s ^= s >> 12
	s ^= s << 25
	s ^= s >> 27
	x.state = s
	return s * 2685821657736338717
}

// Uint32n implements Source using multiply-shift range reduction.
func (x *Xorshift) Uint32n(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	hi := x.Uint64() >> 32
	return uint32((hi * uint64(n)) >> 32)
}
