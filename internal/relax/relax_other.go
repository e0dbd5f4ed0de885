//go:build !amd64 && !arm64

// File: internal/relax/relax_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Architectures without a dedicated hint get an out-of-line call,
// which still keeps the surrounding loop from being optimized away.

package relax

//go:noinline
func Pause() {}
