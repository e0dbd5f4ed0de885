//go:build !linux && !windows

// File: identity/thread_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// No portable thread id syscall here; fall back to goroutine identity.

package identity

func osThreadID() uint64 {
	return Goroutine()
}
