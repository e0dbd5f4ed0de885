//go:build linux

// File: identity/thread_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package identity

import "golang.org/x/sys/unix"

func osThreadID() uint64 {
	return uint64(unix.Gettid())
}
