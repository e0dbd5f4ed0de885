//go:build windows

// File: identity/thread_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package identity

import "golang.org/x/sys/windows"

func osThreadID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}
