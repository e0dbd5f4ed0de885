// File: identity/identity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package identity names the unit of sequential execution that per-thread
// storage is keyed by. Goroutine identity is the default; OS thread
// identity is meaningful only for goroutines locked to their thread.

package identity

import (
	"math"
	"runtime"

	"github.com/petermattis/goid"

	"github.com/momentics/lfkit/affinity"
)

// Func returns the identity of the calling execution context. Results must
// be stable for the lifetime of that context and lie in [Min, Max].
type Func func() uint64

const (
	// Min is the smallest valid identity.
	Min uint64 = 1
	// Max is the largest valid identity.
	Max uint64 = math.MaxUint64 - 1
)

// Valid reports whether id can key a per-thread slot.
func Valid(id uint64) bool {
	return id >= Min && id <= Max
}

// Goroutine returns the runtime id of the calling goroutine. Ids are
// handed out monotonically and never reused within a process.
func Goroutine() uint64 {
	return uint64(goid.Get())
}

// OSThread returns the id of the OS thread running the caller. Only stable
// while the goroutine holds runtime.LockOSThread; OS thread ids may be
// reused after a thread exits.
func OSThread() uint64 {
	return osThreadID()
}

// LockThread wires the calling goroutine to its OS thread and, when
// cpuID >= 0, pins that thread to cpuID. The returned unlock must be called
// from the same goroutine.
func LockThread(cpuID int) (unlock func(), err error) {
	runtime.LockOSThread()
	if cpuID >= 0 {
		if err := affinity.SetAffinity(cpuID); err != nil {
			runtime.UnlockOSThread()
			return nil, err
		}
	}
	return runtime.UnlockOSThread, nil
}
