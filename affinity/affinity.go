// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral API for OS thread CPU affinity. Platform-specific
// implementations live in files guarded by build tags.

package affinity

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrUnsupported is returned on platforms without thread affinity control.
var ErrUnsupported = errors.New("affinity: not supported on this platform")

// SetAffinity pins the calling OS thread to a logical CPU. The caller must
// hold runtime.LockOSThread, otherwise the goroutine may migrate away.
func SetAffinity(cpuID int) error {
	if cpuID < 0 {
		return fmt.Errorf("affinity: negative cpu %d", cpuID)
	}
	return setAffinityPlatform(cpuID)
}

// AllowedCPUs lists the logical CPUs the calling thread may run on.
func AllowedCPUs() ([]int, error) {
	return allowedCPUsPlatform()
}

// NumCPU returns the number of logical CPUs usable by the process.
func NumCPU() int {
	return runtime.NumCPU()
}
