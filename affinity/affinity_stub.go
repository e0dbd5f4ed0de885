//go:build !linux && !windows

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package affinity

func setAffinityPlatform(int) error {
	return ErrUnsupported
}

func allowedCPUsPlatform() ([]int, error) {
	return nil, ErrUnsupported
}
