// File: internal/relax/relax.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package relax emits the processor's spin-wait hint.

package relax

// Spin issues n spin-wait hints back to back.
func Spin(n uint32) {
	for i := uint32(0); i < n; i++ {
		Pause()
	}
}
