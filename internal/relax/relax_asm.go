//go:build amd64 || arm64

// File: internal/relax/relax_asm.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package relax

// Pause executes PAUSE (amd64) or YIELD (arm64).
// Implemented in assembly, so calls are never inlined or elided.
func Pause()
