//go:build !lfkit_static_local

// File: local/mode_dynamic.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package local

// defaultCapacity of 0 selects the dynamic registry.
const defaultCapacity = 0
