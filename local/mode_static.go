//go:build lfkit_static_local

// File: local/mode_static.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Built with -tags lfkit_static_local: containers default to a fixed table.

package local

const defaultCapacity = DefaultStaticCapacity
