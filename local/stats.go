// File: local/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Registry counters. Only cold paths (registration, failure, release)
// update them, so the lookup fast path stays free of shared writes.

package local

import "sync/atomic"

// Stats is a point-in-time snapshot of a container.
type Stats struct {
	Mode         Mode
	Capacity     int // 0 for dynamic registries
	Live         int
	Inits        uint64
	InitFailures uint64
	Releases     uint64
	Exhausted    uint64
}

type counters struct {
	inits     atomic.Uint64
	failures  atomic.Uint64
	releases  atomic.Uint64
	exhausted atomic.Uint64
}
