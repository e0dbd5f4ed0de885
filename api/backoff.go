// Package api
// Author: momentics@gmail.com
//
// Contracts shared by the primitives and the algorithms built on them.

package api

// Backoff is a per-call-site contention strategy for retry loops.
type Backoff interface {
	// Spin waits one failed-attempt step and advances the strategy.
	Spin()
	// Reset starts the next contention episode cold.
	Reset()
	// IsCompleted reports saturation; callers may switch to blocking.
	IsCompleted() bool
}
