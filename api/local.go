// Package api
// Author: momentics@gmail.com
//
// Per-thread storage contract.

package api

// Local hands each execution identity its own lazily created value.
type Local[T any] interface {
	// Get returns the caller's value, creating it on first access.
	Get() *T
	// TryGet returns the caller's value only if it already exists.
	TryGet() (*T, bool)
	// Release destroys the caller's value.
	Release() bool
}
