// File: backoff/backoff.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package backoff implements a staged spin/yield back-off for the retry
// loops of lock-free algorithms. A BackOff lives on the stack of a single
// goroutine for the duration of one contention episode.

package backoff

import (
	"fmt"
	"runtime"
	"time"

	"github.com/momentics/lfkit/api"
	"github.com/momentics/lfkit/internal/fastrand"
	"github.com/momentics/lfkit/internal/relax"
)

const (
	// SpinLimit is the first stage at which Spin yields instead of spinning.
	SpinLimit = 6
	// MaxStage is the saturation stage; Spin yields on every call from here on.
	MaxStage = 10
)

// Limit returns the spin budget for stage: 2^stage, capped at 2^SpinLimit.
func Limit(stage uint32) uint32 {
	if stage > SpinLimit {
		stage = SpinLimit
	}
	return 1 << stage
}

// Ensure compile-time interface compliance.
var _ api.Backoff = (*BackOff)(nil)

// BackOff is an exponential back-off counter. The zero value is ready to use.
// It must not be copied after first use or shared between goroutines.
type BackOff struct {
	stage  uint32
	jitter fastrand.Source
}

// New returns a deterministic back-off at stage 0.
func New() BackOff {
	return BackOff{}
}

// NewRandom returns a back-off whose spin count is drawn uniformly from
// [1, Limit(stage)] on every call. When jitter is compiled out with the
// lfkit_nojitter tag it behaves like New.
func NewRandom() BackOff {
	return BackOff{jitter: defaultJitter()}
}

// WithSource returns a back-off jittered by src. A nil src disables jitter.
func WithSource(src fastrand.Source) BackOff {
	return BackOff{jitter: src}
}

// Spin performs one failed-attempt step: below SpinLimit it issues a
// bounded run of CPU spin hints, at or above it yields the goroutine to
// the scheduler. The stage then advances until MaxStage.
func (b *BackOff) Spin() {
	if b.stage < SpinLimit {
		relax.Spin(b.spinCount())
	} else {
		runtime.Gosched()
	}
	if b.stage < MaxStage {
		b.stage++
	}
}

// spinCount is the number of hints the next Spin issues at the current stage.
func (b *BackOff) spinCount() uint32 {
	limit := Limit(b.stage)
	if b.jitter == nil {
		return limit
	}
	return 1 + b.jitter.Uint32n(limit)
}

// Reset returns the back-off to stage 0.
func (b *BackOff) Reset() {
	b.stage = 0
}

// Stage reports the current stage in [0, MaxStage].
func (b *BackOff) Stage() uint32 {
	return b.stage
}

// Limit reports the non-jittered spin budget of the current stage.
func (b *BackOff) Limit() uint32 {
	return Limit(b.stage)
}

// AdviseYield reports whether further spinning is no longer advisable.
func (b *BackOff) AdviseYield() bool {
	return b.stage >= SpinLimit
}

// IsCompleted reports whether the back-off has saturated. Callers that can
// block (park on a channel, take a mutex) usually switch strategy here.
func (b *BackOff) IsCompleted() bool {
	return b.stage == MaxStage
}

func (b *BackOff) String() string {
	return fmt.Sprintf("backoff(stage=%d, advise yield: %t)", b.stage, b.AdviseYield())
}

// SpinFor busy-waits for at least d without sleeping.
func SpinFor(d time.Duration) {
	end := time.Now().Add(d)
	for time.Now().Before(end) {
		relax.Pause()
	}
}

// YieldNow cooperatively yields the calling goroutine.
func YieldNow() {
	runtime.Gosched()
}
