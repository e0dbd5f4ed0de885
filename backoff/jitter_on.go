//go:build !lfkit_nojitter

// File: backoff/jitter_on.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package backoff

import "github.com/momentics/lfkit/internal/fastrand"

// JitterEnabled reports whether NewRandom jitters spin counts.
const JitterEnabled = true

func defaultJitter() fastrand.Source {
	return fastrand.Runtime{}
}
